package types

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Label is one per-depth label. Any comparable Go value is a valid label:
// strings, integers, floats, bools, time.Time, or small comparable structs.
// Labels are compared with ==, so int(1) and int64(1) are distinct labels.
type Label = any

// ValidateLabel reports an ErrUnsupportedLabel construction error when label
// cannot be used as a map key.
func ValidateLabel(label Label) error {
	if label == nil {
		return nil
	}
	if !reflect.TypeOf(label).Comparable() {
		return Construction(ErrUnsupportedLabel, "label of type %T is not comparable", label)
	}
	return nil
}

// NormalizeLabel returns the canonical form of a label used as an index key.
// time.Time values are converted to UTC without a monotonic reading, so that
// labels for the same instant compare equal with ==. Other labels are
// returned unchanged.
func NormalizeLabel(label Label) Label {
	if t, ok := label.(time.Time); ok {
		return t.Round(0).UTC()
	}
	return label
}

// ValidateRow checks every label of a compound label.
func ValidateRow(row []Label) error {
	for _, l := range row {
		if err := ValidateLabel(l); err != nil {
			return err
		}
	}
	return nil
}

// FormatLabel renders a label for error messages and text output.
func FormatLabel(label Label) string {
	switch v := label.(type) {
	case nil:
		return "<nil>"
	case string:
		return strconv.Quote(v)
	case time.Time:
		return v.Format(time.RFC3339Nano)
	default:
		return fmt.Sprint(v)
	}
}

// FormatRow renders a compound label as a parenthesized tuple.
func FormatRow(row []Label) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, l := range row {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(FormatLabel(l))
	}
	b.WriteByte(')')
	return b.String()
}

// RowKey returns a string uniquely identifying a compound label, suitable as
// a map key. The dynamic type of every element takes part in the key.
func RowKey(row []Label) string {
	var b strings.Builder
	for i, l := range row {
		if i > 0 {
			b.WriteByte(0x1f)
		}
		fmt.Fprintf(&b, "%T", l)
		b.WriteByte(0x1e)
		switch v := l.(type) {
		case string:
			b.WriteString(strconv.Quote(v))
		case time.Time:
			b.WriteString(v.UTC().Format(time.RFC3339Nano))
		default:
			fmt.Fprintf(&b, "%#v", v)
		}
	}
	return b.String()
}

// RowsEqual reports whether two compound labels hold equal labels in order.
func RowsEqual(a, b []Label) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !LabelsEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// LabelsEqual compares two labels; time.Time values compare by instant.
func LabelsEqual(a, b Label) bool {
	if ta, ok := a.(time.Time); ok {
		tb, ok := b.(time.Time)
		return ok && ta.Equal(tb)
	}
	return a == b
}

// CloneRow returns a copy of row.
func CloneRow(row []Label) []Label {
	out := make([]Label, len(row))
	copy(out, row)
	return out
}
