package index

import (
	"time"

	"github.com/joshuapare/hierkit/pkg/types"
)

// DateLayout is the textual form accepted for date labels.
const DateLayout = "2006-01-02"

// Dates is an immutable index of calendar dates. Labels are stored as
// time.Time at midnight UTC; lookups accept a time.Time (truncated to its
// date) or a "2006-01-02" string.
type Dates struct {
	labels    []time.Time
	positions map[time.Time]int
	name      types.Label
}

// NewDates builds a Dates index from time.Time or "2006-01-02" labels.
// Unparseable labels are construction errors.
func NewDates(labels []types.Label, name types.Label) (*Dates, error) {
	d := &Dates{
		labels:    make([]time.Time, 0, len(labels)),
		positions: make(map[time.Time]int, len(labels)),
		name:      name,
	}
	for _, l := range labels {
		t, ok := ToDate(l)
		if !ok {
			return nil, types.Construction(types.ErrUnsupportedLabel, "label %s is not a date", types.FormatLabel(l))
		}
		if _, dup := d.positions[t]; dup {
			return nil, types.Construction(types.ErrDuplicateLabel, "date %s", t.Format(DateLayout))
		}
		d.positions[t] = len(d.labels)
		d.labels = append(d.labels, t)
	}
	return d, nil
}

// DatesConstructor is a Constructor producing Dates indices.
func DatesConstructor(labels []types.Label, name types.Label) (Index, error) {
	return NewDates(labels, name)
}

// DateRange builds a Dates index of consecutive days from start to end,
// inclusive.
func DateRange(start, end string, name types.Label) (*Dates, error) {
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return nil, types.Usage(types.ErrInvalidArgument, "start %q", start)
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return nil, types.Usage(types.ErrInvalidArgument, "end %q", end)
	}
	var labels []types.Label
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		labels = append(labels, d)
	}
	return NewDates(labels, name)
}

// ToDate normalizes a label to a UTC midnight time.Time.
func ToDate(label types.Label) (time.Time, bool) {
	switch v := label.(type) {
	case time.Time:
		y, m, d := v.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
	case string:
		t, err := time.Parse(DateLayout, v)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	default:
		return time.Time{}, false
	}
}

// Len implements Index.
func (d *Dates) Len() int { return len(d.labels) }

// Position implements Index.
func (d *Dates) Position(label types.Label) (int, bool) {
	t, ok := ToDate(label)
	if !ok {
		return 0, false
	}
	pos, ok := d.positions[t]
	return pos, ok
}

// Label implements Index.
func (d *Dates) Label(pos int) types.Label { return d.labels[pos] }

// Labels implements Index.
func (d *Dates) Labels() []types.Label {
	out := make([]types.Label, len(d.labels))
	for i, t := range d.labels {
		out[i] = t
	}
	return out
}

// Kind implements Index.
func (d *Dates) Kind() Kind { return KindDate }

// Name implements Index.
func (d *Dates) Name() types.Label { return d.name }

// Stats implements Index.
func (d *Dates) Stats() Stats {
	return Stats{
		Count:       len(d.labels),
		BytesApprox: len(d.labels) * (estimatedBytesPerMapEntry + 24),
		Impl:        "Dates",
	}
}

var _ Index = (*Dates)(nil)
