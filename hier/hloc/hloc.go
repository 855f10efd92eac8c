package hloc

import (
	"fmt"
	"strings"

	"github.com/joshuapare/hierkit/pkg/types"
)

// Term is one per-depth selector term. A Term is either a plain label
// (selecting exactly that label), a List, a Span, or All.
type Term = any

// wildcard is the type of All.
type wildcard struct{}

func (wildcard) String() string { return ":" }

// All selects every label at a depth.
var All Term = wildcard{}

// List selects each given label, in the given order. Repeated labels are each
// selected.
type List []types.Label

// Span selects the contiguous run of labels from Start to Stop, both
// inclusive, in index order. A bound with its Has flag unset is open.
type Span struct {
	Start, Stop       types.Label
	HasStart, HasStop bool
}

// Between returns a Span with both bounds set.
func Between(start, stop types.Label) Span {
	return Span{Start: start, Stop: stop, HasStart: true, HasStop: true}
}

// From returns a Span open at the end.
func From(start types.Label) Span { return Span{Start: start, HasStart: true} }

// To returns a Span open at the start.
func To(stop types.Label) Span { return Span{Stop: stop, HasStop: true} }

// HLoc is a compound selector: one Term per depth, outermost first. Depths
// beyond len(HLoc) are implicitly All.
type HLoc []Term

// New returns an HLoc from terms.
func New(terms ...Term) HLoc { return HLoc(terms) }

// Key returns an HLoc selecting one label per depth.
func Key(labels ...types.Label) HLoc {
	out := make(HLoc, len(labels))
	for i, l := range labels {
		out[i] = l
	}
	return out
}

// TermKind classifies a Term.
type TermKind int

const (
	TermLabel TermKind = iota
	TermList
	TermSpan
	TermAll
)

// KindOf classifies a term, returning a usage error for a term that is not a
// valid label, List, Span or All.
func KindOf(t Term) (TermKind, error) {
	switch v := t.(type) {
	case wildcard:
		return TermAll, nil
	case List:
		if len(v) == 0 {
			return 0, types.Usage(types.ErrBadSelector, "empty label list")
		}
		if err := types.ValidateRow(v); err != nil {
			return 0, types.Usage(types.ErrBadSelector, "list: %v", err)
		}
		return TermList, nil
	case Span:
		if err := types.ValidateRow([]types.Label{v.Start, v.Stop}); err != nil {
			return 0, types.Usage(types.ErrBadSelector, "span: %v", err)
		}
		return TermSpan, nil
	case *Span, *List, HLoc:
		return 0, types.Usage(types.ErrBadSelector, "unsupported term %T", t)
	default:
		if err := types.ValidateLabel(t); err != nil {
			return 0, types.Usage(types.ErrBadSelector, "term: %v", err)
		}
		return TermLabel, nil
	}
}

// Validate checks every term and that the selector fits within depth.
func (h HLoc) Validate(depth int) error {
	if len(h) == 0 {
		return types.Usage(types.ErrBadSelector, "empty selector")
	}
	if len(h) > depth {
		return types.Usage(types.ErrBadSelector, "selector has %d terms for depth %d", len(h), depth)
	}
	for _, t := range h {
		if _, err := KindOf(t); err != nil {
			return err
		}
	}
	return nil
}

// IsKey reports whether h gives a single label for each of depth depths.
func (h HLoc) IsKey(depth int) bool {
	if len(h) != depth {
		return false
	}
	for _, t := range h {
		if k, err := KindOf(t); err != nil || k != TermLabel {
			return false
		}
	}
	return true
}

// IsPrefix reports whether h is a run of single labels followed only by All
// terms, so that it selects one contiguous subtree.
func (h HLoc) IsPrefix() bool {
	seenAll := false
	for _, t := range h {
		k, err := KindOf(t)
		if err != nil {
			return false
		}
		switch k {
		case TermLabel:
			if seenAll {
				return false
			}
		case TermAll:
			seenAll = true
		default:
			return false
		}
	}
	return true
}

// String renders the selector, e.g. HLoc["I", :, ["A" "B"]].
func (h HLoc) String() string {
	parts := make([]string, len(h))
	for i, t := range h {
		parts[i] = formatTerm(t)
	}
	return "HLoc[" + strings.Join(parts, ", ") + "]"
}

func formatTerm(t Term) string {
	switch v := t.(type) {
	case wildcard:
		return ":"
	case List:
		items := make([]string, len(v))
		for i, l := range v {
			items[i] = types.FormatLabel(l)
		}
		return "[" + strings.Join(items, " ") + "]"
	case Span:
		var start, stop string
		if v.HasStart {
			start = types.FormatLabel(v.Start)
		}
		if v.HasStop {
			stop = types.FormatLabel(v.Stop)
		}
		return start + ":" + stop
	default:
		return types.FormatLabel(v)
	}
}

var _ fmt.Stringer = HLoc(nil)
