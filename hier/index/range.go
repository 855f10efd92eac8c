package index

import (
	"github.com/joshuapare/hierkit/pkg/types"
)

// Range is an immutable index over the integer progression
// start, start+step, ... stopping before stop. Position is computed
// arithmetically; no per-label storage is kept.
type Range struct {
	start, stop, step int
	n                 int
	name              types.Label
}

// NewRange builds a Range. step must be non-zero.
func NewRange(start, stop, step int, name types.Label) (*Range, error) {
	if step == 0 {
		return nil, types.Usage(types.ErrInvalidArgument, "range step must be non-zero")
	}
	n := 0
	switch {
	case step > 0 && stop > start:
		n = (stop - start + step - 1) / step
	case step < 0 && stop < start:
		n = (start - stop - step - 1) / -step
	}
	return &Range{start: start, stop: stop, step: step, n: n, name: name}, nil
}

// RangeConstructor is a Constructor that builds a Range when labels are ints
// forming an arithmetic progression, and a Labels index otherwise.
func RangeConstructor(labels []types.Label, name types.Label) (Index, error) {
	if r, ok := rangeOf(labels, name); ok {
		return r, nil
	}
	return NewLabels(labels, name)
}

func rangeOf(labels []types.Label, name types.Label) (*Range, bool) {
	if len(labels) < 2 {
		return nil, false
	}
	ints := make([]int, len(labels))
	for i, l := range labels {
		v, ok := l.(int)
		if !ok {
			return nil, false
		}
		ints[i] = v
	}
	step := ints[1] - ints[0]
	if step == 0 {
		return nil, false
	}
	for i := 2; i < len(ints); i++ {
		if ints[i]-ints[i-1] != step {
			return nil, false
		}
	}
	r, err := NewRange(ints[0], ints[len(ints)-1]+step, step, name)
	if err != nil {
		return nil, false
	}
	return r, true
}

// Len implements Index.
func (r *Range) Len() int { return r.n }

// Position implements Index.
func (r *Range) Position(label types.Label) (int, bool) {
	v, ok := label.(int)
	if !ok {
		return 0, false
	}
	d := v - r.start
	if d%r.step != 0 {
		return 0, false
	}
	pos := d / r.step
	if pos < 0 || pos >= r.n {
		return 0, false
	}
	return pos, true
}

// Label implements Index.
func (r *Range) Label(pos int) types.Label { return r.start + pos*r.step }

// Labels implements Index.
func (r *Range) Labels() []types.Label {
	out := make([]types.Label, r.n)
	for i := range out {
		out[i] = r.start + i*r.step
	}
	return out
}

// Kind implements Index.
func (r *Range) Kind() Kind { return KindRange }

// Name implements Index.
func (r *Range) Name() types.Label { return r.name }

// Stats implements Index.
func (r *Range) Stats() Stats {
	return Stats{Count: r.n, BytesApprox: 48, Impl: "Range"}
}

// Bounds returns start, stop and step.
func (r *Range) Bounds() (start, stop, step int) { return r.start, r.stop, r.step }

var _ Index = (*Range)(nil)
