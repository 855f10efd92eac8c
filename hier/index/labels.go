package index

import (
	"github.com/joshuapare/hierkit/pkg/types"
)

const (
	// estimatedBytesPerMapEntry is the rough overhead of one map entry with an
	// interface key and an int value.
	estimatedBytesPerMapEntry = 48

	// estimatedBytesPerLabel is the size of one interface value in the label slice.
	estimatedBytesPerLabel = 16
)

// Labels is a map-backed immutable index over arbitrary comparable labels.
//
// Lookup is a single map access; Label(pos) is a slice access.
type Labels struct {
	labels    []types.Label
	positions map[types.Label]int
	name      types.Label
}

// NewLabels builds a Labels index. Duplicate or non-comparable labels return
// a construction error.
func NewLabels(labels []types.Label, name types.Label) (*Labels, error) {
	g := NewGrowLabels(len(labels), name)
	for _, l := range labels {
		if err := g.Append(l); err != nil {
			return nil, err
		}
	}
	return g.Freeze(), nil
}

// MustLabels is like NewLabels but panics on error. Intended for tests and
// package-level fixtures.
func MustLabels(labels ...types.Label) *Labels {
	idx, err := NewLabels(labels, nil)
	if err != nil {
		panic(err)
	}
	return idx
}

// Len implements Index.
func (x *Labels) Len() int { return len(x.labels) }

// Position implements Index.
func (x *Labels) Position(label types.Label) (int, bool) {
	if types.ValidateLabel(label) != nil {
		return 0, false
	}
	pos, ok := x.positions[types.NormalizeLabel(label)]
	return pos, ok
}

// Label implements Index.
func (x *Labels) Label(pos int) types.Label { return x.labels[pos] }

// Labels implements Index.
func (x *Labels) Labels() []types.Label {
	out := make([]types.Label, len(x.labels))
	copy(out, x.labels)
	return out
}

// Kind implements Index.
func (x *Labels) Kind() Kind { return KindLabels }

// Name implements Index.
func (x *Labels) Name() types.Label { return x.name }

// Stats implements Index.
func (x *Labels) Stats() Stats {
	return Stats{
		Count:       len(x.labels),
		BytesApprox: len(x.labels) * (estimatedBytesPerMapEntry + estimatedBytesPerLabel),
		Impl:        "Labels",
	}
}

// GrowLabels is the grow-only form of Labels. It is used to accumulate the
// labels of a tree node while scanning rows, and is frozen into a Labels once
// the node is complete.
//
// NOT thread-safe.
type GrowLabels struct {
	labelsBase
}

// labelsBase lets GrowLabels embed Labels without a field named Labels
// shadowing the Labels method.
type labelsBase = Labels

// NewGrowLabels creates an empty GrowLabels with a capacity hint.
func NewGrowLabels(capacity int, name types.Label) *GrowLabels {
	if capacity < 0 {
		capacity = 0
	}
	return &GrowLabels{labelsBase: Labels{
		labels:    make([]types.Label, 0, capacity),
		positions: make(map[types.Label]int, capacity),
		name:      name,
	}}
}

// Append implements Growable.
func (g *GrowLabels) Append(label types.Label) error {
	if err := types.ValidateLabel(label); err != nil {
		return err
	}
	label = types.NormalizeLabel(label)
	if _, ok := g.positions[label]; ok {
		return types.Construction(types.ErrDuplicateLabel, "label %s", types.FormatLabel(label))
	}
	g.positions[label] = len(g.labels)
	g.labels = append(g.labels, label)
	return nil
}

// Last returns the most recently appended label, or false when empty.
func (g *GrowLabels) Last() (types.Label, bool) {
	if len(g.labels) == 0 {
		return nil, false
	}
	return g.labels[len(g.labels)-1], true
}

// Freeze returns the accumulated labels as an immutable Labels. The
// GrowLabels must not be appended to afterwards.
func (g *GrowLabels) Freeze() *Labels {
	return &Labels{labels: g.labels, positions: g.positions, name: g.name}
}

var (
	_ Index    = (*Labels)(nil)
	_ Growable = (*GrowLabels)(nil)
)
