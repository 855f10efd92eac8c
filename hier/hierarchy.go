package hier

import (
	"fmt"
	"iter"
	"sync"

	"github.com/joshuapare/hierkit/hier/hloc"
	"github.com/joshuapare/hierkit/hier/index"
	"github.com/joshuapare/hierkit/hier/level"
	"github.com/joshuapare/hierkit/hier/walker"
	"github.com/joshuapare/hierkit/pkg/types"
)

// IndexHierarchy is an immutable hierarchical index. Every compound label
// maps to one flattened position in 0..Len()-1, in tree order.
//
// An IndexHierarchy is safe for concurrent use by multiple goroutines; the
// flattened label cache is built once on first use.
type IndexHierarchy struct {
	root  *level.Level
	depth int
	name  any

	flatOnce sync.Once
	flat     [][]types.Label
}

// Stats summarizes the shape of a hierarchy.
type Stats = walker.TreeStats

func newIndexHierarchy(root *level.Level, depth int, name any) *IndexHierarchy {
	return &IndexHierarchy{root: root, depth: depth, name: name}
}

// Len returns the number of compound labels.
func (h *IndexHierarchy) Len() int { return h.root.Len() }

// Depth returns the number of labels in each compound label.
func (h *IndexHierarchy) Depth() int { return h.depth }

// Name returns the hierarchy name, which may be nil.
func (h *IndexHierarchy) Name() any { return h.name }

// Root returns the root of the tree. The tree is immutable and shared.
func (h *IndexHierarchy) Root() *level.Level { return h.root }

// rows returns the cached flattened labels. Callers must not modify them.
func (h *IndexHierarchy) rows() [][]types.Label {
	h.flatOnce.Do(func() {
		h.flat = walker.Flatten(h.root)
	})
	return h.flat
}

// Flat returns a copy of every compound label in position order.
func (h *IndexHierarchy) Flat() [][]types.Label {
	rows := h.rows()
	out := make([][]types.Label, len(rows))
	for i, r := range rows {
		out[i] = types.CloneRow(r)
	}
	return out
}

// LabelAt returns the compound label at pos.
func (h *IndexHierarchy) LabelAt(pos int) ([]types.Label, error) {
	rows := h.rows()
	if pos < 0 || pos >= len(rows) {
		return nil, types.Usage(types.ErrInvalidArgument, "position %d not in [0, %d)", pos, len(rows))
	}
	return types.CloneRow(rows[pos]), nil
}

// All iterates over positions and compound labels in tree order.
func (h *IndexHierarchy) All() iter.Seq2[int, []types.Label] {
	return func(yield func(int, []types.Label) bool) {
		for i, r := range h.rows() {
			if !yield(i, types.CloneRow(r)) {
				return
			}
		}
	}
}

// Reversed iterates over compound labels from last to first.
func (h *IndexHierarchy) Reversed() iter.Seq[[]types.Label] {
	return func(yield func([]types.Label) bool) {
		rows := h.rows()
		for i := len(rows) - 1; i >= 0; i-- {
			if !yield(types.CloneRow(rows[i])) {
				return
			}
		}
	}
}

// LocToILoc resolves a selector to positions. See level.Level.Resolve for
// the result shapes.
func (h *IndexHierarchy) LocToILoc(sel hloc.HLoc) (hloc.ILoc, error) {
	if h.Len() == 0 {
		return resolveEmpty(sel, h.depth)
	}
	return h.root.Resolve(sel)
}

// resolveEmpty resolves against a hierarchy without labels: any concrete
// label fails, a selector of wildcards selects nothing.
func resolveEmpty(sel hloc.HLoc, depth int) (hloc.ILoc, error) {
	if err := sel.Validate(depth); err != nil {
		return hloc.ILoc{}, err
	}
	for d, term := range sel {
		switch v := term.(type) {
		case hloc.List:
			return hloc.ILoc{}, types.NewLookupError(d, v[0])
		case hloc.Span:
			if v.HasStart {
				return hloc.ILoc{}, types.NewLookupError(d, v.Start)
			}
			if v.HasStop {
				return hloc.ILoc{}, types.NewLookupError(d, v.Stop)
			}
		default:
			if term != hloc.All {
				return hloc.ILoc{}, types.NewLookupError(d, term)
			}
		}
	}
	return hloc.RangeOf(0, 0), nil
}

// ILocOf returns the position of one compound label.
func (h *IndexHierarchy) ILocOf(key ...types.Label) (int, error) {
	if len(key) != h.depth {
		return 0, types.Usage(types.ErrBadSelector, "key %s has %d labels for depth %d",
			types.FormatRow(key), len(key), h.depth)
	}
	if h.Len() == 0 {
		return 0, types.NewLookupError(0, key[0])
	}
	return h.root.LeafLocToILoc(key)
}

// LocsToILocs returns the positions of the given compound labels.
func (h *IndexHierarchy) LocsToILocs(keys [][]types.Label) ([]int, error) {
	out := make([]int, 0, len(keys))
	for _, k := range keys {
		pos, err := h.ILocOf(k...)
		if err != nil {
			return nil, err
		}
		out = append(out, pos)
	}
	return out, nil
}

// LocSpan returns the positions from the compound label start through the
// compound label stop, inclusive. A stop that precedes start selects nothing.
func (h *IndexHierarchy) LocSpan(start, stop []types.Label) (hloc.ILoc, error) {
	a, err := h.ILocOf(start...)
	if err != nil {
		return hloc.ILoc{}, err
	}
	b, err := h.ILocOf(stop...)
	if err != nil {
		return hloc.ILoc{}, err
	}
	if b < a {
		return hloc.RangeOf(a, a), nil
	}
	return hloc.RangeOf(a, b+1), nil
}

// LocMask returns the positions whose mask entry is true. The mask must
// have one entry per position.
func (h *IndexHierarchy) LocMask(mask []bool) (hloc.ILoc, error) {
	if len(mask) != h.Len() {
		return hloc.ILoc{}, types.Usage(types.ErrInvalidArgument,
			"mask has %d entries for %d positions", len(mask), h.Len())
	}
	positions := make([]int, 0, len(mask))
	for i, keep := range mask {
		if keep {
			positions = append(positions, i)
		}
	}
	return hloc.PositionsOf(positions), nil
}

// Contains reports whether key is one of the compound labels.
func (h *IndexHierarchy) Contains(key []types.Label) bool {
	if len(key) != h.depth || types.ValidateRow(key) != nil {
		return false
	}
	_, err := h.ILocOf(key...)
	return err == nil
}

// IsIn reports, for every position, whether its compound label is among keys.
func (h *IndexHierarchy) IsIn(keys [][]types.Label) []bool {
	out := make([]bool, h.Len())
	for _, k := range keys {
		if !h.Contains(k) {
			continue
		}
		pos, _ := h.ILocOf(k...)
		out[pos] = true
	}
	return out
}

// Equals reports whether other has the same depth and the same compound
// labels in the same order. Names are not compared.
func (h *IndexHierarchy) Equals(other *IndexHierarchy) bool {
	if other == nil || h.depth != other.depth || h.Len() != other.Len() {
		return false
	}
	a, b := h.rows(), other.rows()
	for i := range a {
		if !types.RowsEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func (h *IndexHierarchy) checkDepth(depth int) error {
	if depth < 0 || depth >= h.depth {
		return types.Usage(types.ErrDepthRange, "depth %d not in [0, %d)", depth, h.depth)
	}
	return nil
}

// ValuesAtDepth returns the label of every position at one depth.
func (h *IndexHierarchy) ValuesAtDepth(depth int) ([]types.Label, error) {
	if err := h.checkDepth(depth); err != nil {
		return nil, err
	}
	rows := h.rows()
	out := make([]types.Label, len(rows))
	for i, r := range rows {
		out[i] = r[depth]
	}
	return out, nil
}

// ValuesAtDepths returns, for every position, the labels at the given depths
// in the given order.
func (h *IndexHierarchy) ValuesAtDepths(depths ...int) ([][]types.Label, error) {
	for _, d := range depths {
		if err := h.checkDepth(d); err != nil {
			return nil, err
		}
	}
	rows := h.rows()
	out := make([][]types.Label, len(rows))
	for i, r := range rows {
		sel := make([]types.Label, len(depths))
		for j, d := range depths {
			sel[j] = r[d]
		}
		out[i] = sel
	}
	return out, nil
}

// LabelWidthsAtDepth returns each label at depth, in tree order, with the
// number of positions it spans.
func (h *IndexHierarchy) LabelWidthsAtDepth(depth int) ([]walker.Width, error) {
	if err := h.checkDepth(depth); err != nil {
		return nil, err
	}
	if h.Len() == 0 {
		return nil, nil
	}
	return walker.LabelWidths(h.root, depth)
}

// IndexKinds returns, for each depth, the distinct index kinds used by the
// nodes at that depth, in order of first appearance.
func (h *IndexHierarchy) IndexKinds() [][]index.Kind {
	out := make([][]index.Kind, h.depth)
	if h.Len() == 0 {
		return out
	}
	wc := walker.NewWalkerCore()
	_ = wc.Walk(h.root, func(ref walker.NodeRef) error {
		if ref.Depth >= h.depth {
			return nil
		}
		k := ref.Node.Index().Kind()
		for _, seen := range out[ref.Depth] {
			if seen == k {
				return nil
			}
		}
		out[ref.Depth] = append(out[ref.Depth], k)
		return nil
	})
	return out
}

// constructors returns an index constructor per depth that reproduces the
// current index kinds when the hierarchy is rebuilt, or nil when every
// depth uses plain labels.
func (h *IndexHierarchy) constructors() []index.Constructor {
	var out []index.Constructor
	for d, kinds := range h.IndexKinds() {
		if len(kinds) != 1 {
			continue
		}
		var ctor index.Constructor
		switch kinds[0] {
		case index.KindDate:
			ctor = index.DatesConstructor
		case index.KindRange:
			ctor = index.RangeConstructor
		default:
			continue
		}
		if out == nil {
			out = make([]index.Constructor, h.depth)
		}
		out[d] = ctor
	}
	return out
}

// Stats returns tree statistics.
func (h *IndexHierarchy) Stats() Stats {
	s := walker.Count(h.root)
	s.Depth = h.depth
	return *s
}

// String implements fmt.Stringer.
func (h *IndexHierarchy) String() string {
	return fmt.Sprintf("IndexHierarchy(depth=%d, len=%d, name=%v)", h.depth, h.Len(), h.name)
}
