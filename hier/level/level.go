package level

import (
	"iter"
	"sort"

	"github.com/joshuapare/hierkit/hier/index"
	"github.com/joshuapare/hierkit/pkg/types"
)

// Level is one node of a hierarchical index tree.
//
// A leaf Level maps its labels directly to flattened positions
// offset..offset+Len()-1. A non-leaf Level holds one target per label; the
// targets occupy ascending, disjoint and contiguous position ranges starting
// at the node's own offset.
//
// Levels are immutable once built; the index of a node may be shared with
// other nodes.
type Level struct {
	index   index.Index
	targets []*Level // nil for leaves
	offset  int
	length  int // flattened length, cached
}

// NewLeaf returns a leaf Level over idx whose first label sits at offset.
func NewLeaf(idx index.Index, offset int) *Level {
	return &Level{index: idx, offset: offset, length: idx.Len()}
}

// New returns a non-leaf Level. targets must hold one Level per label of idx.
// Offsets of the targets are taken as given; use walker.Validate to check a
// hand-assembled tree.
func New(idx index.Index, targets []*Level, offset int) (*Level, error) {
	if targets == nil {
		return NewLeaf(idx, offset), nil
	}
	if len(targets) != idx.Len() {
		return nil, types.Construction(types.ErrInvalidTree,
			"%d targets for %d labels", len(targets), idx.Len())
	}
	n := 0
	for _, t := range targets {
		if t == nil {
			return nil, types.Construction(types.ErrInvalidTree, "nil target")
		}
		n += t.length
	}
	return &Level{index: idx, targets: targets, offset: offset, length: n}, nil
}

// Len returns the number of flattened positions under this node.
func (l *Level) Len() int { return l.length }

// Index returns the node's single-level index.
func (l *Level) Index() index.Index { return l.index }

// Targets returns the child nodes, one per label, or nil for a leaf. The
// returned slice must not be modified.
func (l *Level) Targets() []*Level { return l.targets }

// Offset returns the flattened position of the node's first element.
func (l *Level) Offset() int { return l.offset }

// IsLeaf reports whether the node is at the final depth.
func (l *Level) IsLeaf() bool { return l.targets == nil }

// Depth returns the number of levels from this node to its leaves, following
// the first path that reaches a leaf. It is 1 for a leaf. Uniform depth is
// not checked; see Depths.
func (l *Level) Depth() int {
	d := 1
	for node := l; !node.IsLeaf(); d++ {
		next := firstNonEmpty(node.targets)
		if next == nil {
			return d + 1
		}
		node = next
	}
	return d
}

func firstNonEmpty(targets []*Level) *Level {
	for _, t := range targets {
		if t.IsLeaf() || len(t.targets) > 0 {
			return t
		}
	}
	if len(targets) > 0 {
		return targets[0]
	}
	return nil
}

// Depths yields, for every leaf node reachable from l in order, the number of
// levels from l down to and including that leaf. A tree is depth-uniform when
// every yielded value is equal.
func (l *Level) Depths() iter.Seq[int] {
	return func(yield func(int) bool) {
		l.depths(1, yield)
	}
}

func (l *Level) depths(d int, yield func(int) bool) bool {
	if l.IsLeaf() {
		return yield(d)
	}
	for _, t := range l.targets {
		if !t.depths(d+1, yield) {
			return false
		}
	}
	return true
}

// UniformDepth returns the common depth of all leaves, or an ErrRaggedTree
// construction error. A tree without leaves reports ok == false.
func (l *Level) UniformDepth() (depth int, ok bool, err error) {
	for d := range l.Depths() {
		if !ok {
			depth, ok = d, true
			continue
		}
		if d != depth {
			return 0, false, types.Construction(types.ErrRaggedTree,
				"leaves at depth %d and %d", depth, d)
		}
	}
	return depth, ok, nil
}

// LeafLocToILoc resolves a fully specified compound key, one label per depth,
// to its flattened position.
func (l *Level) LeafLocToILoc(key []types.Label) (int, error) {
	node := l
	for d, label := range key {
		pos, err := index.Lookup(node.index, d, label)
		if err != nil {
			return 0, err
		}
		if node.IsLeaf() {
			if d != len(key)-1 {
				return 0, types.Usage(types.ErrBadSelector,
					"key %s is deeper than the hierarchy", types.FormatRow(key))
			}
			return node.offset + pos, nil
		}
		node = node.targets[pos]
	}
	return 0, types.Usage(types.ErrBadSelector,
		"key %s does not reach the final depth", types.FormatRow(key))
}

// LabelsAt returns the compound label at flattened position pos.
func (l *Level) LabelsAt(pos int) ([]types.Label, error) {
	if pos < l.offset || pos >= l.offset+l.length {
		return nil, types.Usage(types.ErrInvalidArgument,
			"position %d outside [%d, %d)", pos, l.offset, l.offset+l.length)
	}
	var row []types.Label
	node := l
	for !node.IsLeaf() {
		targets := node.targets
		i := sort.Search(len(targets), func(i int) bool {
			return targets[i].offset+targets[i].length > pos
		})
		row = append(row, node.index.Label(i))
		node = targets[i]
	}
	return append(row, node.index.Label(pos-node.offset)), nil
}

// ExtractILocByIndex maps flattened positions back to compound labels.
func (l *Level) ExtractILocByIndex(positions []int) ([][]types.Label, error) {
	rows := make([][]types.Label, 0, len(positions))
	for _, p := range positions {
		row, err := l.LabelsAt(p)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Copy returns a structural copy of the subtree rooted at l, shifted so that
// its first element sits at offset. Indices are shared, not copied.
func (l *Level) Copy(offset int) *Level {
	if l.IsLeaf() {
		return &Level{index: l.index, offset: offset, length: l.length}
	}
	targets := make([]*Level, len(l.targets))
	shift := offset - l.offset
	for i, t := range l.targets {
		targets[i] = t.Copy(t.offset + shift)
	}
	return &Level{index: l.index, targets: targets, offset: offset, length: l.length}
}

// Wrap returns a new root holding the single label, whose only target is l.
// Offsets are unaffected, so no part of l is copied.
func (l *Level) Wrap(label types.Label) (*Level, error) {
	idx, err := index.NewLabels([]types.Label{label}, nil)
	if err != nil {
		return nil, err
	}
	return &Level{index: idx, targets: []*Level{l}, offset: l.offset, length: l.length}, nil
}
