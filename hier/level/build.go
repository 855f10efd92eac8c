package level

import (
	"fmt"

	"github.com/joshuapare/hierkit/hier/index"
	"github.com/joshuapare/hierkit/pkg/types"
)

// BuildOptions configures FromLabels.
type BuildOptions struct {
	// Depth is the expected depth. Zero takes the depth of the first row;
	// it is required to build an empty hierarchy deeper than 2.
	Depth int

	// Reorder groups rows by successive prefixes, in order of first
	// appearance, before building. Rows otherwise must already be grouped.
	Reorder bool

	// Continuation, when HasContinuation is set, is a label meaning "same as
	// the previous row at this depth". It may not appear in the first row and
	// cannot be combined with Reorder.
	Continuation    types.Label
	HasContinuation bool

	// Constructors builds the index of each depth. Nil or missing entries
	// use index.Default. When set, its length must equal the depth.
	Constructors []index.Constructor
}

// DefaultEmptyDepth is the depth of an empty hierarchy built without a depth
// hint or constructors.
const DefaultEmptyDepth = 2

// builder accumulates the labels of one node while rows are scanned.
type builder struct {
	labels   *index.GrowLabels
	children []*builder
}

func newBuilder() *builder {
	return &builder{labels: index.NewGrowLabels(0, nil)}
}

// FromLabels builds a tree from compound labels in a single pass. It returns
// the root and the depth.
//
// Rows sharing a prefix must be contiguous: a label that reappears at some
// depth after a different label was seen under the same parent is a
// ErrNotContiguous construction error. A row repeated in full is
// ErrDuplicateLabel; a row of the wrong length is ErrDepthMismatch.
func FromLabels(rows [][]types.Label, opts BuildOptions) (*Level, int, error) {
	if opts.Reorder && opts.HasContinuation {
		return nil, 0, types.Usage(types.ErrInvalidArgument,
			"continuation token cannot be combined with reorder")
	}

	depth := opts.Depth
	if depth == 0 && len(rows) > 0 {
		depth = len(rows[0])
	}
	if depth == 0 && len(opts.Constructors) > 0 {
		depth = len(opts.Constructors)
	}
	if depth == 0 && len(rows) == 0 {
		depth = DefaultEmptyDepth
	}
	if depth <= 0 {
		return nil, 0, types.Construction(types.ErrZeroDepth, "rows have no labels")
	}
	if opts.Constructors != nil && len(opts.Constructors) != depth {
		return nil, 0, types.Construction(types.ErrDepthMismatch,
			"%d index constructors for depth %d", len(opts.Constructors), depth)
	}

	rows, err := normalizeRows(rows, depth, opts)
	if err != nil {
		return nil, 0, err
	}
	if opts.Reorder {
		rows = ReorderForHierarchy(rows)
	}

	root := newBuilder()
	for i, row := range rows {
		if err := root.add(row, 0); err != nil {
			return nil, 0, &types.Error{
				Kind:  types.ErrKindConstruction,
				Msg:   fmt.Sprintf("row %d %s", i, types.FormatRow(row)),
				Depth: -1,
				Err:   err,
			}
		}
	}

	lvl, err := root.finalize(0, depth, 0, opts.Constructors)
	if err != nil {
		return nil, 0, err
	}
	return lvl, depth, nil
}

// normalizeRows checks row lengths and labels, and substitutes continuation
// tokens. The input is never modified.
func normalizeRows(rows [][]types.Label, depth int, opts BuildOptions) ([][]types.Label, error) {
	out := make([][]types.Label, len(rows))
	for i, row := range rows {
		if len(row) != depth {
			return nil, types.Construction(types.ErrDepthMismatch,
				"row %d has %d labels, expected %d", i, len(row), depth)
		}
		if err := types.ValidateRow(row); err != nil {
			return nil, err
		}
		if !opts.HasContinuation {
			out[i] = row
			continue
		}
		r := types.CloneRow(row)
		for d, label := range r {
			if !types.LabelsEqual(label, opts.Continuation) {
				continue
			}
			if i == 0 {
				return nil, types.Construction(types.ErrInvalidTree,
					"continuation token in first row at depth %d", d)
			}
			r[d] = out[i-1][d]
		}
		out[i] = r
	}
	return out, nil
}

func (b *builder) add(row []types.Label, d int) error {
	label := row[d]
	if d == len(row)-1 {
		return b.labels.Append(label)
	}
	if last, ok := b.labels.Last(); ok && types.LabelsEqual(last, label) {
		return b.children[len(b.children)-1].add(row, d+1)
	}
	if _, ok := b.labels.Position(label); ok {
		if b.has(row, d) {
			return types.Construction(types.ErrDuplicateLabel,
				"row repeats at depth %d", d)
		}
		return types.Construction(types.ErrNotContiguous,
			"label %s at depth %d is not contiguous", types.FormatLabel(label), d)
	}
	if err := b.labels.Append(label); err != nil {
		return err
	}
	child := newBuilder()
	b.children = append(b.children, child)
	return child.add(row, d+1)
}

// has reports whether row[d:] was already added beneath b.
func (b *builder) has(row []types.Label, d int) bool {
	pos, ok := b.labels.Position(row[d])
	if !ok {
		return false
	}
	if d == len(row)-1 {
		return true
	}
	return b.children[pos].has(row, d+1)
}

func (b *builder) finalize(d, depth, offset int, ctors []index.Constructor) (*Level, error) {
	idx, err := construct(b.labels, d, ctors)
	if err != nil {
		return nil, err
	}
	if d == depth-1 {
		return NewLeaf(idx, offset), nil
	}
	targets := make([]*Level, len(b.children))
	pos := offset
	for i, c := range b.children {
		t, err := c.finalize(d+1, depth, pos, ctors)
		if err != nil {
			return nil, err
		}
		targets[i] = t
		pos += t.length
	}
	if len(targets) == 0 {
		// Empty hierarchy: a leaf root stands in for every depth.
		return NewLeaf(idx, offset), nil
	}
	return New(idx, targets, offset)
}

// construct turns accumulated labels into the index for depth d.
func construct(g *index.GrowLabels, d int, ctors []index.Constructor) (index.Index, error) {
	var ctor index.Constructor
	if d < len(ctors) {
		ctor = ctors[d]
	}
	if ctor == nil {
		return g.Freeze(), nil
	}
	labels := g.Labels()
	idx, err := ctor(labels, nil)
	if err != nil {
		return nil, err
	}
	if idx.Len() != len(labels) {
		return nil, types.Construction(types.ErrInvalidTree,
			"constructor for depth %d returned %d labels, expected %d", d, idx.Len(), len(labels))
	}
	return idx, nil
}

// FromIndexItems builds a depth-2 tree from outer labels paired with one
// pre-built index each.
func FromIndexItems(keys []types.Label, indices []index.Index) (*Level, error) {
	if len(keys) != len(indices) {
		return nil, types.Usage(types.ErrInvalidArgument,
			"%d keys for %d indices", len(keys), len(indices))
	}
	outer, err := index.NewLabels(keys, nil)
	if err != nil {
		return nil, err
	}
	targets := make([]*Level, len(indices))
	pos := 0
	for i, idx := range indices {
		targets[i] = NewLeaf(idx, pos)
		pos += idx.Len()
	}
	if len(targets) == 0 {
		return NewLeaf(outer, 0), nil
	}
	return New(outer, targets, 0)
}

// FromProduct builds the Cartesian product of two or more indices: every
// target of a node is an identical copy of the subtree built from the
// remaining indices, shifted to its offset.
func FromProduct(indices []index.Index) (*Level, error) {
	if len(indices) < 2 {
		return nil, types.Usage(types.ErrInvalidArgument,
			"product needs at least 2 indices, got %d", len(indices))
	}
	return product(indices, 0)
}

func product(indices []index.Index, offset int) (*Level, error) {
	head := indices[0]
	if len(indices) == 1 {
		return NewLeaf(head, offset), nil
	}
	sub, err := product(indices[1:], 0)
	if err != nil {
		return nil, err
	}
	if head.Len() == 0 {
		return NewLeaf(head, offset), nil
	}
	targets := make([]*Level, head.Len())
	for i := range targets {
		targets[i] = sub.Copy(offset + i*sub.length)
	}
	return New(head, targets, offset)
}
