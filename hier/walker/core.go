// Package walker provides iterative traversals of a hierarchical index tree.
//
// All walks are depth-first and pre-order, using an explicit stack instead of
// recursion, so very wide or deep trees do not grow the goroutine stack.
// On top of the core walk the package offers:
//   - Flatten: materialize every compound label in tree order
//   - LabelWidths: the labels of one depth with the number of positions each spans
//   - Validate: structural checks for hand-assembled trees
//   - Count: per-depth node and label statistics
package walker

import (
	"github.com/joshuapare/hierkit/hier/level"
	"github.com/joshuapare/hierkit/pkg/types"
)

const (
	// initialStackCapacity is the pre-allocated capacity for the traversal
	// stack. Hierarchies rarely exceed a handful of depths.
	initialStackCapacity = 16
)

// StackEntry is one frame of the traversal stack.
type StackEntry struct {
	node  *level.Level
	depth int
	next  int // next target to descend into
}

// NodeRef describes a node passed to a visitor.
type NodeRef struct {
	Node  *level.Level
	Depth int // 0 for the root

	// Prefix holds the labels leading from the root to Node. It is only
	// valid for the duration of the callback.
	Prefix []types.Label
}

// WalkerCore holds the reusable traversal state.
//
// NOT thread-safe; use one WalkerCore per goroutine.
type WalkerCore struct {
	stack  []StackEntry
	prefix []types.Label
}

// NewWalkerCore creates a walker with a pre-allocated stack.
func NewWalkerCore() *WalkerCore {
	return &WalkerCore{
		stack:  make([]StackEntry, 0, initialStackCapacity),
		prefix: make([]types.Label, 0, initialStackCapacity),
	}
}

// Walk visits every node of the tree rooted at root in depth-first pre-order.
// If the visitor returns an error, traversal stops and the error is returned.
func (wc *WalkerCore) Walk(root *level.Level, visit func(NodeRef) error) error {
	wc.stack = wc.stack[:0]
	wc.prefix = wc.prefix[:0]
	if root == nil {
		return nil
	}

	if err := visit(NodeRef{Node: root, Depth: 0, Prefix: wc.prefix}); err != nil {
		return err
	}
	wc.stack = append(wc.stack, StackEntry{node: root})

	for len(wc.stack) > 0 {
		top := &wc.stack[len(wc.stack)-1]
		targets := top.node.Targets()
		if top.next >= len(targets) {
			wc.stack = wc.stack[:len(wc.stack)-1]
			continue
		}

		i := top.next
		top.next++
		child := targets[i]
		depth := top.depth + 1

		wc.prefix = append(wc.prefix[:top.depth], top.node.Index().Label(i))
		if err := visit(NodeRef{Node: child, Depth: depth, Prefix: wc.prefix}); err != nil {
			return err
		}
		// top may be invalidated by the append below.
		wc.stack = append(wc.stack, StackEntry{node: child, depth: depth})
	}
	return nil
}

// Flatten returns every compound label of the tree in position order.
func Flatten(root *level.Level) [][]types.Label {
	if root == nil {
		return nil
	}
	rows := make([][]types.Label, 0, root.Len())
	wc := NewWalkerCore()
	_ = wc.Walk(root, func(ref NodeRef) error {
		if !ref.Node.IsLeaf() {
			return nil
		}
		idx := ref.Node.Index()
		for i := 0; i < idx.Len(); i++ {
			row := make([]types.Label, len(ref.Prefix)+1)
			copy(row, ref.Prefix)
			row[len(ref.Prefix)] = idx.Label(i)
			rows = append(rows, row)
		}
		return nil
	})
	return rows
}

// Width pairs a label with the number of flattened positions it spans.
type Width struct {
	Label types.Label
	Width int
}

// LabelWidths returns, in tree order, each label occurring at depth together
// with the number of positions beneath it. A label repeated under different
// parents appears once per parent.
func LabelWidths(root *level.Level, depth int) ([]Width, error) {
	if root == nil {
		return nil, nil
	}
	if n := root.Depth(); depth < 0 || depth >= n {
		return nil, types.Usage(types.ErrDepthRange, "depth %d not in [0, %d)", depth, n)
	}
	var out []Width
	wc := NewWalkerCore()
	err := wc.Walk(root, func(ref NodeRef) error {
		if ref.Depth != depth {
			return nil
		}
		idx := ref.Node.Index()
		targets := ref.Node.Targets()
		for i := 0; i < idx.Len(); i++ {
			w := 1
			if targets != nil {
				w = targets[i].Len()
			}
			out = append(out, Width{Label: idx.Label(i), Width: w})
		}
		return nil
	})
	return out, err
}
