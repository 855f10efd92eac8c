package walker

import (
	"github.com/joshuapare/hierkit/hier/level"
	"github.com/joshuapare/hierkit/pkg/types"
)

// Validate checks the structural invariants of a tree, typically one
// assembled by hand with level.New:
//   - the root starts at position 0
//   - every non-leaf has one target per label
//   - sibling targets are contiguous, starting at their parent's offset
//   - every node's length is the sum of its targets' lengths
//   - all leaves are at the same depth
//
// It returns the depth of the tree.
func Validate(root *level.Level) (int, error) {
	if root == nil {
		return 0, types.Construction(types.ErrInvalidTree, "nil root")
	}
	if root.Offset() != 0 {
		return 0, types.Construction(types.ErrInvalidTree, "root offset is %d, expected 0", root.Offset())
	}

	leafDepth := -1
	wc := NewWalkerCore()
	err := wc.Walk(root, func(ref NodeRef) error {
		n := ref.Node
		idx := n.Index()
		if idx == nil {
			return types.Construction(types.ErrInvalidTree, "node at %s has no index", types.FormatRow(ref.Prefix))
		}

		if n.IsLeaf() {
			if n.Len() != idx.Len() {
				return types.Construction(types.ErrInvalidTree,
					"leaf at %s has length %d for %d labels", types.FormatRow(ref.Prefix), n.Len(), idx.Len())
			}
			switch {
			case leafDepth < 0:
				leafDepth = ref.Depth
			case leafDepth != ref.Depth:
				return types.Construction(types.ErrRaggedTree,
					"leaf at %s is at depth %d, expected %d", types.FormatRow(ref.Prefix), ref.Depth, leafDepth)
			}
			return nil
		}

		targets := n.Targets()
		if len(targets) != idx.Len() {
			return types.Construction(types.ErrInvalidTree,
				"node at %s has %d targets for %d labels", types.FormatRow(ref.Prefix), len(targets), idx.Len())
		}
		pos := n.Offset()
		for i, t := range targets {
			if t.Offset() != pos {
				return types.Construction(types.ErrInvalidTree,
					"target %s under %s starts at %d, expected %d",
					types.FormatLabel(idx.Label(i)), types.FormatRow(ref.Prefix), t.Offset(), pos)
			}
			pos += t.Len()
		}
		if pos-n.Offset() != n.Len() {
			return types.Construction(types.ErrInvalidTree,
				"node at %s has length %d, targets sum to %d", types.FormatRow(ref.Prefix), n.Len(), pos-n.Offset())
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if leafDepth < 0 {
		return 0, types.Construction(types.ErrZeroDepth, "tree has no leaves")
	}
	return leafDepth + 1, nil
}
