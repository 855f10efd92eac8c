package level

import (
	"github.com/joshuapare/hierkit/hier/index"
	"github.com/joshuapare/hierkit/hier/tree"
	"github.com/joshuapare/hierkit/pkg/types"
)

// FromTree builds a tree from a nested ordered mapping. Keys become the labels
// of each node in insertion order; Leaf values become final-depth nodes. All
// leaves must be at the same depth. ctors is optional, as in BuildOptions.
func FromTree(t *tree.Tree, ctors []index.Constructor) (*Level, int, error) {
	if t == nil || t.Len() == 0 {
		return nil, 0, types.Construction(types.ErrZeroDepth, "empty tree")
	}
	root, err := fromTree(t, 0, 0, ctors)
	if err != nil {
		return nil, 0, err
	}
	depth, ok, err := root.UniformDepth()
	if err != nil {
		return nil, 0, err
	}
	if !ok {
		return nil, 0, types.Construction(types.ErrZeroDepth, "tree has no leaves")
	}
	if ctors != nil && len(ctors) != depth {
		return nil, 0, types.Construction(types.ErrDepthMismatch,
			"%d index constructors for depth %d", len(ctors), depth)
	}
	return root, depth, nil
}

func fromTree(t *tree.Tree, d, offset int, ctors []index.Constructor) (*Level, error) {
	g := index.NewGrowLabels(t.Len(), nil)
	targets := make([]*Level, 0, t.Len())
	pos := offset
	err := t.Each(func(label types.Label, value any) error {
		if err := g.Append(label); err != nil {
			return err
		}
		var child *Level
		switch v := value.(type) {
		case *tree.Tree:
			var err error
			if child, err = fromTree(v, d+1, pos, ctors); err != nil {
				return err
			}
		case tree.Leaf:
			leaf := index.NewGrowLabels(len(v), nil)
			for _, l := range v {
				if err := leaf.Append(l); err != nil {
					return err
				}
			}
			idx, err := construct(leaf, d+1, ctors)
			if err != nil {
				return err
			}
			child = NewLeaf(idx, pos)
		}
		targets = append(targets, child)
		pos += child.length
		return nil
	})
	if err != nil {
		return nil, err
	}
	idx, err := construct(g, d, ctors)
	if err != nil {
		return nil, err
	}
	return New(idx, targets, offset)
}
