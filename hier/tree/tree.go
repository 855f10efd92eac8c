// Package tree provides an insertion-ordered nested mapping used to describe
// a hierarchy by hand: each key maps either to a nested Tree or to a Leaf of
// final-depth labels.
//
// The mapping is ordered by first insertion, which becomes the order of the
// hierarchy built from it. Trees may be decoded from YAML with FromYAML.
package tree

import (
	"github.com/cevaris/ordered_map"

	"github.com/joshuapare/hierkit/pkg/types"
)

// Leaf holds the labels of a final-depth node, in order.
type Leaf []types.Label

// Tree is an ordered mapping from labels to nested Trees or Leaves.
//
// NOT thread-safe.
type Tree struct {
	m *ordered_map.OrderedMap
}

// New returns an empty Tree.
func New() *Tree {
	return &Tree{m: ordered_map.NewOrderedMap()}
}

// Set maps label to value, which must be a *Tree or a Leaf. Setting an
// existing label replaces its value in place.
func (t *Tree) Set(label types.Label, value any) error {
	if err := types.ValidateLabel(label); err != nil {
		return err
	}
	switch v := value.(type) {
	case *Tree:
		if v == nil {
			return types.Usage(types.ErrInvalidArgument, "nil subtree for %s", types.FormatLabel(label))
		}
	case Leaf:
		if err := types.ValidateRow(v); err != nil {
			return err
		}
	default:
		return types.Usage(types.ErrInvalidArgument,
			"value for %s is %T, want *tree.Tree or tree.Leaf", types.FormatLabel(label), value)
	}
	t.m.Set(types.NormalizeLabel(label), value)
	return nil
}

// Branch returns the subtree at label, creating it when absent.
func (t *Tree) Branch(label types.Label) (*Tree, error) {
	if v, ok := t.m.Get(types.NormalizeLabel(label)); ok {
		sub, ok := v.(*Tree)
		if !ok {
			return nil, types.Usage(types.ErrInvalidArgument,
				"%s holds a leaf", types.FormatLabel(label))
		}
		return sub, nil
	}
	sub := New()
	if err := t.Set(label, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// Get returns the value at label.
func (t *Tree) Get(label types.Label) (any, bool) {
	if types.ValidateLabel(label) != nil {
		return nil, false
	}
	return t.m.Get(types.NormalizeLabel(label))
}

// Len returns the number of keys.
func (t *Tree) Len() int { return t.m.Len() }

// Keys returns the keys in insertion order.
func (t *Tree) Keys() []types.Label {
	keys := make([]types.Label, 0, t.m.Len())
	iter := t.m.IterFunc()
	for kv, ok := iter(); ok; kv, ok = iter() {
		keys = append(keys, kv.Key)
	}
	return keys
}

// Each calls fn for every key in order, stopping at the first error.
func (t *Tree) Each(fn func(label types.Label, value any) error) error {
	iter := t.m.IterFunc()
	for kv, ok := iter(); ok; kv, ok = iter() {
		if err := fn(kv.Key, kv.Value); err != nil {
			return err
		}
	}
	return nil
}

// Must builds a Tree from alternating label/value pairs and panics on error.
// Intended for tests and fixtures:
//
//	tree.Must("I", tree.Leaf{1, 2}, "II", tree.Leaf{1})
func Must(pairs ...any) *Tree {
	if len(pairs)%2 != 0 {
		panic("tree.Must: odd number of arguments")
	}
	t := New()
	for i := 0; i < len(pairs); i += 2 {
		if err := t.Set(pairs[i], pairs[i+1]); err != nil {
			panic(err)
		}
	}
	return t
}
