package hier

import (
	"io"

	"github.com/joshuapare/hierkit/hier/index"
	"github.com/joshuapare/hierkit/hier/level"
	"github.com/joshuapare/hierkit/hier/tree"
	"github.com/joshuapare/hierkit/hier/walker"
	"github.com/joshuapare/hierkit/internal/labeltext"
	"github.com/joshuapare/hierkit/internal/logger"
	"github.com/joshuapare/hierkit/pkg/types"
)

// FromLabels builds a hierarchy from compound labels, one row per position.
//
// Rows sharing a prefix must be contiguous unless WithReorder is given.
// Duplicate rows, rows of differing length and non-comparable labels are
// construction errors. An empty input builds an empty hierarchy of depth
// WithDepth (default 2).
func FromLabels(rows [][]types.Label, opts ...Option) (*IndexHierarchy, error) {
	return fromLabels(rows, resolveOptions(opts))
}

func fromLabels(rows [][]types.Label, o Options) (*IndexHierarchy, error) {
	root, depth, err := level.FromLabels(rows, o.build())
	if err != nil {
		return nil, err
	}
	logger.Debug("hierarchy built", "rows", len(rows), "depth", depth, "reorder", o.ReorderForHierarchy)
	return newIndexHierarchy(root, depth, o.Name), nil
}

// FromLabelsDelimited builds a hierarchy from rows written as
// whitespace-delimited literals, such as "'I' 'A' 0" or "['I' 'A' 0]".
func FromLabelsDelimited(lines []string, opts ...Option) (*IndexHierarchy, error) {
	rows := make([][]types.Label, 0, len(lines))
	for _, line := range lines {
		row, err := labeltext.ParseRow(line)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return FromLabels(rows, opts...)
}

// FromReader builds a hierarchy from a delimited label file, one row per
// line. UTF-8 and UTF-16 input with a byte-order mark are accepted; blank
// and comment lines are skipped.
func FromReader(r io.Reader, opts ...Option) (*IndexHierarchy, error) {
	rows, err := labeltext.ReadRows(labeltext.NewReader(r))
	if err != nil {
		return nil, err
	}
	return FromLabels(rows, opts...)
}

// FromTree builds a hierarchy from a nested ordered mapping.
func FromTree(t *tree.Tree, opts ...Option) (*IndexHierarchy, error) {
	o := resolveOptions(opts)
	root, depth, err := level.FromTree(t, o.IndexConstructors)
	if err != nil {
		return nil, err
	}
	return newIndexHierarchy(root, depth, o.Name), nil
}

// FromYAML builds a hierarchy from a YAML mapping document; see
// tree.FromYAML.
func FromYAML(data []byte, opts ...Option) (*IndexHierarchy, error) {
	t, err := tree.FromYAML(data)
	if err != nil {
		return nil, err
	}
	return FromTree(t, opts...)
}

// FromProduct builds the cartesian product of two or more indices without
// materializing its labels. When every input is named and no name is given,
// the input names name the depths.
func FromProduct(indices []index.Index, opts ...Option) (*IndexHierarchy, error) {
	o := resolveOptions(opts)
	if n := len(o.IndexConstructors); n > 0 && n != len(indices) {
		return nil, types.Construction(types.ErrDepthMismatch,
			"%d index constructors for depth %d", n, len(indices))
	}
	indices, err := applyConstructors(indices, o.IndexConstructors)
	if err != nil {
		return nil, err
	}
	root, err := level.FromProduct(indices)
	if err != nil {
		return nil, err
	}
	name := o.Name
	if name == nil {
		name = indexNames(indices)
	}
	return newIndexHierarchy(root, len(indices), name), nil
}

// FromProductLabels is FromProduct over label lists, each wrapped in a
// default index.
func FromProductLabels(lists [][]types.Label, opts ...Option) (*IndexHierarchy, error) {
	indices := make([]index.Index, len(lists))
	for i, l := range lists {
		idx, err := index.Default(l, nil)
		if err != nil {
			return nil, err
		}
		indices[i] = idx
	}
	return FromProduct(indices, opts...)
}

// FromIndexItems builds a depth-2 hierarchy whose outer labels are keys and
// whose inner labels under each key come from the paired index. Indices may
// be of different kinds. With IndexConstructors, the second constructor
// rebuilds every inner index; outer keys always use a Labels index.
func FromIndexItems(keys []types.Label, indices []index.Index, opts ...Option) (*IndexHierarchy, error) {
	o := resolveOptions(opts)
	if len(o.IndexConstructors) > 0 {
		if len(o.IndexConstructors) != 2 {
			return nil, types.Construction(types.ErrDepthMismatch,
				"%d index constructors for depth 2", len(o.IndexConstructors))
		}
		var err error
		if indices, err = applyConstructors(indices, []index.Constructor{o.IndexConstructors[1]}); err != nil {
			return nil, err
		}
	}
	root, err := level.FromIndexItems(keys, indices)
	if err != nil {
		return nil, err
	}
	return newIndexHierarchy(root, 2, o.Name), nil
}

// FromLevel wraps a tree assembled by hand, after checking its offsets,
// targets and depth uniformity. Constructor and reorder options are ignored.
func FromLevel(root *level.Level, opts ...Option) (*IndexHierarchy, error) {
	o := resolveOptions(opts)
	depth, err := walker.Validate(root)
	if err != nil {
		return nil, err
	}
	return newIndexHierarchy(root, depth, o.Name), nil
}

// applyConstructors rebuilds indices through ctors. A single constructor
// applies to every index; otherwise there must be one per index.
func applyConstructors(indices []index.Index, ctors []index.Constructor) ([]index.Index, error) {
	if len(ctors) == 0 {
		return indices, nil
	}
	if len(ctors) != 1 && len(ctors) != len(indices) {
		return nil, types.Construction(types.ErrDepthMismatch,
			"%d index constructors for %d indices", len(ctors), len(indices))
	}
	out := make([]index.Index, len(indices))
	for i, idx := range indices {
		ctor := ctors[0]
		if len(ctors) > 1 {
			ctor = ctors[i]
		}
		if ctor == nil {
			out[i] = idx
			continue
		}
		built, err := ctor(idx.Labels(), idx.Name())
		if err != nil {
			return nil, err
		}
		out[i] = built
	}
	return out, nil
}

func indexNames(indices []index.Index) any {
	names := make([]types.Label, len(indices))
	for i, idx := range indices {
		if idx.Name() == nil {
			return nil
		}
		names[i] = idx.Name()
	}
	return names
}
