package hier

import (
	"slices"

	"golang.org/x/text/language"

	"github.com/joshuapare/hierkit/hier/hloc"
	"github.com/joshuapare/hierkit/hier/index"
	"github.com/joshuapare/hierkit/pkg/types"
)

// DefaultHeadCount is the conventional count for Head and Tail.
const DefaultHeadCount = 5

// rebuild builds a new hierarchy of depth from rows, keeping the index kinds
// given by ctors.
func rebuild(rows [][]types.Label, depth int, ctors []index.Constructor, name any, reorder bool) (*IndexHierarchy, error) {
	return fromLabels(rows, Options{
		Name:                name,
		ReorderForHierarchy: reorder,
		IndexConstructors:   ctors,
		Depth:               depth,
	})
}

// Copy returns an independent hierarchy with the same labels and name. The
// immutable tree is shared.
func (h *IndexHierarchy) Copy() *IndexHierarchy {
	return newIndexHierarchy(h.root, h.depth, h.name)
}

// Rename returns a copy with a new name.
func (h *IndexHierarchy) Rename(name any) *IndexHierarchy {
	return newIndexHierarchy(h.root, h.depth, name)
}

// AsType returns a hierarchy whose nodes at the given depths are built by
// ctor. A nil ctor reverts those depths to plain labels. Other depths keep
// their index kinds.
func (h *IndexHierarchy) AsType(depths []int, ctor index.Constructor) (*IndexHierarchy, error) {
	for _, d := range depths {
		if err := h.checkDepth(d); err != nil {
			return nil, err
		}
	}
	ctors := h.constructors()
	if ctors == nil {
		ctors = make([]index.Constructor, h.depth)
	}
	for _, d := range depths {
		ctors[d] = ctor
	}
	return rebuild(h.rows(), h.depth, ctors, h.name, false)
}

// Rehierarch returns a hierarchy whose depth i holds the labels of depth
// order[i]. Rows are regrouped by their new prefixes in order of first
// appearance.
func (h *IndexHierarchy) Rehierarch(order []int) (*IndexHierarchy, error) {
	if len(order) != h.depth {
		return nil, types.Usage(types.ErrBadOrder, "order has %d depths, hierarchy has %d", len(order), h.depth)
	}
	seen := make([]bool, h.depth)
	for _, d := range order {
		if d < 0 || d >= h.depth || seen[d] {
			return nil, types.Usage(types.ErrBadOrder, "order %v", order)
		}
		seen[d] = true
	}

	src := h.rows()
	rows := make([][]types.Label, len(src))
	for i, r := range src {
		p := make([]types.Label, len(order))
		for j, d := range order {
			p[j] = r[d]
		}
		rows[i] = p
	}

	var ctors []index.Constructor
	if old := h.constructors(); old != nil {
		ctors = make([]index.Constructor, len(order))
		for j, d := range order {
			ctors[j] = old[d]
		}
	}

	name := h.name
	if names, ok := perDepthName(h.name, h.depth); ok {
		permuted := make([]types.Label, len(order))
		for j, d := range order {
			permuted[j] = names[d]
		}
		name = permuted
	}
	return rebuild(rows, h.depth, ctors, name, true)
}

// AddLevel returns a hierarchy with a new outermost depth holding only label.
// The existing tree is reused as is.
func (h *IndexHierarchy) AddLevel(label types.Label) (*IndexHierarchy, error) {
	root, err := h.root.Wrap(label)
	if err != nil {
		return nil, err
	}
	return newIndexHierarchy(root, h.depth+1, h.name), nil
}

// DropLevel returns a hierarchy without the labels of one depth. Negative
// depths count from the innermost depth, -1 being the last. Dropping the only
// depth is a usage error; labels that become duplicates are a construction
// error.
func (h *IndexHierarchy) DropLevel(depth int) (*IndexHierarchy, error) {
	if depth < 0 {
		depth += h.depth
	}
	if err := h.checkDepth(depth); err != nil {
		return nil, err
	}
	if h.depth == 1 {
		return nil, types.Usage(types.ErrDepthRange, "cannot drop the only depth")
	}
	keep := make([]int, 0, h.depth-1)
	for d := 0; d < h.depth; d++ {
		if d != depth {
			keep = append(keep, d)
		}
	}
	return h.keepDepths(keep)
}

// DropLevels drops count depths: outer depths when count is positive, inner
// depths when negative. A count of zero or one consuming every depth is a
// usage error.
func (h *IndexHierarchy) DropLevels(count int) (*IndexHierarchy, error) {
	n := count
	if n < 0 {
		n = -n
	}
	if n == 0 || n >= h.depth {
		return nil, types.Usage(types.ErrDepthRange, "cannot drop %d of %d depths", count, h.depth)
	}
	keep := make([]int, 0, h.depth-n)
	if count > 0 {
		for d := n; d < h.depth; d++ {
			keep = append(keep, d)
		}
	} else {
		for d := 0; d < h.depth-n; d++ {
			keep = append(keep, d)
		}
	}
	return h.keepDepths(keep)
}

func (h *IndexHierarchy) keepDepths(keep []int) (*IndexHierarchy, error) {
	rows, err := h.ValuesAtDepths(keep...)
	if err != nil {
		return nil, err
	}
	var ctors []index.Constructor
	if old := h.constructors(); old != nil {
		ctors = make([]index.Constructor, len(keep))
		for j, d := range keep {
			ctors[j] = old[d]
		}
	}
	name := h.name
	if names, ok := perDepthName(h.name, h.depth); ok {
		kept := make([]types.Label, len(keep))
		for j, d := range keep {
			kept[j] = names[d]
		}
		name = kept
	}
	return rebuild(rows, len(keep), ctors, name, false)
}

// Relabel returns a hierarchy in which each compound label found in m is
// replaced by its mapped label. Mapped labels must have the same depth.
func (h *IndexHierarchy) Relabel(m *LabelMap) (*IndexHierarchy, error) {
	return h.RelabelFunc(func(row []types.Label) []types.Label {
		if to, ok := m.Get(row); ok {
			return to
		}
		return row
	})
}

// RelabelFunc returns a hierarchy with every compound label replaced by
// fn(label). fn receives a copy it may modify.
func (h *IndexHierarchy) RelabelFunc(fn func(row []types.Label) []types.Label) (*IndexHierarchy, error) {
	src := h.rows()
	rows := make([][]types.Label, len(src))
	for i, r := range src {
		out := fn(types.CloneRow(r))
		if len(out) != h.depth {
			return nil, types.Construction(types.ErrDepthMismatch,
				"relabel of %s has %d labels, expected %d", types.FormatRow(r), len(out), h.depth)
		}
		rows[i] = out
	}
	return rebuild(rows, h.depth, nil, h.name, false)
}

// Roll returns a hierarchy with positions rotated by shift: a shift of 1
// moves the last label first. The rotated labels must still be grouped by
// prefix.
func (h *IndexHierarchy) Roll(shift int) (*IndexHierarchy, error) {
	src := h.rows()
	n := len(src)
	if n == 0 {
		return h.Copy(), nil
	}
	s := ((shift % n) + n) % n
	rows := make([][]types.Label, 0, n)
	rows = append(rows, src[n-s:]...)
	rows = append(rows, src[:n-s]...)
	return rebuild(rows, h.depth, h.constructors(), h.name, false)
}

// Sort returns a hierarchy with compound labels ordered depth by depth,
// strings in root collation order.
func (h *IndexHierarchy) Sort(ascending bool) (*IndexHierarchy, error) {
	return h.SortWith(types.NewComparer(language.Und), ascending)
}

// SortWith is Sort with a caller-supplied Comparer.
func (h *IndexHierarchy) SortWith(c *types.Comparer, ascending bool) (*IndexHierarchy, error) {
	rows := slices.Clone(h.rows())
	slices.SortStableFunc(rows, func(a, b []types.Label) int {
		r := c.CompareRows(a, b)
		if !ascending {
			r = -r
		}
		return r
	})
	return rebuild(rows, h.depth, h.constructors(), h.name, false)
}

// Head returns the first n compound labels.
func (h *IndexHierarchy) Head(n int) (*IndexHierarchy, error) {
	n = min(max(n, 0), h.Len())
	return h.ExtractILoc(hloc.RangeOf(0, n))
}

// Tail returns the last n compound labels.
func (h *IndexHierarchy) Tail(n int) (*IndexHierarchy, error) {
	n = min(max(n, 0), h.Len())
	return h.ExtractILoc(hloc.RangeOf(h.Len()-n, h.Len()))
}

// ExtractILoc returns a hierarchy of the compound labels at the selected
// positions, in the selected order.
func (h *IndexHierarchy) ExtractILoc(loc hloc.ILoc) (*IndexHierarchy, error) {
	src := h.rows()
	positions := loc.Ints()
	rows := make([][]types.Label, len(positions))
	for i, p := range positions {
		if p < 0 || p >= len(src) {
			return nil, types.Usage(types.ErrInvalidArgument, "position %d not in [0, %d)", p, len(src))
		}
		rows[i] = src[p]
	}
	return rebuild(rows, h.depth, h.constructors(), h.name, false)
}

// Loc returns a hierarchy of the compound labels selected by sel.
func (h *IndexHierarchy) Loc(sel hloc.HLoc) (*IndexHierarchy, error) {
	loc, err := h.LocToILoc(sel)
	if err != nil {
		return nil, err
	}
	return h.ExtractILoc(loc)
}
