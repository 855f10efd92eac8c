package hier

import (
	"errors"

	"github.com/joshuapare/hierkit/internal/logger"
	"github.com/joshuapare/hierkit/pkg/types"
)

// Union returns the compound labels of h followed by those of others not
// already present, in operand order. If the appended labels break prefix
// grouping, the result is regrouped, keeping the order of h's prefixes
// first.
func (h *IndexHierarchy) Union(others ...*IndexHierarchy) (*IndexHierarchy, error) {
	kinds, depth, err := h.operands(others)
	if err != nil {
		return nil, err
	}
	ctors := kinds.constructors()
	rows := append([][]types.Label(nil), h.rows()...)
	seen := make(map[string]struct{}, len(rows))
	for _, r := range rows {
		seen[types.RowKey(r)] = struct{}{}
	}
	for _, o := range others {
		for _, r := range o.rows() {
			k := types.RowKey(r)
			if _, ok := seen[k]; ok || h.Contains(r) {
				continue
			}
			seen[k] = struct{}{}
			rows = append(rows, r)
		}
	}

	out, err := rebuild(rows, depth, ctors, h.name, false)
	if errors.Is(err, types.ErrNotContiguous) {
		logger.Debug("union regrouped", "rows", len(rows), "depth", depth)
		out, err = rebuild(rows, depth, ctors, h.name, true)
	}
	return out, err
}

// Intersection returns the compound labels of h present in every other
// operand, in h's order.
func (h *IndexHierarchy) Intersection(others ...*IndexHierarchy) (*IndexHierarchy, error) {
	if _, _, err := h.operands(others); err != nil {
		return nil, err
	}
	var rows [][]types.Label
	for _, r := range h.rows() {
		keep := true
		for _, o := range others {
			if !o.Contains(r) {
				keep = false
				break
			}
		}
		if keep {
			rows = append(rows, r)
		}
	}
	return rebuild(rows, h.depth, h.constructors(), h.name, false)
}

// Difference returns the compound labels of h absent from every other
// operand, in h's order.
func (h *IndexHierarchy) Difference(others ...*IndexHierarchy) (*IndexHierarchy, error) {
	if _, _, err := h.operands(others); err != nil {
		return nil, err
	}
	var rows [][]types.Label
	for _, r := range h.rows() {
		keep := true
		for _, o := range others {
			if o.Contains(r) {
				keep = false
				break
			}
		}
		if keep {
			rows = append(rows, r)
		}
	}
	return rebuild(rows, h.depth, h.constructors(), h.name, false)
}

// operands checks that non-empty operands share a depth. It returns the
// operand whose index kinds a union keeps, and the result depth: an empty h
// takes both from the first non-empty operand.
func (h *IndexHierarchy) operands(others []*IndexHierarchy) (*IndexHierarchy, int, error) {
	kinds, depth := h, h.depth
	if h.Len() == 0 {
		for _, o := range others {
			if o != nil && o.Len() > 0 {
				kinds, depth = o, o.depth
				break
			}
		}
	}
	for _, o := range others {
		if o == nil {
			return nil, 0, types.Usage(types.ErrInvalidArgument, "nil operand")
		}
		if o.Len() > 0 && o.depth != depth {
			return nil, 0, types.Usage(types.ErrDepthRange,
				"operand depth %d, expected %d", o.depth, depth)
		}
	}
	if h.Len() > 0 && h.depth != depth {
		return nil, 0, types.Usage(types.ErrDepthRange, "operand depth %d, expected %d", h.depth, depth)
	}
	return kinds, depth, nil
}
