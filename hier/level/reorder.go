package level

import (
	"github.com/joshuapare/hierkit/pkg/types"
)

// ReorderForHierarchy stably groups rows so that rows sharing a prefix are
// contiguous. Groups at each depth keep the order in which their first row
// appears; rows within a group keep their input order.
func ReorderForHierarchy(rows [][]types.Label) [][]types.Label {
	if len(rows) == 0 {
		return rows
	}
	out := make([][]types.Label, 0, len(rows))
	return appendGrouped(out, rows, 0, len(rows[0]))
}

func appendGrouped(out, rows [][]types.Label, d, depth int) [][]types.Label {
	if d >= depth-1 || len(rows) <= 1 {
		return append(out, rows...)
	}
	order := make([]types.Label, 0)
	groups := make(map[types.Label][][]types.Label)
	for _, row := range rows {
		key := groupKey(row[d])
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], row)
	}
	for _, key := range order {
		out = appendGrouped(out, groups[key], d+1, depth)
	}
	return out
}

// groupKey normalizes labels that are equal but not ==, such as time.Time
// values in different locations.
func groupKey(label types.Label) types.Label {
	return types.RowKey([]types.Label{label})
}
