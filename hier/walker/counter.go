package walker

import (
	"github.com/joshuapare/hierkit/hier/index"
	"github.com/joshuapare/hierkit/hier/level"
)

// TreeStats summarizes the shape of a tree.
type TreeStats struct {
	Depth     int
	Positions int // flattened length

	Nodes  []int // nodes per depth
	Labels []int // labels per depth, summed over nodes

	// Indices is the number of distinct index objects; trees built as a
	// product share one index among many nodes.
	Indices     int
	BytesApprox int // summed over distinct indices
}

// Count traverses the tree and returns its statistics.
//
// Example:
//
//	stats := walker.Count(root)
//	fmt.Printf("depth %d, %d positions\n", stats.Depth, stats.Positions)
func Count(root *level.Level) *TreeStats {
	stats := &TreeStats{}
	if root == nil {
		return stats
	}
	stats.Positions = root.Len()

	seen := make(map[index.Index]struct{})
	wc := NewWalkerCore()
	_ = wc.Walk(root, func(ref NodeRef) error {
		for len(stats.Nodes) <= ref.Depth {
			stats.Nodes = append(stats.Nodes, 0)
			stats.Labels = append(stats.Labels, 0)
		}
		idx := ref.Node.Index()
		stats.Nodes[ref.Depth]++
		stats.Labels[ref.Depth] += idx.Len()
		if _, ok := seen[idx]; !ok {
			seen[idx] = struct{}{}
			stats.Indices++
			stats.BytesApprox += idx.Stats().BytesApprox
		}
		return nil
	})
	stats.Depth = len(stats.Nodes)
	return stats
}
