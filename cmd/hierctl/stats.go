package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newStatsCmd())
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <file>",
		Short: "Show hierarchy statistics",
		Long: `The stats command shows the shape of a hierarchy: depth, positions, nodes
and labels per depth, index kinds and approximate memory.

Example:
  hierctl stats labels.txt
  hierctl stats index.yaml --yaml --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args)
		},
	}
	return cmd
}

type HierStats struct {
	Path           string
	Depth          int
	Positions      int
	Names          []string
	NodesPerDepth  []int
	LabelsPerDepth []int
	IndexKinds     [][]string
	Indices        int
	BytesApprox    int
}

func runStats(args []string) error {
	h, err := loadHierarchy(args[0])
	if err != nil {
		return err
	}

	s := h.Stats()
	stats := HierStats{
		Path:           args[0],
		Depth:          h.Depth(),
		Positions:      s.Positions,
		Names:          h.Names(),
		NodesPerDepth:  s.Nodes,
		LabelsPerDepth: s.Labels,
		Indices:        s.Indices,
		BytesApprox:    s.BytesApprox,
	}
	for _, kinds := range h.IndexKinds() {
		names := make([]string, len(kinds))
		for i, k := range kinds {
			names[i] = k.String()
		}
		stats.IndexKinds = append(stats.IndexKinds, names)
	}

	// Output as JSON if requested
	if jsonOut {
		return printJSON(stats)
	}

	printInfo("\nHierarchy Statistics: %s\n", stats.Path)
	printInfo("%s\n\n", strings.Repeat("=", 40))

	printInfo("Structure:\n")
	printInfo("  Depth: %d\n", stats.Depth)
	printInfo("  Positions: %s\n", formatNumber(int64(stats.Positions)))
	printInfo("  Distinct indices: %d\n", stats.Indices)
	printInfo("  Approx. size: %s\n\n", formatBytes(int64(stats.BytesApprox)))

	printInfo("Depths:\n")
	for d := 0; d < stats.Depth; d++ {
		nodes, labels := 0, 0
		if d < len(stats.NodesPerDepth) {
			nodes, labels = stats.NodesPerDepth[d], stats.LabelsPerDepth[d]
		}
		var kinds string
		if d < len(stats.IndexKinds) {
			kinds = strings.Join(stats.IndexKinds[d], ",")
		}
		printInfo("  %d %s: %s nodes, %s labels [%s]\n",
			d, stats.Names[d], formatNumber(int64(nodes)), formatNumber(int64(labels)), kinds)
	}
	return nil
}

func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

func formatNumber(n int64) string {
	str := fmt.Sprintf("%d", n)
	if len(str) <= 3 {
		return str
	}

	// Add commas
	var result strings.Builder
	for i, c := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result.WriteRune(',')
		}
		result.WriteRune(c)
	}
	return result.String()
}
