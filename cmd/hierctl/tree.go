package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/hierkit/hier/level"
	"github.com/joshuapare/hierkit/pkg/types"
)

var (
	treeDepth   int
	treeCompact bool
)

func init() {
	cmd := newTreeCmd()
	cmd.Flags().IntVar(&treeDepth, "depth", 0, "Maximum depth to display (0 for all)")
	cmd.Flags().BoolVar(&treeCompact, "compact", false, "Compact output")
	rootCmd.AddCommand(cmd)
}

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <file>",
		Short: "Display the label tree",
		Long: `The tree command displays the hierarchy as an indented tree, each label
followed by the positions it spans.

Example:
  hierctl tree labels.txt
  hierctl tree index.yaml --yaml --depth 2
  hierctl tree labels.txt --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(args)
		},
	}
	return cmd
}

// treeNode is the JSON shape of one label of the tree.
type treeNode struct {
	Label    types.Label `json:"label"`
	Start    int         `json:"start"`
	Stop     int         `json:"stop"`
	Children []treeNode  `json:"children,omitempty"`
}

func runTree(args []string) error {
	h, err := loadHierarchy(args[0])
	if err != nil {
		return err
	}

	maxDepth := treeDepth
	if maxDepth <= 0 || maxDepth > h.Depth() {
		maxDepth = h.Depth()
	}

	var nodes []treeNode
	if h.Len() > 0 {
		nodes = buildTreeNodes(h.Root(), 0, maxDepth)
	}

	if jsonOut {
		return printJSON(nodes)
	}

	indent := "  "
	if treeCompact {
		indent = " "
	}
	printInfo("%s (depth %d, %d labels)\n", args[0], h.Depth(), h.Len())
	printTreeNodes(nodes, 0, indent)
	return nil
}

func buildTreeNodes(l *level.Level, depth, maxDepth int) []treeNode {
	idx := l.Index()
	targets := l.Targets()
	out := make([]treeNode, idx.Len())
	pos := l.Offset()
	for i := range out {
		n := treeNode{Label: idx.Label(i), Start: pos, Stop: pos + 1}
		if targets != nil {
			n.Stop = pos + targets[i].Len()
			if depth+1 < maxDepth {
				n.Children = buildTreeNodes(targets[i], depth+1, maxDepth)
			}
		}
		pos = n.Stop
		out[i] = n
	}
	return out
}

func printTreeNodes(nodes []treeNode, depth int, indent string) {
	prefix := strings.Repeat(indent, depth)
	for _, n := range nodes {
		span := fmt.Sprintf("%d", n.Start)
		if n.Stop-n.Start > 1 {
			span = fmt.Sprintf("%d-%d", n.Start, n.Stop-1)
		}
		printInfo("%s%s [%s]\n", prefix, types.FormatLabel(n.Label), span)
		printTreeNodes(n.Children, depth+1, indent)
	}
}
