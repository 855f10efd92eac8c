package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/hierkit/pkg/types"
)

var (
	valuesDepth  int
	valuesWidths bool
)

func init() {
	cmd := newValuesCmd()
	cmd.Flags().IntVar(&valuesDepth, "depth", 0, "Depth to read labels from")
	cmd.Flags().BoolVar(&valuesWidths, "widths", false, "Show each label once with the positions it spans")
	rootCmd.AddCommand(cmd)
}

func newValuesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "values <file>",
		Short: "List labels at one depth",
		Long: `The values command lists the label of every position at one depth, or
with --widths each label of that depth once with its width.

Example:
  hierctl values labels.txt --depth 1
  hierctl values labels.txt --depth 0 --widths --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValues(args)
		},
	}
	return cmd
}

type labelWidth struct {
	Label types.Label `json:"label"`
	Width int         `json:"width"`
}

func runValues(args []string) error {
	h, err := loadHierarchy(args[0])
	if err != nil {
		return err
	}

	if valuesWidths {
		widths, err := h.LabelWidthsAtDepth(valuesDepth)
		if err != nil {
			return fmt.Errorf("failed to read depth %d: %w", valuesDepth, err)
		}
		out := make([]labelWidth, len(widths))
		for i, w := range widths {
			out[i] = labelWidth{Label: w.Label, Width: w.Width}
		}
		if jsonOut {
			return printJSON(out)
		}
		for _, w := range out {
			printInfo("%s\t%d\n", types.FormatLabel(w.Label), w.Width)
		}
		return nil
	}

	vals, err := h.ValuesAtDepth(valuesDepth)
	if err != nil {
		return fmt.Errorf("failed to read depth %d: %w", valuesDepth, err)
	}
	if jsonOut {
		return printJSON(vals)
	}
	for i, v := range vals {
		printInfo("%d\t%s\n", i, types.FormatLabel(v))
	}
	return nil
}
