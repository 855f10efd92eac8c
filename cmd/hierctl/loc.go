package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/hierkit/hier/hloc"
	"github.com/joshuapare/hierkit/pkg/types"
)

func init() {
	rootCmd.AddCommand(newLocCmd())
}

func newLocCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loc <file> <term>...",
		Short: "Resolve a selector to positions",
		Long: `The loc command resolves a selector, one term per depth, and prints the
selected positions with their labels.

Terms:
  'I'        a single label (quoted strings, integers, floats, True/False)
  'A','B'    a list of labels
  'A':'C'    an inclusive span; either bound may be omitted
  *          every label at that depth

Example:
  hierctl loc labels.txt "'II'" "'B'"
  hierctl loc labels.txt "*" "'A'"
  hierctl loc index.yaml --yaml "'I'" "'A':'B'" --json`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoc(args)
		},
	}
	return cmd
}

type locResult struct {
	Shape     string          `json:"shape"`
	Positions []int           `json:"positions"`
	Labels    [][]types.Label `json:"labels"`
}

func runLoc(args []string) error {
	h, err := loadHierarchy(args[0])
	if err != nil {
		return err
	}

	sel, err := hloc.Parse(args[1:])
	if err != nil {
		return err
	}
	printVerbose("Selector: %s\n", sel)

	loc, err := h.LocToILoc(sel)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", sel, err)
	}

	positions := loc.Ints()
	labels := make([][]types.Label, len(positions))
	for i, p := range positions {
		if labels[i], err = h.LabelAt(p); err != nil {
			return err
		}
	}

	if jsonOut {
		return printJSON(locResult{Shape: loc.Shape.String(), Positions: positions, Labels: labels})
	}

	printVerbose("Result: %s\n", loc)
	printRows(labels, positions)
	return nil
}
