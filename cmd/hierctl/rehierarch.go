package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newRehierarchCmd())
}

func newRehierarchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rehierarch <file> <depth>...",
		Short: "Reorder depths and print the regrouped labels",
		Long: `The rehierarch command builds a hierarchy whose depth i holds the labels
of the given source depth, regrouping labels by their new prefixes in order
of first appearance.

Example:
  hierctl rehierarch labels.txt 1 0
  hierctl rehierarch index.yaml --yaml 2 0 1 --json`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRehierarch(args)
		},
	}
	return cmd
}

func runRehierarch(args []string) error {
	h, err := loadHierarchy(args[0])
	if err != nil {
		return err
	}

	order := make([]int, 0, len(args)-1)
	for _, a := range args[1:] {
		d, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("invalid depth %q: %w", a, err)
		}
		order = append(order, d)
	}

	r, err := h.Rehierarch(order)
	if err != nil {
		return fmt.Errorf("failed to rehierarch: %w", err)
	}

	if jsonOut {
		return printJSON(r.Flat())
	}
	printRows(r.Flat(), nil)
	return nil
}
