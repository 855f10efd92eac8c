package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/hierkit/hier"
	"github.com/joshuapare/hierkit/internal/labeltext"
	"github.com/joshuapare/hierkit/internal/logger"
	"github.com/joshuapare/hierkit/pkg/types"
)

var (
	// Global flags
	verbose      bool
	quiet        bool
	jsonOut      bool
	yamlIn       bool
	reorder      bool
	continuation string
	logLevel     string
)

var rootCmd = &cobra.Command{
	Use:   "hierctl",
	Short: "Inspect and reshape hierarchical label indexes",
	Long: `hierctl builds a hierarchical index from a label file and queries it.

Input is either a whitespace-delimited label file, one compound label per
line ('I' 'A' 1), or with --yaml a nested YAML mapping whose sequences hold
the innermost labels.`,
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&yamlIn, "yaml", false, "Read the input as a YAML tree")
	rootCmd.PersistentFlags().
		BoolVar(&reorder, "reorder", false, "Group labels by prefix instead of rejecting ungrouped input")
	rootCmd.PersistentFlags().
		StringVar(&continuation, "continuation", "", "Literal meaning \"same as the row above\" (e.g. None)")
	rootCmd.PersistentFlags().
		StringVar(&logLevel, "log-level", "", "Log to stderr at this level (debug, info, warn, error)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initLogging enables the library logger when --log-level or --verbose is set.
func initLogging() error {
	if logLevel == "" && !verbose {
		return logger.Init(logger.Options{})
	}
	level := slog.LevelDebug
	if logLevel != "" {
		var err error
		if level, err = logger.ParseLevel(logLevel); err != nil {
			return err
		}
	}
	return logger.Init(logger.Options{
		Enabled: true,
		Writer:  os.Stderr,
		JSON:    jsonOut,
		Level:   level,
	})
}

// loadHierarchy builds the hierarchy described by the input file and the
// global input flags.
func loadHierarchy(path string) (*hier.IndexHierarchy, error) {
	printVerbose("Reading labels: %s\n", path)

	opts := []hier.Option{hier.WithName(path)}
	if reorder {
		opts = append(opts, hier.WithReorder())
	}

	if yamlIn {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		h, err := hier.FromYAML(data, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to build hierarchy: %w", err)
		}
		return h, nil
	}

	if continuation != "" {
		tok, err := labeltext.ParseLiteral(continuation)
		if err != nil {
			return nil, fmt.Errorf("invalid --continuation: %w", err)
		}
		opts = append(opts, hier.WithContinuation(tok))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	h, err := hier.FromReader(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build hierarchy: %w", err)
	}
	logger.Info("hierarchy loaded", "path", path, "len", h.Len(), "depth", h.Depth())
	return h, nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// printRows prints positioned compound labels, one per line.
func printRows(rows [][]types.Label, positions []int) {
	for i, row := range rows {
		pos := i
		if positions != nil {
			pos = positions[i]
		}
		printInfo("%d\t%s\n", pos, types.FormatRow(row))
	}
}
