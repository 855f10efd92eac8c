package testutil

// Fixture paths relative to the repository root.
// These constants should be used instead of hardcoding paths in test files.
const (
	// TreeYAMLTwoDepth is a two-depth tree of Roman numerals over letters.
	TreeYAMLTwoDepth = "testdata/trees/two-depth.yaml"

	// TreeYAMLDates is a three-depth tree with a date depth in the middle.
	TreeYAMLDates = "testdata/trees/dates.yaml"

	// RowsText is a whitespace-separated row file with continuation tokens.
	RowsText = "testdata/rows/continuation.txt"
)
