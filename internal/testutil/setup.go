package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joshuapare/hierkit/hier/tree"
	"github.com/joshuapare/hierkit/pkg/types"
)

// Row builds one compound label.
func Row(labels ...types.Label) []types.Label { return labels }

// Rows builds compound labels from rows of equal length.
//
// Example:
//
//	rows := testutil.Rows(
//	    testutil.Row("I", "A"),
//	    testutil.Row("I", "B"),
//	)
func Rows(rows ...[]types.Label) [][]types.Label { return rows }

// Product returns the cartesian product of the given label lists in
// row-major order, the fixture counterpart of a product-built hierarchy.
func Product(lists ...[]types.Label) [][]types.Label {
	out := [][]types.Label{{}}
	for _, list := range lists {
		next := make([][]types.Label, 0, len(out)*len(list))
		for _, prefix := range out {
			for _, l := range list {
				row := make([]types.Label, len(prefix)+1)
				copy(row, prefix)
				row[len(prefix)] = l
				next = append(next, row)
			}
		}
		out = next
	}
	return out
}

// RomanLetters is the tree
//
//	I:  {A: [1, 2], B: [1, 2]}
//	II: {A: [1, 2], B: [1, 2]}
func RomanLetters() *tree.Tree {
	return tree.Must(
		"I", tree.Must("A", tree.Leaf{1, 2}, "B", tree.Leaf{1, 2}),
		"II", tree.Must("A", tree.Leaf{1, 2}, "B", tree.Leaf{1, 2}),
	)
}

// ReadFixture reads a fixture file given relative to the repository root.
// Calls t.Skip if the fixture is not found.
func ReadFixture(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(resolveTestPath(t, path))
	if err != nil {
		t.Fatalf("Failed to read fixture: %v", err)
	}
	return data
}

// LoadTree decodes a YAML tree fixture.
func LoadTree(t *testing.T, path string) *tree.Tree {
	t.Helper()
	tr, err := tree.FromYAML(ReadFixture(t, path))
	if err != nil {
		t.Fatalf("Failed to decode %s: %v", path, err)
	}
	return tr
}

// resolveTestPath walks up from the package directory until path exists.
func resolveTestPath(t *testing.T, path string) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	for {
		candidate := filepath.Join(dir, path)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Skipf("Fixture not found: %s", path)
		}
		dir = parent
	}
}
