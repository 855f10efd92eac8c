// Package hier implements hierarchical indices: ordered sets of compound
// labels, each a fixed-depth tuple of per-depth labels, mapped to flattened
// integer positions.
//
// A hierarchy is stored as a tree of single-level indices (see the level
// package). Rows sharing a prefix are contiguous in position space, so a
// prefix selects one contiguous range.
//
// # Construction
//
// Hierarchies are built from flat compound labels, a nested ordered mapping,
// a YAML document, a cartesian product of indices, or outer keys paired with
// inner indices:
//
//	h, err := hier.FromLabels([][]types.Label{
//	    {"I", "A"}, {"I", "B"}, {"II", "B"},
//	})
//	pos, err := h.ILocOf("II", "B") // 2
//
// Rows not grouped by prefix are rejected unless WithReorder is passed.
//
// # Selection
//
// LocToILoc resolves an hloc.HLoc selector, one term per depth, to a single
// position, a contiguous range, or an ordered list of positions:
//
//	loc, err := h.LocToILoc(hloc.New(hloc.All, "B"))
//
// # Transforms
//
// Rehierarch, AddLevel, DropLevel, the set operations and relabeling all
// return new hierarchies; an IndexHierarchy never changes once built and is
// safe for concurrent readers.
//
// # Grow-only hierarchies
//
// IndexHierarchyGO accepts appends and defers all validation to the next
// read. Reads return errors because merging pending labels may fail.
package hier
