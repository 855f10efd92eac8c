// Package index provides the single-level label indices that every node of a
// hierarchical index wraps.
//
// # Overview
//
// A single-level index is an ordered set of unique labels mapping each label
// to its position and each position back to its label. Tree nodes hold one
// index over the labels valid at that node; compound-key resolution is a
// sequence of Position calls, one per depth.
//
// # Implementations
//
// Labels: Map-based index over any comparable labels (DEFAULT)
//   - Lookup: one map access
//   - Built from GrowLabels, the grow-only form used while scanning rows
//
// Range: Arithmetic progression of ints
//   - Lookup: computed, no per-label storage
//   - Built by NewRange or, when labels happen to form a progression, by
//     RangeConstructor
//
// Dates: Calendar dates
//   - Labels normalized to midnight UTC
//   - Lookups accept time.Time or "2006-01-02" strings
//
// # Interfaces
//
// Index: Read-only contract (Len, Position, Label, Labels, Kind, Name, Stats)
//
// Growable: Index plus Append; appends of an existing label fail and leave
// the index unchanged
//
// # Constructors
//
// A Constructor builds an Index from ordered labels. Hierarchy construction
// accepts one Constructor per depth, so a depth can be typed (for example,
// Dates at depth 1) independently of the others:
//
//	ctors := []index.Constructor{index.Default, index.DatesConstructor}
//
// # Thread Safety
//
// Labels, Range and Dates are immutable and safe for concurrent reads.
// GrowLabels is not thread-safe.
package index
