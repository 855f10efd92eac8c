// Package hloc defines compound selectors over hierarchical indices and the
// shape of their resolved positions.
//
// An HLoc holds one Term per depth, outermost first:
//
//	hloc.New("I", hloc.All, hloc.List{"x", "y"})
//	hloc.New(hloc.All, hloc.From("2018-01-03"), "y")
//	hloc.Key("II", "B") // one label per depth
//
// Terms:
//   - a plain label selects that label
//   - List selects each listed label in the given order
//   - Span selects an inclusive run of labels in index order
//   - All selects every label
//
// Depths past the end of the selector are implicitly All.
//
// # Resolution Shapes
//
// Resolving an HLoc yields an ILoc:
//   - Scalar when every depth was given a single label
//   - Range when single labels form a prefix and only All follows
//   - Positions otherwise, in tree order
//
// Range and Positions describe the same thing; Range avoids materializing
// contiguous runs.
package hloc
