// Package dirty tracks compound labels appended to a grow-only hierarchy that
// have not yet been merged into its tree.
//
// Appending only records the row; no validation happens until the pending
// rows are reconciled. Reconcile hands every pending row to a callback that
// rebuilds the tree and clears the buffer only if the callback succeeds, so a
// failed rebuild leaves the tracker dirty and the next read fails again.
//
// Basic usage:
//
//	tr := dirty.NewTracker()
//	tr.Add([]types.Label{"I", "C"})
//	err := tr.Reconcile(ctx, func(rows [][]types.Label) error {
//	    return rebuild(rows)
//	})
//
// Tracker is NOT thread-safe; the owning hierarchy serializes access.
package dirty
