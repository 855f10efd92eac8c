package dirty

import "github.com/joshuapare/hierkit/pkg/types"

// RowTracker is the minimal interface for recording appended rows. It is
// intended for components that only need to notify about new rows but do not
// manage reconciliation themselves.
type RowTracker interface {
	// Add records one compound label.
	Add(row []types.Label)
}

// ReconcilableTracker extends RowTracker with reconciliation.
type ReconcilableTracker interface {
	RowTracker

	// Dirty reports whether rows are pending.
	Dirty() bool

	// Reconcile passes the pending rows to fn and clears them if fn succeeds.
	Reconcile(fn func(rows [][]types.Label) error) error
}
