package dirty

import (
	"context"

	"github.com/joshuapare/hierkit/pkg/types"
)

const (
	// defaultRowCapacity is the pre-allocated capacity for pending rows.
	defaultRowCapacity = 64
)

// Tracker accumulates pending rows in append order.
//
// NOT thread-safe. Only one goroutine should use it at a time.
type Tracker struct {
	rows [][]types.Label

	// reconciled counts successful reconciliations; useful to tell whether a
	// cached view was built before or after the last rebuild.
	reconciled uint64
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{rows: make([][]types.Label, 0, defaultRowCapacity)}
}

// Add records a row. The row is copied; later changes by the caller do not
// affect the tracker.
func (t *Tracker) Add(row []types.Label) {
	t.rows = append(t.rows, types.CloneRow(row))
}

// AddAll records rows in order.
func (t *Tracker) AddAll(rows [][]types.Label) {
	for _, r := range rows {
		t.Add(r)
	}
}

// Len returns the number of pending rows.
func (t *Tracker) Len() int { return len(t.rows) }

// Dirty reports whether any rows are pending.
func (t *Tracker) Dirty() bool { return len(t.rows) > 0 }

// Generation returns the number of successful reconciliations so far.
func (t *Tracker) Generation() uint64 { return t.reconciled }

// Reconcile passes the pending rows to fn. If fn succeeds the rows are
// cleared; otherwise they are kept and fn's error is returned. A clean tracker
// returns nil without calling fn.
//
// The context is checked before fn is called.
func (t *Tracker) Reconcile(ctx context.Context, fn func(rows [][]types.Label) error) error {
	if len(t.rows) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := fn(t.rows); err != nil {
		return err
	}
	t.rows = t.rows[:0]
	t.reconciled++
	return nil
}

// Reset drops all pending rows.
//
// This is useful for testing or when abandoning appends that failed to
// reconcile.
func (t *Tracker) Reset() {
	t.rows = t.rows[:0]
}

// Pending returns a copy of the pending rows (for testing/debugging).
func (t *Tracker) Pending() [][]types.Label {
	result := make([][]types.Label, len(t.rows))
	for i, r := range t.rows {
		result[i] = types.CloneRow(r)
	}
	return result
}

// Clone returns an independent tracker holding the same pending rows.
func (t *Tracker) Clone() *Tracker {
	c := NewTracker()
	c.rows = append(c.rows, t.Pending()...)
	c.reconciled = t.reconciled
	return c
}

// reconcileAdapter binds a context so Tracker satisfies ReconcilableTracker.
type reconcileAdapter struct {
	*Tracker
	ctx context.Context
}

func (a reconcileAdapter) Reconcile(fn func(rows [][]types.Label) error) error {
	return a.Tracker.Reconcile(a.ctx, fn)
}

// WithContext returns a ReconcilableTracker view of t whose reconciliations
// check ctx.
func (t *Tracker) WithContext(ctx context.Context) ReconcilableTracker {
	return reconcileAdapter{Tracker: t, ctx: ctx}
}
