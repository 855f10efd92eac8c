// Package types defines the shared vocabulary of hierkit: labels, compound
// labels (rows), typed errors and label ordering.
//
// Design goals:
//   - Any comparable Go value is a label; rows are plain []Label slices.
//   - Typed errors with stable categories (lookup/construction/usage) so
//     callers can branch with IsKind or errors.Is against the sentinels.
//   - Lookup errors always carry the offending depth and label.
//
// Ordering (Comparer) is only needed by sorting transforms; every other
// operation relies on label equality alone.
package types
