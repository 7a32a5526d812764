// Package ledger implements the trade aggregation and reconciliation engine.
//
// It has two halves, both pure functions over in-memory values:
//
//  1. Aggregation: observed item records are merged into a per-receiver ledger.
//     Items are identified by ID only; quantities of matching IDs are summed and
//     unseen IDs are appended in first-seen order.
//
//  2. Reconciliation: a required item list is diffed against a returned item list,
//     producing three disjoint sets (missing, partially missing, extra).
//
// # Signals
//
// Empty inputs are reported through sentinel errors wrapping ErrEmptyInput so that
// callers can tell "nothing to compare" apart from a perfect match. ErrNoSuchRecipient
// reports a receiver that has never been observed. None of them are fatal.
//
// # Persistence
//
// The engine never loads or saves anything. See the store subpackage for the
// Store interface and its backends.
//
// # Usage
//
//	l, err := ledger.ApplyObservation(l, "Alice", items)
//	if errors.Is(err, ledger.ErrNothingToRecord) {
//	    log.Warn("nothing to record")
//	}
//
//	result, err := ledger.Reconcile(required, returned)
package ledger
