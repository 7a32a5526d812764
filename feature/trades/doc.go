// Package trades implements the trade tracking feature.
//
// It ties the pure engine in core/ledger to a persistent store and exposes it over
// HTTP and the CLI:
//  1. Record: merge observed items (or exported trade rows) into a receiver's ledger.
//  2. Items: list what a receiver has accumulated.
//  3. Compare: reconcile required items against returned items.
//  4. Reset: discard the whole ledger.
//
// # Components
//
//   - Service: Serialises read-modify-write cycles on the store and logs outcomes.
//   - Handler: Exposes HTTP endpoints for the operations above.
//   - Feature: Registers the handler with the application loader.
//   - Report: Logs and renders reconciliation results.
//
// # HTTP Endpoints
//
//   - GET    /trades                      : Full ledger.
//   - GET    /trades/:receiver/items      : Items stored for a receiver.
//   - POST   /trades/:receiver/items      : Record item records.
//   - POST   /trades/:receiver/rows       : Record exported trade rows.
//   - POST   /trades/:receiver/compare    : Compare returned items with the stored items.
//   - POST   /trades/compare              : Compare two explicit item lists.
//   - DELETE /trades                      : Reset the ledger.
package trades
