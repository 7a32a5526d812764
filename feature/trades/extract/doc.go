// Package extract turns exported trade table rows into item records.
//
// A trade row carries the sender, receiver, item cell, quantity and the result of the
// suspicious trade check, as they appear in the trade history table. Rows can be read
// from CSV (header-named columns) or JSON.
//
// Select filters rows down to the trades between a receiver and an optional set of
// senders and returns the items as ledger.ItemRecord values. The aggregation engine
// never sees row or markup data.
//
// # Matching
//
// Receiver and sender matching is substring containment against the rendered cell
// text, so a cell such as "Alice [#1337]" matches both "Alice" and "1337".
// SenderFilter is either AnySender() or OneOf(names...).
package extract
