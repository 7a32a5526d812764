// Package store persists the trade ledger as an opaque serialized blob.
//
// The aggregation engine in core/ledger is pure; this package is the persistence
// collaborator it is paired with. Every backend stores the same JSON document under
// a single key and performs no merge logic of its own.
//
// # Store Interface
//
//	type Store interface {
//	    Load(ctx context.Context) (ledger.Ledger, error)
//	    Save(ctx context.Context, l ledger.Ledger) error
//	    Reset(ctx context.Context) error
//	}
//
// A missing blob loads as an empty ledger, never as an error.
//
// # Backends
//
//   - MemoryStore: process-local, for tests and one-shot commands.
//   - FileStore: a JSON file written atomically (temp file + rename).
//   - DatabaseStore: a row in the ledger_blobs table via GORM (MySQL, PostgreSQL, SQLite).
//   - ObjectStore: an object in an S3/MinIO bucket.
//   - RedisStore: a Redis string key.
//
// CachedStore wraps any backend with a TTL read cache; concurrent loads of an expired
// entry are coalesced with singleflight.
//
// # Concurrency
//
// Stores do not lock across Load and Save. Callers that mutate the ledger must
// serialise their read-modify-write cycles (see feature/trades.Service).
package store
