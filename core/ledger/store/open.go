package store

import (
	"context"
	"fmt"

	"trade-ledger/core/storage"

	"gorm.io/gorm"
)

// Deps carries the connections a backend may need. Only the one matching
// Config.Backend has to be set.
type Deps struct {
	// DB backs the database backend.
	DB *gorm.DB
	// Objects and Bucket back the storage backend.
	Objects storage.Client
	Bucket  string
	// Redis backs the redis backend.
	Redis RedisClient
}

// Open builds the configured backend, prepares it (table, bucket) and wraps it
// with a read cache when a TTL is configured.
func Open(ctx context.Context, cfg Config, deps Deps) (Store, error) {
	var s Store

	switch cfg.Backend {
	case BackendMemory:
		s = NewMemoryStore()
	case BackendFile, "":
		path := cfg.Path
		if path == "" {
			path = DefaultKey + ".json"
		}
		s = NewFileStore(path)
	case BackendDatabase:
		if deps.DB == nil {
			return nil, fmt.Errorf("ledger backend %s requires a database connection", cfg.Backend)
		}
		ds := NewDatabaseStore(deps.DB, cfg.KeyOrDefault())
		if err := ds.Migrate(ctx); err != nil {
			return nil, err
		}
		s = ds
	case BackendStorage:
		if deps.Objects == nil {
			return nil, fmt.Errorf("ledger backend %s requires a storage client", cfg.Backend)
		}
		obj := NewObjectStore(deps.Objects, deps.Bucket, cfg.KeyOrDefault()+".json")
		if err := obj.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		s = obj
	case BackendRedis:
		if deps.Redis == nil {
			return nil, fmt.Errorf("ledger backend %s requires a redis client", cfg.Backend)
		}
		s = NewRedisStore(deps.Redis, cfg.KeyOrDefault())
	default:
		return nil, fmt.Errorf("unknown ledger backend: %s", cfg.Backend)
	}

	if ttl := cfg.CacheTTL(); ttl > 0 {
		s = NewCachedStore(s, ttl)
	}
	return s, nil
}
