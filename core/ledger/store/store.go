package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"trade-ledger/core/ledger"
)

// DefaultKey is the key under which the ledger blob is stored.
const DefaultKey = "stored_trade_items"

// Backend names accepted by Config.Backend.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendDatabase = "database"
	BackendStorage  = "storage"
	BackendRedis    = "redis"
)

// Store loads and saves the serialized ledger.
type Store interface {
	// Load returns the persisted ledger. Absent state yields an empty ledger.
	Load(ctx context.Context) (ledger.Ledger, error)
	// Save replaces the persisted ledger.
	Save(ctx context.Context, l ledger.Ledger) error
	// Reset discards all persisted ledger state.
	Reset(ctx context.Context) error
}

// Config holds configuration for the ledger store.
type Config struct {
	// Backend selects the persistence backend (memory, file, database, storage, redis).
	Backend string `mapstructure:"backend" default:"file"`
	// Key is the blob key (object name, redis key, table row key).
	Key string `mapstructure:"key" default:"stored_trade_items"`
	// Path is the file used by the file backend.
	Path string `mapstructure:"path" default:"stored_trade_items.json"`
	// CacheTTLSeconds enables the read cache when greater than zero.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"0"`
}

// KeyOrDefault returns the configured key, falling back to DefaultKey.
func (c Config) KeyOrDefault() string {
	if c.Key == "" {
		return DefaultKey
	}
	return c.Key
}

// CacheTTL returns the cache TTL as a duration.
func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// Encode serializes a ledger into its persisted JSON form.
// A nil ledger encodes as an empty array.
func Encode(l ledger.Ledger) ([]byte, error) {
	if l == nil {
		l = ledger.Ledger{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to encode ledger: %w", err)
	}
	return data, nil
}

// Decode parses a persisted ledger. Empty input yields an empty ledger.
func Decode(data []byte) (ledger.Ledger, error) {
	if len(data) == 0 {
		return ledger.Ledger{}, nil
	}
	var l ledger.Ledger
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("failed to decode ledger: %w", err)
	}
	if l == nil {
		l = ledger.Ledger{}
	}
	return l, nil
}
