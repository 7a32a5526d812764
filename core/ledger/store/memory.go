package store

import (
	"context"
	"sync"

	"trade-ledger/core/ledger"
)

// MemoryStore keeps the serialized ledger in process memory.
type MemoryStore struct {
	mu   sync.RWMutex
	blob []byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load implements Store.
func (s *MemoryStore) Load(ctx context.Context) (ledger.Ledger, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Decode(s.blob)
}

// Save implements Store.
func (s *MemoryStore) Save(ctx context.Context, l ledger.Ledger) error {
	data, err := Encode(l)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.blob = data
	s.mu.Unlock()
	return nil
}

// Reset implements Store.
func (s *MemoryStore) Reset(ctx context.Context) error {
	s.mu.Lock()
	s.blob = nil
	s.mu.Unlock()
	return nil
}
