package store

import (
	"context"
	"sync"
	"time"

	"trade-ledger/core/ledger"

	"golang.org/x/sync/singleflight"
)

// cacheEntry holds a loaded ledger and when it was loaded.
type cacheEntry struct {
	ledger ledger.Ledger
	built  time.Time
}

// CachedStore serves Load from memory until the TTL expires.
// Save and Reset go straight to the wrapped store and refresh the cached copy.
type CachedStore struct {
	next Store
	ttl  time.Duration
	now  func() time.Time

	mu    sync.RWMutex
	entry *cacheEntry
	sf    singleflight.Group
}

// NewCachedStore wraps next with a read cache. A zero TTL disables caching.
func NewCachedStore(next Store, ttl time.Duration) *CachedStore {
	return &CachedStore{next: next, ttl: ttl, now: time.Now}
}

func (s *CachedStore) expired(e *cacheEntry) bool {
	if e == nil || s.ttl <= 0 {
		return true
	}
	return s.now().Sub(e.built) > s.ttl
}

// Load implements Store. Concurrent loads of an expired cache share one backend read.
func (s *CachedStore) Load(ctx context.Context) (ledger.Ledger, error) {
	// Fast path: fresh cache
	s.mu.RLock()
	entry := s.entry
	s.mu.RUnlock()
	if !s.expired(entry) {
		return entry.ledger.Clone(), nil
	}

	result, err, _ := s.sf.Do("load", func() (interface{}, error) {
		// Double-check after acquiring singleflight lock
		s.mu.RLock()
		entry := s.entry
		s.mu.RUnlock()
		if !s.expired(entry) {
			return entry.ledger, nil
		}

		// The load is shared by every waiting caller
		l, err := s.next.Load(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		s.store(l)
		return l, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(ledger.Ledger).Clone(), nil
}

// Save implements Store.
func (s *CachedStore) Save(ctx context.Context, l ledger.Ledger) error {
	if err := s.next.Save(ctx, l); err != nil {
		s.Invalidate()
		return err
	}
	s.store(l.Clone())
	return nil
}

// Reset implements Store.
func (s *CachedStore) Reset(ctx context.Context) error {
	s.Invalidate()
	return s.next.Reset(ctx)
}

// Invalidate drops the cached ledger so the next Load hits the backend.
func (s *CachedStore) Invalidate() {
	s.mu.Lock()
	s.entry = nil
	s.mu.Unlock()
}

func (s *CachedStore) store(l ledger.Ledger) {
	if s.ttl <= 0 {
		return
	}
	if l == nil {
		l = ledger.Ledger{}
	}
	s.mu.Lock()
	s.entry = &cacheEntry{ledger: l, built: s.now()}
	s.mu.Unlock()
}
