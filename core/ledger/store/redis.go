package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trade-ledger/core/ledger"

	"github.com/redis/go-redis/v9"
)

// RedisClient is the subset of the go-redis client used by RedisStore.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisStore keeps the serialized ledger in a Redis string key.
type RedisStore struct {
	client RedisClient
	key    string
}

// NewRedisStore creates a store for key using client.
func NewRedisStore(client RedisClient, key string) *RedisStore {
	if key == "" {
		key = DefaultKey
	}
	return &RedisStore{client: client, key: key}
}

// Load implements Store.
func (s *RedisStore) Load(ctx context.Context) (ledger.Ledger, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ledger.Ledger{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger key %s: %w", s.key, err)
	}
	return Decode(data)
}

// Save implements Store. The key never expires.
func (s *RedisStore) Save(ctx context.Context, l ledger.Ledger) error {
	data, err := Encode(l)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set ledger key %s: %w", s.key, err)
	}
	return nil
}

// Reset implements Store.
func (s *RedisStore) Reset(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("failed to delete ledger key %s: %w", s.key, err)
	}
	return nil
}
