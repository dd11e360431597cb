package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/krywa5/forkify/internal/domain"
)

// KVStore implements domain.KeyValueStore on top of Redis string values.
type KVStore struct {
	rdb *goredis.Client
}

// NewKVStore wraps an existing client.
func NewKVStore(rdb *goredis.Client) *KVStore {
	return &KVStore{rdb: rdb}
}

// Get returns the value at key, or domain.ErrKeyNotFound when absent.
func (s *KVStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", domain.ErrKeyNotFound
		}
		return "", fmt.Errorf("failed to get key %q: %w", key, err)
	}
	return val, nil
}

// Set stores value at key with no expiry.
func (s *KVStore) Set(ctx context.Context, key, value string) error {
	if err := s.rdb.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set key %q: %w", key, err)
	}
	return nil
}
