package cachestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "rutas:cache:"

// Redis persists snapshots under one key per context. It shares the file
// store's JSON schema; the Redis server provides the cross-process write
// exclusion the file store gets from its advisory lock.
type Redis struct {
	client redis.UniversalClient
	key    string
}

// NewRedis creates a Redis-backed store for the context. The client
// lifecycle is managed by the caller.
func NewRedis(client redis.UniversalClient, context string) *Redis {
	return &Redis{
		client: client,
		key:    redisKeyPrefix + context,
	}
}

// Load fetches and decodes the snapshot. A missing key yields (nil, nil).
func (r *Redis) Load(ctx context.Context) (*Snapshot, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %q: %w", ErrCacheRead, r.key, err)
	}
	return decodeSnapshot(data, r.key)
}

// Save stores the snapshot without expiration; a route table snapshot is
// state, not a cacheable computation.
func (r *Redis) Save(ctx context.Context, snap *Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("%w: encode %q: %w", ErrCacheWrite, r.key, err)
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrCacheWrite, r.key, err)
	}
	return nil
}

// Clear deletes the snapshot key.
func (r *Redis) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrCacheClear, r.key, err)
	}
	return nil
}

// Location returns the Redis key.
func (r *Redis) Location() string {
	return r.key
}

var _ Store = (*Redis)(nil)
