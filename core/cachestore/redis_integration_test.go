//go:build integration

package cachestore_test

import (
	"context"
	"os"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rutas-dev/rutas/core/cachestore"
)

const testRedisURL = "redis://localhost:6379/0"

func newTestRedisClient(t *testing.T) goredis.UniversalClient {
	t.Helper()

	url := os.Getenv("REDIS_URL")
	if url == "" {
		url = testRedisURL
	}

	opts, err := goredis.ParseURL(url)
	require.NoError(t, err)

	ctx := context.Background()
	client := goredis.NewClient(opts)
	require.NoError(t, client.Ping(ctx).Err(), "failed to connect to Redis")

	t.Cleanup(func() {
		_ = client.FlushDB(ctx).Err()
		_ = client.Close()
	})

	return client
}

func TestRedisStoreRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := cachestore.NewRedis(newTestRedisClient(t), "api")

	snap, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, snap)

	require.NoError(t, store.Save(ctx, testSnapshot("api")))

	snap, err = store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, "api", snap.Context)
	require.Len(t, snap.Routes, 2)
}

func TestRedisStoreClear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := cachestore.NewRedis(newTestRedisClient(t), "clear-test")

	require.NoError(t, store.Save(ctx, testSnapshot("clear-test")))
	require.NoError(t, store.Clear(ctx))

	snap, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestRedisStoreLocation(t *testing.T) {
	t.Parallel()

	store := cachestore.NewRedis(newTestRedisClient(t), "api")
	assert.Equal(t, "rutas:cache:api", store.Location())
}
