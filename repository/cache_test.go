package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockCache(t *testing.T) {
	ctx := context.Background()
	cache := NewMockCache()

	_, ok := cache.Get(ctx, "missing")
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "k", "v"))
	val, ok := cache.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "v", val)
}

func newTestRedis(t *testing.T, ttl time.Duration) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	cache := NewRedisCache(mr.Addr(), ttl, nil)
	t.Cleanup(func() { _ = cache.Close() })
	return cache, mr
}

func TestRedisCache_SetGet(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestRedis(t, 0)

	require.NoError(t, cache.Ping(ctx))

	_, ok := cache.Get(ctx, "summary:1:abc")
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "summary:1:abc", "narrative"))

	val, ok := cache.Get(ctx, "summary:1:abc")
	assert.True(t, ok)
	assert.Equal(t, "narrative", val)

	stored, err := mr.Get(redisKeyPrefix + "summary:1:abc")
	require.NoError(t, err)
	assert.Equal(t, "narrative", stored)
}

func TestRedisCache_Expiry(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestRedis(t, time.Minute)

	require.NoError(t, cache.Set(ctx, "k", "v"))
	assert.Equal(t, time.Minute, mr.TTL(redisKeyPrefix+"k"))

	mr.FastForward(2 * time.Minute)

	_, ok := cache.Get(ctx, "k")
	assert.False(t, ok)
}

func TestRedisCache_ServerDown(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestRedis(t, 0)
	mr.Close()

	assert.Error(t, cache.Ping(ctx))
	assert.Error(t, cache.Set(ctx, "k", "v"))

	_, ok := cache.Get(ctx, "k")
	assert.False(t, ok)
}
