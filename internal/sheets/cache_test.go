package sheets

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCache(t *testing.T, ttl time.Duration) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewCache(client, ttl, testLogger()), mr
}

func TestCacheRoundTrip(t *testing.T) {
	cache, _ := testCache(t, time.Minute)
	ctx := context.Background()

	rows := []Row{{"id": float64(1), "nama": "Budi"}}
	cache.Set(ctx, "warga", rows)

	got, ok := cache.Get(ctx, "warga")
	require.True(t, ok)
	assert.Equal(t, rows, got)
}

func TestCacheMiss(t *testing.T) {
	cache, _ := testCache(t, time.Minute)

	_, ok := cache.Get(context.Background(), "warga")
	assert.False(t, ok)
}

func TestCacheExpiry(t *testing.T) {
	cache, mr := testCache(t, time.Minute)
	ctx := context.Background()

	cache.Set(ctx, "warga", []Row{{"id": float64(1)}})
	mr.FastForward(2 * time.Minute)

	_, ok := cache.Get(ctx, "warga")
	assert.False(t, ok)
}

func TestCacheInvalidate(t *testing.T) {
	cache, _ := testCache(t, time.Minute)
	ctx := context.Background()

	cache.Set(ctx, "warga", []Row{{"id": float64(1)}})
	cache.Invalidate(ctx, "warga")

	_, ok := cache.Get(ctx, "warga")
	assert.False(t, ok)
}

func TestNilCacheIsSafe(t *testing.T) {
	var cache *Cache
	ctx := context.Background()

	_, ok := cache.Get(ctx, "warga")
	assert.False(t, ok)
	cache.Set(ctx, "warga", []Row{})
	cache.Invalidate(ctx, "warga")
}
