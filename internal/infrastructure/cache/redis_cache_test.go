package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}), 60)
}

func TestCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	type listing struct {
		Name   string  `json:"name"`
		Rating float64 `json:"rating"`
	}

	require.NoError(t, c.Set(ctx, "tailors:all", []listing{{Name: "Suit Studio", Rating: 4.8}}))

	var got []listing
	hit, err := c.Get(ctx, "tailors:all", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	require.Len(t, got, 1)
	assert.Equal(t, "Suit Studio", got[0].Name)
}

func TestCacheMissOnUnknownKey(t *testing.T) {
	c := newTestCache(t)

	var got []string
	hit, err := c.Get(context.Background(), "nope", &got)
	assert.NoError(t, err)
	assert.False(t, hit)
}

func TestCacheDel(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	require.NoError(t, c.Set(ctx, "k", "v"))
	require.NoError(t, c.Del(ctx, "k"))

	var got string
	hit, err := c.Get(ctx, "k", &got)
	assert.NoError(t, err)
	assert.False(t, hit)
}

// A nil cache is a valid, always-missing cache so callers never have to check
// whether caching is configured.
func TestNilCacheIsPermanentMiss(t *testing.T) {
	ctx := context.Background()
	var c *Cache

	assert.NoError(t, c.Set(ctx, "k", "v"))
	assert.NoError(t, c.Del(ctx, "k"))

	var got string
	hit, err := c.Get(ctx, "k", &got)
	assert.NoError(t, err)
	assert.False(t, hit)
}

func TestNewWithoutAddrReturnsNil(t *testing.T) {
	assert.Nil(t, New("", "", 0, 60))
}
