package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a small JSON read-cache over Redis. A nil *Cache is valid and
// behaves as a permanent miss, so callers never branch on whether caching
// is configured.
type Cache struct {
	c   *redis.Client
	ttl time.Duration
}

func New(addr, password string, db, ttlSeconds int) *Cache {
	if addr == "" {
		return nil
	}
	return &Cache{
		c:   redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db}),
		ttl: time.Duration(ttlSeconds) * time.Second,
	}
}

// NewWithClient wraps an existing client; used by tests with miniredis.
func NewWithClient(c *redis.Client, ttlSeconds int) *Cache {
	return &Cache{c: c, ttl: time.Duration(ttlSeconds) * time.Second}
}

func (r *Cache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if r == nil {
		return false, nil
	}
	v, err := r.c.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(v, dst)
}

func (r *Cache) Set(ctx context.Context, key string, v any) error {
	if r == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return r.c.Set(ctx, key, b, r.ttl).Err()
}

func (r *Cache) Del(ctx context.Context, key string) error {
	if r == nil {
		return nil
	}
	return r.c.Del(ctx, key).Err()
}
