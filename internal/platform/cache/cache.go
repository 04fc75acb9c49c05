// Package cache wraps the Redis client used for short-lived report caching.
// A nil client disables caching; every operation degrades to a miss.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient instantiates a Redis client. It returns nil when addr is
// empty or the server cannot be reached, and callers degrade gracefully.
func NewRedisClient(addr, password string, db int) *redis.Client {
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return client
}

// Cache is a JSON value cache with a fixed TTL.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a cache over the given client. client may be nil.
func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Enabled reports whether a Redis connection backs this cache.
func (c *Cache) Enabled() bool {
	return c != nil && c.client != nil
}

// GetJSON loads the value stored under key into dest. It returns false on a
// miss, a decode failure, or when caching is disabled.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	if !c.Enabled() {
		return false
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false
	}
	return true
}

// SetJSON stores the value under key for the cache TTL. Failures are
// swallowed; the next read just misses.
func (c *Cache) SetJSON(ctx context.Context, key string, value any) {
	if !c.Enabled() {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.client.Set(ctx, key, raw, c.ttl)
}

// Invalidate removes keys from the cache.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if !c.Enabled() || len(keys) == 0 {
		return
	}
	c.client.Del(ctx, keys...)
}
