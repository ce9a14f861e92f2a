// Package cache is a typed TTL cache over go-cache.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const (
	DefaultExpiration      = 10 * time.Minute
	DefaultCleanupInterval = 30 * time.Minute
)

// Cache holds values of a single type keyed by string.
type Cache[V any] struct {
	c *gocache.Cache
}

// New creates a cache whose entries expire after ttl.
func New[V any](ttl, cleanupInterval time.Duration) *Cache[V] {
	return &Cache[V]{c: gocache.New(ttl, cleanupInterval)}
}

// Get returns the cached value for key, if present and of the right type.
func (c *Cache[V]) Get(key string) (V, bool) {
	var zero V
	v, found := c.c.Get(key)
	if !found {
		return zero, false
	}
	typed, ok := v.(V)
	if !ok {
		return zero, false
	}
	return typed, true
}

// Set stores value under key with the cache's default expiration.
func (c *Cache[V]) Set(key string, value V) {
	c.c.SetDefault(key, value)
}

// Delete drops key.
func (c *Cache[V]) Delete(key string) {
	c.c.Delete(key)
}

// Len returns the number of entries, including expired ones not yet
// cleaned up.
func (c *Cache[V]) Len() int {
	return c.c.ItemCount()
}
