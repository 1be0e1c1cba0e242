// Package cache provides an in-memory TTL cache for document results.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/port"
)

type memoryCache struct {
	c *gocache.Cache
}

// NewMemoryCache creates a go-cache backed ResultCache.
func NewMemoryCache(ttl, cleanupInterval time.Duration) port.ResultCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	if cleanupInterval <= 0 {
		cleanupInterval = 15 * time.Minute
	}
	return &memoryCache{c: gocache.New(ttl, cleanupInterval)}
}

func (m *memoryCache) Get(key string) (interface{}, bool) {
	return m.c.Get(key)
}

func (m *memoryCache) Set(key string, value interface{}) {
	m.c.Set(key, value, gocache.DefaultExpiration)
}

func (m *memoryCache) Delete(key string) {
	m.c.Delete(key)
}
