package repository

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache is an in-process CacheRepository with per-entry expiry.
type MemoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache creates a cache whose entries expire after ttl. Expired
// entries are purged every two ttl periods.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		store: gocache.New(ttl, 2*ttl),
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	val, ok := m.store.Get(key)
	if !ok {
		return "", false
	}
	s, ok := val.(string)
	return s, ok
}

func (m *MemoryCache) Set(_ context.Context, key string, value string) error {
	m.store.SetDefault(key, value)
	return nil
}

func (m *MemoryCache) ItemCount() int {
	return m.store.ItemCount()
}
