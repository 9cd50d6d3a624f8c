// Package cache implements the fingerprint cache backends: an in-process store,
// a Redis store and a tiered combination of both.
package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/turtacn/h5sign/internal/domain/service"
)

var _ service.Cache = (*MemoryStore)(nil)

// MemoryStore keeps entries in process memory.
type MemoryStore struct {
	c *gocache.Cache
}

// NewMemoryStore creates a store that sweeps expired entries every cleanupInterval.
func NewMemoryStore(cleanupInterval time.Duration) *MemoryStore {
	if cleanupInterval <= 0 {
		cleanupInterval = 10 * time.Minute
	}
	return &MemoryStore{c: gocache.New(gocache.NoExpiration, cleanupInterval)}
}

// Get returns the value under key.
func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.c.Get(key)
	if !ok {
		return "", false, nil
	}
	s, ok := v.(string)
	return s, ok, nil
}

// Set stores value under key. A non-positive ttl never expires.
func (m *MemoryStore) Set(_ context.Context, key, value string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	m.c.Set(key, value, ttl)
	return nil
}

// Len returns the number of stored entries, expired ones included until swept.
func (m *MemoryStore) Len() int {
	return m.c.ItemCount()
}
