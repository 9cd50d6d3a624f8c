package service_test

import (
	"context"
	"sync"
	"time"

	"github.com/turtacn/h5sign/internal/domain/profiles"
	"github.com/turtacn/h5sign/internal/domain/service"
	"github.com/turtacn/h5sign/pkg/utils"
)

// memCache is a minimal in-memory Cache for engine tests.
type memCache struct {
	mu   sync.Mutex
	data map[string]string
	sets int
}

func newMemCache() *memCache {
	return &memCache{data: map[string]string{}}
}

func (c *memCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	return v, ok, nil
}

func (c *memCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	c.sets++
	return nil
}

var fixedNow = time.Date(2024, 5, 9, 12, 30, 45, 123*int(time.Millisecond), time.UTC)

func fixedClock() time.Time { return fixedNow }

func newTestEngine(seed uint64, cache service.Cache) *service.AlgoEngine {
	loc, _ := time.LoadLocation("Asia/Shanghai")
	return service.NewAlgoEngine(service.EngineDeps{
		Profiles: profiles.NewTable(),
		Cache:    cache,
		Rand:     utils.NewLockedRand(seed),
		Clock:    fixedClock,
		Location: loc,
	})
}
