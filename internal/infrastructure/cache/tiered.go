package cache

import (
	"context"
	"time"

	"github.com/turtacn/h5sign/internal/domain/service"
	"github.com/turtacn/h5sign/pkg/logger"
)

var _ service.Cache = (*TieredStore)(nil)

// TieredStore reads from a local L1 before a shared L2 and back-fills L1 on an L2 hit.
type TieredStore struct {
	l1     service.Cache
	l2     service.Cache
	l1TTL  time.Duration
	logger logger.Logger
}

// NewTieredStore combines l1 and l2. Back-filled L1 entries live for l1TTL.
func NewTieredStore(l1, l2 service.Cache, l1TTL time.Duration, log logger.Logger) *TieredStore {
	if log == nil {
		log = logger.NewNoopLogger()
	}
	return &TieredStore{l1: l1, l2: l2, l1TTL: l1TTL, logger: log.WithComponent("tiered_cache")}
}

// Get checks L1, then L2.
func (t *TieredStore) Get(ctx context.Context, key string) (string, bool, error) {
	if v, ok, err := t.l1.Get(ctx, key); err == nil && ok {
		return v, true, nil
	}
	v, ok, err := t.l2.Get(ctx, key)
	if err != nil || !ok {
		return "", false, err
	}
	if err := t.l1.Set(ctx, key, v, t.l1TTL); err != nil {
		t.logger.Warn(ctx, "L1 back-fill failed", logger.String("key", key), logger.Err(err))
	}
	return v, true, nil
}

// Set writes L2 first so a failed shared write is never masked by L1.
func (t *TieredStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := t.l2.Set(ctx, key, value, ttl); err != nil {
		return err
	}
	l1TTL := t.l1TTL
	if ttl > 0 && (l1TTL <= 0 || ttl < l1TTL) {
		l1TTL = ttl
	}
	return t.l1.Set(ctx, key, value, l1TTL)
}
