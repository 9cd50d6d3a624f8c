package service

import (
	"context"
	"time"

	"github.com/turtacn/h5sign/internal/domain/models"
)

//go:generate mockery --name Cache --output mocks --outpkg mocks
// Cache is the only collaborator the engine performs I/O against.
// A miss is reported as found == false with a nil error.
// Cache 是签名引擎唯一依赖的外部存储。
type Cache interface {
	// Get reads key.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set writes key with a time to live.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// ProfileSource resolves protocol revisions.
type ProfileSource interface {
	Lookup(version string) (*models.VersionProfile, error)
	Versions() []string
}

// Clock returns the current time. Tests replace it to pin timestamps.
type Clock func() time.Time
