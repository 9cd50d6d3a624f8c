// Package redis manages the Redis client backing the fingerprint cache.
// It supports standalone, cluster and sentinel deployments.
package redis

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/turtacn/h5sign/internal/config"
	"github.com/turtacn/h5sign/pkg/logger"
)

// ConnectionMode defines the Redis deployment mode
type ConnectionMode string

const (
	// ModeStandalone represents a single Redis instance
	ModeStandalone ConnectionMode = "standalone"
	// ModeCluster represents Redis cluster mode
	ModeCluster ConnectionMode = "cluster"
	// ModeSentinel represents Redis sentinel mode
	ModeSentinel ConnectionMode = "sentinel"
)

const (
	defaultDialTimeout  = 5 * time.Second
	defaultReadTimeout  = 3 * time.Second
	defaultWriteTimeout = 3 * time.Second
	defaultMaxRetries   = 3
)

// Connection owns the Redis client lifecycle.
type Connection struct {
	cfg    config.RedisConfig
	client redis.UniversalClient
	logger logger.Logger
}

// NewConnection creates a connection manager. Call Connect before use.
func NewConnection(cfg config.RedisConfig, log logger.Logger) *Connection {
	if log == nil {
		log = logger.NewNoopLogger()
	}
	return &Connection{cfg: cfg, logger: log.WithComponent("redis")}
}

// Connect builds the client for the configured mode and verifies it with PING.
func (c *Connection) Connect(ctx context.Context) error {
	if c.client != nil {
		c.logger.Warn(ctx, "Redis connection already initialized")
		return nil
	}

	client, err := c.newClient()
	if err != nil {
		c.logger.Error(ctx, "Failed to build Redis client", err, logger.String("mode", c.cfg.Mode))
		return fmt.Errorf("redis connection failed: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, defaultDialTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		c.logger.Error(ctx, "Redis ping failed", err)
		_ = client.Close()
		return fmt.Errorf("redis ping failed: %w", err)
	}

	c.client = client
	c.logger.Info(ctx, "Redis connection established",
		logger.String("mode", c.cfg.Mode),
		logger.Int("pool_size", c.cfg.PoolSize),
	)
	return nil
}

func (c *Connection) newClient() (redis.UniversalClient, error) {
	var tlsConfig *tls.Config
	if c.cfg.EnableTLS {
		tlsConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	switch ConnectionMode(c.cfg.Mode) {
	case "", ModeStandalone:
		addr := fmt.Sprintf("%s:%d", c.cfg.Host, c.cfg.Port)
		return redis.NewClient(&redis.Options{
			Addr:         addr,
			Password:     c.cfg.Password,
			DB:           c.cfg.DB,
			PoolSize:     c.cfg.PoolSize,
			MinIdleConns: c.cfg.MinIdleConns,
			DialTimeout:  defaultDialTimeout,
			ReadTimeout:  defaultReadTimeout,
			WriteTimeout: defaultWriteTimeout,
			MaxRetries:   defaultMaxRetries,
			TLSConfig:    tlsConfig,
		}), nil
	case ModeCluster:
		if len(c.cfg.ClusterAddrs) == 0 {
			return nil, fmt.Errorf("cluster addresses not configured")
		}
		return redis.NewClusterClient(&redis.ClusterOptions{
			Addrs:        c.cfg.ClusterAddrs,
			Password:     c.cfg.Password,
			PoolSize:     c.cfg.PoolSize,
			MinIdleConns: c.cfg.MinIdleConns,
			DialTimeout:  defaultDialTimeout,
			ReadTimeout:  defaultReadTimeout,
			WriteTimeout: defaultWriteTimeout,
			MaxRetries:   defaultMaxRetries,
			TLSConfig:    tlsConfig,
		}), nil
	case ModeSentinel:
		if len(c.cfg.SentinelAddrs) == 0 {
			return nil, fmt.Errorf("sentinel addresses not configured")
		}
		if c.cfg.SentinelMaster == "" {
			return nil, fmt.Errorf("sentinel master name not configured")
		}
		return redis.NewFailoverClient(&redis.FailoverOptions{
			MasterName:    c.cfg.SentinelMaster,
			SentinelAddrs: c.cfg.SentinelAddrs,
			Password:      c.cfg.Password,
			DB:            c.cfg.DB,
			PoolSize:      c.cfg.PoolSize,
			MinIdleConns:  c.cfg.MinIdleConns,
			DialTimeout:   defaultDialTimeout,
			ReadTimeout:   defaultReadTimeout,
			WriteTimeout:  defaultWriteTimeout,
			MaxRetries:    defaultMaxRetries,
			TLSConfig:     tlsConfig,
		}), nil
	default:
		return nil, fmt.Errorf("unsupported Redis mode: %s", c.cfg.Mode)
	}
}

// Client returns the client, or nil before Connect succeeds.
func (c *Connection) Client() redis.UniversalClient {
	return c.client
}

// Ping checks connectivity. It backs the readiness probe.
func (c *Connection) Ping(ctx context.Context) error {
	if c.client == nil {
		return fmt.Errorf("redis connection not initialized")
	}
	return c.client.Ping(ctx).Err()
}

// HealthCheck reports latency and pool statistics.
func (c *Connection) HealthCheck(ctx context.Context) (map[string]interface{}, error) {
	if c.client == nil {
		return nil, fmt.Errorf("redis connection not initialized")
	}
	health := make(map[string]interface{})

	start := time.Now()
	err := c.client.Ping(ctx).Err()
	health["connected"] = err == nil
	health["latency_ms"] = time.Since(start).Milliseconds()
	if err != nil {
		health["error"] = err.Error()
		return health, err
	}

	stats := c.client.PoolStats()
	health["total_conns"] = stats.TotalConns
	health["idle_conns"] = stats.IdleConns
	health["pool_timeouts"] = stats.Timeouts
	return health, nil
}

// Close releases the client.
func (c *Connection) Close() error {
	if c.client == nil {
		return nil
	}
	err := c.client.Close()
	c.client = nil
	if err != nil {
		c.logger.Error(context.Background(), "Failed to close Redis connection", err)
		return err
	}
	c.logger.Info(context.Background(), "Redis connection closed")
	return nil
}
