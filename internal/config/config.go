// Package config defines the runtime configuration of the h5sign service.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the root configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Log     LogConfig     `mapstructure:"log"`
	Signer  SignerConfig  `mapstructure:"signer"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Tracing TracingConfig `mapstructure:"tracing"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // gin mode: debug, release or test
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	CORSOrigins     []string      `mapstructure:"cors_origins"`
}

// Addr returns host:port.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// CacheConfig selects the fingerprint cache backends.
type CacheConfig struct {
	Memory          bool          `mapstructure:"memory"`
	Redis           bool          `mapstructure:"redis"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
	KeyPrefix       string        `mapstructure:"key_prefix"`
}

// RedisConfig configures the Redis connection.
type RedisConfig struct {
	Mode           string   `mapstructure:"mode"`
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Password       string   `mapstructure:"password"`
	DB             int      `mapstructure:"db"`
	ClusterAddrs   []string `mapstructure:"cluster_addrs"`
	SentinelAddrs  []string `mapstructure:"sentinel_addrs"`
	SentinelMaster string   `mapstructure:"sentinel_master"`
	PoolSize       int      `mapstructure:"pool_size"`
	MinIdleConns   int      `mapstructure:"min_idle_conns"`
	EnableTLS      bool     `mapstructure:"enable_tls"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"` // json or console
	OutputPath string `mapstructure:"output_path"`
}

// SignerConfig configures the signing engine.
type SignerConfig struct {
	Timezone       string   `mapstructure:"timezone"`
	DefaultVersion string   `mapstructure:"default_version"`
	DefaultStk     []string `mapstructure:"default_stk"`
	ProfilesFile   string   `mapstructure:"profiles_file"`
}

// Location resolves Timezone.
func (s SignerConfig) Location() (*time.Location, error) {
	return time.LoadLocation(s.Timezone)
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// TracingConfig configures OpenTelemetry export.
type TracingConfig struct {
	Enabled        bool    `mapstructure:"enabled"`
	JaegerEndpoint string  `mapstructure:"jaeger_endpoint"`
	ServiceName    string  `mapstructure:"service_name"`
	Environment    string  `mapstructure:"environment"`
	SamplingRate   float64 `mapstructure:"sampling_rate"`
}

// Validate checks the configuration and fills derived defaults.
// Fingerprints are always pin-scoped, so at least one cache stays enabled.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if _, err := c.Signer.Location(); err != nil {
		return fmt.Errorf("invalid signer timezone %q: %w", c.Signer.Timezone, err)
	}
	if strings.TrimSpace(c.Signer.DefaultVersion) == "" {
		return fmt.Errorf("signer default version is empty")
	}
	if !c.Cache.Memory && !c.Cache.Redis {
		c.Cache.Memory = true
	}
	if c.Cache.Redis && c.Redis.Mode == "standalone" && c.Redis.Host == "" {
		return fmt.Errorf("redis cache enabled but redis host is empty")
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "json", "console":
	default:
		return fmt.Errorf("unsupported log format: %s", c.Log.Format)
	}
	if c.Tracing.Enabled && c.Tracing.JaegerEndpoint == "" {
		return fmt.Errorf("tracing enabled but jaeger endpoint is empty")
	}
	if c.Tracing.SamplingRate < 0 || c.Tracing.SamplingRate > 1 {
		return fmt.Errorf("tracing sampling rate must be within [0, 1]")
	}
	return nil
}
