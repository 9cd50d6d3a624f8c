package config

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/turtacn/h5sign/pkg/constants"
	"github.com/turtacn/h5sign/pkg/logger"
)

// EnvPrefix prefixes every environment variable read by AutomaticEnv.
const EnvPrefix = "H5SIGN"

// legacyEnv binds the unprefixed variable names older deployments use.
var legacyEnv = map[string]string{
	"server.port":    "PORT",
	"cache.memory":   "MEMORY_CACHE",
	"cache.redis":    "REDIS_CACHE",
	"redis.host":     "REDIS_HOST",
	"redis.port":     "REDIS_PORT",
	"redis.password": "REDIS_PASSWORD",
	"redis.db":       "REDIS_DB",
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3001)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "10s")
	v.SetDefault("server.shutdown_timeout", "15s")
	v.SetDefault("server.cors_origins", []string{"*"})

	v.SetDefault("cache.memory", true)
	v.SetDefault("cache.redis", false)
	v.SetDefault("cache.cleanup_interval", "10m")
	v.SetDefault("cache.key_prefix", "")

	v.SetDefault("redis.mode", "standalone")
	v.SetDefault("redis.host", "127.0.0.1")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.min_idle_conns", 2)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.output_path", "stdout")

	v.SetDefault("signer.timezone", constants.DefaultTimezone)
	v.SetDefault("signer.default_version", constants.DefaultH5stVersion)
	v.SetDefault("signer.default_stk", constants.DefaultStk)
	v.SetDefault("signer.profiles_file", "")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.service_name", constants.ServiceName)
	v.SetDefault("tracing.environment", "production")
	v.SetDefault("tracing.sampling_rate", 1.0)
}

// LoadConfig loads the configuration from defaults, an optional config file,
// a .env file and environment variables, in increasing precedence.
// configFile may be empty to search the default locations.
func LoadConfig(configFile string, log logger.Logger) (*Config, error) {
	if log == nil {
		log = logger.NewNoopLogger()
	}
	ctx := context.Background()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn(ctx, "Failed to load .env file", logger.Err(err))
	}

	v := viper.New()
	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs/")
		v.AddConfigPath("/etc/h5sign/")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		log.Debug(ctx, "No config file found, using defaults and environment")
	} else {
		log.Info(ctx, "Loaded config file", logger.String("path", v.ConfigFileUsed()))
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range legacyEnv {
		if err := v.BindEnv(key, EnvPrefix+"_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
