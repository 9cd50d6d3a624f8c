// Command server runs the h5sign HTTP API.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	appservice "github.com/turtacn/h5sign/internal/application/service"
	"github.com/turtacn/h5sign/internal/config"
	"github.com/turtacn/h5sign/internal/domain/profiles"
	domainservice "github.com/turtacn/h5sign/internal/domain/service"
	"github.com/turtacn/h5sign/internal/infrastructure/cache"
	"github.com/turtacn/h5sign/internal/infrastructure/monitoring"
	"github.com/turtacn/h5sign/internal/infrastructure/persistence/redis"
	"github.com/turtacn/h5sign/internal/infrastructure/profilewatch"
	"github.com/turtacn/h5sign/internal/interfaces/http"
	"github.com/turtacn/h5sign/internal/interfaces/http/handlers"
	"github.com/turtacn/h5sign/pkg/logger"
)

// l1TTL bounds how long the in-process tier keeps a Redis value.
const l1TTL = 10 * time.Minute

func main() {
	configFile := flag.String("config", "", "path to the config file")
	flag.Parse()

	// Logger for startup
	startupLogger, err := monitoring.NewZapLogger(config.LogConfig{Level: "info", Format: "json"})
	if err != nil {
		log.Fatalf("Failed to create startup logger: %v", err)
	}

	// Load config
	cfg, err := config.LoadConfig(*configFile, startupLogger)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	appLogger, err := monitoring.NewZapLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	if err := run(cfg, appLogger); err != nil {
		appLogger.Fatal(context.Background(), "Server exited with error", err)
	}
}

func run(cfg *config.Config, appLogger logger.Logger) error {
	ctx := context.Background()

	// Initialize tracing
	tracing, err := monitoring.NewTracingManager(cfg.Tracing, appLogger)
	if err != nil {
		return err
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := monitoring.NewMetricsAdapter(monitoring.NewMetrics(registry))

	// Fingerprint cache
	deps := map[string]handlers.Pinger{}
	var store domainservice.Cache
	var redisConn *redis.Connection
	if cfg.Cache.Redis {
		redisConn = redis.NewConnection(cfg.Redis, appLogger)
		if err := redisConn.Connect(ctx); err != nil {
			return err
		}
		deps["redis"] = redisConn
		store = cache.NewRedisStore(redisConn.Client(), cfg.Cache.KeyPrefix)
		if cfg.Cache.Memory {
			store = cache.NewTieredStore(cache.NewMemoryStore(cfg.Cache.CleanupInterval), store, l1TTL, appLogger)
		}
	} else {
		store = cache.NewMemoryStore(cfg.Cache.CleanupInterval)
	}

	// Version profiles
	watchCtx, stopWatch := context.WithCancel(ctx)
	defer stopWatch()
	table := profiles.NewTable()
	if cfg.Signer.ProfilesFile != "" {
		n, err := table.LoadFile(cfg.Signer.ProfilesFile)
		if err != nil {
			return err
		}
		appLogger.Info(ctx, "Loaded extra version profiles", logger.Int("count", n), logger.String("file", cfg.Signer.ProfilesFile))

		watcher, err := profilewatch.New(cfg.Signer.ProfilesFile, table, appLogger)
		if err != nil {
			return err
		}
		go watcher.Run(watchCtx)
	}

	loc, err := cfg.Signer.Location()
	if err != nil {
		return err
	}
	engine := domainservice.NewAlgoEngine(domainservice.EngineDeps{
		Profiles:   table,
		Cache:      store,
		Metrics:    metrics,
		Logger:     appLogger,
		Location:   loc,
		DefaultStk: cfg.Signer.DefaultStk,
	})

	// Application services and handlers
	algoService := appservice.NewAlgoAppService(engine, nil, cfg.Signer.DefaultVersion, appLogger)
	commandService := appservice.NewCommandAppService(engine, nil, appLogger)

	router := http.NewRouter(cfg, appLogger, http.Handlers{
		Algo:    handlers.NewAlgoHandler(algoService, appLogger),
		Command: handlers.NewCommandHandler(commandService, appLogger),
		Health:  handlers.NewHealthHandler(deps, appLogger),
	}, tracing.Tracer(), metrics, registry)

	errCh := make(chan error, 1)
	go func() {
		errCh <- router.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case sig := <-quit:
		appLogger.Info(ctx, "Shutting down", logger.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := router.Stop(shutdownCtx); err != nil {
		appLogger.Error(shutdownCtx, "Server forced to shutdown", err)
	}
	if redisConn != nil {
		if err := redisConn.Close(); err != nil {
			appLogger.Warn(shutdownCtx, "Failed to close Redis connection", logger.Err(err))
		}
	}
	if err := tracing.Shutdown(shutdownCtx); err != nil {
		appLogger.Warn(shutdownCtx, "Failed to shut down tracing", logger.Err(err))
	}
	appLogger.Info(shutdownCtx, "Server stopped")
	return nil
}
