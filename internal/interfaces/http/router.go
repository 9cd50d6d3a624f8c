// Package http wires the gin engine of the h5sign API.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"

	"github.com/turtacn/h5sign/internal/application/dto"
	"github.com/turtacn/h5sign/internal/config"
	"github.com/turtacn/h5sign/internal/infrastructure/monitoring"
	"github.com/turtacn/h5sign/internal/interfaces/http/handlers"
	"github.com/turtacn/h5sign/internal/interfaces/http/middleware"
	"github.com/turtacn/h5sign/pkg/constants"
	"github.com/turtacn/h5sign/pkg/logger"
)

// Handlers groups the endpoint handlers.
type Handlers struct {
	Algo    *handlers.AlgoHandler
	Command *handlers.CommandHandler
	Health  *handlers.HealthHandler
}

// Router HTTP 路由器
type Router struct {
	engine   *gin.Engine
	config   config.ServerConfig
	metrics  config.MetricsConfig
	logger   logger.Logger
	handlers Handlers
	tracer   trace.Tracer
	recorder middleware.HTTPMetrics
	gatherer prometheus.Gatherer
	server   *http.Server
}

// NewRouter 创建路由器
func NewRouter(
	cfg *config.Config,
	log logger.Logger,
	h Handlers,
	tracer trace.Tracer,
	recorder middleware.HTTPMetrics,
	gatherer prometheus.Gatherer,
) *Router {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	r := &Router{
		engine:   gin.New(),
		config:   cfg.Server,
		metrics:  cfg.Metrics,
		logger:   log.WithComponent("http_router"),
		handlers: h,
		tracer:   tracer,
		recorder: recorder,
		gatherer: gatherer,
	}
	r.setupRoutes()
	return r
}

// Engine exposes the gin engine, mainly for tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// setupRoutes 设置路由
func (r *Router) setupRoutes() {
	// 全局中间件
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	if r.tracer != nil {
		r.engine.Use(middleware.ObservabilityMiddleware(r.tracer, r.recorder))
	}
	r.engine.Use(middleware.AccessLog(r.logger))

	// CORS 配置
	origins := r.config.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.engine.Use(cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", constants.HeaderRequestID},
		ExposeHeaders: []string{constants.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}))

	// 健康检查
	r.engine.GET("/health", r.handlers.Health.HealthCheck)
	r.engine.GET("/ready", r.handlers.Health.ReadinessCheck)
	r.engine.GET("/live", r.handlers.Health.LivenessCheck)

	if r.metrics.Enabled {
		path := r.metrics.Path
		if path == "" {
			path = "/metrics"
		}
		r.engine.GET(path, gin.WrapH(promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})))
	}

	// Pprof 性能分析（仅 debug 模式）
	if gin.Mode() == gin.DebugMode {
		pprof.Register(r.engine)
	}

	// 加签接口
	r.engine.POST("/h5st", r.handlers.Algo.H5st)
	r.engine.GET("/h5st", r.handlers.Algo.H5stQuery)
	r.engine.POST("/sign", r.handlers.Algo.Sign)
	r.engine.GET("/sign", r.handlers.Algo.SignQuery)
	r.engine.GET("/versions", r.handlers.Algo.Versions)

	// 口令
	r.engine.GET("/jComExchange", r.handlers.Command.Exchange)
	r.engine.POST("/jComExchange", r.handlers.Command.Exchange)

	// 404 处理
	r.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NotFoundResponse("route "+c.Request.URL.Path, monitoring.TraceID(c.Request.Context())))
	})
}

// Start 启动 HTTP 服务器, blocking until the server stops.
func (r *Router) Start() error {
	addr := r.config.Addr()
	r.server = &http.Server{
		Addr:           addr,
		Handler:        r.engine,
		ReadTimeout:    r.config.ReadTimeout,
		WriteTimeout:   r.config.WriteTimeout,
		MaxHeaderBytes: 1 << 20, // 1MB
	}

	r.logger.Info(context.Background(), "Starting HTTP server", logger.String("address", addr))
	if err := r.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop 停止 HTTP 服务器
func (r *Router) Stop(ctx context.Context) error {
	if r.server == nil {
		return nil
	}
	r.logger.Info(ctx, "Stopping HTTP server...")
	return r.server.Shutdown(ctx)
}
