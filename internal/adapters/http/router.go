package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/shapeshift-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen/shapeshift-gateway/internal/adapters/http/handlers"
	"github.com/jsamuelsen/shapeshift-gateway/internal/adapters/http/middleware"
	"github.com/jsamuelsen/shapeshift-gateway/internal/platform/config"
	"github.com/jsamuelsen/shapeshift-gateway/internal/platform/telemetry"
)

// DefaultRequestTimeout is the /api/v1 deadline. It is longer than one
// upstream attempt and shorter than the server write timeout.
const DefaultRequestTimeout = 20 * time.Second

// RouterConfig carries what SetupRouter mounts. Nil handlers are skipped.
type RouterConfig struct {
	Logger          *slog.Logger
	AppConfig       *config.AppConfig
	HealthHandler   *handlers.HealthHandler
	ExchangeHandler *handlers.ExchangeHandler

	// Timeout is the /api/v1 deadline. Zero disables it.
	Timeout time.Duration
}

// SetupRouter installs the middleware chain and routes. The chain runs
// recovery, request and correlation IDs, tracing, server metrics, then
// access logging. Probes live under /-/; the gateway API under /api/v1
// additionally gets the request deadline. Unknown routes and methods
// answer with the standard error envelope.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.HandleMethodNotAllowed = true

	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.TracingMiddleware(cfg.AppConfig.Name),
		telemetry.Middleware(),
		middleware.Logging(cfg.Logger),
	)

	engine.NoRoute(func(c *gin.Context) {
		dto.RespondWithCode(c, dto.ErrorCodeNotFound, "route not found")
	})
	engine.NoMethod(func(c *gin.Context) {
		dto.RespondWithCode(c, dto.ErrorCodeMethodNotAllowed, "method not allowed")
	})

	// Probes run without the request deadline.
	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterRoutes(engine.Group("/-"))
	}

	apiV1 := engine.Group("/api/v1")
	apiV1.Use(middleware.Timeout(cfg.Timeout))

	if cfg.ExchangeHandler != nil {
		cfg.ExchangeHandler.RegisterExchangeRoutes(apiV1)
	}
}

// NewDefaultRouterConfig uses DefaultRequestTimeout.
func NewDefaultRouterConfig(
	logger *slog.Logger,
	appCfg *config.AppConfig,
	healthHandler *handlers.HealthHandler,
	exchangeHandler *handlers.ExchangeHandler,
) RouterConfig {
	return RouterConfig{
		Logger:          logger,
		AppConfig:       appCfg,
		HealthHandler:   healthHandler,
		ExchangeHandler: exchangeHandler,
		Timeout:         DefaultRequestTimeout,
	}
}
