// Command service runs the ShapeShift gateway.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/shapeshift-gateway/internal/adapters/clients"
	"github.com/jsamuelsen/shapeshift-gateway/internal/adapters/clients/shapeshift"
	"github.com/jsamuelsen/shapeshift-gateway/internal/adapters/http"
	"github.com/jsamuelsen/shapeshift-gateway/internal/adapters/http/handlers"
	"github.com/jsamuelsen/shapeshift-gateway/internal/app"
	"github.com/jsamuelsen/shapeshift-gateway/internal/platform/config"
	"github.com/jsamuelsen/shapeshift-gateway/internal/platform/logging"
	"github.com/jsamuelsen/shapeshift-gateway/internal/platform/telemetry"
	"github.com/jsamuelsen/shapeshift-gateway/internal/ports"
)

// Set with -ldflags "-X main.Version=... -X main.Commit=... -X main.BuildTime=...".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "shapeshift-gateway: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := newLogger(cfg)
	logging.SetDefault(logger)

	logger.Info("starting gateway",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
		slog.String("upstream", cfg.ShapeShift.BaseURL),
	)

	ctx := context.Background()

	tel, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
		Insecure:     cfg.Telemetry.Insecure,
	})
	if err != nil {
		return fmt.Errorf("starting telemetry: %w", err)
	}

	defer func() {
		if err := tel.Shutdown(ctx); err != nil {
			logger.Error("telemetry shutdown failed", slog.Any("error", err))
		}
	}()

	server, err := newServer(cfg, logger)
	if err != nil {
		return err
	}

	return serve(ctx, logger, server, cfg.Server)
}

func newLogger(cfg *config.Config) *slog.Logger {
	file := cfg.Log.File

	return logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    file.Enabled,
			Path:       file.Path,
			MaxSizeMB:  file.MaxSizeMB,
			MaxBackups: file.MaxBackups,
			MaxAgeDays: file.MaxAgeDays,
			Compress:   file.Compress,
		},
	})
}

// newServer wires transport, ShapeShift adapter, service and handlers
// into a routed HTTP server.
func newServer(cfg *config.Config, logger *slog.Logger) (*http.Server, error) {
	transport, err := clients.New(&clients.Config{
		BaseURL:     cfg.ShapeShift.BaseURL,
		ServiceName: cfg.ShapeShift.Name,
		Timeout:     cfg.Client.Timeout,
		Transport:   cfg.Client.Transport,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating upstream transport: %w", err)
	}

	exchange, err := shapeshift.New(shapeshift.Config{
		Client:     transport,
		Logger:     logger,
		Registerer: prometheus.DefaultRegisterer,
	})
	if err != nil {
		return nil, fmt.Errorf("creating shapeshift client: %w", err)
	}

	health := ports.NewHealthRegistry(ports.WithCheckTimeout(cfg.Client.Timeout))
	if err := health.Register(exchange); err != nil {
		return nil, fmt.Errorf("registering health check: %w", err)
	}

	service := app.NewExchangeService(app.ExchangeServiceConfig{
		Exchange: exchange,
		APIKey:   cfg.ShapeShift.APIKey,
		Logger:   logger,
	})

	server := http.New(&cfg.Server, logger)
	http.SetupRouter(server.Engine(), http.NewDefaultRouterConfig(logger, &cfg.App,
		handlers.NewHealthHandler(health, handlers.NewBuildInfo(Version, Commit, BuildTime), prometheus.DefaultGatherer),
		handlers.NewExchangeHandler(service),
	))

	return server, nil
}

// serve runs server until it fails or SIGINT/SIGTERM arrives, then drains
// in-flight requests within the shutdown timeout.
func serve(ctx context.Context, logger *slog.Logger, server *http.Server, cfg config.ServerConfig) error {
	serverErr := server.Start()

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err, ok := <-serverErr:
		if ok && err != nil {
			return fmt.Errorf("server error: %w", err)
		}

		return nil
	case <-sigCtx.Done():
		logger.Info("shutdown signal received", slog.Duration("timeout", cfg.ShutdownTimeout))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
