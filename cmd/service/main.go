// Package main is the entry point for the dataset service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/mental-detox/internal/adapters/http"
	"github.com/jsamuelsen/mental-detox/internal/adapters/http/handlers"
	"github.com/jsamuelsen/mental-detox/internal/adapters/storage/csvstore"
	"github.com/jsamuelsen/mental-detox/internal/app"
	"github.com/jsamuelsen/mental-detox/internal/platform/config"
	"github.com/jsamuelsen/mental-detox/internal/platform/logging"
	"github.com/jsamuelsen/mental-detox/internal/platform/metrics"
	"github.com/jsamuelsen/mental-detox/internal/platform/telemetry"
	"github.com/jsamuelsen/mental-detox/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Determine profile from environment
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Initialize logging
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting dataset service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	// 4. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 5. Load the dataset. A failed load is logged and the service keeps
	// running in the not-loaded state.
	store := csvstore.New(csvstore.Config{
		Path:   cfg.Dataset.Path,
		Logger: logger,
	})
	_ = store.Load(ctx)

	datasetMetrics, err := metrics.NewDataset(prometheus.DefaultRegisterer)
	if err != nil {
		return fmt.Errorf("registering dataset metrics: %w", err)
	}

	datasetMetrics.ObserveSnapshot(store.Snapshot(), store.Current().Skipped())

	// 6. Create health registry
	healthRegistry := ports.NewHealthRegistry()
	if err := healthRegistry.Register(store); err != nil {
		return fmt.Errorf("registering dataset health check: %w", err)
	}

	// 7. Create dataset service (application layer)
	datasetService := app.NewDatasetService(app.DatasetServiceConfig{
		Source:  store,
		Metrics: datasetMetrics,
		Logger:  logger,
	})

	// 8. Create handlers
	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)
	probeHandler := handlers.NewProbeHandler(healthRegistry, buildInfo, prometheus.DefaultGatherer)
	datasetHandler := handlers.NewDatasetHandler(datasetService)

	// 9. Create HTTP server
	server := http.New(&cfg.Server, logger)

	// 10. Setup router with all middleware and routes
	routerCfg := http.NewRouterConfig(cfg.App.Name, logger, datasetHandler, probeHandler)
	routerCfg.CORSOrigins = cfg.Server.CORSOrigins
	http.SetupRouter(server.Engine(), routerCfg)

	// 11. Serve until SIGINT/SIGTERM, then drain in-flight requests
	if err := server.Run(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
