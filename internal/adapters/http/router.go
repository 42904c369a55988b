package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/mental-detox/internal/adapters/http/handlers"
	"github.com/jsamuelsen/mental-detox/internal/adapters/http/middleware"
	"github.com/jsamuelsen/mental-detox/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default deadline for dataset requests.
const DefaultRequestTimeout = 30 * time.Second

// metricsPath is exempt from the request timeout; scrapes can be slow.
const metricsPath = "/-/metrics"

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// ServiceName names the service in spans and metrics.
	ServiceName string

	// Logger is stored in every request context.
	Logger *slog.Logger

	// CORSOrigins lists allowed browser origins; "*" allows all.
	CORSOrigins []string

	// DatasetHandler serves /health, /issues and /get_data.
	DatasetHandler *handlers.DatasetHandler

	// ProbeHandler serves the /-/ routes. Optional.
	ProbeHandler *handlers.ProbeHandler

	// Timeout is the per-request deadline. Zero disables it.
	Timeout time.Duration
}

// SetupRouter configures middleware and routes on the Gin engine.
// Middleware order (first to last):
//  1. Recovery
//  2. CORS, so preflights end before any other work
//  3. Context logger, request ID, correlation ID
//  4. OpenTelemetry tracing and HTTP metrics
//  5. Access logging (skips /-/ routes)
//  6. Timeout
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	engine.Use(
		middleware.Recovery(),
		middleware.CORS(cfg.CORSOrigins),
		middleware.ContextLogger(logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
	)
	engine.Use(telemetry.Middleware(cfg.ServiceName)...)
	engine.Use(
		middleware.Logging(),
		middleware.Timeout(cfg.Timeout, metricsPath),
	)

	if cfg.ProbeHandler != nil {
		cfg.ProbeHandler.RegisterProbeRoutes(engine)
	}

	if cfg.DatasetHandler != nil {
		cfg.DatasetHandler.RegisterDatasetRoutes(engine)
	}
}

// NewRouterConfig creates a RouterConfig with the default timeout and
// wildcard CORS.
func NewRouterConfig(serviceName string, logger *slog.Logger, dataset *handlers.DatasetHandler, probes *handlers.ProbeHandler) RouterConfig {
	return RouterConfig{
		ServiceName:    serviceName,
		Logger:         logger,
		CORSOrigins:    []string{"*"},
		DatasetHandler: dataset,
		ProbeHandler:   probes,
		Timeout:        DefaultRequestTimeout,
	}
}
