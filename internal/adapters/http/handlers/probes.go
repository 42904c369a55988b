// Package handlers provides HTTP request handlers for the dataset service.
package handlers

import (
	"net/http"
	"runtime"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jsamuelsen/mental-detox/internal/ports"
)

// BuildInfo contains build-time information about the service.
// These values are typically injected at build time using ldflags.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
}

// NewBuildInfo creates a BuildInfo with the Go version automatically set.
func NewBuildInfo(version, commit, buildTime string) BuildInfo {
	return BuildInfo{
		Version:   version,
		Commit:    commit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}
}

// ProbeHandler serves the operational endpoints under /-/.
type ProbeHandler struct {
	registry  ports.HealthRegistry
	buildInfo BuildInfo
	gatherer  prometheus.Gatherer
}

// NewProbeHandler creates a probe handler. A nil gatherer selects the
// default Prometheus registry.
func NewProbeHandler(registry ports.HealthRegistry, buildInfo BuildInfo, gatherer prometheus.Gatherer) *ProbeHandler {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	return &ProbeHandler{
		registry:  registry,
		buildInfo: buildInfo,
		gatherer:  gatherer,
	}
}

type livenessResponse struct {
	Status string `json:"status"`
}

// Liveness handles GET /-/live. It never consults the dataset.
func (h *ProbeHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, livenessResponse{Status: "ok"})
}

type readinessResponse struct {
	Status string                        `json:"status"`
	Checks map[string]*ports.CheckResult `json:"checks,omitempty"`
}

// Readiness handles GET /-/ready.
// Returns 503 while any registered check (the dataset, in practice) is unhealthy.
func (h *ProbeHandler) Readiness(c *gin.Context) {
	result := h.registry.CheckAll(c.Request.Context())

	status := http.StatusOK
	if result.Status == ports.HealthStatusUnhealthy {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, readinessResponse{
		Status: string(result.Status),
		Checks: result.Checks,
	})
}

// BuildInfoHandler handles GET /-/build.
func (h *ProbeHandler) BuildInfoHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.buildInfo)
}

// MetricsHandler returns the Prometheus exposition handler for the gatherer.
func (h *ProbeHandler) MetricsHandler() http.Handler {
	return promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{})
}

// RegisterProbeRoutes registers the /-/ routes on the engine:
//   - GET /-/live
//   - GET /-/ready
//   - GET /-/build
//   - GET /-/metrics
func (h *ProbeHandler) RegisterProbeRoutes(engine *gin.Engine) {
	probes := engine.Group("/-")
	probes.GET("/live", h.Liveness)
	probes.GET("/ready", h.Readiness)
	probes.GET("/build", h.BuildInfoHandler)
	probes.GET("/metrics", gin.WrapH(h.MetricsHandler()))
}
