package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/mental-detox/internal/platform/logging"
)

// probePrefix marks operational routes that are never access-logged.
const probePrefix = "/-/"

// ContextLogger stores logger in the request context. Apply it before the ID
// middleware so their attributes land on this logger.
func ContextLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(logging.WithContext(c.Request.Context(), logger))
		c.Next()
	}
}

// Logging returns middleware that writes one access log line per request.
// The context logger is tagged with the span's trace ID when one exists,
// so handlers log with the same trace_id. Probe routes and skipPaths are
// passed through silently.
func Logging(skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if _, ok := skip[path]; ok || strings.HasPrefix(path, probePrefix) {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		if sc := trace.SpanFromContext(ctx).SpanContext(); sc.HasTraceID() {
			ctx = logging.WithTraceID(ctx, sc.TraceID().String())
		}

		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		status := c.Writer.Status()

		level := slog.LevelInfo
		switch {
		case status >= http.StatusInternalServerError:
			level = slog.LevelError
		case status >= http.StatusBadRequest:
			level = slog.LevelWarn
		}

		logging.FromContext(ctx).Log(ctx, level, "request completed",
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.String("query", c.Request.URL.RawQuery),
			slog.Int("status", status),
			slog.Duration("latency", latency),
			slog.Int("bytes", c.Writer.Size()),
			slog.String("client_ip", c.ClientIP()),
		)
	}
}
