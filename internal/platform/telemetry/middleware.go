package telemetry

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/jsamuelsen/mental-detox/telemetry"

// TraceIDHeader carries the active trace ID back to callers.
const TraceIDHeader = "X-Trace-ID"

// Metrics holds HTTP server metrics.
type Metrics struct {
	requestDuration metric.Float64Histogram
	requestTotal    metric.Int64Counter
	activeRequests  metric.Int64UpDownCounter
}

// NewMetrics creates HTTP server metrics on the global meter provider.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(instrumentationName)

	requestDuration, err := meter.Float64Histogram(
		"http.server.request.duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	requestTotal, err := meter.Int64Counter(
		"http.server.request.total",
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	activeRequests, err := meter.Int64UpDownCounter(
		"http.server.active_requests",
		metric.WithDescription("Number of active HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		activeRequests:  activeRequests,
	}, nil
}

// Middleware returns the otelgin tracing middleware followed by request
// metrics. Register both with engine.Use(telemetry.Middleware(name)...).
func Middleware(serviceName string) []gin.HandlerFunc {
	return []gin.HandlerFunc{
		otelgin.Middleware(serviceName),
		MetricsMiddleware(),
	}
}

// MetricsMiddleware records request duration, totals and in-flight requests,
// and echoes the trace ID in the X-Trace-ID response header.
func MetricsMiddleware() gin.HandlerFunc {
	metrics, err := NewMetrics()
	if err != nil {
		otel.Handle(err)
	}

	return func(c *gin.Context) {
		start := time.Now()
		ctx := c.Request.Context()
		route := attribute.String("http.route", c.FullPath())
		method := attribute.String("http.method", c.Request.Method)

		if metrics != nil {
			inflight := metric.WithAttributes(method, route)
			metrics.activeRequests.Add(ctx, 1, inflight)
			defer metrics.activeRequests.Add(ctx, -1, inflight)
		}

		if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
			c.Header(TraceIDHeader, sc.TraceID().String())
		}

		c.Next()

		if metrics != nil {
			attrs := metric.WithAttributes(method, route, attribute.Int("http.status_code", c.Writer.Status()))
			metrics.requestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
			metrics.requestTotal.Add(ctx, 1, attrs)
		}
	}
}

// StartSpan starts a span on the application tracer.
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(instrumentationName).Start(ctx, name, trace.WithAttributes(attrs...))
}
