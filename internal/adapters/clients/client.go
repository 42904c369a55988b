package clients

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/mental-detox/internal/adapters/http/middleware"
	"github.com/jsamuelsen/mental-detox/internal/platform/config"
	"github.com/jsamuelsen/mental-detox/internal/platform/logging"
)

const (
	instrumentationName = "github.com/jsamuelsen/mental-detox/internal/adapters/clients"

	// statusClassDivisor turns a status code into its class (2, 4, 5).
	statusClassDivisor = 100

	// jitterSpan maps rand [0,1) onto [-1,1) for symmetric jitter.
	jitterSpan = 2
)

// Config configures an HTTP client instance.
type Config struct {
	// BaseURL is prefixed to every request path. A trailing "/" is ignored.
	BaseURL string

	// ServiceName identifies the backend in logs, spans and metrics.
	ServiceName string

	// Timeout bounds each attempt. Retries and backoff add to the wall time.
	Timeout time.Duration

	Retry     config.RetryConfig
	Circuit   config.CircuitBreakerConfig
	Transport config.TransportConfig

	// Logger is an optional logger. If nil, a default logger is used.
	Logger *slog.Logger
}

// ConfigFrom builds a client Config from the loaded client settings.
func ConfigFrom(cfg *config.ClientConfig, serviceName string, logger *slog.Logger) *Config {
	return &Config{
		BaseURL:     cfg.BaseURL,
		ServiceName: serviceName,
		Timeout:     cfg.Timeout,
		Retry:       cfg.Retry,
		Circuit:     cfg.CircuitBreaker,
		Transport:   cfg.Transport,
		Logger:      logger,
	}
}

// Client is an instrumented HTTP client for the dataset service.
// Each call gets retry with jittered exponential backoff (when more than one
// attempt is configured), a circuit breaker, an OpenTelemetry client span and
// request/correlation ID propagation.
type Client struct {
	http        *http.Client
	baseURL     string
	serviceName string
	retry       config.RetryConfig
	logger      *slog.Logger
	cb          *CircuitBreaker
	tracer      trace.Tracer

	requestDuration metric.Float64Histogram
	requestTotal    metric.Int64Counter
}

// New creates a new instrumented HTTP client.
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}

	if cfg.ServiceName == "" {
		return nil, errors.New("service name is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultClientTimeout
	}

	retry := cfg.Retry
	retry.MaxAttempts = max(retry.MaxAttempts, 1)

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger = logger.With(
		slog.String("component", "clients.Client"),
		slog.String("downstream", cfg.ServiceName),
	)

	cb := NewCircuitBreaker(CircuitBreakerConfig{
		MaxFailures:   cmpOr(cfg.Circuit.MaxFailures, config.DefaultClientCircuitMaxFailures),
		Timeout:       cfg.Circuit.Timeout,
		HalfOpenLimit: cmpOr(cfg.Circuit.HalfOpenLimit, config.DefaultClientCircuitHalfOpenLimit),
	})
	cb.OnStateChange(func(from, to State) {
		logger.Warn("circuit breaker state changed",
			slog.String("from", from.String()),
			slog.String("to", to.String()),
		)
	})

	meter := otel.Meter(instrumentationName)

	requestDuration, err := meter.Float64Histogram(
		"http.client.request.duration",
		metric.WithDescription("Duration of HTTP client requests"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration metric: %w", err)
	}

	requestTotal, err := meter.Int64Counter(
		"http.client.request.total",
		metric.WithDescription("Total number of HTTP client requests"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating request counter: %w", err)
	}

	return &Client{
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        cmpOr(cfg.Transport.MaxIdleConns, config.DefaultTransportMaxIdleConns),
				MaxIdleConnsPerHost: cmpOr(cfg.Transport.MaxIdleConnsPerHost, config.DefaultTransportMaxIdleConnsPerHost),
				IdleConnTimeout:     cmpOr(cfg.Transport.IdleConnTimeout, config.DefaultTransportIdleConnTimeout),
			},
		},
		baseURL:         strings.TrimRight(cfg.BaseURL, "/"),
		serviceName:     cfg.ServiceName,
		retry:           retry,
		logger:          logger,
		cb:              cb,
		tracer:          otel.Tracer(instrumentationName),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
	}, nil
}

// Get performs an HTTP GET against BaseURL+path.
func (c *Client) Get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(path), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	return c.Do(ctx, req)
}

// Do executes req with circuit breaking, retry, tracing and logging.
// A 5xx response on the final attempt is returned as a response, not an
// error, so callers can read its body. Only bodiless requests are retried
// safely.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()
	logger := logging.FromContext(ctx).With(
		slog.String("downstream", c.serviceName),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
	)

	if !c.cb.Allow() {
		c.recordMetrics(ctx, req.Method, 0, time.Since(start), "circuit_open")
		logger.Warn("request blocked by circuit breaker")

		return nil, ErrCircuitOpen
	}

	injectIDs(ctx, req)

	ctx, span := c.tracer.Start(ctx, "HTTP "+req.Method+" "+c.serviceName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
			attribute.String("peer.service", c.serviceName),
		),
	)
	defer span.End()

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, attempts, err := c.attempt(ctx, req, logger)
	duration := time.Since(start)

	if err != nil {
		c.cb.RecordFailure()
		span.SetStatus(codes.Error, err.Error())
		c.recordMetrics(ctx, req.Method, 0, duration, "error")
		logger.Warn("request failed",
			slog.Int("attempts", attempts),
			slog.Duration("duration", duration),
			slog.Any("error", err),
		)

		if attempts > 1 {
			return nil, fmt.Errorf("%w after %d attempts: %w", ErrMaxRetriesExceeded, attempts, err)
		}

		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		c.cb.RecordFailure()
	} else {
		c.cb.RecordSuccess()
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode >= http.StatusBadRequest {
		span.SetStatus(codes.Error, fmt.Sprintf("HTTP %d", resp.StatusCode))
	}

	c.recordMetrics(ctx, req.Method, resp.StatusCode, duration,
		fmt.Sprintf("%dxx", resp.StatusCode/statusClassDivisor))

	logger.Debug("request completed",
		slog.Int("status", resp.StatusCode),
		slog.Int("attempts", attempts),
		slog.Duration("duration", duration),
	)

	return resp, nil
}

// attempt runs up to MaxAttempts tries and reports how many were made.
func (c *Client) attempt(ctx context.Context, req *http.Request, logger *slog.Logger) (*http.Response, int, error) {
	var lastErr error

	for n := 1; n <= c.retry.MaxAttempts; n++ {
		if n > 1 {
			backoff := c.backoff(n - 1)
			logger.Debug("retrying request", slog.Int("attempt", n), slog.Duration("backoff", backoff))

			select {
			case <-ctx.Done():
				return nil, n - 1, ctx.Err()
			case <-time.After(backoff):
			}
		}

		resp, err := c.http.Do(req.WithContext(ctx))
		last := n == c.retry.MaxAttempts

		switch {
		case err != nil:
			lastErr = err
			if last || !isRetryableError(err) {
				return nil, n, err
			}
		case resp.StatusCode >= http.StatusInternalServerError && !last:
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
			lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
		default:
			return resp, n, nil
		}
	}

	return nil, c.retry.MaxAttempts, lastErr
}

// CircuitState returns the current state of the circuit breaker.
func (c *Client) CircuitState() State {
	return c.cb.State()
}

// URL joins the base URL and path.
func (c *Client) URL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return c.baseURL + path
}

// backoff returns InitialInterval*Multiplier^retry capped at MaxInterval,
// with symmetric jitter of JitterFactor.
func (c *Client) backoff(retry int) time.Duration {
	d := float64(c.retry.InitialInterval) * math.Pow(c.retry.Multiplier, float64(retry-1))
	d = math.Min(d, float64(c.retry.MaxInterval))

	jitter := rand.Float64()*jitterSpan - 1 //nolint:gosec // jitter needs no crypto randomness
	d += d * c.retry.JitterFactor * jitter

	return time.Duration(d)
}

func (c *Client) recordMetrics(ctx context.Context, method string, status int, duration time.Duration, result string) {
	attrs := []attribute.KeyValue{
		attribute.String("http.method", method),
		attribute.String("peer.service", c.serviceName),
		attribute.String("result", result),
	}

	if status > 0 {
		attrs = append(attrs, attribute.Int("http.status_code", status))
	}

	opt := metric.WithAttributes(attrs...)
	c.requestDuration.Record(ctx, duration.Seconds(), opt)
	c.requestTotal.Add(ctx, 1, opt)
}

// injectIDs forwards request and correlation IDs carried by ctx.
func injectIDs(ctx context.Context, req *http.Request) {
	if id := middleware.RequestIDFromContext(ctx); id != "" {
		req.Header.Set(middleware.HeaderRequestID, id)
	}

	if id := middleware.CorrelationIDFromContext(ctx); id != "" {
		req.Header.Set(middleware.HeaderCorrelationID, id)
	}
}

// isRetryableError reports transport failures worth another attempt.
// Caller cancellation and deadlines are final.
func isRetryableError(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var opErr *net.OpError

	return errors.As(err, &opErr)
}

// cmpOr returns v unless it is the zero value.
func cmpOr[T comparable](v, fallback T) T {
	var zero T
	if v == zero {
		return fallback
	}

	return v
}
