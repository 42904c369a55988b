// Package app contains application services that orchestrate use cases.
// This is the application layer in Clean Architecture - it coordinates
// domain logic and infrastructure through ports.
//
// DatasetService answers the HTTP API; BrowseService drives the terminal
// client. Neither knows about HTTP, CSV or terminals.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/jsamuelsen/mental-detox/internal/domain"
	"github.com/jsamuelsen/mental-detox/internal/platform/logging"
	"github.com/jsamuelsen/mental-detox/internal/platform/metrics"
	"github.com/jsamuelsen/mental-detox/internal/platform/telemetry"
	"github.com/jsamuelsen/mental-detox/internal/ports"
)

// Health summarizes whether the dataset is ready to serve.
type Health struct {
	Loaded        bool
	CategoryCount int
}

// DatasetService serves categories and random records from the loaded snapshot.
//
// Example usage:
//
//	store := csvstore.New(csvstore.Config{Path: cfg.Dataset.Path, Logger: logger})
//	_ = store.Load(ctx)
//	svc := app.NewDatasetService(app.DatasetServiceConfig{Source: store, Logger: logger})
//
//	rec, err := svc.SampleByCategory(ctx, "Anxiety")
type DatasetService struct {
	source  ports.DatasetSource
	metrics *metrics.Dataset
	logger  *slog.Logger

	mu  sync.Mutex // guards rng; *rand.Rand is not safe for concurrent use
	rng *rand.Rand
}

// DatasetServiceConfig holds the service dependencies.
type DatasetServiceConfig struct {
	// Source publishes the loaded snapshot. Required.
	Source ports.DatasetSource

	// Metrics records sample outcomes. Optional.
	Metrics *metrics.Dataset

	// Rand picks among matching records. Defaults to the package-level
	// generator; tests pass a seeded one.
	Rand *rand.Rand

	Logger *slog.Logger
}

// NewDatasetService creates a dataset service.
func NewDatasetService(cfg DatasetServiceConfig) *DatasetService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &DatasetService{
		source:  cfg.Source,
		metrics: cfg.Metrics,
		rng:     cfg.Rand,
		logger:  logger.With(slog.String("component", "app.DatasetService")),
	}
}

// ListCategories returns the display labels sorted case-insensitively.
// Returns a domain.UnavailableError if the dataset is not loaded or holds
// no usable rows.
func (s *DatasetService) ListCategories(ctx context.Context) ([]string, error) {
	snap := s.source.Snapshot()
	if !snap.Loaded() {
		return nil, fmt.Errorf("listing categories: %w", s.unavailable(snap))
	}

	if snap.Index().Len() == 0 {
		return nil, fmt.Errorf("listing categories: %w", domain.NewUnavailableError("dataset", "no categories loaded"))
	}

	categories := snap.Index().Sorted()

	s.logger.DebugContext(ctx, "listed categories", slog.Int("count", len(categories)))

	return categories, nil
}

// SampleByCategory returns one record chosen uniformly at random among those
// whose issue matches the input case-insensitively. Repeats are possible.
//
// Errors:
//   - domain.ErrValidation if issue is empty
//   - domain.ErrNotFound if nothing matches, including a whitespace-only
//     issue, or if the dataset is not loaded
//     (that error also matches domain.ErrUnavailable)
func (s *DatasetService) SampleByCategory(ctx context.Context, issue string) (*domain.Record, error) {
	ctx, span := telemetry.StartSpan(ctx, "dataset.sample", attribute.String("issue", issue))
	defer span.End()

	ctx = logging.WithIssue(ctx, issue)
	logger := logging.FromContext(ctx)

	key := domain.NormalizeIssue(issue)
	if issue == "" {
		s.metrics.ObserveSample(metrics.OutcomeInvalid)
		span.SetStatus(codes.Error, "empty issue")

		return nil, domain.NewValidationError("issue", "is required")
	}

	snap := s.source.Snapshot()
	if !snap.Loaded() {
		s.metrics.ObserveSample(metrics.OutcomeNotFound)
		span.SetStatus(codes.Error, "dataset not loaded")

		return nil, fmt.Errorf("%w: %w", domain.NewNotFoundError("data", issue), s.unavailable(snap))
	}

	matches := lo.Filter(snap.Records(), func(r domain.Record, _ int) bool {
		return r.Matches(key)
	})
	if len(matches) == 0 {
		s.metrics.ObserveSample(metrics.OutcomeNotFound)
		logger.DebugContext(ctx, "no records for issue")

		return nil, domain.NewNotFoundError("data", issue)
	}

	rec := matches[s.intN(len(matches))]

	s.metrics.ObserveSample(metrics.OutcomeHit)
	span.SetAttributes(attribute.Int("matches", len(matches)))
	logger.DebugContext(ctx, "sampled record", slog.Int("matches", len(matches)))

	return &rec, nil
}

// HealthCheck reports whether the dataset loaded and how many categories it has.
func (s *DatasetService) HealthCheck(_ context.Context) Health {
	snap := s.source.Snapshot()
	if !snap.Loaded() {
		return Health{}
	}

	return Health{Loaded: true, CategoryCount: snap.Index().Len()}
}

func (s *DatasetService) intN(n int) int {
	if s.rng == nil {
		return rand.IntN(n)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rng.IntN(n)
}

func (s *DatasetService) unavailable(snap ports.DatasetSnapshot) error {
	err := snap.LoadError()

	switch {
	case err == nil:
		return domain.NewUnavailableError("dataset", "not loaded")
	case domain.IsUnavailable(err):
		return err
	default:
		return domain.NewUnavailableError("dataset", err.Error())
	}
}
