package ports

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/samber/lo"
)

// ErrDuplicateChecker is returned when attempting to register a health checker
// with a name that is already registered.
var ErrDuplicateChecker = errors.New("duplicate health checker")

// HealthChecker is implemented by components that can report their health.
// Adapters register themselves with the HealthRegistry at startup.
//
// The CSV store reports whether its snapshot loaded; the backend client
// reports whether the dataset service answers its /health probe.
type HealthChecker interface {
	// Name returns a unique identifier for this health check.
	// Used in health check responses to identify which component failed.
	Name() string

	// Check performs the health check and returns an error if unhealthy.
	// Implementations should respect context cancellation and deadlines.
	// A nil return indicates the component is healthy.
	Check(ctx context.Context) error
}

// HealthRegistry aggregates health checks from multiple components.
// Components register themselves at startup, and the registry
// runs all checks when queried.
type HealthRegistry interface {
	// Register adds a health checker to the registry.
	// Returns an error if a checker with the same name is already registered.
	// Should be called during application startup.
	Register(checker HealthChecker) error

	// CheckAll runs all registered health checks and returns aggregated results.
	// Checks run concurrently with the provided context timeout.
	CheckAll(ctx context.Context) *HealthResult
}

// HealthStatus represents the overall health state.
type HealthStatus string

const (
	// HealthStatusHealthy indicates all checks passed.
	HealthStatusHealthy HealthStatus = "healthy"

	// HealthStatusUnhealthy indicates critical checks failed.
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthResult contains the aggregated health check results.
type HealthResult struct {
	// Status is the overall health status.
	Status HealthStatus `json:"status"`

	// Checks contains individual check results keyed by checker name.
	Checks map[string]*CheckResult `json:"checks"`

	// Timestamp is when the health check was performed.
	Timestamp time.Time `json:"timestamp"`
}

// CheckResult contains the result of a single health check.
type CheckResult struct {
	// Status is the health status of this component.
	Status HealthStatus `json:"status"`

	// Message provides additional context, especially on failure.
	Message string `json:"message,omitempty"`

	// Duration is how long the check took.
	Duration time.Duration `json:"duration"`
}

// DefaultHealthRegistry is a thread-safe implementation of HealthRegistry.
// Checkers run in registration order and results are keyed by name.
type DefaultHealthRegistry struct {
	mu       sync.RWMutex
	checkers []HealthChecker
}

// NewHealthRegistry creates a new health registry.
func NewHealthRegistry() *DefaultHealthRegistry {
	return &DefaultHealthRegistry{}
}

// Register adds a health checker to the registry.
// Returns an error if a checker with the same name is already registered.
func (r *DefaultHealthRegistry) Register(checker HealthChecker) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := checker.Name()
	if lo.ContainsBy(r.checkers, func(c HealthChecker) bool { return c.Name() == name }) {
		return fmt.Errorf("%w: %s", ErrDuplicateChecker, name)
	}

	r.checkers = append(r.checkers, checker)

	return nil
}

// Names returns the registered checker names in registration order.
func (r *DefaultHealthRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.Map(r.checkers, func(c HealthChecker, _ int) string { return c.Name() })
}

// CheckAll runs all registered health checks concurrently and reports
// unhealthy if any one of them fails.
func (r *DefaultHealthRegistry) CheckAll(ctx context.Context) *HealthResult {
	r.mu.RLock()
	checkers := slices.Clone(r.checkers)
	r.mu.RUnlock()

	results := make([]*CheckResult, len(checkers))

	var wg sync.WaitGroup
	for i, checker := range checkers {
		wg.Go(func() {
			results[i] = runCheck(ctx, checker)
		})
	}
	wg.Wait()

	result := &HealthResult{
		Status:    HealthStatusHealthy,
		Checks:    make(map[string]*CheckResult, len(checkers)),
		Timestamp: time.Now(),
	}

	for i, checker := range checkers {
		result.Checks[checker.Name()] = results[i]
		if results[i].Status == HealthStatusUnhealthy {
			result.Status = HealthStatusUnhealthy
		}
	}

	return result
}

func runCheck(ctx context.Context, checker HealthChecker) *CheckResult {
	start := time.Now()
	err := checker.Check(ctx)

	res := &CheckResult{
		Status:   HealthStatusHealthy,
		Duration: time.Since(start),
	}
	if err != nil {
		res.Status = HealthStatusUnhealthy
		res.Message = err.Error()
	}

	return res
}
