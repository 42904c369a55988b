package clients

import (
	"sync"
	"time"
)

// State is a circuit breaker position.
type State int

const (
	// StateClosed lets every call through.
	StateClosed State = iota

	// StateOpen rejects calls until the cool-down elapses.
	StateOpen

	// StateHalfOpen admits a bounded number of probe calls.
	StateHalfOpen
)

// defaultCoolDown applies when CircuitBreakerConfig.Timeout is unset.
const defaultCoolDown = 30 * time.Second

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// CircuitBreakerConfig configures a CircuitBreaker.
type CircuitBreakerConfig struct {
	// MaxFailures consecutive failures open a closed circuit.
	MaxFailures int

	// Timeout is the cool-down spent open before probing.
	Timeout time.Duration

	// HalfOpenLimit caps in-flight probes and is also the number of
	// consecutive probe successes that close the circuit again.
	HalfOpenLimit int
}

// CircuitBreaker stops calling the dataset service after repeated failures.
//
//	closed    --MaxFailures failures--> open
//	open      --Timeout elapsed-------> half-open
//	half-open --HalfOpenLimit wins----> closed
//	half-open --any failure-----------> open
type CircuitBreaker struct {
	mu       sync.Mutex
	cfg      CircuitBreakerConfig
	state    State
	failures int
	wins     int
	probes   int
	openedAt time.Time

	onChange func(from, to State)
	now      func() time.Time
}

// NewCircuitBreaker returns a closed breaker. Non-positive limits are raised
// to one and a zero Timeout becomes 30s.
func NewCircuitBreaker(cfg CircuitBreakerConfig) *CircuitBreaker {
	cfg.MaxFailures = max(cfg.MaxFailures, 1)
	cfg.HalfOpenLimit = max(cfg.HalfOpenLimit, 1)

	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultCoolDown
	}

	return &CircuitBreaker{cfg: cfg, now: time.Now}
}

// OnStateChange registers fn to run, on its own goroutine, after each
// transition.
func (cb *CircuitBreaker) OnStateChange(fn func(from, to State)) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.onChange = fn
}

// Allow reports whether a call may proceed. Callers that get true must
// report the outcome with RecordSuccess or RecordFailure.
func (cb *CircuitBreaker) Allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == StateOpen && cb.now().Sub(cb.openedAt) >= cb.cfg.Timeout {
		cb.moveTo(StateHalfOpen)
	}

	switch cb.state {
	case StateClosed:
		return true
	case StateHalfOpen:
		if cb.probes >= cb.cfg.HalfOpenLimit {
			return false
		}

		cb.probes++

		return true
	default:
		return false
	}
}

// RecordSuccess reports a completed call.
func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateClosed:
		cb.failures = 0
	case StateHalfOpen:
		cb.probes = max(cb.probes-1, 0)
		cb.wins++

		if cb.wins >= cb.cfg.HalfOpenLimit {
			cb.moveTo(StateClosed)
		}
	case StateOpen:
	}
}

// RecordFailure reports a failed call.
func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateClosed:
		cb.failures++

		if cb.failures >= cb.cfg.MaxFailures {
			cb.moveTo(StateOpen)
		}
	case StateHalfOpen:
		cb.moveTo(StateOpen)
	case StateOpen:
		cb.openedAt = cb.now()
	}
}

// State returns the current position without advancing the cool-down.
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	return cb.state
}

// moveTo switches state and clears the counters. cb.mu must be held.
func (cb *CircuitBreaker) moveTo(next State) {
	if cb.state == next {
		return
	}

	prev := cb.state
	cb.state = next
	cb.failures, cb.wins, cb.probes = 0, 0, 0

	if next == StateOpen {
		cb.openedAt = cb.now()
	}

	if cb.onChange != nil {
		go cb.onChange(prev, next)
	}
}
