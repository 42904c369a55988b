// Package clients is the outbound HTTP layer used to reach the dataset
// service.
package clients

import "errors"

// Transport-level failures. The acl package turns these into domain errors.
var (
	// ErrCircuitOpen means the breaker rejected the call without sending it.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrRequestFailed wraps a single failed attempt.
	ErrRequestFailed = errors.New("request failed")

	// ErrMaxRetriesExceeded wraps the last error once every attempt failed.
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")
)
