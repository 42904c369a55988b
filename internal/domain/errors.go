// Package domain contains business logic types and errors.
// Domain errors represent business-level failures, NOT HTTP errors.
// They are infrastructure-agnostic and can be mapped to HTTP/gRPC/etc by adapters.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates business rule validation failed.
	ErrValidation = errors.New("validation failed")

	// ErrUnavailable indicates a required dependency is unavailable.
	ErrUnavailable = errors.New("unavailable")
)

// NotFoundError provides context for not found errors.
// Key is the lookup value the caller supplied (an issue label, for records).
type NotFoundError struct {
	Entity string
	Key    string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("no %s found for %q", e.Entity, e.Key)
	}

	return e.Entity + " not found"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(entity, key string) error {
	return &NotFoundError{Entity: entity, Key: key}
}

// ValidationError provides context for validation errors.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrorWithValue creates a validation error including the invalid value.
func NewValidationErrorWithValue(field, message string, value any) error {
	return &ValidationError{Field: field, Message: message, Value: value}
}

// UnavailableError provides context for unavailable errors.
// It covers both a dataset that failed to load and a backend the client cannot reach.
type UnavailableError struct {
	Service string
	Reason  string
}

// Error implements the error interface.
func (e *UnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("service %q unavailable: %s", e.Service, e.Reason)
	}

	return fmt.Sprintf("service %q unavailable", e.Service)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

// NewUnavailableError creates an unavailable error with context.
func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsUnavailable checks if an error is an unavailable error.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
