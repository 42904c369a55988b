// Package dto provides Data Transfer Objects for HTTP request/response handling.
package dto

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/mental-detox/internal/domain"
	"github.com/jsamuelsen/mental-detox/internal/platform/logging"
)

// ErrorResponse is the standard error envelope for all error responses.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

// ErrorDetail contains the error information.
type ErrorDetail struct {
	// Code is a machine-readable error code (e.g., "NOT_FOUND", "VALIDATION_ERROR").
	Code string `json:"code"`

	// Message is a human-readable error message.
	Message string `json:"message"`

	// Details holds field-level messages for validation failures.
	Details map[string]string `json:"details,omitempty"`
}

// Error codes for machine-readable error identification.
const (
	ErrorCodeNotFound    = "NOT_FOUND"
	ErrorCodeValidation  = "VALIDATION_ERROR"
	ErrorCodeBadRequest  = "BAD_REQUEST"
	ErrorCodeUnavailable = "SERVICE_UNAVAILABLE"
	ErrorCodeTimeout     = "TIMEOUT"
	ErrorCodeInternal    = "INTERNAL_ERROR"
)

// Gin context keys and headers consulted by GetTraceID.
const (
	ContextKeyTraceID   = "trace_id"
	ContextKeyRequestID = "request_id"
	HeaderRequestID     = "X-Request-ID"
)

// internalMessage is returned for errors the domain does not classify.
const internalMessage = "an internal error occurred"

// NewErrorResponse creates a new error response with the given code and message.
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

// NewErrorResponseWithDetails creates an error response with additional details.
func NewErrorResponseWithDetails(code, message string, details map[string]string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}

// WithTraceID adds a trace ID to the error response.
func (e *ErrorResponse) WithTraceID(traceID string) *ErrorResponse {
	e.TraceID = traceID
	return e
}

// HTTPStatusFromCode maps error codes to HTTP status codes.
func HTTPStatusFromCode(code string) int {
	switch code {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeValidation, ErrorCodeBadRequest:
		return http.StatusBadRequest
	case ErrorCodeUnavailable, ErrorCodeTimeout:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// MapDomainError maps a domain error to an HTTP status code and error response.
// Not-found is checked first: a sample against an unloaded dataset wraps both
// ErrNotFound and ErrUnavailable and must answer 404.
func MapDomainError(err error) (int, *ErrorResponse) {
	if err == nil {
		return http.StatusOK, nil
	}

	switch {
	case domain.IsNotFound(err):
		return http.StatusNotFound, NewErrorResponse(ErrorCodeNotFound, notFoundMessage(err))

	case domain.IsValidation(err):
		resp := NewErrorResponse(ErrorCodeValidation, err.Error())

		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) && validationErr.Field != "" {
			resp.Error.Details = map[string]string{
				validationErr.Field: validationErr.Message,
			}
		}

		return http.StatusBadRequest, resp

	case domain.IsUnavailable(err):
		return http.StatusServiceUnavailable, NewErrorResponse(
			ErrorCodeUnavailable,
			"service temporarily unavailable",
		)

	default:
		return http.StatusInternalServerError, NewErrorResponse(ErrorCodeInternal, internalMessage)
	}
}

// notFoundMessage prefers the NotFoundError text over the joined chain.
func notFoundMessage(err error) string {
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		return nf.Error()
	}

	return err.Error()
}

// HandleError writes the error envelope for err and logs server-side failures.
func HandleError(c *gin.Context, err error) {
	status, resp := MapDomainError(err)
	resp.TraceID = GetTraceID(c)

	if status >= http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).Error("request failed",
			slog.Any("error", err),
			slog.Int("status", status),
			slog.String("trace_id", resp.TraceID),
		)
	}

	c.JSON(status, resp)
}

// AbortWithError writes an envelope with an explicit code and stops the chain.
func AbortWithError(c *gin.Context, code, message string) {
	resp := NewErrorResponse(code, message).WithTraceID(GetTraceID(c))

	if c.Writer.Written() {
		c.Abort()
		return
	}

	c.AbortWithStatusJSON(HTTPStatusFromCode(code), resp)
}

// GetTraceID returns the identifier used to correlate a response with logs.
// Lookup order: an explicit trace_id on the gin context, the active span,
// the request ID set by middleware, then the X-Request-ID header.
func GetTraceID(c *gin.Context) string {
	if v, ok := c.Get(ContextKeyTraceID); ok {
		if id, ok := v.(string); ok {
			return id
		}

		return ""
	}

	if c.Request == nil {
		return ""
	}

	if sc := trace.SpanFromContext(c.Request.Context()).SpanContext(); sc.HasTraceID() {
		return sc.TraceID().String()
	}

	if id := c.GetString(ContextKeyRequestID); id != "" {
		return id
	}

	return c.GetHeader(HeaderRequestID)
}
