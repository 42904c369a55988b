package acl

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jsamuelsen/mental-detox/internal/adapters/clients"
	"github.com/jsamuelsen/mental-detox/internal/domain"
)

// ErrorResponse is an error body from the dataset service. Two shapes are
// accepted: the standard envelope {"error":{"code","message","details"}} and
// the issues list fallback {"issues":[],"error":"<message>"}.
type ErrorResponse struct {
	Code    string
	Message string
	Details map[string]string
}

type errorEnvelope struct {
	Error   json.RawMessage `json:"error"`
	Code    string          `json:"code,omitempty"`
	Message string          `json:"message,omitempty"`
}

type errorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// ParseErrorResponse decodes an error body. It returns nil when the body is
// empty, not JSON, or carries neither a code nor a message.
func ParseErrorResponse(body io.Reader) *ErrorResponse {
	if body == nil {
		return nil
	}

	var env errorEnvelope
	if err := json.NewDecoder(body).Decode(&env); err != nil {
		return nil
	}

	resp := &ErrorResponse{Code: env.Code, Message: env.Message}

	raw := bytes.TrimSpace(env.Error)
	switch {
	case len(raw) == 0:
	case raw[0] == '"':
		_ = json.Unmarshal(raw, &resp.Message)
	case raw[0] == '{':
		var detail errorDetail
		if err := json.Unmarshal(raw, &detail); err == nil {
			resp.Code = detail.Code
			resp.Message = detail.Message
			resp.Details = detail.Details
		}
	}

	if resp.Code == "" && resp.Message == "" {
		return nil
	}

	return resp
}

// MapHTTPError turns a failed call into a domain error.
//
//   - clientErr set (transport, circuit open, retries exhausted) → unavailable
//   - 404 → not found for entity/key
//   - 400, 422 → validation, using the first detail when present
//   - other 4xx → validation
//   - 5xx and 429 → unavailable
func MapHTTPError(resp *http.Response, clientErr error, serviceName, operation, entity, key string) error {
	if clientErr != nil {
		return mapClientError(clientErr, serviceName, operation)
	}

	if resp == nil {
		return domain.NewUnavailableError(serviceName, "no response received")
	}

	if resp.StatusCode < http.StatusBadRequest {
		return nil
	}

	var errResp *ErrorResponse
	if resp.Body != nil {
		errResp = ParseErrorResponse(resp.Body)
	}

	return mapStatusCode(resp.StatusCode, errResp, serviceName, operation, entity, key)
}

func mapClientError(err error, serviceName, operation string) error {
	switch {
	case errors.Is(err, clients.ErrCircuitOpen):
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("circuit breaker open during %s", operation))
	case errors.Is(err, clients.ErrMaxRetriesExceeded):
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("max retries exceeded during %s", operation))
	default:
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("%s failed: %v", operation, err))
	}
}

func mapStatusCode(status int, errResp *ErrorResponse, serviceName, operation, entity, key string) error {
	message := defaultMessageForStatus(status, operation)
	if errResp != nil && errResp.Message != "" {
		message = errResp.Message
	}

	switch {
	case status == http.StatusNotFound:
		return domain.NewNotFoundError(entity, key)

	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		if errResp != nil {
			for field, msg := range errResp.Details {
				return domain.NewValidationError(field, msg)
			}
		}

		return domain.NewValidationError("", message)

	case status == http.StatusTooManyRequests || status >= http.StatusInternalServerError:
		return domain.NewUnavailableError(serviceName, message)

	default:
		return domain.NewValidationError("", message)
	}
}

func defaultMessageForStatus(status int, operation string) string {
	switch status {
	case http.StatusNotFound:
		return "resource not found"
	case http.StatusBadRequest:
		return "invalid request"
	case http.StatusTooManyRequests:
		return "rate limit exceeded"
	case http.StatusServiceUnavailable:
		return "service temporarily unavailable"
	default:
		return fmt.Sprintf("%s failed with status %d", operation, status)
	}
}
