package acl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jsamuelsen/mental-detox/internal/adapters/clients"
	"github.com/jsamuelsen/mental-detox/internal/domain"
)

// maxResponseSize bounds how much of a response body is decoded.
const maxResponseSize = 1 << 20

// BaseAdapter holds what every adapter over clients.Client needs.
type BaseAdapter struct {
	client      *clients.Client
	serviceName string
}

// NewBaseAdapter creates a base adapter for the named service.
func NewBaseAdapter(client *clients.Client, serviceName string) BaseAdapter {
	return BaseAdapter{
		client:      client,
		serviceName: serviceName,
	}
}

// Client returns the underlying HTTP client.
func (a *BaseAdapter) Client() *clients.Client {
	return a.client
}

// ServiceName returns the name used in errors and logs.
func (a *BaseAdapter) ServiceName() string {
	return a.serviceName
}

// Get performs a GET and returns the body of a 2xx/3xx response; the caller
// closes it. Any other outcome comes back as a domain error, with entity and
// key used for a 404.
func (a *BaseAdapter) Get(ctx context.Context, path, operation, entity, key string) (io.ReadCloser, error) {
	resp, err := a.client.Get(ctx, path)
	if err != nil {
		return nil, MapHTTPError(nil, err, a.serviceName, operation, entity, key)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		defer func() { _ = resp.Body.Close() }()

		return nil, MapHTTPError(resp, nil, a.serviceName, operation, entity, key)
	}

	return resp.Body, nil
}

// DecodeResponse decodes a JSON body into T and closes it.
func DecodeResponse[T any](body io.ReadCloser) (*T, error) {
	if body == nil {
		return nil, errors.New("response body is nil")
	}
	defer func() { _ = body.Close() }()

	var result T
	if err := json.NewDecoder(io.LimitReader(body, maxResponseSize)).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &result, nil
}

// ValidateRequired rejects an empty value for fieldName.
func ValidateRequired(value, fieldName string) error {
	if value == "" {
		return domain.NewValidationError(fieldName, "is required")
	}

	return nil
}

// Translator converts an external DTO into a domain value, rejecting data
// the domain cannot accept.
type Translator[External any, Domain any] func(ext *External) (*Domain, error)
