package logging

import (
	"context"
	"errors"
	"log/slog"

	"github.com/samber/lo"
)

// MultiHandler fans records out to several handlers, such as the terminal
// handler and the rolling JSON file.
type MultiHandler struct {
	handlers []slog.Handler
}

// NewMultiHandler creates a handler that writes to multiple destinations.
func NewMultiHandler(handlers ...slog.Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

// Enabled reports whether any handler accepts the level.
func (h *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return lo.SomeBy(h.handlers, func(handler slog.Handler) bool {
		return handler.Enabled(ctx, level)
	})
}

// Handle passes a clone of the record to every enabled handler and joins
// their errors.
func (h *MultiHandler) Handle(ctx context.Context, r slog.Record) error { //nolint:gocritic // slog.Handler interface requires value
	var errs []error

	for _, handler := range h.handlers {
		if !handler.Enabled(ctx, r.Level) {
			continue
		}

		if err := handler.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// WithAttrs returns a new MultiHandler with the given attributes added.
func (h *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return NewMultiHandler(lo.Map(h.handlers, func(handler slog.Handler, _ int) slog.Handler {
		return handler.WithAttrs(attrs)
	})...)
}

// WithGroup returns a new MultiHandler with the given group name.
func (h *MultiHandler) WithGroup(name string) slog.Handler {
	return NewMultiHandler(lo.Map(h.handlers, func(handler slog.Handler, _ int) slog.Handler {
		return handler.WithGroup(name)
	})...)
}
