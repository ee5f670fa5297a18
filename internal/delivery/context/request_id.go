// Package context carries request-scoped values (request id, logger, caller
// identity) between the delivery layer and the use cases.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// ContextKey namespaces the values this package stores.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"

	// HeaderXRequestID is shared with the gateway and the Pub/Sub push attributes.
	HeaderXRequestID = "X-Request-Id"
)

func valueOf[T any](ctx context.Context, key ContextKey) (T, bool) {
	v, ok := ctx.Value(key).(T)

	return v, ok
}

// SetRequestID records the id on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestID returns the id recorded by SetRequestID, or "" before the
// request-id middleware ran.
func GetRequestID(c echo.Context) string {
	requestID, _ := c.Get(string(KeyRequestID)).(string)

	return requestID
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

func GetRequestIDFromContext(ctx context.Context) string {
	requestID, _ := valueOf[string](ctx, KeyRequestID)

	return requestID
}

// WithLogger attaches a logger already annotated with the request id.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// GetLoggerOrDefault returns the request logger, or fallback outside a request
// (startup, background work, tests).
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := valueOf[*slog.Logger](ctx, KeyLogger); ok && logger != nil {
		return logger
	}

	return fallback
}
