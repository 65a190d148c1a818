package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey string

// requestIDKey carries the id Middleware assigns for the lifetime of one
// request.
const requestIDKey ctxKey = "request_id"

// WithRequestID stores a request id on the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFrom reads the request id back, or "" when the context never went
// through Middleware.
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// FromCtx returns the shared logger tagged with the context's request id so
// entries across layers correlate to one request.
func FromCtx(ctx context.Context) *zap.Logger {
	id := RequestIDFrom(ctx)
	if id == "" {
		return L()
	}
	return L().With(zap.String("request_id", id))
}
