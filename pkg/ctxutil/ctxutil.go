// Package ctxutil carries request-scoped values: the request ID set by
// middleware and an optional curator identity used to attribute refinements.
package ctxutil

import (
	"context"
)

type ctxKey string

const (
	curatorKey   ctxKey = "curator"
	requestIDKey ctxKey = "request_id"
)

// WithCurator stores the curator identity in the context.
func WithCurator(ctx context.Context, curator string) context.Context {
	return context.WithValue(ctx, curatorKey, curator)
}

// CuratorFromCtx extracts the curator identity from the context.
// Returns "" and false if the value is missing, empty, or wrong type.
func CuratorFromCtx(ctx context.Context) (string, bool) {
	curator, ok := ctx.Value(curatorKey).(string)
	if !ok || curator == "" {
		return "", false
	}
	return curator, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
