// Package ctxutil carries request-scoped values that are not part of any
// handler's inputs, such as the request id used for log correlation.
package ctxutil

import "context"

type ctxKey string

const requestIDKey ctxKey = "request_id"

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
