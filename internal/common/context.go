package common

import "context"

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
	ContextKeyStoreID   contextKey = "store_id"
)

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// RequestIDFromContext extracts the request ID from context
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}

// WithStoreID adds a store ID to the context
func WithStoreID(ctx context.Context, storeID string) context.Context {
	return context.WithValue(ctx, ContextKeyStoreID, storeID)
}

// StoreIDFromContext extracts the store ID from context
func StoreIDFromContext(ctx context.Context) string {
	if storeID, ok := ctx.Value(ContextKeyStoreID).(string); ok {
		return storeID
	}
	return ""
}
