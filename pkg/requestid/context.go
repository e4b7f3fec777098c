package requestid

import "context"

type contextKey struct{}

// WithContext returns a context carrying the given request ID. Middleware
// calls it for every request; tests can call it directly to fake an ID.
func WithContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKey{}, requestID)
}

// FromContext returns the request ID stored by Middleware or WithContext.
// It returns "" when no ID is present, so callers can log it unconditionally.
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	requestID, ok := ctx.Value(contextKey{}).(string)
	if !ok {
		return ""
	}
	return requestID
}
