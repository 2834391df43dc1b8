package logtrace

import (
	"context"
)

type requestIdKeyType string

// RequestIdKey is the context key under which the request logger middleware
// stores the request ID.
const RequestIdKey = requestIdKeyType("requestId")

// RequestIdFromContext extracts the request ID from the context.
// Returns an empty string if the context is nil or carries no request ID.
func RequestIdFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	r, ok := ctx.Value(RequestIdKey).(string)
	if !ok {
		return ""
	}
	return r
}

// IsTraceEnabled reports whether request tracing is enabled.
func IsTraceEnabled() bool {
	return false
}
