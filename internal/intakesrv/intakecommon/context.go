// Package intakecommon provides shared types and context utilities for the
// intake service: the authenticated-user context and service-wide constants.
package intakecommon

import (
	"context"
)

// ctxKeyType represents the type for all context keys
type ctxKeyType string

const (
	ctxUserContextKey ctxKeyType = "IntakeUserContext"
	ctxTestContextKey ctxKeyType = "IntakeTestContext"
)

// UserContext represents the authenticated user attached to a request by the
// session middleware.
type UserContext struct {
	// Username is the login name of the user
	Username string
	// Email is the registered email of the user
	Email string
}

// WithUser sets the user context in the provided context.
func WithUser(ctx context.Context, u *UserContext) context.Context {
	return context.WithValue(ctx, ctxUserContextKey, u)
}

// GetUser retrieves the user context. Returns nil when the request carries
// no authenticated session.
func GetUser(ctx context.Context) *UserContext {
	if u, ok := ctx.Value(ctxUserContextKey).(*UserContext); ok {
		return u
	}
	return nil
}

// WithTestContext marks the context as belonging to a test request.
func WithTestContext(ctx context.Context, v any) context.Context {
	return context.WithValue(ctx, ctxTestContextKey, v)
}

// GetTestContext returns the test marker, if any.
func GetTestContext(ctx context.Context) any {
	return ctx.Value(ctxTestContextKey)
}
