// Package contexthelpers provides typed access to request-scoped values.
package contexthelpers

import (
	"context"
	"net/http"
)

type contextKey string

const (
	isAuthenticatedKey = contextKey("isAuthenticated")
	userIDKey          = contextKey("userID")
	currentPathKey     = contextKey("currentPath")
)

// WithUser marks the context as authenticated by the given user.
func WithUser(ctx context.Context, userID string) context.Context {
	ctx = context.WithValue(ctx, isAuthenticatedKey, true)
	return context.WithValue(ctx, userIDKey, userID)
}

// AuthenticateContext marks the request as authenticated by the given user.
func AuthenticateContext(r *http.Request, userID string) *http.Request {
	return r.WithContext(WithUser(r.Context(), userID))
}

// SetCurrentPath records the request path for downstream handlers.
func SetCurrentPath(r *http.Request, currentPath string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentPathKey, currentPath))
}

func IsAuthenticated(ctx context.Context) bool {
	isAuthenticated, ok := ctx.Value(isAuthenticatedKey).(bool)
	if !ok {
		return false
	}
	return isAuthenticated
}

// UserID returns the authenticated user's opaque identifier or "" when the
// request is unauthenticated.
func UserID(ctx context.Context) string {
	userID, ok := ctx.Value(userIDKey).(string)
	if !ok {
		return ""
	}
	return userID
}

func CurrentPath(ctx context.Context) string {
	currentPath, ok := ctx.Value(currentPathKey).(string)
	if !ok {
		return ""
	}
	return currentPath
}
