package middleware

import (
	"context"
	apperrors "turfly/pkg/errors"
	"turfly/pkg/model"
)

type contextKey string

const (
	RequestIDKey contextKey = "request_id"
	ClaimsKey    contextKey = "claims"
)

func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}

// ClaimsFromContext returns the authenticated caller, or nil for anonymous
// requests.
func ClaimsFromContext(ctx context.Context) *model.Claims {
	if c, ok := ctx.Value(ClaimsKey).(*model.Claims); ok {
		return c
	}
	return nil
}

func WithClaims(ctx context.Context, claims *model.Claims) context.Context {
	return context.WithValue(ctx, ClaimsKey, claims)
}

// RequireClaims returns the caller, or an UNAUTHORIZED error for anonymous
// requests.
func RequireClaims(ctx context.Context) (*model.Claims, error) {
	claims := ClaimsFromContext(ctx)
	if claims == nil {
		return nil, apperrors.Unauthorized("Authentication required")
	}
	return claims, nil
}
