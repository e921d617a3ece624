package utils

import (
	"context"
)

type contextKey string

const principalKey contextKey = "principal"

// SetPrincipal stores the verified token claims for downstream handlers.
func SetPrincipal(ctx context.Context, claims *AccessClaims) context.Context {
	return context.WithValue(ctx, principalKey, claims)
}

// PrincipalFromContext returns the claims resolved by the current-user middleware.
func PrincipalFromContext(ctx context.Context) (*AccessClaims, bool) {
	claims, ok := ctx.Value(principalKey).(*AccessClaims)
	if !ok || claims == nil {
		return nil, false
	}
	return claims, true
}
