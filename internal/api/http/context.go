package http

import (
	"context"

	"agroverse-backend/internal/security"
)

type ctxKey string

const claimsKey ctxKey = "auth_claims"

func withClaims(ctx context.Context, claims *security.UserClaims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// claimsFrom returns the authenticated caller's claims placed on the
// request context by RequireAuth.
func claimsFrom(ctx context.Context) (*security.UserClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(*security.UserClaims)
	return claims, ok
}
