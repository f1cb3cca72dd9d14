// internal/auth/auth.go
package auth

import (
	"context"

	"balance-ledger/internal/util"
)

// Identity is an authenticated user identity as carried by request
// credentials. It is resolved before any handler logic runs; whether the
// identity still maps to a stored user row is checked inside the handler's
// transaction.
type Identity struct {
	UserID   int64
	Username string
}

// Resolver turns request credentials into an authenticated Identity.
type Resolver interface {
	Resolve(ctx context.Context, credentials string) (*Identity, error)
}

type contextKey struct{}

// NewContext returns a copy of ctx carrying the identity.
func NewContext(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext extracts the identity stored by the auth middleware.
func FromContext(ctx context.Context) (*Identity, error) {
	if id, ok := ctx.Value(contextKey{}).(*Identity); ok {
		return id, nil
	}
	return nil, util.ErrUnauthorized
}
