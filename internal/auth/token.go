// internal/auth/token.go
package auth

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"

	"balance-ledger/internal/domain"
	"balance-ledger/internal/util"
)

const issuer = "balance-ledger"

// Resolver interface implementation
var _ Resolver = (*TokenAuth)(nil)

// Claims carried by a bearer token. The subject is the user ID; the username
// rides along so the greeting endpoint needs no storage access.
type Claims struct {
	Username string `json:"username"`
	jwt.StandardClaims
}

// TokenAuth resolves HS256-signed bearer tokens into identities. Tokens are
// minted out of band (see cmd/seed); there is no login endpoint because users
// carry no credentials of their own.
type TokenAuth struct {
	secretKey []byte
	tokenTTL  time.Duration
}

// NewTokenAuth creates a TokenAuth with the given signing secret and token
// lifetime.
func NewTokenAuth(secretKey string, tokenTTL time.Duration) *TokenAuth {
	return &TokenAuth{
		secretKey: []byte(secretKey),
		tokenTTL:  tokenTTL,
	}
}

// Mint issues a signed bearer token for the given user.
func (a *TokenAuth) Mint(user *domain.User) (string, error) {
	now := time.Now()

	claims := &Claims{
		Username: user.Username,
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.NewString(),
			Subject:   strconv.FormatInt(user.ID, 10),
			Issuer:    issuer,
			IssuedAt:  now.Unix(),
			NotBefore: now.Unix(),
			ExpiresAt: now.Add(a.tokenTTL).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secretKey)
	if err != nil {
		return "", fmt.Errorf("jwt sign: %w", err)
	}

	return signed, nil
}

// Resolve method of the Resolver implementation. Any parse or validation
// failure collapses into ErrUnauthorized; callers never learn why a token
// was rejected.
func (a *TokenAuth) Resolve(ctx context.Context, credentials string) (*Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(credentials, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return a.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, util.ErrUnauthorized
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, util.ErrUnauthorized
	}

	return &Identity{
		UserID:   userID,
		Username: claims.Username,
	}, nil
}
