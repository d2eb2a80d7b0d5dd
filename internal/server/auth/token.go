// Package auth implements the authentication core of the forum: stateless
// HS256 tokens, a server-side invalidation registry, the request-scoped
// principal binding, and the ownership/role guards.
//
// Tokens are self-validating, so no storage is consulted to confirm
// authenticity. The registry exists only to confirm revocation: product
// behavior requires an immediate logout effect after credential changes,
// and the registry is the minimal state that provides it without a
// session store.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ftprojects/forum/internal/common"
)

// TokenService issues and verifies signed tokens and owns the
// invalidation registry. It is safe for concurrent use.
type TokenService struct {
	secret   []byte
	validity time.Duration
	registry *InvalidationRegistry
}

func NewTokenService(secret []byte, validity time.Duration, registry *InvalidationRegistry) *TokenService {
	return &TokenService{secret: secret, validity: validity, registry: registry}
}

// Issue builds a signed token with subject=username expiring after the
// configured validity. The only failure mode is signer misconfiguration.
func (s *TokenService) Issue(username string) (string, time.Time, error) {
	expires := time.Now().Add(s.validity)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(expires),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing token: %w", err)
	}
	return signed, expires, nil
}

// Subject returns the username encoded in the token. A bad signature,
// malformed input, or a naturally expired token all yield ErrInvalidToken.
func (s *TokenService) Subject(tokenString string) (string, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// Expiry returns the expiration instant encoded in the token.
func (s *TokenService) Expiry(tokenString string) (time.Time, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return time.Time{}, err
	}
	return claims.ExpiresAt.Time, nil
}

// Invalidate revokes the token bound to the in-flight request, so that it
// stops authenticating even though it remains cryptographically valid.
// Every credential-altering operation calls this exactly once. Calling it
// again for the same token is a no-op.
func (s *TokenService) Invalidate(ctx context.Context) error {
	tokenString, err := BoundToken(ctx)
	if err != nil {
		return err
	}
	expires, err := s.Expiry(tokenString)
	if err != nil {
		// The bound token already fails natural expiry checks, nothing
		// to revoke.
		return nil
	}
	s.registry.Add(tokenString, expires)
	return nil
}

// IsInvalidated reports whether the token has been revoked. Safe under
// concurrent reads and writes.
func (s *TokenService) IsInvalidated(tokenString string) bool {
	return s.registry.Contains(tokenString)
}

func (s *TokenService) parse(tokenString string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, common.ErrInvalidToken
	}
	return claims, nil
}
