// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-users-service/models"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenDuration is the session lifetime used when none is configured.
const DefaultTokenDuration = time.Hour

// signingMethod is the only algorithm issued and accepted.
var signingMethod = jwt.SigningMethodHS256

// TokenIssuer creates signed HS256 session tokens.
//
// It is immutable after construction and safe for concurrent use.
type TokenIssuer struct {
	signKey []byte
	issuer  string
	ids     *UUIDGenerator
	now     func() time.Time
}

// NewTokenIssuer creates a TokenIssuer that signs with signKey and stamps
// every token with issuer as its "iss" claim.
//
// An empty signKey yields ErrIssuanceFailure; callers must treat it as a fatal
// startup error rather than a per-request one.
func NewTokenIssuer(signKey, issuer string) (*TokenIssuer, error) {
	if signKey == "" {
		return nil, fmt.Errorf("%w: signing secret is not configured", ErrIssuanceFailure)
	}

	return &TokenIssuer{
		signKey: []byte(signKey),
		issuer:  issuer,
		ids:     NewUUIDGenerator(),
		now:     time.Now,
	}, nil
}

// WithClock returns a copy of the issuer that reads the current time from now.
func (i *TokenIssuer) WithClock(now func() time.Time) *TokenIssuer {
	c := *i
	c.now = now
	return &c
}

// Issue signs claims together with "iss", "iat", "exp" (iat + ttl) and a fresh
// "jti". The signature covers the whole claim set, so any later change to
// the claims invalidates the token.
//
// The subject of claims must be a principal id. Returns an error wrapping
// ErrIssuanceFailure if ttl is not positive, the subject is missing, or signing fails.
//
// Example usage:
//
//	token, err := issuer.Issue(models.NewPrincipalClaims(user), time.Hour)
//	w.Header().Set("Authorization", "Bearer "+token.SignedString)
func (i *TokenIssuer) Issue(claims models.PrincipalClaims, ttl time.Duration) (models.Token, error) {
	if ttl <= 0 {
		return models.Token{}, fmt.Errorf("%w: token duration must be positive, got %s", ErrIssuanceFailure, ttl)
	}

	userID, err := claims.UserID()
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrIssuanceFailure, err)
	}

	now := i.now()
	claims.Issuer = i.issuer
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	claims.ID = i.ids.Generate()

	token := jwt.NewWithClaims(signingMethod, claims)
	signed, err := token.SignedString(i.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: error occurred during signing JWT token: %w", ErrIssuanceFailure, err)
	}

	return models.Token{
		Token:        token,
		Claims:       claims,
		SignedString: signed,
		UserID:       userID,
	}, nil
}

// TokenVerifier validates session tokens produced by a TokenIssuer holding
// the same secret and issuer.
//
// Verification is pure computation: no I/O and no shared mutable state, so a
// single TokenVerifier may be used by any number of concurrent requests.
type TokenVerifier struct {
	signKey []byte
	issuer  string
	now     func() time.Time
}

// NewTokenVerifier creates a TokenVerifier. An empty signKey yields
// ErrIssuanceFailure, because no token could ever be accepted.
func NewTokenVerifier(signKey, issuer string) (*TokenVerifier, error) {
	if signKey == "" {
		return nil, fmt.Errorf("%w: signing secret is not configured", ErrIssuanceFailure)
	}

	return &TokenVerifier{
		signKey: []byte(signKey),
		issuer:  issuer,
		now:     time.Now,
	}, nil
}

// WithClock returns a copy of the verifier that reads the current time from now.
func (v *TokenVerifier) WithClock(now func() time.Time) *TokenVerifier {
	c := *v
	c.now = now
	return &c
}

// Verify checks tokenString and returns the decoded token.
//
// Validation includes:
//   - signature verification with the configured secret, HS256 only
//   - "iss" equal to the configured issuer
//   - "exp" present and strictly after the current time
//   - "iat" not in the future
//   - "sub" present and parseable as a principal id
//
// Every failure is reported as an error wrapping ErrUnauthenticated; the
// wrapped cause is meant for logs only.
func (v *TokenVerifier) Verify(tokenString string) (models.Token, error) {
	if strings.TrimSpace(tokenString) == "" {
		return models.Token{}, fmt.Errorf("%w: empty token", ErrUnauthenticated)
	}

	claims := &models.PrincipalClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return v.signKey, nil
	},
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithIssuer(v.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}
	if !token.Valid {
		return models.Token{}, fmt.Errorf("%w: %w", ErrUnauthenticated, errors.New("token is not valid"))
	}

	userID, err := claims.UserID()
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	return models.Token{
		Token:        token,
		Claims:       *claims,
		SignedString: tokenString,
		UserID:       userID,
	}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively; any other shape
// is rejected.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
