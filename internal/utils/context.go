// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, HTTP client initialization, session token issuance
// and verification, and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/go-users-service/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key under which the acting principal id is stored
// by the authentication middleware.
var UserIDCtxKey = contextKey("userID")

// ClaimsCtxKey is the key under which the verified token claims are stored
// by the authentication middleware.
var ClaimsCtxKey = contextKey("claims")

// WithPrincipal returns a copy of ctx carrying the principal id and claims
// of a verified token.
func WithPrincipal(ctx context.Context, token models.Token) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, token.UserID)
	return context.WithValue(ctx, ClaimsCtxKey, token.Claims)
}

// GetUserIDFromContext retrieves the acting principal id from the context.
//
// Returns the user ID of type int64 and an ok flag:
//   - ok == true  — value is found and has the correct int64 type
//   - ok == false — value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetClaimsFromContext retrieves the verified token claims from the context.
func GetClaimsFromContext(ctx context.Context) (models.PrincipalClaims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(models.PrincipalClaims)
	return claims, ok
}
