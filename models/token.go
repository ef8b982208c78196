// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// PrincipalClaims is the claim set carried by a session token.
//
// The standard claims hold the principal id in "sub", the issuance and expiry
// times in "iat"/"exp", the issuer in "iss" and a random token id in "jti".
// Display claims are optional and informational only; authorization decisions
// use the subject.
type PrincipalClaims struct {
	jwt.RegisteredClaims

	Username  string `json:"username,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// NewPrincipalClaims builds the claim set for user. Time-related claims are
// left empty; they are filled in by the issuer.
func NewPrincipalClaims(user User) PrincipalClaims {
	return PrincipalClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: strconv.FormatInt(user.UserID, 10),
		},
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

// UserID parses the "sub" claim as a base-10 int64.
func (c PrincipalClaims) UserID() (int64, error) {
	if c.Subject == "" {
		return 0, errors.New("empty subject claim")
	}

	userID, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting subject claim to user ID: %w", err)
	}

	return userID, nil
}

// Token is an issued or verified session token.
type Token struct {
	// Token is the underlying JWT. Excluded from JSON serialization because
	// only the compact string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims is the decoded claim set.
	Claims PrincipalClaims `json:"-"`

	// SignedString is the compact JWS representation
	// (base64url header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the principal id parsed from the subject claim.
	UserID int64 `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
