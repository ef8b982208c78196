// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "errors"

// Credential hashing errors.
var (
	// ErrHashingFailure is returned when a password digest cannot be produced
	// or when a stored digest is malformed. A simple password mismatch is
	// never reported as an error.
	ErrHashingFailure = errors.New("password hashing failure")

	// ErrInvalidHashCost is returned by NewPasswordHasher when the configured
	// bcrypt cost is outside [MinPasswordHashCost, bcrypt.MaxCost].
	ErrInvalidHashCost = errors.New("invalid password hash cost")

	// ErrPasswordTooLong is returned when a password exceeds the 72-byte
	// input limit of bcrypt.
	ErrPasswordTooLong = errors.New("password is longer than 72 bytes")
)

// Session token errors.
var (
	// ErrIssuanceFailure is returned when a token cannot be issued: the
	// signing secret is missing, the ttl is not positive, or signing fails.
	// A missing secret is a startup configuration error.
	ErrIssuanceFailure = errors.New("token issuance failure")

	// ErrUnauthenticated is returned by TokenVerifier.Verify for every
	// rejected token: bad signature, wrong algorithm, wrong issuer, expired,
	// malformed or missing subject.
	ErrUnauthenticated = errors.New("unauthenticated")
)
