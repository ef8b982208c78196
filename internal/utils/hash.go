// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// MinPasswordHashCost is the lowest bcrypt cost accepted by NewPasswordHasher.
	MinPasswordHashCost = 10

	// DefaultPasswordHashCost is used when no cost is configured.
	DefaultPasswordHashCost = 12

	// maxPasswordBytes is the bcrypt input limit.
	maxPasswordBytes = 72
)

// PasswordHasher hashes and verifies user passwords with bcrypt.
//
// Digests are self-describing: the random salt and the cost factor are
// embedded in the output, so two Hash calls for the same password produce
// different digests and Verify needs no extra state.
//
// A PasswordHasher is immutable after construction and safe for concurrent use.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a PasswordHasher with the given bcrypt cost.
//
// A zero cost selects DefaultPasswordHashCost. Any other value outside
// [MinPasswordHashCost, bcrypt.MaxCost] yields ErrInvalidHashCost, which the
// caller is expected to treat as a fatal configuration error.
//
// Example usage:
//
//	hasher, err := utils.NewPasswordHasher(12)
//	digest, err := hasher.Hash("secret1")
//	ok, err := hasher.Verify("secret1", digest) // ok == true
func NewPasswordHasher(cost int) (*PasswordHasher, error) {
	if cost == 0 {
		cost = DefaultPasswordHashCost
	}

	if cost < MinPasswordHashCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: %d (allowed %d..%d)", ErrInvalidHashCost, cost, MinPasswordHashCost, bcrypt.MaxCost)
	}

	return &PasswordHasher{cost: cost}, nil
}

// Cost returns the bcrypt cost used for new digests.
func (h *PasswordHasher) Cost() int {
	return h.cost
}

// Hash returns the bcrypt digest of password.
//
// Returns ErrPasswordTooLong for passwords longer than 72 bytes (bcrypt
// would otherwise silently ignore the tail) and ErrHashingFailure if bcrypt
// fails for any other reason.
func (h *PasswordHasher) Hash(password string) (string, error) {
	if len(password) > maxPasswordBytes {
		return "", ErrPasswordTooLong
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingFailure, err)
	}

	return string(digest), nil
}

// Verify reports whether password matches digest.
//
// The comparison is performed by bcrypt in constant time using the salt and
// cost embedded in digest. A mismatch is a normal outcome and returns
// (false, nil); only a malformed digest returns an error wrapping
// ErrHashingFailure.
func (h *PasswordHasher) Verify(password, digest string) (bool, error) {
	// such a password could never have been stored
	if len(password) > maxPasswordBytes {
		return false, nil
	}

	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", ErrHashingFailure, err)
	}
}
