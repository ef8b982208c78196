// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrValidation wraps every input validation failure.
	ErrValidation = errors.New("validation failed")

	// ErrBadCredentials is the single answer to a failed login, whether the
	// username is unknown or the password is wrong.
	ErrBadCredentials = errors.New("invalid credentials")

	// ErrForbidden is returned when the acting user targets another user's
	// account with a mutation.
	ErrForbidden = errors.New("forbidden")

	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
