// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrInvalidUsername  = errors.New("username must be 3 to 64 characters of letters, digits, '.', '_' or '-'")
	ErrInvalidPassword  = errors.New("password must be at least 6 characters")
	ErrPasswordTooLong  = errors.New("password must not exceed 72 bytes")
	ErrEmptyCredentials = errors.New("username and password are required")
	ErrNameTooLong      = errors.New("name fields must not exceed 100 characters")
	ErrStatusReadOnly   = errors.New("status is managed by the server and cannot be set")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
	ErrInvalidPageLimit = errors.New("limit must be between 1 and 100")
	ErrInvalidOffset    = errors.New("offset is out of range")
)
