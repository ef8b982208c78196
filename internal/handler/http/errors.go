// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrDuplicateRoute is returned by Init when two entries of the route
	// table share the same method and pattern.
	ErrDuplicateRoute = errors.New("duplicate route")

	// ErrInvalidUserID is returned when the {id} path parameter is not a
	// positive integer.
	ErrInvalidUserID = errors.New("invalid user id")
)
