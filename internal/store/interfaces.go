// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-users-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with server-assigned fields.
	// A taken username yields [ErrUsernameAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByUsername returns [ErrNoUserWasFound] when nothing matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	// FindUserByID returns [ErrNoUserWasFound] when nothing matches.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	// ListUsers returns users ordered by id.
	ListUsers(ctx context.Context, page models.Page) ([]models.User, error)
	// UpdateUser applies the non-nil fields of update and returns the result.
	UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)
	// DeleteUser removes the user, or returns [ErrNoUserWasFound].
	DeleteUser(ctx context.Context, userID int64) error
}

// ErrorClassificator decides how a driver error should be handled.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may be retried.
	Classify(err error) ErrorClassification
	// IsUniqueViolation reports whether err is a unique constraint violation.
	IsUniqueViolation(err error) bool
}
