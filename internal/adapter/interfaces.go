// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the users service REST API.
//
// [UsersAdapter] hides the HTTP details from callers such as the command-line
// client: it serialises requests, keeps the bearer token received at login,
// and maps HTTP status codes to the sentinel errors in errors.go so that
// callers can use [errors.Is] (e.g. [ErrConflict] for 409, [ErrUnauthorized]
// for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-users-service/models"
)

// UsersAdapter defines communication with the users service.
type UsersAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Register creates a new account and returns the created user.
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)

	// Login authenticates and stores the returned token via SetToken.
	Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, error)

	GetUser(ctx context.Context, userID int64) (models.User, error)
	GetCurrentUser(ctx context.Context) (models.User, error)
	ListUsers(ctx context.Context, page models.Page) ([]models.User, error)

	// UpdateUser changes the profile of userID. A zero userID targets the
	// acting user.
	UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) error

	DeleteUser(ctx context.Context, userID int64) error
}
