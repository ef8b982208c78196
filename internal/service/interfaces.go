// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-users-service/models"
)

// AuthService registers users, checks their credentials and manages session
// tokens.
type AuthService interface {
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService serves the users resource on behalf of the acting user found
// in the request context.
type UserService interface {
	ListUsers(ctx context.Context, page models.Page) ([]models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	GetCurrentUser(ctx context.Context) (models.User, error)
	UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper decorates an AuthService with additional behavior.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// UserServiceWrapper decorates a UserService with additional behavior.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

type passwordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) (bool, error)
}

type tokenIssuer interface {
	Issue(claims models.PrincipalClaims, ttl time.Duration) (models.Token, error)
}

type tokenVerifier interface {
	Verify(tokenString string) (models.Token, error)
}
