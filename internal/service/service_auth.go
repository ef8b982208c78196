// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-users-service/internal/logger"
	"github.com/MKhiriev/go-users-service/internal/store"
	"github.com/MKhiriev/go-users-service/internal/utils"
	"github.com/MKhiriev/go-users-service/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and session token
// lifecycle using a UserRepository for persistence and bcrypt for passwords.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	hasher   passwordHasher
	issuer   tokenIssuer
	verifier tokenVerifier

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// dummyDigest is verified against when the username is unknown, so that
	// a failed login costs one bcrypt comparison either way.
	dummyDigest func() (string, error)

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService. All state is read-only after
// construction and the service is safe for concurrent use.
func NewAuthService(
	userRepository store.UserRepository,
	hasher passwordHasher,
	issuer tokenIssuer,
	verifier tokenVerifier,
	tokenDuration time.Duration,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		issuer:         issuer,
		verifier:       verifier,
		tokenDuration:  tokenDuration,
		dummyDigest: sync.OnceValues(func() (string, error) {
			return hasher.Hash(utils.NewUUIDGenerator().Generate())
		}),
		logger: logger,
	}
}

// Register hashes the password and persists a new user.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrValidation if bcrypt cannot accept the password.
//   - store.ErrUsernameAlreadyExists (wrapped) if the username is taken.
func (a *authService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	digest, err := a.hasher.Hash(request.Password)
	if err != nil {
		if errors.Is(err, utils.ErrPasswordTooLong) {
			return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
		}
		log.Err(err).Str("username", request.Username).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := request.ToUser()
	user.PasswordHash = digest

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Object("user", registeredUser).Msg("user registered")
	return registeredUser, nil
}

// Login authenticates an existing user by username and password.
//
// An unknown username, a wrong password and an account that is not active
// all yield ErrBadCredentials. Storage and hashing failures are returned wrapped.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByUsername(ctx, request.Username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		if digest, dummyErr := a.dummyDigest(); dummyErr == nil {
			_, _ = a.hasher.Verify(request.Password, digest)
		}
		log.Debug().Msg("login attempt for unknown username")
		return models.User{}, ErrBadCredentials
	}
	if err != nil {
		log.Err(err).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	ok, err := a.hasher.Verify(request.Password, foundUser.PasswordHash)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("password verification failed")
		return models.User{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		log.Debug().Int64("id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrBadCredentials
	}
	if foundUser.Status != models.UserStatusActive {
		log.Info().Int64("id", foundUser.UserID).Str("status", foundUser.Status).Msg("login refused for account that is not active")
		return models.User{}, ErrBadCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed session token for the given user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := a.issuer.Issue(models.NewPrincipalClaims(user), a.tokenDuration)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", user.UserID).Msg("token issuance failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw token string without any I/O. Every failure is
// reported as utils.ErrUnauthenticated.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := a.verifier.Verify(tokenString)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, err
	}

	return token, nil
}
