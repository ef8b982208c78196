// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-users-service/internal/logger"
	"github.com/MKhiriev/go-users-service/internal/store"
	"github.com/MKhiriev/go-users-service/internal/utils"
	"github.com/MKhiriev/go-users-service/models"
)

type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a UserService on top of the repository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (s *userService) ListUsers(ctx context.Context, page models.Page) ([]models.User, error) {
	if _, err := actingUserID(ctx); err != nil {
		return nil, err
	}

	users, err := s.userRepository.ListUsers(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("listing users failed: %w", err)
	}
	return users, nil
}

// GetUser returns any user to an authenticated caller.
func (s *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	if _, err := actingUserID(ctx); err != nil {
		return models.User{}, err
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}
	return user, nil
}

func (s *userService) GetCurrentUser(ctx context.Context) (models.User, error) {
	actingID, err := actingUserID(ctx)
	if err != nil {
		return models.User{}, err
	}

	user, err := s.userRepository.FindUserByID(ctx, actingID)
	if err != nil {
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}
	return user, nil
}

// UpdateUser changes the profile of userID, which must be the acting user.
func (s *userService) UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
	if err := authorizeSelf(ctx, userID); err != nil {
		return models.User{}, err
	}

	user, err := s.userRepository.UpdateUser(ctx, userID, update)
	if err != nil {
		return models.User{}, fmt.Errorf("user update failed: %w", err)
	}

	logger.FromContext(ctx).Info().Object("user", user).Msg("user updated")
	return user, nil
}

// DeleteUser removes userID, which must be the acting user.
func (s *userService) DeleteUser(ctx context.Context, userID int64) error {
	if err := authorizeSelf(ctx, userID); err != nil {
		return err
	}

	if err := s.userRepository.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("user deletion failed: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("id", userID).Msg("user deleted")
	return nil
}

// actingUserID reads the authenticated user id placed in ctx by the auth
// middleware.
func actingUserID(ctx context.Context) (int64, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return 0, utils.ErrUnauthenticated
	}
	return userID, nil
}

func authorizeSelf(ctx context.Context, targetID int64) error {
	actingID, err := actingUserID(ctx)
	if err != nil {
		return err
	}
	if actingID != targetID {
		logger.FromContext(ctx).Warn().
			Int64("acting_id", actingID).
			Int64("target_id", targetID).
			Msg("attempt to modify another user")
		return ErrForbidden
	}
	return nil
}
