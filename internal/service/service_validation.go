// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-users-service/internal/validators"
	"github.com/MKhiriev/go-users-service/models"
)

// AuthValidationService validates requests before they reach the wrapped
// AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *AuthValidationService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.Register(ctx, request)
}

func (v *AuthValidationService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, request, validators.FieldCredentials); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.Login(ctx, request)
}

func (v *AuthValidationService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return v.inner.CreateToken(ctx, user)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

// UserValidationService validates paging and updates before they reach the
// wrapped UserService.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *UserValidationService) ListUsers(ctx context.Context, page models.Page) ([]models.User, error) {
	if err := v.validator.Validate(ctx, page); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.ListUsers(ctx, page)
}

func (v *UserValidationService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	if userID <= 0 {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, validators.ErrInvalidUserID)
	}
	return v.inner.GetUser(ctx, userID)
}

func (v *UserValidationService) GetCurrentUser(ctx context.Context) (models.User, error) {
	return v.inner.GetCurrentUser(ctx)
}

func (v *UserValidationService) UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
	if userID <= 0 {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, validators.ErrInvalidUserID)
	}
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.UpdateUser(ctx, userID, update)
}

func (v *UserValidationService) DeleteUser(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return fmt.Errorf("%w: %w", ErrValidation, validators.ErrInvalidUserID)
	}
	return v.inner.DeleteUser(ctx, userID)
}

func (v *UserValidationService) Wrap(inner UserService) UserService {
	v.inner = inner
	return v
}
