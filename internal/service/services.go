// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-users-service/internal/config"
	"github.com/MKhiriev/go-users-service/internal/logger"
	"github.com/MKhiriev/go-users-service/internal/store"
	"github.com/MKhiriev/go-users-service/internal/utils"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	AppInfoService AppInfoService
}

// NewServices builds the password hasher and token issuer/verifier from cfg
// and wires the services on top of the repositories. A bad hash cost or an
// empty signing key is reported here so the server never starts with them.
func NewServices(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) (*Services, error) {
	hasher, err := utils.NewPasswordHasher(cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	issuer, err := utils.NewTokenIssuer(cfg.TokenSignKey, cfg.TokenIssuer)
	if err != nil {
		return nil, fmt.Errorf("error creating token issuer: %w", err)
	}

	verifier, err := utils.NewTokenVerifier(cfg.TokenSignKey, cfg.TokenIssuer)
	if err != nil {
		return nil, fmt.Errorf("error creating token verifier: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	authService := NewAuthService(userRepository, hasher, issuer, verifier, cfg.TokenDuration, logger)
	userService := NewUserService(userRepository, logger)

	return &Services{
		AuthService:    NewAuthValidationService().Wrap(authService),
		UserService:    NewUserValidationService().Wrap(userService),
		AppInfoService: appInfoService,
	}, nil
}
