// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

const (
	minPasswordHashCost = 10
	maxPasswordHashCost = 31
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants required to start the server.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if strings.TrimSpace(cfg.App.TokenIssuer) == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token issuer and positive token duration are required", ErrInvalidAppConfigs)
	}

	if cfg.App.PasswordHashCost < minPasswordHashCost || cfg.App.PasswordHashCost > maxPasswordHashCost {
		return fmt.Errorf("%w: password hash cost %d is out of range %d..%d",
			ErrInvalidAppConfigs, cfg.App.PasswordHashCost, minPasswordHashCost, maxPasswordHashCost)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.Storage.DB.MaxOpenConns < 1 || cfg.Storage.DB.MaxIdleConns < 0 {
		return fmt.Errorf("%w: pool sizes must be positive", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.ShutdownTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
