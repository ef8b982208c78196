// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultHTTPAddress      = ":3000"
	DefaultTokenIssuer      = "go-users-service"
	DefaultTokenDuration    = time.Hour
	DefaultPasswordHashCost = 12
	DefaultLogLevel         = "info"
	DefaultRequestTimeout   = 5 * time.Second
	DefaultShutdownTimeout  = 10 * time.Second
	DefaultMaxOpenConns     = 10
	DefaultMaxIdleConns     = 5
	DefaultConnMaxLifetime  = 30 * time.Minute
	DefaultAdapterAddress   = "http://localhost:3000"
	DefaultAdapterTimeout   = 10 * time.Second
)

func defaultStructuredConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      DefaultTokenIssuer,
			TokenDuration:    DefaultTokenDuration,
			PasswordHashCost: DefaultPasswordHashCost,
			LogLevel:         DefaultLogLevel,
		},
		Storage: Storage{
			DB: DB{
				MaxOpenConns:    DefaultMaxOpenConns,
				MaxIdleConns:    DefaultMaxIdleConns,
				ConnMaxLifetime: DefaultConnMaxLifetime,
			},
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultAdapterTimeout,
		},
	}
}
