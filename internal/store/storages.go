// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-users-service/internal/config"
	"github.com/MKhiriev/go-users-service/internal/logger"
)

// Storages groups the repositories and owns the underlying connection.
type Storages struct {
	UserRepository UserRepository

	db *DB
}

// NewStorages connects to the database selected by the DSN scheme, applies
// migrations and builds the repositories.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	dialect, err := DialectFromDSN(cfg.DSN)
	if err != nil {
		return nil, err
	}

	var db *DB
	switch dialect {
	case DialectPostgres:
		db, err = NewConnectPostgres(ctx, cfg, log)
	case DialectSQLite:
		db, err = NewConnectSQLite(ctx, cfg, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		db:             db,
	}, nil
}

// Ping checks that the database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
