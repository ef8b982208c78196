// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells withRetry whether a failed read may be repeated.
type ErrorClassification int

const (
	// NonRetryable is the default for unknown errors, constraint violations
	// and malformed queries.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures: lost connections, serialization
	// failures, deadlocks, a server that is starting or shutting down.
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] on top of the
// SQLSTATE codes reported by pgx.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}
	return classifyPgCode(pgErr.Code)
}

func (c *PostgresErrorClassifier) IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// classifyPgCode retries whole SQLSTATE classes 08 (connection exception)
// and 40 (transaction rollback), plus the class 57 codes raised while the
// server is unavailable. Everything else, including query_canceled, fails
// immediately.
//
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func classifyPgCode(code string) ErrorClassification {
	switch {
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code):
		return Retryable
	case code == pgerrcode.CannotConnectNow,
		code == pgerrcode.AdminShutdown,
		code == pgerrcode.CrashShutdown:
		return Retryable
	default:
		return NonRetryable
	}
}
