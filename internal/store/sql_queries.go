// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-users-service/models"
)

const usersTable = "users"

// userColumns is the column order every user query returns and scanUser reads.
var userColumns = []string{
	"id", "first_name", "full_name", "last_name", "username",
	"password_hash", "status", "created_at", "updated_at",
}

func returningUserColumns() string {
	return "RETURNING " + strings.Join(userColumns, ", ")
}

func (db *DB) buildCreateUser(user models.User) (string, []any, error) {
	query, args, err := db.builder.
		Insert(usersTable).
		Columns("first_name", "full_name", "last_name", "username", "password_hash", "status").
		Values(user.FirstName, user.FullName, user.LastName, user.Username, user.PasswordHash, user.Status).
		Suffix(returningUserColumns()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildFindUser(where sq.Eq) (string, []any, error) {
	query, args, err := db.builder.
		Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildListUsers(page models.Page) (string, []any, error) {
	query, args, err := db.builder.
		Select(userColumns...).
		From(usersTable).
		OrderBy("id").
		Limit(page.Limit).
		Offset(page.Offset).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateUser sets only the non-nil fields of update and always bumps
// updated_at.
func (db *DB) buildUpdateUser(userID int64, update models.UserUpdate, now time.Time) (string, []any, error) {
	set := sq.Eq{"updated_at": now}
	if update.FirstName != nil {
		set["first_name"] = *update.FirstName
	}
	if update.FullName != nil {
		set["full_name"] = *update.FullName
	}
	if update.LastName != nil {
		set["last_name"] = *update.LastName
	}
	if update.Status != nil {
		set["status"] = *update.Status
	}

	query, args, err := db.builder.
		Update(usersTable).
		SetMap(set).
		Where(sq.Eq{"id": userID}).
		Suffix(returningUserColumns()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildDeleteUser(userID int64) (string, []any, error) {
	query, args, err := db.builder.
		Delete(usersTable).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.UserID,
		&user.FirstName,
		&user.FullName,
		&user.LastName,
		&user.Username,
		&user.PasswordHash,
		&user.Status,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	return user, err
}
