// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/rs/zerolog"
)

// Values of [User.Status]. Accounts start active; other values are set
// only by operators directly in the store.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
	UserStatusBlocked  = "blocked"
)

// User is the authenticated principal: an identifier plus display attributes.
// Credential material is carried only as a bcrypt digest and is never
// serialized to JSON.
type User struct {
	// UserID is the server-assigned identifier of the user.
	UserID int64 `json:"id"`

	FirstName string `json:"first_name"`
	FullName  string `json:"full_name"`
	LastName  string `json:"last_name"`

	// Username is the unique login name.
	Username string `json:"username"`

	// PasswordHash is the bcrypt digest of the user's password.
	// It never leaves the server.
	PasswordHash string `json:"-"`

	// Status is the account status. Only active accounts can log in.
	Status string `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// MarshalZerologObject implements [zerolog.LogObjectMarshaler] so that a user
// can be attached to log entries without leaking the password hash.
func (u User) MarshalZerologObject(e *zerolog.Event) {
	e.Int64("id", u.UserID).
		Str("username", u.Username).
		Str("status", u.Status)
}

// UserUpdate is a partial profile update. Only non-nil fields are written.
type UserUpdate struct {
	FirstName *string `json:"first_name,omitempty"`
	FullName  *string `json:"full_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Status    *string `json:"status,omitempty"`
}

// IsEmpty reports whether the update carries no fields.
func (u UserUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.FullName == nil && u.LastName == nil && u.Status == nil
}

// Page selects a window of a listing.
type Page struct {
	Limit  uint64
	Offset uint64
}
