// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"math"
	"regexp"
	"unicode/utf8"

	"github.com/MKhiriev/go-users-service/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldUsername targets the unique login name.
	FieldUsername = "username"

	// FieldPassword targets the plaintext password of a register request.
	FieldPassword = "password"

	// FieldCredentials requires both username and password to be non-empty.
	// Login uses it instead of the format rules so that any malformed
	// input still ends in the uniform "invalid credentials" answer.
	FieldCredentials = "credentials"

	// FieldNames targets first, full and last name.
	FieldNames = "names"

	// FieldStatus rejects client-supplied account status. Status is set by
	// the server: every new account is active.
	FieldStatus = "status"

	// FieldNotEmpty requires a partial update to carry at least one field.
	FieldNotEmpty = "not_empty"

	// FieldLimit targets the page size of a listing.
	FieldLimit = "limit"

	// FieldOffset targets the number of skipped rows of a listing.
	FieldOffset = "offset"
)

const (
	minPasswordLength = 6
	maxPasswordBytes  = 72
	maxNameLength     = 100
	MaxPageLimit      = 100
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]{3,64}$`)

// UserValidator implements [Validator] for the user account models:
// RegisterRequest, LoginRequest, UserUpdate and Page.
type UserValidator struct{}

// NewUserValidator constructs a new UserValidator.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches validation on the dynamic type of obj. Both value and
// pointer forms are accepted. Returns ErrUnsupportedType for other types.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	case models.UserUpdate:
		return v.validateUserUpdate(ctx, value, fields...)
	case *models.UserUpdate:
		return v.validateUserUpdate(ctx, *value, fields...)

	case models.Page:
		return v.validatePage(ctx, value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateRegisterRequest(_ context.Context, request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword, FieldNames, FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if !usernamePattern.MatchString(request.Username) {
				return ErrInvalidUsername
			}
		case FieldPassword:
			if err := validatePassword(request.Password); err != nil {
				return err
			}
		case FieldNames:
			if err := validateNames(&request.FirstName, &request.FullName, &request.LastName); err != nil {
				return err
			}
		case FieldStatus:
			if request.Status != "" && request.Status != models.UserStatusActive {
				return ErrStatusReadOnly
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateLoginRequest(_ context.Context, request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCredentials}
	}

	for _, f := range fields {
		switch f {
		case FieldCredentials:
			if request.Username == "" || request.Password == "" {
				return ErrEmptyCredentials
			}
		case FieldUsername:
			if !usernamePattern.MatchString(request.Username) {
				return ErrInvalidUsername
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateUserUpdate(_ context.Context, update models.UserUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNotEmpty, FieldNames, FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldNotEmpty:
			if update.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		case FieldNames:
			if err := validateNames(update.FirstName, update.FullName, update.LastName); err != nil {
				return err
			}
		case FieldStatus:
			if update.Status != nil {
				return ErrStatusReadOnly
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validatePage(_ context.Context, page models.Page, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLimit, FieldOffset}
	}

	for _, f := range fields {
		switch f {
		case FieldLimit:
			if page.Limit == 0 || page.Limit > MaxPageLimit {
				return ErrInvalidPageLimit
			}
		case FieldOffset:
			// the store binds offsets as signed 64-bit integers
			if page.Offset > math.MaxInt64 {
				return ErrInvalidOffset
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePassword rejects short passwords and those bcrypt would truncate.
func validatePassword(password string) error {
	if len(password) > maxPasswordBytes {
		return ErrPasswordTooLong
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		return ErrInvalidPassword
	}
	return nil
}

func validateNames(names ...*string) error {
	for _, name := range names {
		if name != nil && utf8.RuneCountInString(*name) > maxNameLength {
			return ErrNameTooLong
		}
	}
	return nil
}
