// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest is the body of POST /auth/register and POST /users.
// Password is plaintext on the wire only; it is hashed before it reaches
// the store and is never echoed back.
type RegisterRequest struct {
	FirstName string `json:"first_name"`
	FullName  string `json:"full_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Status    string `json:"status"`
}

// ToUser builds the user record to persist, without any credential data.
func (r RegisterRequest) ToUser() User {
	return User{
		FirstName: r.FirstName,
		FullName:  r.FullName,
		LastName:  r.LastName,
		Username:  r.Username,
		Status:    r.Status,
	}
}

// LoginRequest is the body of POST /auth/login and POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
