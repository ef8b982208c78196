// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginResponse is returned on successful login. It carries both shapes
// clients of the older endpoints expect: {token, userId} and {message, token}.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	UserID  int64  `json:"userId"`
}

// MessageResponse is a plain acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx response. Error holds a generic,
// client-safe description and never carries internal details.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is returned by the service status endpoint.
type StatusResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}
