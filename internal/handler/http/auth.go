// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-users-service/internal/logger"
	"github.com/MKhiriev/go-users-service/internal/utils"
	"github.com/MKhiriev/go-users-service/models"
)

const loginSuccessMessage = "Login successful"

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request models.RegisterRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, request)
	if err != nil {
		writeServiceError(w, r, err, "user registration failed")
		return
	}

	_, _ = utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		writeServiceError(w, r, err, "user login failed")
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		writeServiceError(w, r, err, "creation of token failed")
		return
	}

	log.Info().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	_, _ = utils.WriteJSON(w, models.LoginResponse{
		Message: loginSuccessMessage,
		Token:   token.SignedString,
		UserID:  foundUser.UserID,
	}, http.StatusOK)
}
