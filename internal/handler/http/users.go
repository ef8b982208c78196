// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-users-service/internal/utils"
	"github.com/MKhiriev/go-users-service/models"
)

const (
	userUpdatedMessage = "User updated successfully"
	userDeletedMessage = "User deleted successfully"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	page, ok := pageFromQuery(r)
	if !ok {
		utils.WriteError(w, "invalid paging parameters", http.StatusBadRequest)
		return
	}

	users, err := h.services.UserService.ListUsers(r.Context(), page)
	if err != nil {
		writeServiceError(w, r, err, "listing users failed")
		return
	}

	_, _ = utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.UserService.GetCurrentUser(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "getting current user failed")
		return
	}

	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromPath(r)
	if err != nil {
		writeServiceError(w, r, err, "getting user failed")
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "getting user failed")
		return
	}

	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}

// updateCurrentUser handles PUT /users: the target is always the acting
// principal.
func (h *Handler) updateCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeUnauthenticated(w)
		return
	}
	h.updateUserByID(w, r, userID)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromPath(r)
	if err != nil {
		writeServiceError(w, r, err, "updating user failed")
		return
	}
	h.updateUserByID(w, r, userID)
}

func (h *Handler) updateUserByID(w http.ResponseWriter, r *http.Request, userID int64) {
	var update models.UserUpdate
	if !decodeJSON(w, r, &update) {
		return
	}

	if _, err := h.services.UserService.UpdateUser(r.Context(), userID, update); err != nil {
		writeServiceError(w, r, err, "updating user failed")
		return
	}

	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: userUpdatedMessage}, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromPath(r)
	if err != nil {
		writeServiceError(w, r, err, "deleting user failed")
		return
	}

	if err = h.services.UserService.DeleteUser(r.Context(), userID); err != nil {
		writeServiceError(w, r, err, "deleting user failed")
		return
	}

	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: userDeletedMessage}, http.StatusOK)
}
