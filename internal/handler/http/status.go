// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-users-service/internal/utils"
	"github.com/MKhiriev/go-users-service/models"
)

const serviceName = "go-users-service"

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, models.StatusResponse{
		Status:  "ok",
		Service: serviceName,
		Version: h.services.AppInfoService.GetAppVersion(r.Context()),
	}, http.StatusOK)
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(serverVersion))
}
