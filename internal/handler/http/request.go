// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-users-service/internal/logger"
	"github.com/MKhiriev/go-users-service/internal/utils"
	"github.com/MKhiriev/go-users-service/models"
)

const (
	defaultPageLimit = 50

	// maxRequestBodySize caps JSON request bodies.
	maxRequestBodySize = 1 << 20
)

// decodeJSON decodes the request body into dst. On failure it answers 400
// and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON", http.StatusBadRequest)
		return false
	}
	return true
}

// userIDFromPath parses the {id} URL parameter.
func userIDFromPath(r *http.Request) (int64, error) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || userID <= 0 {
		return 0, ErrInvalidUserID
	}
	return userID, nil
}

// pageFromQuery reads ?limit= and ?offset=. A missing limit defaults to
// defaultPageLimit; the upper bound is enforced by the validators.
func pageFromQuery(r *http.Request) (models.Page, bool) {
	page := models.Page{Limit: defaultPageLimit}
	query := r.URL.Query()

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return models.Page{}, false
		}
		page.Limit = limit
	}
	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return models.Page{}, false
		}
		page.Offset = offset
	}
	return page, true
}
