// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-users-service/internal/logger"
	"github.com/MKhiriev/go-users-service/internal/utils"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It extracts the token from the "Authorization" header, verifies it via
// [service.AuthService.ParseToken] and, on success, stores the principal id
// and claims in the request context with [utils.WithPrincipal].
//
// Every rejection (missing header, malformed header, bad signature, expired
// or foreign token) is answered with the same 401 body so the client cannot
// tell them apart. The concrete cause is only logged.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Send()
			writeUnauthenticated(w)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Warn().Err(err).Send()
			writeUnauthenticated(w)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Warn().Err(err).Msg("token rejected")
			writeUnauthenticated(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithPrincipal(ctx, token)))
	})
}

func writeUnauthenticated(w http.ResponseWriter) {
	utils.WriteError(w, utils.ErrUnauthenticated.Error(), http.StatusUnauthorized)
}
