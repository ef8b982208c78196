// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// route is one entry of the route table.
type route struct {
	method    string
	pattern   string
	protected bool
	handler   http.HandlerFunc
}

func (h *Handler) routes() []route {
	return []route{
		{method: http.MethodGet, pattern: "/", handler: h.getStatus},
		{method: http.MethodGet, pattern: "/version", handler: h.getServerVersion},

		{method: http.MethodPost, pattern: "/auth/register", handler: h.register},
		{method: http.MethodPost, pattern: "/users", handler: h.register},
		{method: http.MethodPost, pattern: "/auth/login", handler: h.login},
		{method: http.MethodPost, pattern: "/login", handler: h.login},

		{method: http.MethodGet, pattern: "/users", protected: true, handler: h.listUsers},
		{method: http.MethodGet, pattern: "/users/me", protected: true, handler: h.getCurrentUser},
		{method: http.MethodGet, pattern: "/users/{id}", protected: true, handler: h.getUser},
		{method: http.MethodPut, pattern: "/users", protected: true, handler: h.updateCurrentUser},
		{method: http.MethodPut, pattern: "/users/{id}", protected: true, handler: h.updateUser},
		{method: http.MethodDelete, pattern: "/users/{id}", protected: true, handler: h.deleteUser},
	}
}

// validateRoutes rejects a table declaring the same method and pattern
// twice. Chi would silently keep the last registration.
func validateRoutes(routes []route) error {
	seen := make(map[string]struct{}, len(routes))
	for _, rt := range routes {
		key := rt.method + " " + rt.pattern
		if _, ok := seen[key]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateRoute, key)
		}
		seen[key] = struct{}{}
	}
	return nil
}

func (h *Handler) Init() (*chi.Mux, error) {
	return h.initRoutes(h.routes())
}

func (h *Handler) initRoutes(routes []route) (*chi.Mux, error) {
	if err := validateRoutes(routes); err != nil {
		return nil, err
	}

	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(h.withTimeout)

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	// routes without authorization
	router.Group(func(r chi.Router) {
		for _, rt := range routes {
			if !rt.protected {
				r.Method(rt.method, rt.pattern, rt.handler)
			}
		}
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		for _, rt := range routes {
			if rt.protected {
				r.Method(rt.method, rt.pattern, rt.handler)
			}
		}
	})

	h.logger.Info().Int("routes", len(routes)).Msg("http routes registered")

	return router, nil
}
