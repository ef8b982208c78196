// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRoutes_Duplicate(t *testing.T) {
	env := newTestEnv(t)

	routes := append(env.handler.routes(), route{
		method:  http.MethodGet,
		pattern: "/users/{id}",
		handler: env.handler.getStatus,
	})

	router, err := env.handler.initRoutes(routes)
	assert.Nil(t, router)
	require.ErrorIs(t, err, ErrDuplicateRoute)
	assert.Contains(t, err.Error(), "GET /users/{id}")
}

func TestValidateRoutes_SamePatternDifferentMethods(t *testing.T) {
	noop := func(http.ResponseWriter, *http.Request) {}

	err := validateRoutes([]route{
		{method: http.MethodGet, pattern: "/users", handler: noop},
		{method: http.MethodPost, pattern: "/users", handler: noop},
		{method: http.MethodPut, pattern: "/users", handler: noop},
	})
	assert.NoError(t, err)
}

func TestRoutes_TableIsValid(t *testing.T) {
	env := newTestEnv(t)
	assert.NoError(t, validateRoutes(env.handler.routes()))
}

func TestInit_RegistersEveryRoute(t *testing.T) {
	env := newTestEnv(t)

	for _, rt := range env.handler.routes() {
		path := rt.pattern
		if path == "/users/{id}" {
			path = "/users/7"
		}
		assert.True(t, env.router.Match(chi.NewRouteContext(), rt.method, path), "%s %s", rt.method, rt.pattern)
	}
}

func TestInit_UnknownPath(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/nope", nil, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())
}

func TestInit_UnsupportedMethodLooksLikeUnknownPath(t *testing.T) {
	env := newTestEnv(t)
	unknown := env.do(t, http.MethodGet, "/no/such/path", nil, "")
	require.Equal(t, http.StatusNotFound, unknown.Code)

	tests := []struct {
		method string
		target string
	}{
		{http.MethodPatch, "/users/7"},
		{http.MethodPost, "/users/7"},
		{http.MethodDelete, "/users"},
		{http.MethodGet, "/auth/login"},
		{http.MethodPut, "/version"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := env.do(t, tt.method, tt.target, nil, "")

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())
			assert.Equal(t, unknown.Body.String(), rec.Body.String())
		})
	}
}

func TestInit_EchoesTraceID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/", nil, "")

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}
