// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-users-service/internal/config"
	"github.com/MKhiriev/go-users-service/internal/logger"
	"github.com/MKhiriev/go-users-service/models"
)

func newTestAdapter(t *testing.T, serverURL string) *httpUsersAdapter {
	t.Helper()
	a, err := NewHTTPUsersAdapter(config.ClientAdapter{HTTPAddress: serverURL}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpUsersAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

// ── Constructor ─────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "http://localhost:3000/", want: "http://localhost:3000"},
		{raw: "localhost:3000", want: "http://localhost:3000"},
		{raw: "  https://example.com  ", want: "https://example.com"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPUsersAdapter_EmptyAddress(t *testing.T) {
	_, err := NewHTTPUsersAdapter(config.ClientAdapter{}, logger.Nop())
	assert.Error(t, err)
}

// ── Register / Login ────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/register", r.URL.Path)

		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Username)

		writeJSON(t, w, http.StatusCreated, models.User{UserID: 1, Username: req.Username})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Register(context.Background(), models.RegisterRequest{Username: "alice", Password: "s3cret!"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.UserID)
	assert.Empty(t, a.Token())
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusConflict, models.ErrorResponse{Error: "username already exists"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Register(context.Background(), models.RegisterRequest{Username: "alice"})

	require.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "username already exists")
}

func TestLogin_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.LoginResponse{Message: "Login successful", Token: "tok", UserID: 5})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	resp, err := a.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "s3cret!"})

	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.UserID)
	assert.Equal(t, "tok", a.Token())
}

func TestLogin_TokenFromHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Authorization", "Bearer header-token")
		writeJSON(t, w, http.StatusOK, models.LoginResponse{UserID: 5})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "s3cret!"})

	require.NoError(t, err)
	assert.Equal(t, "header-token", a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Error: "invalid credentials"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "nope"})

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

// ── Authenticated calls ─────────────────────────────────────────────────────

func TestAuthenticatedRequests_SendBearerToken(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		paths = append(paths, r.Method+" "+r.URL.RequestURI())

		switch {
		case r.URL.Path == "/users" && r.Method == http.MethodGet:
			writeJSON(t, w, http.StatusOK, []models.User{{UserID: 1}})
		case r.Method == http.MethodGet:
			writeJSON(t, w, http.StatusOK, models.User{UserID: 1})
		default:
			writeJSON(t, w, http.StatusOK, models.MessageResponse{Message: "ok"})
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(" tok ")
	ctx := context.Background()
	name := "Alicia"

	_, err := a.GetUser(ctx, 1)
	require.NoError(t, err)
	_, err = a.GetCurrentUser(ctx)
	require.NoError(t, err)
	users, err := a.ListUsers(ctx, models.Page{Limit: 10, Offset: 5})
	require.NoError(t, err)
	assert.Len(t, users, 1)
	require.NoError(t, a.UpdateUser(ctx, 1, models.UserUpdate{FirstName: &name}))
	require.NoError(t, a.UpdateUser(ctx, 0, models.UserUpdate{FirstName: &name}))
	require.NoError(t, a.DeleteUser(ctx, 1))

	assert.Equal(t, []string{
		"GET /users/1",
		"GET /users/me",
		"GET /users?limit=10&offset=5",
		"PUT /users/1",
		"PUT /users",
		"DELETE /users/1",
	}, paths)
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{status: http.StatusBadRequest, want: ErrBadRequest},
		{status: http.StatusUnauthorized, want: ErrUnauthorized},
		{status: http.StatusForbidden, want: ErrForbidden},
		{status: http.StatusNotFound, want: ErrNotFound},
		{status: http.StatusConflict, want: ErrConflict},
		{status: http.StatusInternalServerError, want: ErrInternalServerError},
		{status: http.StatusServiceUnavailable, want: ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, tt.status, models.ErrorResponse{Error: "x"})
			}))
			defer srv.Close()

			err := newTestAdapter(t, srv.URL).DeleteUser(context.Background(), 1)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMapHTTPError_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).DeleteUser(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}
