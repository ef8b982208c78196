// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-users-service/internal/config"
	"github.com/MKhiriev/go-users-service/internal/logger"
	"github.com/MKhiriev/go-users-service/internal/mock"
	"github.com/MKhiriev/go-users-service/internal/service"
	"github.com/MKhiriev/go-users-service/internal/store"
	"github.com/MKhiriev/go-users-service/internal/utils"
	"github.com/MKhiriev/go-users-service/models"
)

const (
	testSignKey = "handler-test-sign-key"
	testIssuer  = "go-users-service-test"
	testVersion = "1.2.3"
)

// ──────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────

type testEnv struct {
	handler *Handler
	router  *chi.Mux
	repo    *mock.MockUserRepository
	hasher  *utils.PasswordHasher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithLogger(t, logger.Nop())
}

// newTestEnvWithLogger is newTestEnv with request logs sent to log.
func newTestEnvWithLogger(t *testing.T, log *logger.Logger) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	services, err := service.NewServices(repo, config.App{
		TokenSignKey:     testSignKey,
		TokenIssuer:      testIssuer,
		TokenDuration:    time.Hour,
		PasswordHashCost: utils.MinPasswordHashCost,
		Version:          testVersion,
	}, logger.Nop())
	require.NoError(t, err)

	hasher, err := utils.NewPasswordHasher(utils.MinPasswordHashCost)
	require.NoError(t, err)

	h := NewHandler(services, config.Server{RequestTimeout: time.Second}, log)
	router, err := h.Init()
	require.NoError(t, err)

	return &testEnv{handler: h, router: router, repo: repo, hasher: hasher}
}

// tokenFor issues a bearer token for userID the same way a login would.
func (e *testEnv) tokenFor(t *testing.T, userID int64) string {
	t.Helper()
	token, err := e.handler.services.AuthService.CreateToken(t.Context(), models.User{UserID: userID, Username: "alice"})
	require.NoError(t, err)
	return token.SignedString
}

func (e *testEnv) do(t *testing.T, method, target string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

func storedAlice(t *testing.T, hasher *utils.PasswordHasher) models.User {
	t.Helper()
	digest, err := hasher.Hash("s3cret!")
	require.NoError(t, err)
	return models.User{
		UserID:       7,
		FirstName:    "Alice",
		Username:     "alice",
		PasswordHash: digest,
		Status:       models.UserStatusActive,
	}
}

// ──────────────────────────────────────────────
// Status / version
// ──────────────────────────────────────────────

func TestHandler_Status(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, serviceName, resp.Service)
	assert.Equal(t, testVersion, resp.Version)
}

func TestHandler_Version(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/version", nil, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testVersion, rec.Body.String())
}

// ──────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────

func TestHandler_Register(t *testing.T) {
	for _, path := range []string{"/auth/register", "/users"} {
		t.Run(path, func(t *testing.T) {
			env := newTestEnv(t)

			env.repo.EXPECT().
				CreateUser(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
					assert.Equal(t, "alice", user.Username)
					assert.NotEqual(t, "s3cret!", user.PasswordHash)
					user.UserID = 1
					user.Status = models.UserStatusActive
					return user, nil
				})

			rec := env.do(t, http.MethodPost, path, models.RegisterRequest{
				FirstName: "Alice",
				Username:  "alice",
				Password:  "s3cret!",
			}, "")

			require.Equal(t, http.StatusCreated, rec.Code)
			assert.NotContains(t, rec.Body.String(), "password")

			var user models.User
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
			assert.Equal(t, int64(1), user.UserID)
			assert.Equal(t, "alice", user.Username)
		})
	}
}

func TestHandler_Register_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		setup      func(env *testEnv)
		wantStatus int
		wantError  string
	}{
		{
			name:       "invalid JSON",
			body:       "{not json",
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid JSON",
		},
		{
			name:       "short password",
			body:       models.RegisterRequest{Username: "alice", Password: "123"},
			wantStatus: http.StatusBadRequest,
			wantError:  "validation failed: password must be at least 6 characters",
		},
		{
			name: "username taken",
			body: models.RegisterRequest{Username: "alice", Password: "s3cret!"},
			setup: func(env *testEnv) {
				env.repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
					Return(models.User{}, store.ErrUsernameAlreadyExists)
			},
			wantStatus: http.StatusConflict,
			wantError:  "username already exists",
		},
		{
			name: "persistence failure is not leaked",
			body: models.RegisterRequest{Username: "alice", Password: "s3cret!"},
			setup: func(env *testEnv) {
				env.repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
					Return(models.User{}, store.ErrExecutingQuery)
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  internalErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			if tt.setup != nil {
				tt.setup(env)
			}

			rec := env.do(t, http.MethodPost, "/auth/register", tt.body, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, decodeError(t, rec))
		})
	}
}

func TestHandler_MutationsLogOnce(t *testing.T) {
	var buf bytes.Buffer
	env := newTestEnvWithLogger(t, logger.New(&buf, "test", "info"))
	alice := storedAlice(t, env.hasher)
	token := env.tokenFor(t, alice.UserID)
	firstName := "Alicia"

	env.repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(alice, nil)
	env.repo.EXPECT().UpdateUser(gomock.Any(), alice.UserID, gomock.Any()).Return(alice, nil)
	env.repo.EXPECT().DeleteUser(gomock.Any(), alice.UserID).Return(nil)

	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/auth/register", models.RegisterRequest{Username: "alice", Password: "s3cret!"}, "").Code)
	require.Equal(t, http.StatusOK, env.do(t, http.MethodPut, "/users", models.UserUpdate{FirstName: &firstName}, token).Code)
	require.Equal(t, http.StatusOK, env.do(t, http.MethodDelete, "/users/7", nil, token).Code)

	messages := map[string]int{}
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(line, &entry))
		if msg, ok := entry["message"].(string); ok {
			messages[msg]++
		}
	}

	assert.Equal(t, 1, messages["user registered"])
	assert.Equal(t, 1, messages["user updated"])
	assert.Equal(t, 1, messages["user deleted"])
}

// ──────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────

func TestHandler_Login(t *testing.T) {
	for _, path := range []string{"/auth/login", "/login"} {
		t.Run(path, func(t *testing.T) {
			env := newTestEnv(t)
			alice := storedAlice(t, env.hasher)

			env.repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(alice, nil)

			rec := env.do(t, http.MethodPost, path, models.LoginRequest{Username: "alice", Password: "s3cret!"}, "")

			require.Equal(t, http.StatusOK, rec.Code)

			var resp models.LoginResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, loginSuccessMessage, resp.Message)
			assert.Equal(t, alice.UserID, resp.UserID)
			assert.NotEmpty(t, resp.Token)
			assert.Equal(t, "Bearer "+resp.Token, rec.Header().Get("Authorization"))

			parsed, err := env.handler.services.AuthService.ParseToken(t.Context(), resp.Token)
			require.NoError(t, err)
			assert.Equal(t, alice.UserID, parsed.UserID)
		})
	}
}

func TestHandler_Login_FailuresAreUniform(t *testing.T) {
	env := newTestEnv(t)
	alice := storedAlice(t, env.hasher)

	env.repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(alice, nil)
	env.repo.EXPECT().FindUserByUsername(gomock.Any(), "bob").Return(models.User{}, store.ErrNoUserWasFound)

	wrongPassword := env.do(t, http.MethodPost, "/auth/login", models.LoginRequest{Username: "alice", Password: "wrong-password"}, "")
	unknownUser := env.do(t, http.MethodPost, "/auth/login", models.LoginRequest{Username: "bob", Password: "s3cret!"}, "")

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownUser.Body.String())
	assert.Equal(t, "invalid credentials", decodeError(t, wrongPassword))
	assert.Empty(t, wrongPassword.Header().Get("Authorization"))
}

// ──────────────────────────────────────────────
// Users
// ──────────────────────────────────────────────

func TestHandler_GetUser(t *testing.T) {
	env := newTestEnv(t)
	alice := storedAlice(t, env.hasher)
	token := env.tokenFor(t, alice.UserID)

	env.repo.EXPECT().FindUserByID(gomock.Any(), alice.UserID).Return(alice, nil)

	rec := env.do(t, http.MethodGet, "/users/7", nil, token)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), alice.PasswordHash)

	var user models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, alice.UserID, user.UserID)
	assert.Equal(t, "alice", user.Username)
}

func TestHandler_GetUser_Errors(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, 7)

	env.repo.EXPECT().FindUserByID(gomock.Any(), int64(99)).Return(models.User{}, store.ErrNoUserWasFound)

	notFound := env.do(t, http.MethodGet, "/users/99", nil, token)
	assert.Equal(t, http.StatusNotFound, notFound.Code)
	assert.Equal(t, "user not found", decodeError(t, notFound))

	badID := env.do(t, http.MethodGet, "/users/abc", nil, token)
	assert.Equal(t, http.StatusBadRequest, badID.Code)
	assert.Equal(t, "invalid user id", decodeError(t, badID))
}

func TestHandler_GetCurrentUser(t *testing.T) {
	env := newTestEnv(t)
	alice := storedAlice(t, env.hasher)

	env.repo.EXPECT().FindUserByID(gomock.Any(), alice.UserID).Return(alice, nil)

	rec := env.do(t, http.MethodGet, "/users/me", nil, env.tokenFor(t, alice.UserID))

	require.Equal(t, http.StatusOK, rec.Code)
	var user models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, alice.UserID, user.UserID)
}

func TestHandler_ListUsers(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, 7)

	env.repo.EXPECT().
		ListUsers(gomock.Any(), models.Page{Limit: defaultPageLimit}).
		Return([]models.User{{UserID: 7, Username: "alice"}, {UserID: 8, Username: "bob"}}, nil)
	env.repo.EXPECT().
		ListUsers(gomock.Any(), models.Page{Limit: 10, Offset: 20}).
		Return([]models.User{}, nil)

	rec := env.do(t, http.MethodGet, "/users", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	var users []models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	assert.Len(t, users, 2)

	rec = env.do(t, http.MethodGet, "/users?limit=10&offset=20", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandler_ListUsers_BadPaging(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, 7)

	for _, query := range []string{
		"?limit=abc",
		"?offset=-1",
		"?limit=0",
		"?limit=101",
		"?offset=9223372036854775808",
		"?offset=18446744073709551615",
		"?offset=18446744073709551616",
	} {
		t.Run(query, func(t *testing.T) {
			rec := env.do(t, http.MethodGet, "/users"+query, nil, token)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	env.repo.EXPECT().ListUsers(gomock.Any(), models.Page{Limit: defaultPageLimit, Offset: math.MaxInt64}).Return([]models.User{}, nil)
	rec := env.do(t, http.MethodGet, "/users?offset=9223372036854775807", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandler_UpdateUser(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, 7)
	firstName := "Alicia"

	env.repo.EXPECT().
		UpdateUser(gomock.Any(), int64(7), models.UserUpdate{FirstName: &firstName}).
		Return(models.User{UserID: 7, FirstName: firstName}, nil).
		Times(2)

	for _, path := range []string{"/users/7", "/users"} {
		rec := env.do(t, http.MethodPut, path, models.UserUpdate{FirstName: &firstName}, token)
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.JSONEq(t, `{"message":"User updated successfully"}`, rec.Body.String())
	}
}

func TestHandler_UpdateUser_Errors(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, 7)
	firstName := "Mallory"

	forbidden := env.do(t, http.MethodPut, "/users/8", models.UserUpdate{FirstName: &firstName}, token)
	assert.Equal(t, http.StatusForbidden, forbidden.Code)
	assert.Equal(t, "forbidden", decodeError(t, forbidden))

	empty := env.do(t, http.MethodPut, "/users/7", "{}", token)
	assert.Equal(t, http.StatusBadRequest, empty.Code)

	for _, body := range []string{`{"status":"active"}`, `{"first_name":"Alicia","status":"inactive"}`} {
		rec := env.do(t, http.MethodPut, "/users", body, token)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Contains(t, decodeError(t, rec), "status is managed by the server", body)
	}

	env.repo.EXPECT().UpdateUser(gomock.Any(), int64(7), gomock.Any()).Return(models.User{}, store.ErrNoUserWasFound)
	missing := env.do(t, http.MethodPut, "/users/7", models.UserUpdate{FirstName: &firstName}, token)
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestHandler_DeleteUser(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, 7)

	env.repo.EXPECT().DeleteUser(gomock.Any(), int64(7)).Return(nil)

	rec := env.do(t, http.MethodDelete, "/users/7", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"User deleted successfully"}`, rec.Body.String())

	forbidden := env.do(t, http.MethodDelete, "/users/8", nil, token)
	assert.Equal(t, http.StatusForbidden, forbidden.Code)
}
