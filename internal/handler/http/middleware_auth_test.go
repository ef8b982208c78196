// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-users-service/internal/utils"
	"github.com/MKhiriev/go-users-service/models"
)

// flipSignatureByte corrupts one character of the signature segment.
func flipSignatureByte(token string) string {
	lastDot := strings.LastIndex(token, ".")
	b := []byte(token)
	i := lastDot + 1
	if b[i] == 'A' {
		b[i] = 'B'
	} else {
		b[i] = 'A'
	}
	return string(b)
}

func TestAuth_PassesPrincipalToHandler(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, 42)

	var gotID int64
	var gotClaims models.PrincipalClaims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = utils.GetUserIDFromContext(r.Context())
		gotClaims, _ = utils.GetClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	env.handler.auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(42), gotID)
	assert.Equal(t, "42", gotClaims.Subject)
	assert.Equal(t, testIssuer, gotClaims.Issuer)
}

func TestAuth_Rejections(t *testing.T) {
	env := newTestEnv(t)
	valid := env.tokenFor(t, 7)

	foreignIssuer, err := utils.NewTokenIssuer(testSignKey, "someone-else")
	require.NoError(t, err)
	foreign, err := foreignIssuer.Issue(models.NewPrincipalClaims(models.User{UserID: 7}), time.Hour)
	require.NoError(t, err)

	otherKeyIssuer, err := utils.NewTokenIssuer("another-sign-key", testIssuer)
	require.NoError(t, err)
	otherKey, err := otherKeyIssuer.Issue(models.NewPrincipalClaims(models.User{UserID: 7}), time.Hour)
	require.NoError(t, err)

	expiredIssuer, err := utils.NewTokenIssuer(testSignKey, testIssuer)
	require.NoError(t, err)
	expired, err := expiredIssuer.
		WithClock(func() time.Time { return time.Now().Add(-2 * time.Hour) }).
		Issue(models.NewPrincipalClaims(models.User{UserID: 7}), time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "no header", header: ""},
		{name: "wrong scheme", header: "Basic " + valid},
		{name: "scheme only", header: "Bearer"},
		{name: "garbage token", header: "Bearer not.a.token"},
		{name: "flipped signature", header: "Bearer " + flipSignatureByte(valid)},
		{name: "foreign issuer", header: "Bearer " + foreign.SignedString},
		{name: "other sign key", header: "Bearer " + otherKey.SignedString},
		{name: "expired", header: "Bearer " + expired.SignedString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			})

			req := httptest.NewRequest(http.MethodGet, "/users/7", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			env.handler.auth(next).ServeHTTP(rec, req)

			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"error":"unauthenticated"}`, rec.Body.String())
		})
	}
}

func TestAuth_ProtectedRoutesNeverReachRepository(t *testing.T) {
	// the gomock repository has no expectations: any call fails the test
	env := newTestEnv(t)

	for _, rt := range env.handler.routes() {
		if !rt.protected {
			continue
		}
		t.Run(rt.method+" "+rt.pattern, func(t *testing.T) {
			target := strings.ReplaceAll(rt.pattern, "{id}", "7")
			rec := env.do(t, rt.method, target, "{}", "")
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}
