// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The sweet-shop-manager Authors

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vanshika394/sweet-shop-manager/internal/service"
	"github.com/Vanshika394/sweet-shop-manager/internal/store"
	"github.com/Vanshika394/sweet-shop-manager/models"
)

func TestRegister_Created(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, req models.RegisterRequest) (models.User, error) {
			return models.User{
				ID:       "user-id",
				Username: req.Username,
				Email:    req.Email,
			}, nil
		},
		createTokenFn: func(_ context.Context, user models.User) (models.Token, error) {
			return models.Token{SignedString: "signed-token", UserID: user.ID}, nil
		},
	}
	h := newTestHandler(auth, nil)

	body := `{"username":"john","email":"john@example.com","password":"secret-password"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	recorder := serve(h, req)

	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "Bearer signed-token", recorder.Header().Get("Authorization"))

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, "john", resp.User.Username)
	assert.Equal(t, "signed-token", resp.Token)

	// the password hash must never appear in the payload
	assert.NotContains(t, recorder.Body.String(), "password")
	assert.NotContains(t, recorder.Body.String(), "hash")
}

func TestRegister_ValidationFailures(t *testing.T) {
	h := newTestHandler(nil, nil)

	cases := []struct {
		name string
		body string
	}{
		{"missing username", `{"email":"a@b.com","password":"secret123"}`},
		{"short username", `{"username":"jo","email":"a@b.com","password":"secret123"}`},
		{"bad email", `{"username":"john","email":"not-an-email","password":"secret123"}`},
		{"short password", `{"username":"john","email":"a@b.com","password":"short"}`},
		{"malformed json", `{"username":`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(tc.body))
			recorder := serve(h, req)

			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			assert.Contains(t, recorder.Body.String(), "message")
		})
	}
}

func TestRegister_Conflicts(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		message string
	}{
		{"username taken", store.ErrUsernameAlreadyExists, "Username already exists"},
		{"email taken", store.ErrEmailAlreadyExists, "Email already exists"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := &mockAuthService{
				registerFn: func(_ context.Context, _ models.RegisterRequest) (models.User, error) {
					return models.User{}, tc.err
				},
			}
			h := newTestHandler(auth, nil)

			body := `{"username":"john","email":"john@example.com","password":"secret-password"}`
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
			recorder := serve(h, req)

			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			assert.JSONEq(t, `{"message":"`+tc.message+`"}`, recorder.Body.String())
		})
	}
}

func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, req models.LoginRequest) (models.User, error) {
			return models.User{ID: "user-id", Username: req.Username}, nil
		},
		createTokenFn: func(_ context.Context, user models.User) (models.Token, error) {
			return models.Token{SignedString: "signed-token", UserID: user.ID}, nil
		},
	}
	h := newTestHandler(auth, nil)

	body := `{"username":"john","password":"secret-password"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	recorder := serve(h, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Bearer signed-token", recorder.Header().Get("Authorization"))

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.Token)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.LoginRequest) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	}
	h := newTestHandler(auth, nil)

	body := `{"username":"john","password":"wrong-password"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	recorder := serve(h, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.JSONEq(t, `{"message":"Invalid credentials"}`, recorder.Body.String())
}

func TestMe_ReturnsAuthenticatedUser(t *testing.T) {
	auth := &mockAuthService{
		verifyTokenFn: func(_ context.Context, tokenString string) (models.User, error) {
			require.Equal(t, "valid-token", tokenString)
			return models.User{ID: "user-id", Username: "john", IsAdmin: true}, nil
		},
	}
	h := newTestHandler(auth, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	recorder := serve(h, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp models.UserResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, "john", resp.User.Username)
	assert.True(t, resp.User.IsAdmin)
}
