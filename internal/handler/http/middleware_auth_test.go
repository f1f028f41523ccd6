package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vanshika394/sweet-shop-manager/internal/service"
	"github.com/Vanshika394/sweet-shop-manager/internal/utils"
	"github.com/Vanshika394/sweet-shop-manager/models"
)

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	h := newTestHandler(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/sweets", nil)
	recorder := serve(h, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.JSONEq(t, `{"message":"Authentication required"}`, recorder.Body.String())
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	h := newTestHandler(nil, nil)

	for _, header := range []string{"Bearer", "Bearer ", "just-a-token"} {
		req := httptest.NewRequest(http.MethodGet, "/api/sweets", nil)
		req.Header.Set("Authorization", header)
		recorder := serve(h, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code, "header %q", header)
	}
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	tokenString, err := getTokenFromAuthHeader("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", tokenString)

	_, err = getTokenFromAuthHeader("just-a-token")
	assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader)

	_, err = getTokenFromAuthHeader("Basic dXNlcjpwYXNz")
	assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader)

	_, err = getTokenFromAuthHeader("bearer abc.def.ghi")
	assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader)

	_, err = getTokenFromAuthHeader("Bearer ")
	assert.ErrorIs(t, err, ErrEmptyToken)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	auth := &mockAuthService{
		verifyTokenFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
	h := newTestHandler(auth, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/sweets", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	recorder := serve(h, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.JSONEq(t, `{"message":"Invalid or expired token"}`, recorder.Body.String())
}

func TestAuthMiddleware_StoreFailureIsNotAnAuthError(t *testing.T) {
	auth := &mockAuthService{
		verifyTokenFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, errors.New("user search by id failed: db is down")
		},
	}
	h := newTestHandler(auth, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/sweets", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	recorder := serve(h, req)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.JSONEq(t, `{"message":"Internal Server Error"}`, recorder.Body.String())
}

func TestAuthMiddleware_StoresUserInContext(t *testing.T) {
	user := models.User{ID: "user-id", Username: "john"}
	h := newTestHandler(userToken(user), nil)

	var fromContext models.User
	var found bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromContext, found = utils.GetUserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/anything", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	recorder := httptest.NewRecorder()
	h.auth(next).ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.True(t, found)
	assert.Equal(t, user, fromContext)
}
