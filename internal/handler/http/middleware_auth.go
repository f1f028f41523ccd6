// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The sweet-shop-manager Authors

package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Vanshika394/sweet-shop-manager/internal/logger"
	"github.com/Vanshika394/sweet-shop-manager/internal/service"
	"github.com/Vanshika394/sweet-shop-manager/internal/utils"
)

const bearerScheme = "Bearer"

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.VerifyToken], and — on success —
// stores the resolved user record in the request context under
// [utils.UserCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following cases:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value cannot be parsed as a bearer token
//     ([ErrInvalidAuthorizationHeader] or [ErrEmptyToken]).
//   - The token is expired, invalid, or its subject no longer exists.
//
// A verification failure that is not a token rejection (for example the user
// store being unreachable) is reported as HTTP 500 instead.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteJSONError(w, "Authentication required", http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteJSONError(w, "Authentication required", http.StatusUnauthorized)
			return
		}

		user, err := h.services.AuthService.VerifyToken(r.Context(), tokenString)
		if err != nil {
			// Only a rejected token is the caller's fault. Anything else
			// (typically a store failure while loading the subject) must not
			// masquerade as an authentication problem.
			if errors.Is(err, service.ErrTokenIsExpiredOrInvalid) {
				log.Err(err).Msg("token verification failed")
				utils.WriteJSONError(w, "Invalid or expired token", http.StatusUnauthorized)
				return
			}

			log.Err(err).Msg("unexpected error occurred during token verification")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		// Store the resolved user in the context so that downstream handlers
		// can read the identity and the admin flag without re-parsing the token.
		ctx := context.WithValue(r.Context(), utils.UserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the token string from a raw
// "Authorization" HTTP header value of the form "Bearer <token>".
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts, or the scheme is not "Bearer".
//   - [ErrEmptyToken] — if the token part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 || parts[0] != bearerScheme {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
