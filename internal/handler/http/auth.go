// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The sweet-shop-manager Authors

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Vanshika394/sweet-shop-manager/internal/logger"
	"github.com/Vanshika394/sweet-shop-manager/internal/service"
	"github.com/Vanshika394/sweet-shop-manager/internal/store"
	"github.com/Vanshika394/sweet-shop-manager/internal/utils"
	"github.com/Vanshika394/sweet-shop-manager/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		if errors.Is(err, errInvalidJSON) {
			log.Err(err).Msg("invalid JSON was passed")
			utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("registration request failed validation")
		utils.WriteJSONError(w, validationMessage(err), http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSONError(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			log.Err(err).Msg("username already exists")
			utils.WriteJSONError(w, "Username already exists", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			utils.WriteJSONError(w, "Email already exists", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	if _, err := utils.WriteJSON(w, models.AuthResponse{User: registeredUser, Token: token.SignedString}, http.StatusCreated); err != nil {
		log.Err(err).Msg("writing registration response failed")
	}
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		if errors.Is(err, errInvalidJSON) {
			log.Err(err).Msg("invalid JSON was passed")
			utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("login request failed validation")
		utils.WriteJSONError(w, validationMessage(err), http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("no user was found/wrong password")
			utils.WriteJSONError(w, "Invalid credentials", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	if _, err := utils.WriteJSON(w, models.AuthResponse{User: foundUser, Token: token.SignedString}, http.StatusOK); err != nil {
		log.Err(err).Msg("writing login response failed")
	}
}

// me returns the profile of the authenticated user stored in the request
// context by the auth middleware.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.WriteJSONError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	if _, err := utils.WriteJSON(w, models.UserResponse{User: user}, http.StatusOK); err != nil {
		log.Err(err).Msg("writing profile response failed")
	}
}
