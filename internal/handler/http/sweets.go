// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The sweet-shop-manager Authors

package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Vanshika394/sweet-shop-manager/internal/logger"
	"github.com/Vanshika394/sweet-shop-manager/internal/service"
	"github.com/Vanshika394/sweet-shop-manager/internal/store"
	"github.com/Vanshika394/sweet-shop-manager/internal/utils"
	"github.com/Vanshika394/sweet-shop-manager/models"
)

// sweetID parses the {id} URL parameter. A non-numeric id is a client error.
func sweetID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (h *Handler) listSweets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sweets, err := h.services.InventoryService.List(ctx)
	if err != nil {
		log.Err(err).Msg("listing sweets failed")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if _, err := utils.WriteJSON(w, sweets, http.StatusOK); err != nil {
		log.Err(err).Msg("writing sweets response failed")
	}
}

func (h *Handler) searchSweets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query := r.URL.Query()
	filter := models.SweetFilter{
		Query:    query.Get("query"),
		Category: query.Get("category"),
	}

	if raw := query.Get("minPrice"); raw != "" {
		minPrice, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Err(err).Str("minPrice", raw).Msg("invalid minPrice query parameter")
			utils.WriteJSONError(w, "minPrice must be an integer", http.StatusBadRequest)
			return
		}
		filter.MinPrice = &minPrice
	}
	if raw := query.Get("maxPrice"); raw != "" {
		maxPrice, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Err(err).Str("maxPrice", raw).Msg("invalid maxPrice query parameter")
			utils.WriteJSONError(w, "maxPrice must be an integer", http.StatusBadRequest)
			return
		}
		filter.MaxPrice = &maxPrice
	}

	sweets, err := h.services.InventoryService.Search(ctx, filter)
	if err != nil {
		log.Err(err).Msg("searching sweets failed")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if _, err := utils.WriteJSON(w, sweets, http.StatusOK); err != nil {
		log.Err(err).Msg("writing search response failed")
	}
}

func (h *Handler) createSweet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateSweetRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		if errors.Is(err, errInvalidJSON) {
			log.Err(err).Msg("invalid JSON was passed")
			utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("create sweet request failed validation")
		utils.WriteJSONError(w, validationMessage(err), http.StatusBadRequest)
		return
	}

	sweet, err := h.services.InventoryService.Create(ctx, req)
	if err != nil {
		log.Err(err).Msg("creating sweet failed")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if _, err := utils.WriteJSON(w, sweet, http.StatusCreated); err != nil {
		log.Err(err).Msg("writing created sweet response failed")
	}
}

func (h *Handler) updateSweet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := sweetID(r)
	if err != nil {
		log.Err(err).Msg("invalid sweet id")
		utils.WriteJSONError(w, "invalid sweet id", http.StatusBadRequest)
		return
	}

	var req models.UpdateSweetRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		if errors.Is(err, errInvalidJSON) {
			log.Err(err).Msg("invalid JSON was passed")
			utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("update sweet request failed validation")
		utils.WriteJSONError(w, validationMessage(err), http.StatusBadRequest)
		return
	}

	sweet, err := h.services.InventoryService.Update(ctx, id, req)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrSweetNotFound):
			log.Err(err).Int64("id", id).Msg("sweet not found")
			utils.WriteJSONError(w, "Sweet not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("id", id).Msg("updating sweet failed")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	if _, err := utils.WriteJSON(w, sweet, http.StatusOK); err != nil {
		log.Err(err).Msg("writing updated sweet response failed")
	}
}

func (h *Handler) deleteSweet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := sweetID(r)
	if err != nil {
		log.Err(err).Msg("invalid sweet id")
		utils.WriteJSONError(w, "invalid sweet id", http.StatusBadRequest)
		return
	}

	if err := h.services.InventoryService.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, store.ErrSweetNotFound):
			log.Err(err).Int64("id", id).Msg("sweet not found")
			utils.WriteJSONError(w, "Sweet not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("id", id).Msg("deleting sweet failed")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) purchaseSweet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := sweetID(r)
	if err != nil {
		log.Err(err).Msg("invalid sweet id")
		utils.WriteJSONError(w, "invalid sweet id", http.StatusBadRequest)
		return
	}

	var req models.QuantityRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		if errors.Is(err, errInvalidJSON) {
			log.Err(err).Msg("invalid JSON was passed")
			utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("purchase request failed validation")
		utils.WriteJSONError(w, validationMessage(err), http.StatusBadRequest)
		return
	}

	sweet, err := h.services.InventoryService.Purchase(ctx, id, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidQuantity):
			log.Err(err).Int64("id", id).Msg("invalid purchase quantity")
			utils.WriteJSONError(w, "quantity must be a positive integer", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrSweetNotFound):
			log.Err(err).Int64("id", id).Msg("sweet not found")
			utils.WriteJSONError(w, "Sweet not found", http.StatusNotFound)
			return
		case errors.Is(err, store.ErrInsufficientStock):
			log.Err(err).Int64("id", id).Int64("quantity", req.Quantity).Msg("insufficient stock")
			utils.WriteJSONError(w, "Insufficient stock", http.StatusBadRequest)
			return
		default:
			log.Err(err).Int64("id", id).Msg("purchasing sweet failed")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	if _, err := utils.WriteJSON(w, sweet, http.StatusOK); err != nil {
		log.Err(err).Msg("writing purchase response failed")
	}
}

func (h *Handler) restockSweet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := sweetID(r)
	if err != nil {
		log.Err(err).Msg("invalid sweet id")
		utils.WriteJSONError(w, "invalid sweet id", http.StatusBadRequest)
		return
	}

	var req models.QuantityRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		if errors.Is(err, errInvalidJSON) {
			log.Err(err).Msg("invalid JSON was passed")
			utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("restock request failed validation")
		utils.WriteJSONError(w, validationMessage(err), http.StatusBadRequest)
		return
	}

	sweet, err := h.services.InventoryService.Restock(ctx, id, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidQuantity):
			log.Err(err).Int64("id", id).Msg("invalid restock quantity")
			utils.WriteJSONError(w, "quantity must be a positive integer", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrSweetNotFound):
			log.Err(err).Int64("id", id).Msg("sweet not found")
			utils.WriteJSONError(w, "Sweet not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("id", id).Msg("restocking sweet failed")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	if _, err := utils.WriteJSON(w, sweet, http.StatusOK); err != nil {
		log.Err(err).Msg("writing restock response failed")
	}
}
