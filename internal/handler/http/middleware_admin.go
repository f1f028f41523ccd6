// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The sweet-shop-manager Authors

package http

import (
	"net/http"

	"github.com/Vanshika394/sweet-shop-manager/internal/logger"
	"github.com/Vanshika394/sweet-shop-manager/internal/utils"
)

// requireAdmin rejects requests from non-admin users. Must run after auth.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := utils.GetUserFromContext(r.Context())
		if !ok {
			utils.WriteJSONError(w, "Authentication required", http.StatusUnauthorized)
			return
		}

		if !user.IsAdmin {
			logger.FromRequest(r).Debug().
				Str("user_id", user.ID).
				Msg("admin route denied")
			utils.WriteJSONError(w, "Admin access required", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
