package http

import (
	"net/http"

	"github.com/Vanshika394/sweet-shop-manager/internal/logger"
	"github.com/Vanshika394/sweet-shop-manager/internal/utils"
)

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:  "ok",
		Version: h.services.AppInfoService.Version(r.Context()),
	}

	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing health response failed")
	}
}
