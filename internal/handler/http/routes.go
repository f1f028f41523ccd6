package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/health", h.health)
	})

	// routes requiring a verified bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/me", h.me)
		r.Get("/api/sweets", h.listSweets)
		r.Get("/api/sweets/search", h.searchSweets)
		r.Post("/api/sweets/{id}/purchase", h.purchaseSweet)

		// routes additionally requiring the admin flag
		r.Group(func(r chi.Router) {
			r.Use(h.requireAdmin)

			r.Post("/api/sweets", h.createSweet)
			r.Put("/api/sweets/{id}", h.updateSweet)
			r.Delete("/api/sweets/{id}", h.deleteSweet)
			r.Post("/api/sweets/{id}/restock", h.restockSweet)
		})
	})

	return router
}
