package wire

import (
	"net/http"

	"conference-hall/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMasterData(r chi.Router, prefix string, h *adaptor.MasterDataHandler, writes func(http.Handler) http.Handler) {
	r.Route(prefix, func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{id}", h.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(writes)
			r.Post("/", h.Create)
			r.Put("/{id}", h.Update)
			r.Delete("/{id}", h.Delete)
		})
	})
}
