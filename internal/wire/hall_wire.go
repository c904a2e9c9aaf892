package wire

import (
	"net/http"

	"conference-hall/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireHall(
	r chi.Router,
	hallHandler *adaptor.HallHandler,
	sessionHandler *adaptor.SessionHandler,
	writes func(http.Handler) http.Handler,
) {
	r.Route("/api/halls", func(r chi.Router) {
		r.Get("/", hallHandler.GetAll)
		r.Get("/{id}", hallHandler.GetByID)
		r.Get("/{id}/sessions", sessionHandler.ListByHall)

		r.Group(func(r chi.Router) {
			r.Use(writes)

			// POST /api/halls/configure - hall plus its sessions in one call
			r.Post("/configure", hallHandler.Configure)
			r.Post("/", hallHandler.Create)
			r.Put("/{id}", hallHandler.Update)
			r.Delete("/{id}", hallHandler.Delete)
			r.Post("/{id}/sessions", sessionHandler.Create)
		})
	})

	r.Route("/api/sessions", func(r chi.Router) {
		r.Get("/{id}", sessionHandler.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(writes)
			r.Put("/{id}", sessionHandler.Update)
			r.Delete("/{id}", sessionHandler.Delete)
		})
	})
}
