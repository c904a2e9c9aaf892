package wire

import (
	"net/http"

	"conference-hall/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireTempEmployeeRole(r chi.Router, roleHandler *adaptor.TempEmployeeRoleHandler, writes func(http.Handler) http.Handler) {
	r.Route("/api/temp-employee-roles", func(r chi.Router) {
		r.Get("/", roleHandler.GetAll)
		// GET /api/temp-employee-roles/search?q=6002
		r.Get("/search", roleHandler.Search)
		r.Get("/{id}", roleHandler.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(writes)
			r.Post("/", roleHandler.Create)
			r.Put("/{id}", roleHandler.Update)
			r.Delete("/{id}", roleHandler.Delete)
		})
	})
}
