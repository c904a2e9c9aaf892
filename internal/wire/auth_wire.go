package wire

import (
	"conference-hall/internal/adaptor"
	"conference-hall/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler, log *zap.Logger) {
	r.Route("/api/auth", func(r chi.Router) {
		// POST /api/auth/login - issue a bearer token
		r.Post("/login", authHandler.Login)

		// GET /api/auth/profile - always requires a token
		r.With(middleware.RequireActor(true, log)).Get("/profile", authHandler.Profile)
	})
}
