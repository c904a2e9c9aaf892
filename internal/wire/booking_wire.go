package wire

import (
	"net/http"

	"conference-hall/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler, writes func(http.Handler) http.Handler) {
	r.Route("/api/bookings", func(r chi.Router) {
		// GET /api/bookings?exclude_status=3,4
		r.Get("/", bookingHandler.GetAll)
		r.Get("/{id}", bookingHandler.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(writes)

			r.Post("/", bookingHandler.Create)
			r.Put("/{id}", bookingHandler.Update)
			r.Patch("/{id}/status", bookingHandler.UpdateStatus)
			// sessionId is the hall session id
			r.Patch("/{id}/sessions/{sessionId}/status", bookingHandler.UpdateSessionStatus)
		})
	})
}
