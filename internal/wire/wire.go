// internal/wire/wire.go
package wire

import (
	"context"
	"net/http"
	"time"

	"conference-hall/internal/adaptor"
	"conference-hall/internal/data/repository"
	"conference-hall/internal/usecase"
	"conference-hall/pkg/cache"
	"conference-hall/pkg/database"
	"conference-hall/pkg/middleware"
	"conference-hall/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the wired router.
type App struct {
	Router *chi.Mux
}

// Wiring builds repositories, services and handlers on top of db.
func Wiring(
	db database.PgxIface,
	directory repository.EmployeeDirectory,
	c cache.Cache,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	uow := repository.NewUnitOfWork(db, logger)
	service := usecase.NewService(uow, directory, c, config, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router: setupRouter(handler, db, config, logger),
	}
}

func setupRouter(
	handler *adaptor.Handler,
	db database.PgxIface,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.AllowedOrigins))
	r.Use(middleware.Actor(config.JWT.Secret, logger))
	if config.App.RequestTimeout > 0 {
		r.Use(chimw.Timeout(config.App.RequestTimeout))
	}

	writes := middleware.RequireActor(config.Auth.Required, logger)

	wireAuth(r, handler.Auth, logger)
	wireHall(r, handler.Hall, handler.Session, writes)
	wireBooking(r, handler.Booking, writes)
	wireTempEmployeeRole(r, handler.TempEmployeeRole, writes)
	wireMasterData(r, "/api/room-types", handler.RoomType, writes)
	wireMasterData(r, "/api/booking-statuses", handler.BookingStatus, writes)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			logger.Warn("Health check failed", zap.Error(err))
			utils.ResponseJSON(w, http.StatusServiceUnavailable, false, "Database unavailable", nil, nil)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
