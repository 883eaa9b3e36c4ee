package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/fleetops/preflight/internal/api/handlers"
	"github.com/fleetops/preflight/internal/api/middleware"
	"github.com/fleetops/preflight/internal/config"
	"github.com/fleetops/preflight/internal/pkg/logger"
	"github.com/fleetops/preflight/internal/pkg/metrics"
)

type Handlers struct {
	Health     *handlers.HealthHandler
	Inspection *handlers.InspectionHandler
	Alert      *handlers.AlertHandler
	Vehicle    *handlers.VehicleHandler
	Driver     *handlers.DriverHandler
}

func New(cfg *config.Config, log *logger.Logger, h *Handlers) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.DefaultCORS(cfg.Server.FrontendURL))
	r.Use(middleware.RateLimit(100, 200)) // 100 req/sec, burst of 200
	r.Use(metrics.Middleware)

	// Public routes
	r.Group(func(r chi.Router) {
		r.Get("/health", h.Health.Healthz)
		r.Get("/healthz", h.Health.Healthz)
		r.Get("/readyz", h.Health.Readyz)
		r.Handle("/metrics", metrics.Handler())
	})

	// Protected routes (require authentication)
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(cfg.Auth.JWTSecret))

		// Inspections
		r.Route("/api/v1/inspections", func(r chi.Router) {
			r.Get("/", h.Inspection.List)
			r.Post("/", h.Inspection.Submit)
			r.Get("/{id}", h.Inspection.Get)
		})

		// Alerts
		r.Route("/api/v1/alerts", func(r chi.Router) {
			r.Get("/", h.Alert.List)
			r.Get("/summary", h.Alert.GetSummary)
			r.Get("/{id}", h.Alert.Get)

			// Lifecycle management is an administrative concern
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole("admin"))
				r.Post("/", h.Alert.Create)
				r.Put("/{id}/status", h.Alert.UpdateStatus)
				r.Delete("/{id}", h.Alert.Delete)
			})
		})

		// Vehicles
		r.Route("/api/v1/vehicles", func(r chi.Router) {
			r.Get("/", h.Vehicle.List)
			r.Get("/{id}", h.Vehicle.Get)
			r.Post("/{id}/check-expiry", h.Vehicle.CheckExpiry)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole("admin"))
				r.Post("/", h.Vehicle.Create)
				r.Put("/{id}", h.Vehicle.Update)
				r.Delete("/{id}", h.Vehicle.Delete)
			})
		})

		// Drivers
		r.Route("/api/v1/drivers", func(r chi.Router) {
			r.Get("/", h.Driver.List)
			r.Get("/{id}", h.Driver.Get)
			r.Post("/{id}/check-expiry", h.Driver.CheckExpiry)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole("admin"))
				r.Post("/", h.Driver.Create)
				r.Put("/{id}", h.Driver.Update)
				r.Delete("/{id}", h.Driver.Delete)
			})
		})
	})

	return r
}
