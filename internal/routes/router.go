package routes

import (
	"net/http"
	"time"

	"flightroutes/explorer/internal/api"
	"flightroutes/explorer/internal/logging"
	"flightroutes/explorer/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// RegisterRoutes builds the HTTP handler for the API and the dashboard.
func RegisterRoutes(deps *api.Dependencies, upSince time.Time) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(deps.Metrics))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID", "HX-Request", "HX-Target", "HX-Current-URL"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	logging.Info("Router initialized with metrics and logging middleware")

	// health check
	r.Get("/healthCheck", api.HealthCheckHandler(deps.Snapshot, deps.Checks, deps.Services.AirportLoader, upSince))

	RegisterUIRoutes(r, deps)
	RegisterAPIRoutes(r, deps)

	return r
}
