package routes

import (
	"net/http"

	"flightroutes/explorer/dashboard/ui"
	"flightroutes/explorer/internal/api"
	"flightroutes/explorer/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterUIRoutes registers all UI-related routes
func RegisterUIRoutes(r chi.Router, deps *api.Dependencies) {
	uiHandler := ui.NewUIHandler(deps.Services.Routes, deps.Services.RouteMap)

	// Default route - redirect to the dashboard
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
	})

	r.Route("/dashboard", func(dashboard chi.Router) {
		dashboard.Use(middleware.ThemeMiddleware)

		dashboard.Get("/", uiHandler.DashboardHandler)
		dashboard.Get("/summary", uiHandler.SummaryHandler)
		dashboard.Post("/theme", uiHandler.SetThemeHandler)
	})
}
