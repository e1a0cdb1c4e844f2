package routes

import (
	"flightroutes/explorer/internal/api"
	"flightroutes/explorer/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies) {
	routesSvc := deps.Services.Routes
	mapSvc := deps.Services.RouteMap

	limiter := middleware.NewRateLimiter(deps.Config.RateLimitRPS, deps.Config.RateLimitBurst, deps.Metrics)

	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(limiter.Middleware)

		v1.Get("/origins", api.OriginsHandler(routesSvc))
		v1.Get("/destinations", api.DestinationsHandler(routesSvc))

		v1.Route("/origins/{origin}", func(origin chi.Router) {
			origin.Get("/routes", api.RoutesHandler(routesSvc))
			origin.Get("/summary", api.SummaryHandler(routesSvc))
			origin.Get("/map", api.RouteMapHandler(mapSvc))
			origin.Get("/map.geojson", api.RouteMapGeoJSONHandler(mapSvc))
		})

		v1.Get("/airports/{code}", api.AirportHandler(routesSvc))
	})
}
