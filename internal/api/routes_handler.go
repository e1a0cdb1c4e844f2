package api

import (
	"net/http"
	"time"

	"flightroutes/explorer/internal/common"
	"flightroutes/explorer/internal/constants"
	"flightroutes/explorer/internal/logging"
	"flightroutes/explorer/internal/models/dtos"
	"flightroutes/explorer/internal/services"

	"github.com/go-chi/chi/v5"
)

// OriginsHandler handles GET /api/v1/origins
func OriginsHandler(svc *services.RoutesService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		origins := svc.Origins()
		common.RespondSuccess(w, initTime, constants.MsgOriginsListed, dtos.OriginsResponse{
			Count:   len(origins),
			Origins: origins,
		})
	}
}

// DestinationsHandler handles GET /api/v1/destinations
func DestinationsHandler(svc *services.RoutesService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		dests := svc.Destinations()
		common.RespondSuccess(w, initTime, constants.MsgDestinations, dtos.DestinationsResponse{
			Count:        len(dests),
			Destinations: dests,
		})
	}
}

// RoutesHandler handles GET /api/v1/origins/{origin}/routes
//
// An origin without flights is not an error: the response carries an empty
// route list.
func RoutesHandler(svc *services.RoutesService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		origin := chi.URLParam(r, "origin")
		if origin == "" {
			common.RespondError(w, initTime, nil, constants.MsgMissingOrigin, http.StatusBadRequest)
			return
		}

		message := constants.MsgRoutesFound
		if !svc.HasOrigin(origin) {
			message = constants.MsgNoRoutesFound
		}
		routes := svc.Routes(origin)

		common.RespondSuccess(w, initTime, message, dtos.RoutesResponse{
			Origin: origin,
			Count:  len(routes),
			Routes: routes,
		})
	}
}

// SummaryHandler handles GET /api/v1/origins/{origin}/summary
func SummaryHandler(svc *services.RoutesService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		origin := chi.URLParam(r, "origin")
		if origin == "" {
			common.RespondError(w, initTime, nil, constants.MsgMissingOrigin, http.StatusBadRequest)
			return
		}

		summary, err := svc.Summary(origin)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgSummaryFailed, http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, constants.MsgSummaryFound, summary)
	}
}

// RouteMapHandler handles GET /api/v1/origins/{origin}/map
func RouteMapHandler(svc *services.RouteMapService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		origin := chi.URLParam(r, "origin")
		if origin == "" {
			common.RespondError(w, initTime, nil, constants.MsgMissingOrigin, http.StatusBadRequest)
			return
		}

		rm, err := svc.BuildRouteMap(r.Context(), origin)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgMapBuildFailed, http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, constants.MsgMapBuilt, rm)
	}
}

// RouteMapGeoJSONHandler handles GET /api/v1/origins/{origin}/map.geojson
//
// The body is a bare FeatureCollection so map clients can load it directly.
func RouteMapGeoJSONHandler(svc *services.RouteMapService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		origin := chi.URLParam(r, "origin")
		if origin == "" {
			common.RespondError(w, initTime, nil, constants.MsgMissingOrigin, http.StatusBadRequest)
			return
		}

		rm, err := svc.BuildRouteMap(r.Context(), origin)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgMapBuildFailed, http.StatusInternalServerError)
			return
		}

		data, err := services.ToFeatureCollection(rm).MarshalJSON()
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgMapBuildFailed, http.StatusInternalServerError)
			return
		}

		logging.Debug("GeoJSON feed built", "origin", origin, "placed", len(rm.Placed()), "routes", len(rm.Routes))

		w.Header().Set("Content-Type", "application/geo+json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
