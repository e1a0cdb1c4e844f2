package api

import (
	"net/http"
	"time"

	"flightroutes/explorer/internal/common"
	"flightroutes/explorer/internal/constants"
	"flightroutes/explorer/internal/models/dtos"
	"flightroutes/explorer/internal/services"

	"github.com/go-chi/chi/v5"
)

// AirportHandler handles GET /api/v1/airports/{code}
//
// Unknown codes answer 404; store failures answer 500.
func AirportHandler(svc *services.RoutesService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		code := chi.URLParam(r, "code")
		if code == "" {
			common.RespondError(w, initTime, nil, constants.MsgMissingAirport, http.StatusBadRequest)
			return
		}

		coord, found, err := svc.ResolveAirport(r.Context(), code)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgResolveFailed, http.StatusInternalServerError)
			return
		}
		if !found {
			common.RespondError(w, initTime, nil, constants.MsgAirportNotFound, http.StatusNotFound)
			return
		}

		common.RespondSuccess(w, initTime, constants.MsgAirportFound, dtos.AirportResponse{
			Code:       code,
			Coordinate: coord,
		})
	}
}
