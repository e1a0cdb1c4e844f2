package api

import (
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"flightroutes/explorer/internal/common"
	"flightroutes/explorer/internal/dataset"
	"flightroutes/explorer/internal/logging"
	"flightroutes/explorer/internal/models/dtos"
)

// HealthCheckHandler handles GET /healthCheck
//
// loader is nil when airports are served from memory.
func HealthCheckHandler(snapshot *dataset.Snapshot, checks map[string]HealthCheck, loader *common.AirportLoaderService, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		services := make(map[string]dtos.ServiceStatus)
		services["dataset"] = dtos.ServiceStatus{Status: "ok", Details: "Snapshot " + snapshot.ID}

		names := make([]string, 0, len(checks))
		for name := range checks {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			status := "ok"
			details := "Connected"
			if err := checks[name](r.Context()); err != nil {
				status = "down"
				details = err.Error()
			}
			services[name] = dtos.ServiceStatus{
				Status:  status,
				Details: details,
			}
		}

		overallStatus := "ok"
		for _, svc := range services {
			if svc.Status != "ok" {
				overallStatus = "down"
				break
			}
		}

		var store *dtos.AirportStoreStats
		if loader != nil {
			stats, err := loader.GetStats(r.Context())
			if err != nil {
				logging.Warn("Airport store stats unavailable", "error", err.Error())
			} else {
				store = stats
			}
		}

		uptime := time.Since(upSince).Round(time.Second).String()

		resp := dtos.HealthCheckResponse{
			Status: overallStatus,
			Uptime: uptime,
			Dataset: dtos.DatasetStatus{
				SnapshotID:      snapshot.ID,
				LoadedAt:        snapshot.LoadedAt.Format(time.RFC3339),
				Flights:         snapshot.FlightStats.Rows,
				FlightsSkipped:  snapshot.FlightStats.Skipped,
				Airports:        snapshot.AirportStats.Rows,
				AirportsSkipped: snapshot.AirportStats.Skipped,
				Store:           store,
			},
			Services: services,
		}

		code := http.StatusOK
		if overallStatus != "ok" {
			code = http.StatusServiceUnavailable
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(resp)
	}
}
