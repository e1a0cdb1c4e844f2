package api

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"flightroutes/explorer/internal/config"
	"flightroutes/explorer/internal/dataset"
	"flightroutes/explorer/internal/metrics"
	"flightroutes/explorer/internal/models"
	"flightroutes/explorer/internal/models/dtos"
	"flightroutes/explorer/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

type mockResolver struct {
	resolveFunc func(ctx context.Context, code string) (models.Coordinate, bool, error)
}

func (m *mockResolver) Resolve(ctx context.Context, code string) (models.Coordinate, bool, error) {
	return m.resolveFunc(ctx, code)
}

func testSnapshot() *dataset.Snapshot {
	flights := models.NewFlightTable([]models.FlightRecord{
		{Origin: "JFK", OriginCity: "New York", Dest: "LAX", DestCity: "Los Angeles", Airline: "Delta Air Lines Inc.", Distance: 2475, ElapsedTime: 360, DepDelay: math.NaN()},
		{Origin: "JFK", OriginCity: "New York", Dest: "BOS", DestCity: "Boston", Airline: "JetBlue Airways", Distance: 187, ElapsedTime: 70, DepDelay: 4},
		{Origin: "JFK", OriginCity: "New York", Dest: "LAX", DestCity: "Los Angeles", Airline: "Delta Air Lines Inc.", Distance: 2475, ElapsedTime: 340, DepDelay: math.NaN()},
	})
	airports := models.NewCoordinateTable([]models.AirportCoordinate{
		{Code: "JFK", City: "New York", Coordinate: models.Coordinate{Latitude: 40.6413, Longitude: -73.7781}},
		{Code: "LAX", City: "Los Angeles", Coordinate: models.Coordinate{Latitude: 33.9416, Longitude: -118.4085}},
	})
	snap := dataset.NewSnapshot(flights, airports)
	snap.FlightStats = dataset.LoadStats{Rows: 3, Skipped: 1}
	snap.AirportStats = dataset.LoadStats{Rows: 2}
	return snap
}

func testConfig(t *testing.T, env map[string]string) *config.Config {
	t.Helper()
	cfg, err := config.FromLookup(func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})
	if err != nil {
		t.Fatalf("Failed to build config: %v", err)
	}
	return cfg
}

func setupDeps(t *testing.T, env map[string]string) *Dependencies {
	t.Helper()
	deps, err := InitDependencies(context.Background(), testConfig(t, env), testSnapshot(), metrics.NewMetricsRegistry(prometheus.NewRegistry()))
	if err != nil {
		t.Fatalf("Failed to init dependencies: %v", err)
	}
	t.Cleanup(func() { _ = deps.Close() })
	return deps
}

func apiRouter(deps *Dependencies) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/v1/origins", OriginsHandler(deps.Services.Routes))
	r.Get("/api/v1/destinations", DestinationsHandler(deps.Services.Routes))
	r.Get("/api/v1/origins/{origin}/routes", RoutesHandler(deps.Services.Routes))
	r.Get("/api/v1/origins/{origin}/summary", SummaryHandler(deps.Services.Routes))
	r.Get("/api/v1/origins/{origin}/map", RouteMapHandler(deps.Services.RouteMap))
	r.Get("/api/v1/origins/{origin}/map.geojson", RouteMapGeoJSONHandler(deps.Services.RouteMap))
	r.Get("/api/v1/airports/{code}", AirportHandler(deps.Services.Routes))
	return r
}

func doGet(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder, data any) dtos.APIResponse {
	t.Helper()
	var raw struct {
		dtos.APIResponse
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &raw); err != nil {
		t.Fatalf("Failed to decode response %q: %v", rr.Body.String(), err)
	}
	if data != nil && len(raw.Data) > 0 {
		if err := json.Unmarshal(raw.Data, data); err != nil {
			t.Fatalf("Failed to decode data: %v", err)
		}
	}
	return raw.APIResponse
}

func TestOriginsHandler(t *testing.T) {
	deps := setupDeps(t, nil)

	rr := doGet(t, apiRouter(deps), "/api/v1/origins")
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}

	var data dtos.OriginsResponse
	resp := decodeEnvelope(t, rr, &data)
	if resp.Status != "ok" {
		t.Errorf("Expected status ok, got %s", resp.Status)
	}
	if data.Count != 1 || data.Origins[0].Label != "JFK, New York" {
		t.Errorf("Unexpected origins: %+v", data)
	}
}

func TestDestinationsHandler(t *testing.T) {
	deps := setupDeps(t, nil)

	var data dtos.DestinationsResponse
	decodeEnvelope(t, doGet(t, apiRouter(deps), "/api/v1/destinations"), &data)
	if data.Count != 2 {
		t.Errorf("Expected 2 destinations, got %+v", data)
	}
}

func TestRoutesHandler(t *testing.T) {
	deps := setupDeps(t, nil)

	rr := doGet(t, apiRouter(deps), "/api/v1/origins/JFK/routes")
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}

	var data dtos.RoutesResponse
	resp := decodeEnvelope(t, rr, &data)
	if resp.Message != "Routes found" {
		t.Errorf("Unexpected message: %s", resp.Message)
	}
	if data.Count != 2 {
		t.Fatalf("Expected 2 routes, got %d", data.Count)
	}
	if data.Routes[0].Dest != "BOS" || data.Routes[1].Dest != "LAX" {
		t.Errorf("Expected routes sorted by destination, got %s, %s", data.Routes[0].Dest, data.Routes[1].Dest)
	}
	if data.Routes[1].MeanElapsedTime != 350 {
		t.Errorf("Expected mean elapsed 350, got %v", data.Routes[1].MeanElapsedTime)
	}
	if !data.Routes[1].MeanDepDelay.IsMissing() {
		t.Errorf("Expected missing departure delay, got %v", data.Routes[1].MeanDepDelay)
	}
}

func TestRoutesHandler_UnknownOrigin(t *testing.T) {
	deps := setupDeps(t, nil)

	rr := doGet(t, apiRouter(deps), "/api/v1/origins/jfk/routes")
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}

	var data dtos.RoutesResponse
	resp := decodeEnvelope(t, rr, &data)
	if data.Count != 0 || data.Routes == nil {
		t.Errorf("Expected empty route list, got %+v", data)
	}
	if resp.Message != "No routes found for origin" {
		t.Errorf("Unexpected message: %s", resp.Message)
	}
}

func TestSummaryHandler_MissingMeansAreNull(t *testing.T) {
	deps := setupDeps(t, nil)

	rr := doGet(t, apiRouter(deps), "/api/v1/origins/JFK/summary")
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"mean_dep_delay":null`) {
		t.Errorf("Expected null mean_dep_delay in %s", rr.Body.String())
	}

	var data models.OriginSummary
	decodeEnvelope(t, rr, &data)
	if len(data.FlightStatus) != 2 || data.FlightStatus[1].Flights != 2 {
		t.Errorf("Unexpected flight status view: %+v", data.FlightStatus)
	}
}

func TestRouteMapHandlers(t *testing.T) {
	deps := setupDeps(t, nil)
	router := apiRouter(deps)

	rr := doGet(t, router, "/api/v1/origins/JFK/map")
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	var rm models.RouteMap
	decodeEnvelope(t, rr, &rm)
	if !rm.OriginFound || len(rm.Routes) != 2 {
		t.Fatalf("Unexpected route map: %+v", rm)
	}
	if rm.Routes[0].Status != models.PlacementMissingCoordinates || rm.Routes[1].Status != models.PlacementPlaced {
		t.Errorf("Expected BOS missing and LAX placed, got %s and %s", rm.Routes[0].Status, rm.Routes[1].Status)
	}

	rr = doGet(t, router, "/api/v1/origins/JFK/map.geojson")
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/geo+json" {
		t.Errorf("Expected geojson content type, got %s", ct)
	}
	var fc struct {
		Type     string            `json:"type"`
		Features []json.RawMessage `json:"features"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &fc); err != nil {
		t.Fatalf("Failed to decode geojson: %v", err)
	}
	if fc.Type != "FeatureCollection" || len(fc.Features) != 3 {
		t.Errorf("Expected a collection with 3 features, got %s with %d", fc.Type, len(fc.Features))
	}
}

func TestAirportHandler(t *testing.T) {
	storeErr := errors.New("store offline")
	resolver := &mockResolver{
		resolveFunc: func(ctx context.Context, code string) (models.Coordinate, bool, error) {
			switch code {
			case "JFK":
				return models.Coordinate{Latitude: 40.6413, Longitude: -73.7781}, true, nil
			case "ERR":
				return models.Coordinate{}, false, storeErr
			}
			return models.Coordinate{}, false, nil
		},
	}
	svc := services.NewRoutesService(testSnapshot(), nil, resolver, nil, time.Minute)

	r := chi.NewRouter()
	r.Get("/api/v1/airports/{code}", AirportHandler(svc))

	tests := []struct {
		name string
		code string
		want int
	}{
		{"found", "JFK", http.StatusOK},
		{"not found", "ZZZ", http.StatusNotFound},
		{"store failure", "ERR", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doGet(t, r, "/api/v1/airports/"+tt.code)
			if rr.Code != tt.want {
				t.Errorf("Expected status %d, got %d", tt.want, rr.Code)
			}
			if tt.want == http.StatusInternalServerError && strings.Contains(rr.Body.String(), storeErr.Error()) {
				t.Error("Expected internal error details to stay out of the response")
			}
		})
	}

	var data dtos.AirportResponse
	decodeEnvelope(t, doGet(t, r, "/api/v1/airports/JFK"), &data)
	if data.Code != "JFK" || data.Latitude != 40.6413 {
		t.Errorf("Unexpected airport response: %+v", data)
	}
}

func TestHealthCheckHandler(t *testing.T) {
	snap := testSnapshot()

	rr := httptest.NewRecorder()
	HealthCheckHandler(snap, nil, nil, time.Now()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthCheck", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}

	var resp dtos.HealthCheckResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if resp.Status != "ok" || resp.Dataset.Flights != 3 || resp.Dataset.FlightsSkipped != 1 || resp.Dataset.SnapshotID != snap.ID {
		t.Errorf("Unexpected health response: %+v", resp)
	}
	if resp.Dataset.Store != nil {
		t.Errorf("Expected no store stats for the memory resolver, got %+v", resp.Dataset.Store)
	}

	checks := map[string]HealthCheck{
		"redis": func(ctx context.Context) error { return errors.New("connection refused") },
	}
	rr = httptest.NewRecorder()
	HealthCheckHandler(snap, checks, nil, time.Now()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthCheck", nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503, got %d", rr.Code)
	}
}

func TestInitDependencies_SQLiteStore(t *testing.T) {
	deps := setupDeps(t, map[string]string{
		"AIRPORT_STORE":  "sqlite",
		"AIRPORT_DB_DSN": "file:deps_test?mode=memory&cache=shared",
	})

	if deps.Repo.Airports == nil || deps.Services.AirportLoader == nil {
		t.Fatal("Expected airport store to be wired")
	}
	if _, ok := deps.Checks["sqlite"]; !ok {
		t.Error("Expected sqlite health check")
	}

	count, err := deps.Repo.Airports.Count(context.Background())
	if err != nil || count != 2 {
		t.Errorf("Expected 2 seeded airports, got %d (err=%v)", count, err)
	}

	rr := doGet(t, apiRouter(deps), "/api/v1/airports/LAX")
	if rr.Code != http.StatusOK {
		t.Errorf("Expected LAX to resolve from the store, got %d", rr.Code)
	}
	rr = doGet(t, apiRouter(deps), "/api/v1/airports/BOS")
	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected BOS to be missing from the store, got %d", rr.Code)
	}
}

func TestHealthCheckHandler_StoreStats(t *testing.T) {
	deps := setupDeps(t, map[string]string{
		"AIRPORT_STORE":  "sqlite",
		"AIRPORT_DB_DSN": "file:health_store_test?mode=memory&cache=shared",
	})

	rr := httptest.NewRecorder()
	HealthCheckHandler(deps.Snapshot, deps.Checks, deps.Services.AirportLoader, time.Now()).
		ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthCheck", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}

	var resp dtos.HealthCheckResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if resp.Dataset.Store == nil {
		t.Fatal("Expected store stats in health response")
	}
	if resp.Dataset.Store.TotalAirports != 2 {
		t.Errorf("Expected 2 stored airports, got %d", resp.Dataset.Store.TotalAirports)
	}
	if resp.Services["sqlite"].Status != "ok" {
		t.Errorf("Expected sqlite service ok, got %+v", resp.Services["sqlite"])
	}
}
