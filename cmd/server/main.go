package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"flightroutes/explorer/internal/api"
	"flightroutes/explorer/internal/config"
	"flightroutes/explorer/internal/dataset"
	"flightroutes/explorer/internal/logging"
	"flightroutes/explorer/internal/metrics"
	"flightroutes/explorer/internal/routes"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Flight routes explorer starting up",
		"environment", cfg.AppEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	ctx := context.Background()

	snapshot, err := dataset.Load(ctx, cfg.FlightsPath, cfg.AirportsPath)
	if err != nil {
		logging.Fatal("Failed to load dataset", "error", err.Error())
	}

	metricsReg := metrics.NewMetricsRegistry(prometheus.DefaultRegisterer)

	deps, err := api.InitDependencies(ctx, cfg, snapshot, metricsReg)
	if err != nil {
		logging.Fatal("Failed to initialize dependencies", "error", err.Error())
	}
	defer deps.Close()

	upSince := time.Now()
	router := routes.RegisterRoutes(deps, upSince)

	// Setup metrics endpoint outside of Chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)
	logging.Info("Prometheus metrics endpoint registered at /metrics")

	logging.Info("Server starting",
		"port", cfg.Port,
		"airport_store", cfg.AirportStore,
		"redis", cfg.RedisAddr() != "",
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logging.Fatal("Server stopped", "error", err.Error())
	}
}
