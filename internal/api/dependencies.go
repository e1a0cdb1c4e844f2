package api

import (
	"context"
	"fmt"
	"time"

	"flightroutes/explorer/internal/common"
	"flightroutes/explorer/internal/config"
	"flightroutes/explorer/internal/dataset"
	"flightroutes/explorer/internal/db"
	"flightroutes/explorer/internal/db/repositories"
	"flightroutes/explorer/internal/logging"
	"flightroutes/explorer/internal/metrics"
	"flightroutes/explorer/internal/services"
)

// HealthCheck reports whether an external dependency is reachable.
type HealthCheck func(ctx context.Context) error

type Repositories struct {
	// Airports is nil when coordinates are resolved from memory.
	Airports *repositories.AirportRepository
}

type Services struct {
	Cache         common.CacheInterface
	Routes        *services.RoutesService
	RouteMap      *services.RouteMapService
	AirportLoader *common.AirportLoaderService
}

type Dependencies struct {
	Config   *config.Config
	Snapshot *dataset.Snapshot
	Metrics  *metrics.MetricsRegistry
	Repo     *Repositories
	Services *Services
	Checks   map[string]HealthCheck
}

// InitDependencies wires the services around an already loaded snapshot.
func InitDependencies(ctx context.Context, cfg *config.Config, snapshot *dataset.Snapshot, metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {
	checks := make(map[string]HealthCheck)
	repos := &Repositories{}

	var resolver services.CoordinateResolver
	var loader *common.AirportLoaderService

	if cfg.AirportStore == config.StoreMemory {
		resolver = services.NewTableResolver(snapshot.Airports)
	} else {
		gdb, err := db.OpenAirportStore(cfg.AirportStore, cfg.AirportDBDSN)
		if err != nil {
			return nil, err
		}
		repos.Airports = repositories.NewAirportRepository(gdb)
		loader = common.NewAirportLoaderService(repos.Airports)
		if _, err := loader.LoadFromTable(ctx, snapshot.Airports); err != nil {
			return nil, fmt.Errorf("failed to seed airport store: %w", err)
		}
		resolver = services.NewStoreResolver(repos.Airports)
		checks[cfg.AirportStore] = repos.Airports.Ping
	}

	cache := newCache(cfg, checks)

	if metricsReg != nil {
		metricsReg.DatasetRows.WithLabelValues("flights").Set(float64(snapshot.FlightStats.Rows))
		metricsReg.DatasetRows.WithLabelValues("airports").Set(float64(snapshot.AirportStats.Rows))
		metricsReg.DatasetSkippedRows.WithLabelValues("flights").Set(float64(snapshot.FlightStats.Skipped))
		metricsReg.DatasetSkippedRows.WithLabelValues("airports").Set(float64(snapshot.AirportStats.Skipped))
	}

	svcs := &Services{
		Cache:         cache,
		Routes:        services.NewRoutesService(snapshot, cache, resolver, metricsReg, cfg.CacheTTL),
		RouteMap:      services.NewRouteMapService(snapshot.Flights, resolver, metricsReg),
		AirportLoader: loader,
	}

	return &Dependencies{
		Config:   cfg,
		Snapshot: snapshot,
		Metrics:  metricsReg,
		Repo:     repos,
		Services: svcs,
		Checks:   checks,
	}, nil
}

// newCache prefers Redis when configured and falls back to the in-process
// cache if it cannot be reached.
func newCache(cfg *config.Config, checks map[string]HealthCheck) common.CacheInterface {
	if addr := cfg.RedisAddr(); addr != "" {
		redisCache, err := common.NewRedisCacheService(addr, cfg.RedisPassword, cfg.RedisDB)
		if err == nil {
			checks["redis"] = redisCache.Ping
			return redisCache
		}
		logging.Warn("Redis unavailable, using in-memory cache", "addr", addr, "error", err.Error())
	}

	ttlSeconds := int(cfg.CacheTTL / time.Second)
	return common.NewCacheService(ttlSeconds, 600)
}

// Close releases the cache connection.
func (d *Dependencies) Close() error {
	if d.Services != nil && d.Services.Cache != nil {
		return d.Services.Cache.Close()
	}
	return nil
}
