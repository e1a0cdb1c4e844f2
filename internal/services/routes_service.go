package services

import (
	"context"
	"time"

	"flightroutes/explorer/internal/common"
	"flightroutes/explorer/internal/constants"
	"flightroutes/explorer/internal/dataset"
	"flightroutes/explorer/internal/metrics"
	"flightroutes/explorer/internal/models"
)

const summaryCachePattern = "origin_summary"

// RoutesService answers every per-origin query of the dashboard from one
// immutable snapshot.
type RoutesService struct {
	Snapshot *dataset.Snapshot
	Cache    common.CacheInterface
	Resolver CoordinateResolver
	Metrics  *metrics.MetricsRegistry
	CacheTTL time.Duration
}

func NewRoutesService(
	snapshot *dataset.Snapshot,
	cache common.CacheInterface,
	resolver CoordinateResolver,
	metricsReg *metrics.MetricsRegistry,
	cacheTTL time.Duration,
) *RoutesService {
	return &RoutesService{
		Snapshot: snapshot,
		Cache:    cache,
		Resolver: resolver,
		Metrics:  metricsReg,
		CacheTTL: cacheTTL,
	}
}

func (svc *RoutesService) observe(operation string, start time.Time) {
	if svc.Metrics != nil {
		svc.Metrics.AggregationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}
}

// Origins lists the selectable departure airports.
func (svc *RoutesService) Origins() []models.OriginOption {
	return svc.Snapshot.Flights.Origins()
}

// Destinations lists every destination in the dataset.
func (svc *RoutesService) Destinations() []string {
	return svc.Snapshot.Flights.Destinations()
}

// HasOrigin reports whether origin has any flights.
func (svc *RoutesService) HasOrigin(origin string) bool {
	return svc.Snapshot.Flights.HasOrigin(origin)
}

// Routes returns the flattened per-destination summary for origin.
func (svc *RoutesService) Routes(origin string) []models.RouteSummary {
	defer svc.observe("summarize_routes", time.Now())
	return SummarizeRoutes(svc.Snapshot.Flights, origin)
}

// Summary returns every aggregate view for origin. Results are cached per
// snapshot, which is safe because the snapshot never changes.
func (svc *RoutesService) Summary(origin string) (models.OriginSummary, error) {
	if svc.Cache == nil {
		defer svc.observe("summarize_from_origin", time.Now())
		return SummarizeFromOrigin(svc.Snapshot.Flights, origin), nil
	}

	summary, hit, err := common.GetOrSetJSON(svc.Cache, svc.summaryCacheKey(origin), svc.CacheTTL, func() (models.OriginSummary, error) {
		defer svc.observe("summarize_from_origin", time.Now())
		return SummarizeFromOrigin(svc.Snapshot.Flights, origin), nil
	})
	if err != nil {
		return models.OriginSummary{}, err
	}

	if svc.Metrics != nil {
		if hit {
			svc.Metrics.CacheHitsTotal.WithLabelValues(summaryCachePattern).Inc()
		} else {
			svc.Metrics.CacheMissesTotal.WithLabelValues(summaryCachePattern).Inc()
		}
	}
	return summary, nil
}

func (svc *RoutesService) summaryCacheKey(origin string) string {
	return string(constants.CachePrefixOriginSummary) + svc.Snapshot.ID + ":" + origin
}

// ResolveAirport returns the coordinates of code. found is false for unknown
// codes.
func (svc *RoutesService) ResolveAirport(ctx context.Context, code string) (models.Coordinate, bool, error) {
	return svc.Resolver.Resolve(ctx, code)
}
