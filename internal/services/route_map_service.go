package services

import (
	"context"
	"time"

	"flightroutes/explorer/internal/common"
	"flightroutes/explorer/internal/constants"
	"flightroutes/explorer/internal/logging"
	"flightroutes/explorer/internal/metrics"
	"flightroutes/explorer/internal/models"

	"github.com/umahmood/haversine"
)

// RouteMapService places the routes of an origin on the map.
type RouteMapService struct {
	Flights  *models.FlightTable
	Resolver CoordinateResolver
	Metrics  *metrics.MetricsRegistry
}

func NewRouteMapService(flights *models.FlightTable, resolver CoordinateResolver, metricsReg *metrics.MetricsRegistry) *RouteMapService {
	return &RouteMapService{
		Flights:  flights,
		Resolver: resolver,
		Metrics:  metricsReg,
	}
}

// BuildRouteMap builds the map feed for origin. Destinations without
// coordinates are kept with status missing_coordinates so callers can skip
// them while the tabular summaries stay complete. Resolver failures other than
// not-found are returned as errors.
func (svc *RouteMapService) BuildRouteMap(ctx context.Context, origin string) (*models.RouteMap, error) {
	start := time.Now()
	defer func() {
		if svc.Metrics != nil {
			svc.Metrics.AggregationDuration.WithLabelValues("route_map").Observe(time.Since(start).Seconds())
		}
	}()

	routes := SummarizeRoutes(svc.Flights, origin)

	rm := &models.RouteMap{
		Origin: origin,
		Routes: make([]models.RoutePlacement, 0, len(routes)),
		Legend: common.AirlineLegend(routes),
	}
	if len(routes) > 0 {
		rm.OriginCity = routes[0].OriginCity
	}
	rm.OriginPopup = common.MarkerDescription(origin, rm.OriginCity)

	originCoord, found, err := svc.Resolver.Resolve(ctx, origin)
	if err != nil {
		return nil, err
	}
	if found {
		rm.OriginFound = true
		rm.OriginCoord = &originCoord
	} else if len(routes) > 0 {
		svc.countUnresolved("origin")
		logging.Warn("Origin airport has no coordinates", "origin", origin)
	}

	for _, r := range routes {
		placement := models.RoutePlacement{
			Dest:        r.Dest,
			DestCity:    r.DestCity,
			Airline:     r.Airline,
			Color:       constants.AirlineColor(r.Airline),
			Status:      models.PlacementMissingCoordinates,
			MeanDist:    r.MeanDistance,
			MeanElapsed: r.MeanElapsedTime,
			Popup:       common.RouteDescription(origin, rm.OriginCity, r.Dest, r.DestCity, r.MeanDistance, r.MeanElapsedTime),
			MarkerPopup: common.MarkerDescription(r.Dest, r.DestCity),
		}

		destCoord, ok, err := svc.Resolver.Resolve(ctx, r.Dest)
		if err != nil {
			return nil, err
		}
		if ok {
			placement.DestCoord = &destCoord
		} else {
			svc.countUnresolved("destination")
			logging.Debug("Destination airport has no coordinates", "origin", origin, "dest", r.Dest)
		}

		if ok && rm.OriginFound {
			placement.Status = models.PlacementPlaced
			placement.GreatCircleMiles = GreatCircleMiles(originCoord, destCoord)
		}

		rm.Routes = append(rm.Routes, placement)
	}

	return rm, nil
}

func (svc *RouteMapService) countUnresolved(role string) {
	if svc.Metrics != nil {
		svc.Metrics.UnresolvedAirportsTotal.WithLabelValues(role).Inc()
	}
}

// GreatCircleMiles returns the haversine distance between two coordinates.
func GreatCircleMiles(a, b models.Coordinate) float64 {
	mi, _ := haversine.Distance(
		haversine.Coord{Lat: a.Latitude, Lon: a.Longitude},
		haversine.Coord{Lat: b.Latitude, Lon: b.Longitude},
	)
	return mi
}
