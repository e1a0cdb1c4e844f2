package services

import (
	"flightroutes/explorer/internal/constants"
	"flightroutes/explorer/internal/models"

	geojson "github.com/paulmach/go.geojson"
)

// GeoJSON feature kinds, stored in the "kind" property.
const (
	FeatureOrigin      = "origin"
	FeatureDestination = "destination"
	FeatureRoute       = "route"
)

func position(c *models.Coordinate) []float64 {
	return []float64{c.Longitude, c.Latitude}
}

// ToFeatureCollection renders the drawable part of a route map. Routes whose
// coordinates are missing are left out. A resolved origin is always drawn,
// even when none of its routes could be placed.
func ToFeatureCollection(m *models.RouteMap) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	if m == nil || m.OriginCoord == nil {
		return fc
	}

	origin := geojson.NewPointFeature(position(m.OriginCoord))
	origin.SetProperty("kind", FeatureOrigin)
	origin.SetProperty("code", m.Origin)
	origin.SetProperty("city", m.OriginCity)
	origin.SetProperty("color", constants.OriginMarkerColor)
	origin.SetProperty("popup", m.OriginPopup)
	fc.AddFeature(origin)

	for _, r := range m.Placed() {
		dest := geojson.NewPointFeature(position(r.DestCoord))
		dest.SetProperty("kind", FeatureDestination)
		dest.SetProperty("code", r.Dest)
		dest.SetProperty("city", r.DestCity)
		dest.SetProperty("popup", r.MarkerPopup)
		fc.AddFeature(dest)

		line := geojson.NewLineStringFeature([][]float64{position(m.OriginCoord), position(r.DestCoord)})
		line.SetProperty("kind", FeatureRoute)
		line.SetProperty("dest", r.Dest)
		line.SetProperty("airline", r.Airline)
		line.SetProperty("color", r.Color)
		line.SetProperty("mean_distance", r.MeanDist)
		line.SetProperty("mean_elapsed_time", r.MeanElapsed)
		line.SetProperty("great_circle_miles", r.GreatCircleMiles)
		line.SetProperty("popup", r.Popup)
		fc.AddFeature(line)
	}

	return fc
}
