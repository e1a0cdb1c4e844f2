package models

// PlacementStatus tells whether a route could be drawn.
type PlacementStatus string

const (
	PlacementPlaced             PlacementStatus = "placed"
	PlacementMissingCoordinates PlacementStatus = "missing_coordinates"
)

// RoutePlacement is the per-destination outcome of resolving coordinates for
// the map. Statistics are carried regardless of status.
type RoutePlacement struct {
	Dest        string          `json:"dest"`
	DestCity    string          `json:"dest_city"`
	Airline     string          `json:"airline"`
	Color       string          `json:"color"`
	Status      PlacementStatus `json:"status"`
	DestCoord   *Coordinate     `json:"dest_coord,omitempty"`
	MeanDist    Metric          `json:"mean_distance"`
	MeanElapsed Metric          `json:"mean_elapsed_time"`

	// GreatCircleMiles is only set for placed routes.
	GreatCircleMiles float64 `json:"great_circle_miles,omitempty"`

	Popup       string `json:"popup"`
	MarkerPopup string `json:"marker_popup"`
}

// LegendEntry pairs an airline with its line color.
type LegendEntry struct {
	Airline string `json:"airline"`
	Color   string `json:"color"`
}

// RouteMap is everything the map layer needs for one origin.
type RouteMap struct {
	Origin      string           `json:"origin"`
	OriginCity  string           `json:"origin_city"`
	OriginFound bool             `json:"origin_found"`
	OriginCoord *Coordinate      `json:"origin_coord,omitempty"`
	OriginPopup string           `json:"origin_popup"`
	Routes      []RoutePlacement `json:"routes"`
	Legend      []LegendEntry    `json:"legend"`
}

// Placed returns only the routes that can be drawn.
func (m *RouteMap) Placed() []RoutePlacement {
	out := make([]RoutePlacement, 0, len(m.Routes))
	for _, r := range m.Routes {
		if r.Status == PlacementPlaced {
			out = append(out, r)
		}
	}
	return out
}
