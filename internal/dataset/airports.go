package dataset

import (
	"context"
	"fmt"
	"io"

	"flightroutes/explorer/internal/models"
)

// Airport coordinates column names.
const (
	ColAirportCode = "Airport Code"
	ColLatitude    = "Latitude"
	ColLongitude   = "Longitude"
	ColCity        = "City"
)

var requiredAirportColumns = []string{ColAirportCode, ColLatitude, ColLongitude}

// LoadAirports reads a semicolon separated airport coordinates table.
func LoadAirports(ctx context.Context, src io.Reader) (*models.CoordinateTable, LoadStats, error) {
	var rows []models.AirportCoordinate

	stats, err := readTable(ctx, src, ';', requiredAirportColumns, func(r *row) error {
		ap := models.AirportCoordinate{
			Code: r.requiredStr(ColAirportCode),
			City: r.str(ColCity),
			Coordinate: models.Coordinate{
				Latitude:  r.requiredNum(ColLatitude),
				Longitude: r.requiredNum(ColLongitude),
			},
		}
		if r.err != nil {
			return r.err
		}
		if ap.Latitude < -90 || ap.Latitude > 90 || ap.Longitude < -180 || ap.Longitude > 180 {
			return fmt.Errorf("%w: coordinate out of range for %s", errMalformed, ap.Code)
		}
		rows = append(rows, ap)
		return nil
	})
	if err != nil {
		return nil, stats, err
	}

	return models.NewCoordinateTable(rows), stats, nil
}
