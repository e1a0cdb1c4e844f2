package dataset

import (
	"context"
	"fmt"
	"os"
	"time"

	"flightroutes/explorer/internal/logging"
	"flightroutes/explorer/internal/models"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Snapshot is the immutable dataset served for the lifetime of the process.
type Snapshot struct {
	ID       string
	LoadedAt time.Time

	Flights  *models.FlightTable
	Airports *models.CoordinateTable

	FlightStats  LoadStats
	AirportStats LoadStats
}

// NewSnapshot wraps already loaded tables.
func NewSnapshot(flights *models.FlightTable, airports *models.CoordinateTable) *Snapshot {
	return &Snapshot{
		ID:       uuid.New().String(),
		LoadedAt: time.Now().UTC(),
		Flights:  flights,
		Airports: airports,
	}
}

// Load reads both tables concurrently. There is no reload: callers keep the
// returned snapshot for the rest of the process.
func Load(ctx context.Context, flightsPath, airportsPath string) (*Snapshot, error) {
	var (
		flights      *models.FlightTable
		airports     *models.CoordinateTable
		flightStats  LoadStats
		airportStats LoadStats
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		f, err := os.Open(flightsPath)
		if err != nil {
			return fmt.Errorf("failed to open flights table: %w", err)
		}
		defer f.Close()

		flights, flightStats, err = LoadFlights(gctx, f)
		if err != nil {
			return fmt.Errorf("failed to load flights from %s: %w", flightsPath, err)
		}
		return nil
	})

	g.Go(func() error {
		f, err := os.Open(airportsPath)
		if err != nil {
			return fmt.Errorf("failed to open airports table: %w", err)
		}
		defer f.Close()

		airports, airportStats, err = LoadAirports(gctx, f)
		if err != nil {
			return fmt.Errorf("failed to load airports from %s: %w", airportsPath, err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap := NewSnapshot(flights, airports)
	snap.FlightStats = flightStats
	snap.AirportStats = airportStats

	logging.Info("Dataset loaded",
		"snapshot_id", snap.ID,
		"flights", flightStats.Rows,
		"flights_skipped", flightStats.Skipped,
		"airports", airportStats.Rows,
		"airports_skipped", airportStats.Skipped,
		"origins", len(flights.Origins()),
	)

	return snap, nil
}
