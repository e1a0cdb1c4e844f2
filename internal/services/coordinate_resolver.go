package services

import (
	"context"
	"fmt"

	"flightroutes/explorer/internal/db/repositories"
	"flightroutes/explorer/internal/models"
)

// CoordinateResolver looks up the position of an airport code. found is false
// when the code has no coordinates; err is reserved for failures of the
// underlying store, so callers can skip unknown airports without hiding real
// errors.
type CoordinateResolver interface {
	Resolve(ctx context.Context, code string) (coord models.Coordinate, found bool, err error)
}

// TableResolver resolves against the in-memory coordinate table.
type TableResolver struct {
	table *models.CoordinateTable
}

var _ CoordinateResolver = (*TableResolver)(nil)

func NewTableResolver(table *models.CoordinateTable) *TableResolver {
	return &TableResolver{table: table}
}

func (r *TableResolver) Resolve(_ context.Context, code string) (models.Coordinate, bool, error) {
	coord, ok := r.table.Resolve(code)
	return coord, ok, nil
}

// StoreResolver resolves against the GORM airport store.
type StoreResolver struct {
	repo *repositories.AirportRepository
}

var _ CoordinateResolver = (*StoreResolver)(nil)

func NewStoreResolver(repo *repositories.AirportRepository) *StoreResolver {
	return &StoreResolver{repo: repo}
}

func (r *StoreResolver) Resolve(ctx context.Context, code string) (models.Coordinate, bool, error) {
	airport, err := r.repo.FindByCode(ctx, code)
	if err != nil {
		return models.Coordinate{}, false, fmt.Errorf("failed to look up airport %s: %w", code, err)
	}
	if airport == nil {
		return models.Coordinate{}, false, nil
	}
	return models.Coordinate{Latitude: airport.Latitude, Longitude: airport.Longitude}, true, nil
}
