package common

import (
	"context"
	"fmt"

	"flightroutes/explorer/internal/db/repositories"
	"flightroutes/explorer/internal/logging"
	"flightroutes/explorer/internal/models"
	"flightroutes/explorer/internal/models/dtos"
	"flightroutes/explorer/internal/models/gorm"
)

// AirportLoaderService copies the loaded coordinate table into the airport
// store.
type AirportLoaderService struct {
	repo *repositories.AirportRepository
}

// NewAirportLoaderService creates a new airport loader service
func NewAirportLoaderService(repo *repositories.AirportRepository) *AirportLoaderService {
	return &AirportLoaderService{repo: repo}
}

// LoadFromTable replaces the stored airports with the rows of table.
func (s *AirportLoaderService) LoadFromTable(ctx context.Context, table *models.CoordinateTable) (int, error) {
	rows := table.All()

	airports := make([]gorm.Airport, 0, len(rows))
	for _, row := range rows {
		airports = append(airports, gorm.Airport{
			Code:      row.Code,
			City:      row.City,
			Latitude:  row.Latitude,
			Longitude: row.Longitude,
		})
	}

	if err := s.repo.ReplaceAll(ctx, airports); err != nil {
		return 0, fmt.Errorf("failed to store airports: %w", err)
	}

	logging.Info("Airport store seeded", "airports", len(airports))
	return len(airports), nil
}

// GetStats returns statistics about stored airports
func (s *AirportLoaderService) GetStats(ctx context.Context) (*dtos.AirportStoreStats, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &dtos.AirportStoreStats{TotalAirports: count}, nil
}
