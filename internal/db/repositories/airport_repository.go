package repositories

import (
	"context"
	"errors"

	"flightroutes/explorer/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// AirportRepository handles airport table operations
type AirportRepository struct {
	db *gormlib.DB
}

// NewAirportRepository creates a new airport repository
func NewAirportRepository(db *gormlib.DB) *AirportRepository {
	return &AirportRepository{db: db}
}

// FindByCode finds an airport by exact code. It returns nil, nil when no row
// matches.
func (r *AirportRepository) FindByCode(ctx context.Context, code string) (*gorm.Airport, error) {
	var airport gorm.Airport

	err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&airport).Error

	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &airport, nil
}

// ReplaceAll deletes every airport and inserts the given ones in one
// transaction.
func (r *AirportRepository) ReplaceAll(ctx context.Context, airports []gorm.Airport) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gormlib.DB) error {
		if err := tx.Where("1 = 1").Delete(&gorm.Airport{}).Error; err != nil {
			return err
		}
		if len(airports) == 0 {
			return nil
		}
		return tx.CreateInBatches(airports, 100).Error
	})
}

// Count returns total number of airports
func (r *AirportRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&gorm.Airport{}).Count(&count).Error
	return count, err
}

// Ping checks the underlying connection.
func (r *AirportRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
