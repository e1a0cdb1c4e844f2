package db

import (
	"fmt"

	"flightroutes/explorer/internal/config"
	"flightroutes/explorer/internal/logging"
	gormModels "flightroutes/explorer/internal/models/gorm"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenAirportStore connects to the airport coordinate store and migrates its
// schema. store is config.StoreSQLite or config.StorePostgres.
func OpenAirportStore(store, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch store {
	case config.StoreSQLite:
		dialector = sqlite.Open(dsn)
	case config.StorePostgres:
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported airport store %q", store)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", store, err)
	}

	if err := db.AutoMigrate(&gormModels.Airport{}); err != nil {
		return nil, fmt.Errorf("failed to migrate airports: %w", err)
	}

	logging.Info("Connected to airport store via GORM", "store", store)
	return db, nil
}
