package Models

import (
	"Petrel/Config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func Connect(cfg *Config.Config) (*gorm.DB, error) {
	connection, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Base tables first, then everything keyed on plate.
	if err := connection.AutoMigrate(
		&User{},
		&Vehicle{},
	); err != nil {
		return nil, err
	}

	if err := connection.AutoMigrate(
		&FuelRecord{},
		&WeightRecord{},
		&TrackingRecord{},
		&ProcessedFile{},
	); err != nil {
		return nil, err
	}

	return connection, nil
}
