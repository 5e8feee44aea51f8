package Analysis

import (
	"path/filepath"
	"testing"

	"Petrel/Models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	if err := db.AutoMigrate(
		&Models.Vehicle{},
		&Models.FuelRecord{},
		&Models.WeightRecord{},
		&Models.TrackingRecord{},
	); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	return db
}

func seedFuel(t *testing.T, db *gorm.DB, records []Models.FuelRecord) {
	t.Helper()
	// One by one, so row ids follow the slice order exactly.
	for i := range records {
		if err := db.Create(&records[i]).Error; err != nil {
			t.Fatalf("seeding fuel record %d: %v", i, err)
		}
	}
}

func seedWeights(t *testing.T, db *gorm.DB, records []Models.WeightRecord) {
	t.Helper()
	for i := range records {
		if err := db.Create(&records[i]).Error; err != nil {
			t.Fatalf("seeding weight record %d: %v", i, err)
		}
	}
}

func seedVehicles(t *testing.T, db *gorm.DB, vehicles []Models.Vehicle) {
	t.Helper()
	for i := range vehicles {
		if err := db.Create(&vehicles[i]).Error; err != nil {
			t.Fatalf("seeding vehicle %d: %v", i, err)
		}
	}
}

func almostEqual(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-9
}
