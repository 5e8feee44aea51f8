package Models

import (
	"path/filepath"
	"testing"

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
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&FuelRecord{}, &Vehicle{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestBulkImportVehicles(t *testing.T) {
	db := testDB(t)

	records := []FuelRecord{
		{Plate: "46AJH283", TransactionDate: "2024-01-05", FuelAmount: 50},
		{Plate: "46AJH283", TransactionDate: "2024-01-12", FuelAmount: 40},
		{Plate: "34KGO100", TransactionDate: "2024-01-05", FuelAmount: 60},
		{Plate: "", TransactionDate: "2024-01-05", FuelAmount: 10},
	}
	if err := db.Create(&records).Error; err != nil {
		t.Fatalf("seed fuel: %v", err)
	}

	added, total, err := BulkImportVehicles(db)
	if err != nil {
		t.Fatalf("BulkImportVehicles: %v", err)
	}
	if added != 2 || total != 2 {
		t.Fatalf("first run added = %d total = %d, want 2 and 2", added, total)
	}

	var v Vehicle
	if err := db.Where("plate = ?", "46AJH283").First(&v).Error; err != nil {
		t.Fatalf("lookup imported vehicle: %v", err)
	}
	if v.Owner != OwnerOwn || v.VehicleType != VehicleTypeCargo || !v.Active {
		t.Errorf("imported vehicle defaults wrong: %+v", v)
	}

	// Second run is a no-op: every plate is already registered.
	added, total, err = BulkImportVehicles(db)
	if err != nil {
		t.Fatalf("BulkImportVehicles rerun: %v", err)
	}
	if added != 0 || total != 2 {
		t.Errorf("second run added = %d total = %d, want 0 and 2", added, total)
	}
}

func TestBulkImportVehiclesKeepsExisting(t *testing.T) {
	db := testDB(t)

	if err := db.Create(&Vehicle{
		Plate:       "34KGO100",
		Owner:       OwnerSubcontractor,
		VehicleType: VehicleTypeCargo,
		Active:      false,
	}).Error; err != nil {
		t.Fatalf("seed vehicle: %v", err)
	}
	if err := db.Create(&FuelRecord{Plate: "34KGO100", TransactionDate: "2024-01-05", FuelAmount: 60}).Error; err != nil {
		t.Fatalf("seed fuel: %v", err)
	}

	added, total, err := BulkImportVehicles(db)
	if err != nil {
		t.Fatalf("BulkImportVehicles: %v", err)
	}
	if added != 0 || total != 1 {
		t.Fatalf("added = %d total = %d, want 0 and 1", added, total)
	}

	var v Vehicle
	if err := db.Where("plate = ?", "34KGO100").First(&v).Error; err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if v.Owner != OwnerSubcontractor || v.Active {
		t.Errorf("import must not overwrite an existing registration: %+v", v)
	}
}
