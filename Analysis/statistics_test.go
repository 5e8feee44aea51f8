package Analysis

import (
	"reflect"
	"testing"

	"Petrel/Models"
)

func TestGetStatistics(t *testing.T) {
	db := testDB(t)

	seedVehicles(t, db, []Models.Vehicle{
		{Plate: "ACTIVE1", Owner: Models.OwnerOwn, VehicleType: Models.VehicleTypeCargo, Active: true},
		{Plate: "RETIRED1", Owner: Models.OwnerOwn, VehicleType: Models.VehicleTypeCargo, Active: false},
	})
	seedFuel(t, db, []Models.FuelRecord{
		{Plate: "ACTIVE1", TransactionDate: "2024-01-05", FuelAmount: 50, LineTotal: 2000},
		{Plate: "RETIRED1", TransactionDate: "2024-01-05", FuelAmount: 30, LineTotal: 1200},
	})
	seedWeights(t, db, []Models.WeightRecord{
		{Plate: "ACTIVE1", Date: "2024-01-06", NetWeight: 24000, Unit: "Kg"},
		{Plate: "ACTIVE1", Date: "2024-01-07", NetWeight: 5, Unit: "Adet"},
	})

	stats, err := GetStatistics(db)
	if err != nil {
		t.Fatalf("GetStatistics: %v", err)
	}

	if stats.FuelRecords != 2 {
		t.Errorf("FuelRecords = %d, want 2", stats.FuelRecords)
	}
	if stats.WeightRecords != 1 {
		t.Errorf("WeightRecords = %d, want 1 (count units excluded)", stats.WeightRecords)
	}
	if stats.TotalRecords != 3 {
		t.Errorf("TotalRecords = %d, want 3", stats.TotalRecords)
	}
	if !reflect.DeepEqual(stats.Plates, []string{"ACTIVE1"}) {
		t.Errorf("Plates = %v, want only the active plate", stats.Plates)
	}
	// Fleet totals respect the active filter, so RETIRED1's fuel stays out.
	if !almostEqual(stats.TotalFuel, 50) {
		t.Errorf("TotalFuel = %v, want 50", stats.TotalFuel)
	}
	if !almostEqual(stats.TotalCost, 2000) {
		t.Errorf("TotalCost = %v, want 2000", stats.TotalCost)
	}
}

func TestGetStatisticsIncludesSubcontractors(t *testing.T) {
	db := testDB(t)

	seedVehicles(t, db, []Models.Vehicle{
		{Plate: "OWNED", Owner: Models.OwnerOwn, VehicleType: Models.VehicleTypeCargo, Active: true},
		{Plate: "SUBBED", Owner: Models.OwnerSubcontractor, VehicleType: Models.VehicleTypeCargo, Active: true},
	})
	seedFuel(t, db, []Models.FuelRecord{
		{Plate: "OWNED", TransactionDate: "2024-01-05", FuelAmount: 50, LineTotal: 2000},
		{Plate: "SUBBED", TransactionDate: "2024-01-05", FuelAmount: 30, LineTotal: 1200},
	})

	stats, err := GetStatistics(db)
	if err != nil {
		t.Fatalf("GetStatistics: %v", err)
	}
	if !reflect.DeepEqual(stats.Plates, []string{"OWNED", "SUBBED"}) {
		t.Errorf("Plates = %v, want the subcontracted plate counted too", stats.Plates)
	}
	if !almostEqual(stats.TotalFuel, 80) {
		t.Errorf("TotalFuel = %v, want 80", stats.TotalFuel)
	}
	if !almostEqual(stats.TotalCost, 3200) {
		t.Errorf("TotalCost = %v, want 3200", stats.TotalCost)
	}
}

func TestGetStatisticsUnfiltered(t *testing.T) {
	db := testDB(t)

	seedFuel(t, db, []Models.FuelRecord{
		{Plate: "ANY1", TransactionDate: "2024-01-05", FuelAmount: 50, LineTotal: 2000},
		{Plate: "ANY2", TransactionDate: "2024-01-05", FuelAmount: 30, LineTotal: 1200},
	})

	stats, err := GetStatistics(db)
	if err != nil {
		t.Fatalf("GetStatistics: %v", err)
	}
	if stats.PlateCount != 2 {
		t.Errorf("PlateCount = %d, want 2 without a registry", stats.PlateCount)
	}
	if !almostEqual(stats.TotalFuel, 80) {
		t.Errorf("TotalFuel = %v, want 80", stats.TotalFuel)
	}
}

func TestAllPlatesUnionAndFilter(t *testing.T) {
	db := testDB(t)

	seedFuel(t, db, []Models.FuelRecord{
		{Plate: "FUEL", TransactionDate: "2024-01-05", FuelAmount: 10},
	})
	seedWeights(t, db, []Models.WeightRecord{
		{Plate: "WEIGHT", Date: "2024-01-05", NetWeight: 1000, Unit: "Kg"},
	})

	plates, err := AllPlates(db)
	if err != nil {
		t.Fatalf("AllPlates: %v", err)
	}
	if !reflect.DeepEqual(plates, []string{"FUEL", "WEIGHT"}) {
		t.Errorf("plates = %v, want sorted union", plates)
	}

	seedVehicles(t, db, []Models.Vehicle{
		{Plate: "FUEL", Owner: Models.OwnerOwn, VehicleType: Models.VehicleTypeCargo, Active: true},
		{Plate: "WEIGHT", Owner: Models.OwnerOwn, VehicleType: Models.VehicleTypeCargo, Active: false},
	})

	plates, err = AllPlates(db)
	if err != nil {
		t.Fatalf("AllPlates: %v", err)
	}
	if !reflect.DeepEqual(plates, []string{"FUEL"}) {
		t.Errorf("plates = %v, want retired plate removed", plates)
	}
}
