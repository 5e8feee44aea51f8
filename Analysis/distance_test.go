package Analysis

import (
	"testing"

	"Petrel/Models"
)

func TestForwardDeltaSum(t *testing.T) {
	tests := []struct {
		name     string
		readings []float64
		expected float64
	}{
		{"no readings", nil, 0},
		{"single reading", []float64{12500}, 0},
		{"strictly increasing", []float64{100, 200, 350}, 250},
		{"counter reset mid-history", []float64{100, 250, 50, 300}, 400},
		{"reset resumes from new baseline", []float64{10000, 10150, 10100, 10400}, 450},
		{"all decreasing", []float64{500, 400, 300}, 0},
		{"repeated reading", []float64{100, 100, 150}, 50},
		{"reset to zero", []float64{900, 0, 120}, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := forwardDeltaSum(tt.readings); !almostEqual(got, tt.expected) {
				t.Errorf("forwardDeltaSum(%v) = %v, want %v", tt.readings, got, tt.expected)
			}
		})
	}
}

func TestForwardDeltaSumMonotone(t *testing.T) {
	// Appending forward-moving readings can only grow the total.
	prefix := []float64{100, 250, 50, 300}
	base := forwardDeltaSum(prefix)

	extended := append(append([]float64{}, prefix...), 320, 410)
	if got := forwardDeltaSum(extended); got < base {
		t.Errorf("total shrank after appending positive deltas: %v < %v", got, base)
	}
	if got := forwardDeltaSum(extended); !almostEqual(got, base+110) {
		t.Errorf("extended total = %v, want %v", got, base+110)
	}
}

func TestTrueDistance(t *testing.T) {
	db := testDB(t)

	seedFuel(t, db, []Models.FuelRecord{
		{Plate: "46AJH283", TransactionDate: "2024-01-01", FuelAmount: 120, OdometerReading: 10000},
		{Plate: "46AJH283", TransactionDate: "2024-01-02", FuelAmount: 110, OdometerReading: 10150},
		{Plate: "46AJH283", TransactionDate: "2024-01-02", FuelAmount: 90, OdometerReading: 10100},
		{Plate: "46AJH283", TransactionDate: "2024-01-03", FuelAmount: 100, OdometerReading: 10400},
		// Noise: blank odometer and a different plate.
		{Plate: "46AJH283", TransactionDate: "2024-01-03", FuelAmount: 80, OdometerReading: 0},
		{Plate: "34XYZ001", TransactionDate: "2024-01-02", FuelAmount: 70, OdometerReading: 99999},
	})

	got, err := TrueDistance(db, "46AJH283", "", "")
	if err != nil {
		t.Fatalf("TrueDistance: %v", err)
	}
	if !almostEqual(got, 450) {
		t.Errorf("TrueDistance = %v, want 450", got)
	}
}

func TestTrueDistanceDateRange(t *testing.T) {
	db := testDB(t)

	seedFuel(t, db, []Models.FuelRecord{
		{Plate: "06ABC123", TransactionDate: "2024-01-01", OdometerReading: 1000},
		{Plate: "06ABC123", TransactionDate: "2024-02-01", OdometerReading: 1500},
		{Plate: "06ABC123", TransactionDate: "2024-03-01", OdometerReading: 2100},
		{Plate: "06ABC123", TransactionDate: "2024-04-01", OdometerReading: 2400},
	})

	got, err := TrueDistance(db, "06ABC123", "2024-02-01", "2024-03-01")
	if err != nil {
		t.Fatalf("TrueDistance: %v", err)
	}
	if !almostEqual(got, 600) {
		t.Errorf("TrueDistance within range = %v, want 600", got)
	}
}

func TestTrueDistanceSameDayInsertionOrder(t *testing.T) {
	// Same-day readings are walked in insertion order, never re-sorted by
	// value. [300, 100, 250] therefore yields 150, not the 200 a value sort
	// would give.
	db := testDB(t)

	seedFuel(t, db, []Models.FuelRecord{
		{Plate: "01DDD100", TransactionDate: "2024-05-10", OdometerReading: 300},
		{Plate: "01DDD100", TransactionDate: "2024-05-10", OdometerReading: 100},
		{Plate: "01DDD100", TransactionDate: "2024-05-10", OdometerReading: 250},
	})

	got, err := TrueDistance(db, "01DDD100", "", "")
	if err != nil {
		t.Fatalf("TrueDistance: %v", err)
	}
	if !almostEqual(got, 150) {
		t.Errorf("TrueDistance = %v, want 150", got)
	}
}

func TestTrueDistanceInsufficientData(t *testing.T) {
	db := testDB(t)

	got, err := TrueDistance(db, "NOPLATE", "", "")
	if err != nil {
		t.Fatalf("TrueDistance on empty table: %v", err)
	}
	if got != 0 {
		t.Errorf("TrueDistance with no records = %v, want 0", got)
	}

	seedFuel(t, db, []Models.FuelRecord{
		{Plate: "NOPLATE", TransactionDate: "2024-01-01", OdometerReading: 5000},
	})

	got, err = TrueDistance(db, "NOPLATE", "", "")
	if err != nil {
		t.Fatalf("TrueDistance with one record: %v", err)
	}
	if got != 0 {
		t.Errorf("TrueDistance with one record = %v, want 0", got)
	}
}
