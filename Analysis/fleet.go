package Analysis

import (
	"sort"

	"Petrel/Models"

	"gorm.io/gorm"
)

// FleetEntry is one vehicle's row in the fleet-wide consumption prediction.
// PredictedAvgConsumption currently mirrors the measured average; it is kept
// as a separate field so a model-based predictor can replace it without
// changing the API.
type FleetEntry struct {
	Plate                   string  `json:"plate"`
	TotalFuel               float64 `json:"total_fuel"`
	TrueDistance            float64 `json:"true_distance"`
	ActualAvgConsumption    float64 `json:"actual_avg_consumption"`
	PredictedAvgConsumption float64 `json:"predicted_avg_consumption"`
	IsActive                bool    `json:"is_active"`
}

// FleetPrediction aggregates fuel usage per plate across the whole record
// set and derives the consumption rate from the reconstructed distance.
// The same summary serves the cargo, passenger and heavy-equipment views;
// vehicleType decides which slice of the registry counts as active. The
// date range narrows the distance reconstruction; fuel totals span the
// full history, matching the report this replaces. Entries come back sorted
// by total fuel, heaviest consumer first.
func FleetPrediction(db *gorm.DB, vehicleType, startDate, endDate string, includeSubcontractors bool) ([]FleetEntry, error) {
	type fuelSum struct {
		Plate     string
		TotalFuel float64
	}
	var sums []fuelSum
	if err := db.Model(&Models.FuelRecord{}).
		Select("plate, COALESCE(SUM(fuel_amount), 0) AS total_fuel").
		Where("fuel_amount > 0").
		Group("plate").
		Scan(&sums).Error; err != nil {
		return nil, err
	}

	if vehicleType == "" {
		vehicleType = Models.VehicleTypeCargo
	}

	active := make(map[string]bool)
	mode := ResolveFilterMode(db)
	if mode == FilterActiveOnly {
		plates, err := ActivePlates(db, vehicleType, includeSubcontractors)
		if err != nil {
			return nil, err
		}
		for _, plate := range plates {
			active[plate] = true
		}
	}

	entries := make([]FleetEntry, 0, len(sums))
	for _, sum := range sums {
		distance, err := TrueDistance(db, sum.Plate, startDate, endDate)
		if err != nil {
			return nil, err
		}

		var avg float64
		if distance > 0 {
			avg = sum.TotalFuel / (distance / 100)
		}

		entries = append(entries, FleetEntry{
			Plate:                   sum.Plate,
			TotalFuel:               sum.TotalFuel,
			TrueDistance:            distance,
			ActualAvgConsumption:    avg,
			PredictedAvgConsumption: avg,
			IsActive:                mode == FilterUnfiltered || active[sum.Plate],
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalFuel > entries[j].TotalFuel
	})

	return entries, nil
}
