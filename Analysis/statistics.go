package Analysis

import (
	"sort"

	"Petrel/Models"

	"gorm.io/gorm"
)

// Statistics is the dashboard overview: per-table record counts plus fleet
// fuel and cost totals under the active cargo filter.
type Statistics struct {
	TotalRecords    int64    `json:"total_records"`
	FuelRecords     int64    `json:"fuel_records"`
	WeightRecords   int64    `json:"weight_records"`
	TrackingRecords int64    `json:"tracking_records"`
	PlateCount      int      `json:"plate_count"`
	TotalFuel       float64  `json:"total_fuel"`
	TotalCost       float64  `json:"total_cost"`
	Plates          []string `json:"plates"`
}

func GetStatistics(db *gorm.DB) (*Statistics, error) {
	stats := &Statistics{}

	if err := db.Model(&Models.FuelRecord{}).Count(&stats.FuelRecords).Error; err != nil {
		return nil, err
	}
	// Count-unit tickets carry no mass and stay out of the weight count too.
	if err := db.Model(&Models.WeightRecord{}).
		Where("unit NOT IN ?", Models.CountUnits).
		Count(&stats.WeightRecords).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&Models.TrackingRecord{}).Count(&stats.TrackingRecords).Error; err != nil {
		return nil, err
	}
	stats.TotalRecords = stats.FuelRecords + stats.WeightRecords + stats.TrackingRecords

	totalsQuery := db.Model(&Models.FuelRecord{}).
		Where("fuel_amount > 0")

	// The overview counts the whole working cargo fleet, subcontractors
	// included; ownership only matters to the report filters.
	if ResolveFilterMode(db) == FilterActiveOnly {
		plates, err := ActivePlates(db, Models.VehicleTypeCargo, true)
		if err != nil {
			return nil, err
		}
		stats.Plates = plates
		totalsQuery = totalsQuery.Where("plate IN ?", plates)
	} else {
		if err := db.Model(&Models.FuelRecord{}).
			Distinct("plate").
			Order("plate ASC").
			Pluck("plate", &stats.Plates).Error; err != nil {
			return nil, err
		}
	}
	stats.PlateCount = len(stats.Plates)

	var totals struct {
		TotalFuel float64
		TotalCost float64
	}
	if err := totalsQuery.
		Select("COALESCE(SUM(fuel_amount), 0) AS total_fuel, COALESCE(SUM(line_total), 0) AS total_cost").
		Scan(&totals).Error; err != nil {
		return nil, err
	}
	stats.TotalFuel = totals.TotalFuel
	stats.TotalCost = totals.TotalCost

	return stats, nil
}

// AllPlates unions the plates seen across fuel, weight and tracking records.
// When the vehicle registry is populated the union is narrowed to active
// plates, so retired vehicles drop out of the pickers.
func AllPlates(db *gorm.DB) ([]string, error) {
	seen := make(map[string]bool)

	for _, model := range []interface{}{
		&Models.FuelRecord{},
		&Models.WeightRecord{},
		&Models.TrackingRecord{},
	} {
		var plates []string
		if err := db.Model(model).
			Distinct("plate").
			Where("plate IS NOT NULL AND plate != ''").
			Pluck("plate", &plates).Error; err != nil {
			return nil, err
		}
		for _, plate := range plates {
			seen[plate] = true
		}
	}

	if ResolveFilterMode(db) == FilterActiveOnly {
		var active []string
		if err := db.Model(&Models.Vehicle{}).
			Where("active = ?", true).
			Pluck("plate", &active).Error; err != nil {
			return nil, err
		}
		if len(active) > 0 {
			activeSet := make(map[string]bool, len(active))
			for _, plate := range active {
				activeSet[plate] = true
			}
			for plate := range seen {
				if !activeSet[plate] {
					delete(seen, plate)
				}
			}
		}
	}

	plates := make([]string, 0, len(seen))
	for plate := range seen {
		plates = append(plates, plate)
	}
	sort.Strings(plates)

	return plates, nil
}

// PlatesByType lists active plates for one vehicle type, or the full active
// union when no type is given.
func PlatesByType(db *gorm.DB, vehicleType string) ([]string, error) {
	if vehicleType == "" {
		return AllPlates(db)
	}
	if ResolveFilterMode(db) == FilterUnfiltered {
		return AllPlates(db)
	}
	return ActivePlates(db, vehicleType, true)
}
