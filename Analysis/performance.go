package Analysis

import (
	"sort"

	"Petrel/Models"

	"gorm.io/gorm"
)

// PerformanceSummary bundles every per-vehicle efficiency metric the reports
// show. TotalDistance is the reconstructed true distance, not a sum of raw
// odometer values, so all distance ratios survive counter resets.
type PerformanceSummary struct {
	Plate             string  `json:"plate"`
	TotalFuel         float64 `json:"total_fuel"`
	TotalDistance     float64 `json:"total_distance"`
	TripCount         int64   `json:"trip_count"`
	AvgFuelPerTrip    float64 `json:"avg_fuel_per_trip"`
	AvgUnitPrice      float64 `json:"avg_unit_price"`
	TotalCost         float64 `json:"total_cost"`
	TotalTonnage      float64 `json:"total_tonnage"`
	LoadCount         int64   `json:"load_count"`
	AvgTonnagePerLoad float64 `json:"avg_tonnage_per_load"`
	FuelPerDistance   float64 `json:"fuel_per_distance_ratio"`
	CostPerDistance   float64 `json:"cost_per_distance"`
	TonnagePerFuel    float64 `json:"tonnage_per_fuel_ratio"`
	EfficiencyScore   float64 `json:"efficiency_score"`
}

// MonthlyUsage is one month's fuel and cost bucket for a vehicle.
type MonthlyUsage struct {
	Month string  `json:"month"`
	Fuel  float64 `json:"fuel"`
	Cost  float64 `json:"cost"`
}

// VehiclePerformance computes the full metric set for one plate over an
// optional inclusive date range. A plate with no records yields a zero-valued
// summary rather than an error.
func VehiclePerformance(db *gorm.DB, plate, startDate, endDate string) (*PerformanceSummary, error) {
	var fuelAgg struct {
		TotalFuel    float64
		TotalCost    float64
		TripCount    int64
		AvgFuel      float64
		AvgUnitPrice float64
	}
	fuelQuery := db.Model(&Models.FuelRecord{}).
		Where("plate = ? AND fuel_amount > 0", plate)
	if startDate != "" && endDate != "" {
		fuelQuery = fuelQuery.Where("transaction_date BETWEEN ? AND ?", startDate, endDate)
	}
	if err := fuelQuery.
		Select("COALESCE(SUM(fuel_amount), 0) AS total_fuel, " +
			"COALESCE(SUM(line_total), 0) AS total_cost, " +
			"COUNT(*) AS trip_count, " +
			"COALESCE(AVG(fuel_amount), 0) AS avg_fuel, " +
			"COALESCE(AVG(unit_price), 0) AS avg_unit_price").
		Scan(&fuelAgg).Error; err != nil {
		return nil, err
	}

	var weightAgg struct {
		TotalTonnage float64
		LoadCount    int64
		AvgTonnage   float64
	}
	weightQuery := db.Model(&Models.WeightRecord{}).
		Where("plate = ? AND net_weight > 0", plate).
		Where("unit NOT IN ?", Models.CountUnits)
	if startDate != "" && endDate != "" {
		weightQuery = weightQuery.Where("date BETWEEN ? AND ?", startDate, endDate)
	}
	if err := weightQuery.
		Select("COALESCE(SUM(net_weight), 0) AS total_tonnage, " +
			"COUNT(*) AS load_count, " +
			"COALESCE(AVG(net_weight), 0) AS avg_tonnage").
		Scan(&weightAgg).Error; err != nil {
		return nil, err
	}

	distance, err := TrueDistance(db, plate, startDate, endDate)
	if err != nil {
		return nil, err
	}

	summary := &PerformanceSummary{
		Plate:             plate,
		TotalFuel:         fuelAgg.TotalFuel,
		TotalDistance:     distance,
		TripCount:         fuelAgg.TripCount,
		AvgFuelPerTrip:    fuelAgg.AvgFuel,
		AvgUnitPrice:      fuelAgg.AvgUnitPrice,
		TotalCost:         fuelAgg.TotalCost,
		TotalTonnage:      weightAgg.TotalTonnage,
		LoadCount:         weightAgg.LoadCount,
		AvgTonnagePerLoad: weightAgg.AvgTonnage,
	}

	if distance > 0 {
		summary.FuelPerDistance = summary.TotalFuel / distance
		summary.CostPerDistance = summary.TotalCost / distance
	}
	if summary.TotalFuel > 0 {
		// Weighbridge weights are kilograms; the ratio is tonnes per liter.
		summary.TonnagePerFuel = (summary.TotalTonnage / 1000) / summary.TotalFuel
	}
	summary.EfficiencyScore = summary.FuelPerDistance * 100

	return summary, nil
}

// ComparePerformance computes one summary per requested plate, keeping the
// input order. Unknown plates come back as zero rows instead of failing the
// whole batch.
func ComparePerformance(db *gorm.DB, plates []string, startDate, endDate string) ([]PerformanceSummary, error) {
	results := make([]PerformanceSummary, 0, len(plates))
	for _, plate := range plates {
		summary, err := VehiclePerformance(db, plate, startDate, endDate)
		if err != nil {
			return nil, err
		}
		results = append(results, *summary)
	}
	return results, nil
}

// MonthlyBreakdown buckets a vehicle's fuel and cost per calendar month,
// oldest month first. Transaction dates are "2006-01-02" strings, so the
// month key is just the first seven characters.
func MonthlyBreakdown(db *gorm.DB, plate, startDate, endDate string) ([]MonthlyUsage, error) {
	query := db.Model(&Models.FuelRecord{}).
		Where("plate = ?", plate)
	if startDate != "" && endDate != "" {
		query = query.Where("transaction_date BETWEEN ? AND ?", startDate, endDate)
	}

	var records []Models.FuelRecord
	if err := query.Order("transaction_date ASC, id ASC").Find(&records).Error; err != nil {
		return nil, err
	}

	buckets := make(map[string]*MonthlyUsage)
	for _, record := range records {
		if len(record.TransactionDate) < 7 {
			continue
		}
		month := record.TransactionDate[:7]
		bucket, ok := buckets[month]
		if !ok {
			bucket = &MonthlyUsage{Month: month}
			buckets[month] = bucket
		}
		bucket.Fuel += record.FuelAmount
		bucket.Cost += record.LineTotal
	}

	months := make([]MonthlyUsage, 0, len(buckets))
	for _, bucket := range buckets {
		months = append(months, *bucket)
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].Month < months[j].Month
	})

	return months, nil
}
