package Analysis

import (
	"sort"

	"Petrel/Models"

	"gorm.io/gorm"
)

// RevenuePerKilogram is the contracted haulage rate applied to every
// non-count weighbridge kilogram.
const RevenuePerKilogram = 0.5

type AccountingRow struct {
	Plate        string  `json:"plate"`
	Revenue      float64 `json:"revenue"`
	Cost         float64 `json:"cost"`
	NetProfit    float64 `json:"net_profit"`
	ProfitMargin float64 `json:"profit_margin_pct"`
	MainMaterial string  `json:"main_material"`
}

type AccountingReport struct {
	TotalRevenue float64         `json:"total_revenue"`
	TotalCost    float64         `json:"total_cost"`
	NetProfit    float64         `json:"net_profit"`
	ProfitMargin float64         `json:"profit_margin_pct"`
	PerPlate     []AccountingRow `json:"per_plate"`
}

// Accounting computes revenue, cost and profit per plate. Revenue comes from
// weighbridge tonnage at the contracted rate, cost from the fuel line totals.
// Under the active filter only active cargo vehicles count; plate narrows the
// report to a single vehicle. Rows come back sorted by net profit descending.
func Accounting(db *gorm.DB, startDate, endDate, plate string, includeSubcontractors bool) (*AccountingReport, error) {
	mode := ResolveFilterMode(db)

	var activePlates []string
	if mode == FilterActiveOnly {
		var err error
		activePlates, err = ActivePlates(db, Models.VehicleTypeCargo, includeSubcontractors)
		if err != nil {
			return nil, err
		}
	}

	type costSum struct {
		Plate string
		Total float64
	}
	costQuery := db.Model(&Models.FuelRecord{}).
		Select("plate, COALESCE(SUM(line_total), 0) AS total").
		Group("plate")
	if startDate != "" && endDate != "" {
		costQuery = costQuery.Where("transaction_date BETWEEN ? AND ?", startDate, endDate)
	}
	if plate != "" {
		costQuery = costQuery.Where("plate = ?", plate)
	}
	if mode == FilterActiveOnly {
		costQuery = costQuery.Where("plate IN ?", activePlates)
	}
	var costs []costSum
	if err := costQuery.Scan(&costs).Error; err != nil {
		return nil, err
	}

	type revenueSum struct {
		Plate        string
		Total        float64
		MainMaterial string
	}
	revenueQuery := db.Model(&Models.WeightRecord{}).
		Select("plate, COALESCE(SUM(net_weight * ?), 0) AS total, MAX(main_material) AS main_material", RevenuePerKilogram).
		Where("unit NOT IN ?", Models.CountUnits).
		Group("plate")
	if startDate != "" && endDate != "" {
		revenueQuery = revenueQuery.Where("date BETWEEN ? AND ?", startDate, endDate)
	}
	if plate != "" {
		revenueQuery = revenueQuery.Where("plate = ?", plate)
	}
	if mode == FilterActiveOnly {
		revenueQuery = revenueQuery.Where("plate IN ?", activePlates)
	}
	var revenues []revenueSum
	if err := revenueQuery.Scan(&revenues).Error; err != nil {
		return nil, err
	}

	byPlate := make(map[string]*AccountingRow)
	for _, c := range costs {
		byPlate[c.Plate] = &AccountingRow{Plate: c.Plate, Cost: c.Total, MainMaterial: "Unknown"}
	}
	for _, r := range revenues {
		row, ok := byPlate[r.Plate]
		if !ok {
			row = &AccountingRow{Plate: r.Plate, MainMaterial: "Unknown"}
			byPlate[r.Plate] = row
		}
		row.Revenue = r.Total
		if r.MainMaterial != "" {
			row.MainMaterial = r.MainMaterial
		}
	}

	report := &AccountingReport{PerPlate: make([]AccountingRow, 0, len(byPlate))}
	for _, row := range byPlate {
		row.NetProfit = row.Revenue - row.Cost
		if row.Revenue > 0 {
			row.ProfitMargin = row.NetProfit / row.Revenue * 100
		}
		report.TotalRevenue += row.Revenue
		report.TotalCost += row.Cost
		report.PerPlate = append(report.PerPlate, *row)
	}

	report.NetProfit = report.TotalRevenue - report.TotalCost
	if report.TotalRevenue > 0 {
		report.ProfitMargin = report.NetProfit / report.TotalRevenue * 100
	}

	sort.SliceStable(report.PerPlate, func(i, j int) bool {
		return report.PerPlate[i].NetProfit > report.PerPlate[j].NetProfit
	})

	return report, nil
}
