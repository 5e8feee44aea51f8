package Models

import (
	"gorm.io/gorm"
)

// TrackingRecord mirrors one row of the GPS provider's export. It is kept as
// a raw data source only; distance metrics are reconstructed from odometer
// readings, not from these logs.
type TrackingRecord struct {
	gorm.Model
	Plate                string  `json:"plate" gorm:"index"`
	Driver               string  `json:"driver"`
	VehicleGroup         string  `json:"vehicle_group"`
	MovementStart        string  `json:"movement_start"`
	MovementEnd          string  `json:"movement_end"`
	StartAddress         string  `json:"start_address"`
	EndAddress           string  `json:"end_address"`
	TotalDistance        float64 `json:"total_distance"`
	IdleTime             string  `json:"idle_time"`
	ParkTime             string  `json:"park_time"`
	DailyFuelConsumption float64 `json:"daily_fuel_consumption"`
}

func (TrackingRecord) TableName() string {
	return "tracking_records"
}
