package Models

import (
	"gorm.io/gorm"
)

// FuelRecord is one purchase line from the fuel supplier spreadsheet. Dates
// are stored as "2006-01-02" strings so range filters can use plain string
// comparison. OdometerReading is 0 when the pump attendant left it blank.
type FuelRecord struct {
	gorm.Model
	Plate           string  `json:"plate" gorm:"index"`
	TransactionDate string  `json:"transaction_date" gorm:"index"`
	FuelAmount      float64 `json:"fuel_amount"`
	UnitPrice       float64 `json:"unit_price"`
	LineTotal       float64 `json:"line_total"`
	OdometerReading float64 `json:"odometer_reading"`
}

func (FuelRecord) TableName() string {
	return "fuel_records"
}
