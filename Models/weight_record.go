package Models

import (
	"gorm.io/gorm"
)

// CountUnits are the unit spellings that mark a weighbridge row as an item
// count rather than a mass. Count rows never enter tonnage or revenue math.
var CountUnits = []string{"Adet", "adet", "ADET"}

// WeightRecord is one weighbridge (kantar) ticket. NetWeight is in kilograms.
type WeightRecord struct {
	gorm.Model
	Plate        string  `json:"plate" gorm:"index"`
	Date         string  `json:"date" gorm:"index"`
	NetWeight    float64 `json:"net_weight"`
	Unit         string  `json:"unit"`
	MainMaterial string  `json:"main_material"`
}

func (WeightRecord) TableName() string {
	return "weight_records"
}
