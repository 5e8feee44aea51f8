package Models

import (
	"gorm.io/gorm"
)

// Vehicle owners and types. Owner decides whether a plate counts as part of
// the company fleet or a subcontracted one.
const (
	OwnerOwn           = "OWN"
	OwnerSubcontractor = "SUBCONTRACTOR"

	VehicleTypeCargo          = "CARGO"
	VehicleTypePassenger      = "PASSENGER"
	VehicleTypeHeavyEquipment = "HEAVY_EQUIPMENT"
)

// Vehicle is the fleet registry row. The plate is the identity: every fuel,
// weight and tracking record joins against it by plate string.
type Vehicle struct {
	gorm.Model
	Plate       string `json:"plate" gorm:"uniqueIndex;not null"`
	Owner       string `json:"owner" gorm:"default:OWN"`
	VehicleType string `json:"vehicle_type" gorm:"default:CARGO"`
	Active      bool   `json:"active" gorm:"default:true"`
	Notes       string `json:"notes" gorm:"type:text"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

// BulkImportVehicles registers every distinct plate seen in the fuel records
// as an active company cargo vehicle. Plates already registered are left
// untouched, so running the import twice adds nothing the second time.
func BulkImportVehicles(db *gorm.DB) (int, int64, error) {
	var plates []string
	if err := db.Model(&FuelRecord{}).
		Distinct("plate").
		Where("plate IS NOT NULL AND plate != ''").
		Pluck("plate", &plates).Error; err != nil {
		return 0, 0, err
	}

	var existing []string
	if err := db.Model(&Vehicle{}).Pluck("plate", &existing).Error; err != nil {
		return 0, 0, err
	}
	known := make(map[string]bool, len(existing))
	for _, plate := range existing {
		known[plate] = true
	}

	var toCreate []Vehicle
	for _, plate := range plates {
		if known[plate] {
			continue
		}
		toCreate = append(toCreate, Vehicle{
			Plate:       plate,
			Owner:       OwnerOwn,
			VehicleType: VehicleTypeCargo,
			Active:      true,
			Notes:       "Auto-imported from fuel records",
		})
	}

	if len(toCreate) > 0 {
		if err := db.Create(&toCreate).Error; err != nil {
			return 0, 0, err
		}
	}

	var total int64
	if err := db.Model(&Vehicle{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}

	return len(toCreate), total, nil
}
