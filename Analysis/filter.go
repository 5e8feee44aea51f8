package Analysis

import (
	"Petrel/Models"

	"gorm.io/gorm"
)

// FilterMode decides whether aggregations are restricted to the registered
// active fleet or run over the raw record set.
type FilterMode int

const (
	FilterActiveOnly FilterMode = iota
	FilterUnfiltered
)

// ResolveFilterMode probes the vehicle registry once per call. Databases
// predating the registry (or with an empty one) fall back to unfiltered
// aggregation over the raw records; that is compatibility behavior, not an
// error.
func ResolveFilterMode(db *gorm.DB) FilterMode {
	if !db.Migrator().HasTable(&Models.Vehicle{}) {
		return FilterUnfiltered
	}
	var count int64
	if err := db.Model(&Models.Vehicle{}).Count(&count).Error; err != nil || count == 0 {
		return FilterUnfiltered
	}
	return FilterActiveOnly
}

// ActivePlates lists plates of active vehicles of the given type. By default
// only company-owned vehicles qualify; includeSubcontractors widens the
// selection to subcontracted ones as well.
func ActivePlates(db *gorm.DB, vehicleType string, includeSubcontractors bool) ([]string, error) {
	query := db.Model(&Models.Vehicle{}).
		Where("active = ? AND vehicle_type = ?", true, vehicleType)
	if !includeSubcontractors {
		query = query.Where("owner = ?", Models.OwnerOwn)
	}

	var plates []string
	if err := query.Order("plate ASC").Pluck("plate", &plates).Error; err != nil {
		return nil, err
	}
	return plates, nil
}
