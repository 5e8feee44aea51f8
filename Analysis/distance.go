package Analysis

import (
	"Petrel/Models"

	"gorm.io/gorm"
)

// forwardDeltaSum walks chronologically ordered odometer readings and sums
// only the positive consecutive deltas. A non-positive delta means the
// counter was reset or the reading was mis-keyed; it is dropped and the walk
// continues from the current reading. Fewer than two readings cannot show
// movement and yield 0.
//
// Known limitation, kept on purpose: two counter resets between consecutive
// sampled readings undercount the distance driven in between. That is not
// detectable from the data, so no correction is attempted.
func forwardDeltaSum(readings []float64) float64 {
	if len(readings) < 2 {
		return 0
	}

	var total float64
	prev := readings[0]
	for _, cur := range readings[1:] {
		if delta := cur - prev; delta > 0 {
			total += delta
		}
		prev = cur
	}
	return total
}

// TrueDistance reconstructs the distance a vehicle actually traveled from its
// fuel-record odometer readings, optionally restricted to an inclusive date
// range. Readings are ordered by transaction date with the row id breaking
// ties, so same-day readings keep their insertion order.
func TrueDistance(db *gorm.DB, plate, startDate, endDate string) (float64, error) {
	query := db.Model(&Models.FuelRecord{}).
		Where("plate = ? AND odometer_reading > 0", plate)
	if startDate != "" {
		query = query.Where("transaction_date >= ?", startDate)
	}
	if endDate != "" {
		query = query.Where("transaction_date <= ?", endDate)
	}

	var readings []float64
	if err := query.Order("transaction_date ASC, id ASC").
		Pluck("odometer_reading", &readings).Error; err != nil {
		return 0, err
	}

	return forwardDeltaSum(readings), nil
}
