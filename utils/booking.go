package utils

// LineRate computes the per-service rate stored on each booking service line.
// The total is split evenly across the selected services rather than itemized
// per service price.
func LineRate(totalAmount, durationHours float64, serviceCount int) float64 {
	if durationHours == 0 || serviceCount == 0 {
		return 0
	}
	return totalAmount / durationHours / float64(serviceCount)
}
