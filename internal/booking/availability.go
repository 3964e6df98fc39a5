package booking

// IsAvailable reports whether candidate can be booked given the ranges of the
// property's confirmed bookings. Callers must not pass cancelled bookings.
func IsAvailable(candidate DateRange, confirmed []DateRange) bool {
	for _, r := range confirmed {
		if candidate.Overlaps(r) {
			return false
		}
	}
	return true
}
