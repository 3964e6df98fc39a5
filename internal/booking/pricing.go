package booking

import (
	"math"
	"time"
)

// ComputePrice returns nightlyRate times the number of nights between checkIn
// and checkOut, rounded to cents. The result is a snapshot: callers store it
// on the booking and never recompute it when the property's rate changes.
func ComputePrice(nightlyRate float64, checkIn, checkOut time.Time) (float64, error) {
	r, err := NewDateRange(checkIn, checkOut)
	if err != nil {
		return 0, err
	}
	return PriceFor(nightlyRate, r)
}

// PriceFor is ComputePrice for an already validated range.
func PriceFor(nightlyRate float64, r DateRange) (float64, error) {
	if nightlyRate <= 0 || math.IsNaN(nightlyRate) || math.IsInf(nightlyRate, 0) {
		return 0, ErrInvalidRate
	}
	nights := r.Nights()
	if nights <= 0 {
		return 0, ErrInvalidRange
	}
	return math.Round(nightlyRate*float64(nights)*100) / 100, nil
}
