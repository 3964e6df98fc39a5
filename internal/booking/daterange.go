package booking

import (
	"fmt"
	"time"
)

// DateLayout is the wire format of check-in and check-out dates.
const DateLayout = "2006-01-02"

// DateRange is a half-open stay [CheckIn, CheckOut): the check-out day itself is not occupied.
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// ParseDate parses a YYYY-MM-DD date as a UTC calendar day.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// NewDateRange builds a range from two instants truncated to their UTC calendar day.
// It fails with ErrInvalidRange unless checkOut falls on a later day than checkIn.
func NewDateRange(checkIn, checkOut time.Time) (DateRange, error) {
	r := DateRange{CheckIn: day(checkIn), CheckOut: day(checkOut)}
	if !r.CheckOut.After(r.CheckIn) {
		return DateRange{}, ErrInvalidRange
	}
	return r, nil
}

// ParseDateRange parses both dates and validates their order.
func ParseDateRange(checkIn, checkOut string) (DateRange, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return DateRange{}, err
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return DateRange{}, err
	}
	return NewDateRange(in, out)
}

// Nights returns the number of nights in the stay. Ranges built outside
// NewDateRange may be empty or inverted, in which case it returns 0 or less.
func (r DateRange) Nights() int {
	return int(day(r.CheckOut).Sub(day(r.CheckIn)).Hours() / 24)
}

// Overlaps reports whether two half-open ranges share at least one night.
// An empty range occupies no nights and overlaps nothing.
func (r DateRange) Overlaps(other DateRange) bool {
	if r.Nights() <= 0 || other.Nights() <= 0 {
		return false
	}
	a1, b1 := day(r.CheckIn), day(r.CheckOut)
	a2, b2 := day(other.CheckIn), day(other.CheckOut)
	// not (b1 <= a2 or a1 >= b2)
	return b1.After(a2) && a1.Before(b2)
}

// String formats the range as "YYYY-MM-DD/YYYY-MM-DD".
func (r DateRange) String() string {
	return r.CheckIn.Format(DateLayout) + "/" + r.CheckOut.Format(DateLayout)
}

func day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
