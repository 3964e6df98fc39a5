// Package booking holds the rules shared by every booking flow: date ranges,
// availability, pricing and the authorization guard.
package booking

import (
	"errors"
	"fmt"
)

// Error classes. Every error returned by the core and the services wraps
// exactly one of them; anything else is an internal failure.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("conflict")
)

var (
	// ErrInvalidDate is returned when a date does not match DateLayout.
	ErrInvalidDate = fmt.Errorf("%w: dates must use the YYYY-MM-DD format", ErrValidation)
	// ErrInvalidRange is returned when check-out is not strictly after check-in.
	ErrInvalidRange = fmt.Errorf("%w: check-out date must be after check-in date", ErrValidation)
	// ErrInvalidRate is returned for a non-positive nightly rate.
	ErrInvalidRate = fmt.Errorf("%w: nightly rate must be positive", ErrValidation)
)
