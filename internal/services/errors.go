package services

import (
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-property-booking/internal/booking"
)

// ErrInvalidCredentials is an authentication failure, not one of the booking error classes.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Validation errors
var (
	ErrInvalidEmail       = fmt.Errorf("%w: invalid email address", booking.ErrValidation)
	ErrInvalidPassword    = fmt.Errorf("%w: password must be at least 6 characters", booking.ErrValidation)
	ErrInvalidName        = fmt.Errorf("%w: name must be at least 2 characters", booking.ErrValidation)
	ErrInvalidRole        = fmt.Errorf("%w: user_type must be guest or owner", booking.ErrValidation)
	ErrInvalidTitle       = fmt.Errorf("%w: property name is required", booking.ErrValidation)
	ErrInvalidLocation    = fmt.Errorf("%w: location is required", booking.ErrValidation)
	ErrInvalidPrice       = fmt.Errorf("%w: price_per_night must be positive", booking.ErrValidation)
	ErrInvalidMaxGuests   = fmt.Errorf("%w: max_guests must be positive", booking.ErrValidation)
	ErrEmptyUpdate        = fmt.Errorf("%w: no fields to update", booking.ErrValidation)
	ErrInvalidImageURL    = fmt.Errorf("%w: image_url must be an absolute http(s) URL", booking.ErrValidation)
	ErrInvalidUploadOrder = fmt.Errorf("%w: upload_order must not be negative", booking.ErrValidation)
	ErrInvalidStatus      = fmt.Errorf("%w: status must be confirmed or cancelled", booking.ErrValidation)
)

// Not found errors
var (
	ErrUserNotFound     = fmt.Errorf("%w: user not found", booking.ErrNotFound)
	ErrPropertyNotFound = fmt.Errorf("%w: property not found", booking.ErrNotFound)
	ErrBookingNotFound  = fmt.Errorf("%w: booking not found", booking.ErrNotFound)
	ErrImageNotFound    = fmt.Errorf("%w: image not found", booking.ErrNotFound)
	ErrFavoriteNotFound = fmt.Errorf("%w: favorite not found", booking.ErrNotFound)
)

// Conflict errors
var (
	ErrUserAlreadyExists = fmt.Errorf("%w: email already registered", booking.ErrConflict)
	ErrDatesUnavailable  = fmt.Errorf("%w: property is not available for the selected dates", booking.ErrConflict)
	ErrAlreadyFavorite   = fmt.Errorf("%w: property already in favorites", booking.ErrConflict)
)
