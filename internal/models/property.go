package models

import (
	"time"

	"github.com/google/uuid"
)

// PropertyDB represents a rental property row in the database
type PropertyDB struct {
	PropertyID    uuid.UUID `json:"id" db:"property_id"`                  // Primary key
	OwnerID       uuid.UUID `json:"owner_id" db:"owner_id"`               // Owning user
	Name          string    `json:"name" db:"name"`                       // Listing title
	Description   string    `json:"description" db:"description"`         // Listing description
	Location      string    `json:"location" db:"location"`               // Free-text location
	PricePerNight float64   `json:"price_per_night" db:"price_per_night"` // Current nightly rate
	MaxGuests     int       `json:"max_guests" db:"max_guests"`           // Guest capacity
	Amenities     string    `json:"amenities" db:"amenities"`             // Free-text amenities
	CreatedAt     time.Time `json:"created_at" db:"created_at"`           // Creation timestamp
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`           // Last update timestamp
}

// PropertyUpdate holds the fields of a partial property update; nil fields are left unchanged.
type PropertyUpdate struct {
	Name          *string  `json:"name,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Location      *string  `json:"location,omitempty"`
	PricePerNight *float64 `json:"price_per_night,omitempty"`
	MaxGuests     *int     `json:"max_guests,omitempty"`
	Amenities     *string  `json:"amenities,omitempty"`
}

// Empty reports whether the update carries no fields.
func (u PropertyUpdate) Empty() bool {
	return u.Name == nil && u.Description == nil && u.Location == nil &&
		u.PricePerNight == nil && u.MaxGuests == nil && u.Amenities == nil
}
