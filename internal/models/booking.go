package models

import (
	"time"

	"github.com/google/uuid"
)

// Booking statuses
const (
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// BookingDB represents a booking row in the database.
// GuestName and GuestEmail are copied from the booking user at creation time.
type BookingDB struct {
	BookingID    uuid.UUID `json:"id" db:"booking_id"`                 // Primary key
	PropertyID   uuid.UUID `json:"property_id" db:"property_id"`       // Booked property
	GuestName    string    `json:"guest_name" db:"guest_name"`         // Guest name snapshot
	GuestEmail   string    `json:"guest_email" db:"guest_email"`       // Guest email snapshot
	CheckInDate  time.Time `json:"check_in_date" db:"check_in_date"`   // First night
	CheckOutDate time.Time `json:"check_out_date" db:"check_out_date"` // Departure day, not occupied
	TotalPrice   float64   `json:"total_price" db:"total_price"`       // Price snapshot at creation
	Status       string    `json:"booking_status" db:"status"`         // confirmed or cancelled
	CreatedAt    time.Time `json:"created_at" db:"created_at"`         // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`         // Last update timestamp
}
