package models

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteDB represents a (user, property) favorite pair
type FavoriteDB struct {
	FavoriteID uuid.UUID `json:"id" db:"favorite_id"`
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	PropertyID uuid.UUID `json:"property_id" db:"property_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
