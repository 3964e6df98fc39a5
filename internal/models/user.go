package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`            // Primary key
	Email        string    `json:"email" db:"email"`           // Unique, lowercased email
	PasswordHash string    `json:"-" db:"password_hash"`       // Bcrypt hash, never serialized
	Name         string    `json:"name" db:"name"`             // Display name
	Role         string    `json:"user_type" db:"role"`        // guest or owner
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}
