package models

import (
	"time"

	"github.com/google/uuid"
)

// PropertyImageDB represents an image registered for a property
type PropertyImageDB struct {
	ImageID     uuid.UUID `json:"id" db:"image_id"`               // Primary key
	PropertyID  uuid.UUID `json:"property_id" db:"property_id"`   // Owning property
	ImageURL    string    `json:"image_url" db:"image_url"`       // Where the image is served from
	ImageName   string    `json:"image_name" db:"image_name"`     // Display name
	IsFeatured  bool      `json:"is_featured" db:"is_featured"`   // Primary image for display
	UploadOrder int       `json:"upload_order" db:"upload_order"` // Ordering index
	CreatedAt   time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
}
