package handlers

//go:generate mockgen -source=image.go -destination=image_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-property-booking/internal/booking"
	"github.com/sbilibin2017/gw-property-booking/internal/models"
	"github.com/sbilibin2017/gw-property-booking/internal/services"
)

// ImageManager defines the image operations used by the image handlers.
type ImageManager interface {
	List(ctx context.Context, propertyID uuid.UUID) ([]models.PropertyImageDB, error)
	Add(ctx context.Context, id booking.Identity, propertyID uuid.UUID, in services.ImageInput) (*models.PropertyImageDB, error)
	Delete(ctx context.Context, id booking.Identity, imageID uuid.UUID) error
}

// ImageRequest registers an image URL for a property
// swagger:model ImageRequest
type ImageRequest struct {
	// Absolute http(s) URL
	// required: true
	// default: https://cdn.example.com/p/1.jpg
	ImageURL string `json:"image_url"`

	// Display name, defaults to the URL's file name
	ImageName string `json:"image_name,omitempty"`

	// Defaults to true for the first image of a property
	IsFeatured *bool `json:"is_featured,omitempty"`

	// Defaults to the number of images already registered
	UploadOrder *int `json:"upload_order,omitempty"`
}

// ImageResponse wraps an image
// swagger:model ImageResponse
type ImageResponse struct {
	Image *models.PropertyImageDB `json:"image"`
}

// ImagesResponse lists images
// swagger:model ImagesResponse
type ImagesResponse struct {
	Images []models.PropertyImageDB `json:"images"`
}

// NewListImagesHandler returns an HTTP handler listing a property's images.
// @Summary List property images
// @Tags images
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} handlers.ImagesResponse
// @Failure 404 {object} handlers.ErrorResponse "Property not found"
// @Router /properties/{id}/images [get]
func NewListImagesHandler(svc ImageManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		propertyID, ok := uuidParam(r, "id")
		if !ok {
			writeError(w, http.StatusBadRequest, msgInvalidID)
			return
		}
		images, err := svc.List(r.Context(), propertyID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, ImagesResponse{Images: images})
	}
}

// NewAddImageHandler returns an HTTP handler registering an image for a property.
// @Summary Add property image
// @Tags images
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Param imageRequest body handlers.ImageRequest true "Image"
// @Success 201 {object} handlers.ImageResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 403 {object} handlers.ErrorResponse "Not the owner"
// @Failure 404 {object} handlers.ErrorResponse "Property not found"
// @Router /properties/{id}/images [post]
func NewAddImageHandler(svc ImageManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		propertyID, ok := uuidParam(r, "id")
		if !ok {
			writeError(w, http.StatusBadRequest, msgInvalidID)
			return
		}
		var req ImageRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		image, err := svc.Add(r.Context(), identity(r), propertyID, services.ImageInput{
			URL:         req.ImageURL,
			Name:        req.ImageName,
			IsFeatured:  req.IsFeatured,
			UploadOrder: req.UploadOrder,
		})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, ImageResponse{Image: image})
	}
}

// NewDeleteImageHandler returns an HTTP handler removing a property image.
// @Summary Delete property image
// @Tags images
// @Produce json
// @Security BearerAuth
// @Param imageID path string true "Image ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 403 {object} handlers.ErrorResponse "Not the owner"
// @Failure 404 {object} handlers.ErrorResponse "Image not found"
// @Router /properties/images/{imageID} [delete]
func NewDeleteImageHandler(svc ImageManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		imageID, ok := uuidParam(r, "imageID")
		if !ok {
			writeError(w, http.StatusBadRequest, msgInvalidID)
			return
		}
		if err := svc.Delete(r.Context(), identity(r), imageID); err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Image deleted successfully"})
	}
}
