package handlers

//go:generate mockgen -source=property.go -destination=property_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-property-booking/internal/booking"
	"github.com/sbilibin2017/gw-property-booking/internal/models"
	"github.com/sbilibin2017/gw-property-booking/internal/services"
)

// PropertyManager defines the catalog operations used by the property handlers.
type PropertyManager interface {
	List(ctx context.Context) ([]models.PropertyDB, error)
	Get(ctx context.Context, propertyID uuid.UUID) (*models.PropertyDB, error)
	Create(ctx context.Context, id booking.Identity, in services.PropertyInput) (*models.PropertyDB, error)
	Update(ctx context.Context, id booking.Identity, propertyID uuid.UUID, upd models.PropertyUpdate) (*models.PropertyDB, error)
	Delete(ctx context.Context, id booking.Identity, propertyID uuid.UUID) error
	ListByOwner(ctx context.Context, id booking.Identity, ownerID uuid.UUID) ([]models.PropertyDB, error)
	ListAvailable(ctx context.Context, stay booking.DateRange) ([]models.PropertyDB, error)
}

// PropertyRequest is the JSON body for creating a property
// swagger:model PropertyRequest
type PropertyRequest struct {
	// Listing title
	// required: true
	// default: Seaside cottage
	Name string `json:"name"`

	// Description
	Description string `json:"description"`

	// Location
	// required: true
	// default: Lisbon
	Location string `json:"location"`

	// Nightly rate
	// required: true
	// default: 120.5
	PricePerNight float64 `json:"price_per_night"`

	// Guest capacity, defaults to 1
	// default: 2
	MaxGuests int `json:"max_guests"`

	// Free-text amenities
	// default: wifi, parking
	Amenities string `json:"amenities"`
}

// StayRequest is a check-in/check-out pair
// swagger:model StayRequest
type StayRequest struct {
	// First night, YYYY-MM-DD
	// required: true
	// default: 2024-06-10
	CheckInDate string `json:"check_in_date"`

	// Departure day, YYYY-MM-DD
	// required: true
	// default: 2024-06-15
	CheckOutDate string `json:"check_out_date"`
}

// PropertyResponse wraps a property
// swagger:model PropertyResponse
type PropertyResponse struct {
	Property *models.PropertyDB `json:"property"`
}

// PropertiesResponse lists properties
// swagger:model PropertiesResponse
type PropertiesResponse struct {
	Properties []models.PropertyDB `json:"properties"`
}

// NewListPropertiesHandler returns an HTTP handler listing the catalog.
// @Summary List properties
// @Tags properties
// @Produce json
// @Success 200 {object} handlers.PropertiesResponse
// @Router /properties [get]
func NewListPropertiesHandler(svc PropertyManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		properties, err := svc.List(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, PropertiesResponse{Properties: properties})
	}
}

// NewGetPropertyHandler returns an HTTP handler for one property.
// @Summary Get property
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} handlers.PropertyResponse
// @Failure 404 {object} handlers.ErrorResponse "Property not found"
// @Router /properties/{id} [get]
func NewGetPropertyHandler(svc PropertyManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		propertyID, ok := uuidParam(r, "id")
		if !ok {
			writeError(w, http.StatusBadRequest, msgInvalidID)
			return
		}
		property, err := svc.Get(r.Context(), propertyID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, PropertyResponse{Property: property})
	}
}

// NewCreatePropertyHandler returns an HTTP handler for listing a new property.
// @Summary Create property
// @Description Owners only. The caller becomes the owner of the new property.
// @Tags properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param propertyRequest body handlers.PropertyRequest true "New property"
// @Success 201 {object} handlers.PropertyResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 403 {object} handlers.ErrorResponse "Not an owner"
// @Router /properties [post]
func NewCreatePropertyHandler(svc PropertyManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PropertyRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		property, err := svc.Create(r.Context(), identity(r), services.PropertyInput{
			Name:          req.Name,
			Description:   req.Description,
			Location:      req.Location,
			PricePerNight: req.PricePerNight,
			MaxGuests:     req.MaxGuests,
			Amenities:     req.Amenities,
		})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, PropertyResponse{Property: property})
	}
}

// NewUpdatePropertyHandler returns an HTTP handler for partially updating a property.
// @Summary Update property
// @Description Owning owner only. Omitted fields are left unchanged.
// @Tags properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Param propertyUpdate body models.PropertyUpdate true "Fields to change"
// @Success 200 {object} handlers.PropertyResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 403 {object} handlers.ErrorResponse "Not the owner"
// @Failure 404 {object} handlers.ErrorResponse "Property not found"
// @Router /properties/{id} [patch]
func NewUpdatePropertyHandler(svc PropertyManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		propertyID, ok := uuidParam(r, "id")
		if !ok {
			writeError(w, http.StatusBadRequest, msgInvalidID)
			return
		}
		var upd models.PropertyUpdate
		if err := decodeJSON(r, &upd); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		property, err := svc.Update(r.Context(), identity(r), propertyID, upd)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, PropertyResponse{Property: property})
	}
}

// NewDeletePropertyHandler returns an HTTP handler for deleting a property.
// @Summary Delete property
// @Description Owning owner only. Bookings, images and favorites of the property are deleted too.
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 403 {object} handlers.ErrorResponse "Not the owner"
// @Failure 404 {object} handlers.ErrorResponse "Property not found"
// @Router /properties/{id} [delete]
func NewDeletePropertyHandler(svc PropertyManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		propertyID, ok := uuidParam(r, "id")
		if !ok {
			writeError(w, http.StatusBadRequest, msgInvalidID)
			return
		}
		if err := svc.Delete(r.Context(), identity(r), propertyID); err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Property deleted successfully"})
	}
}

// NewListOwnerPropertiesHandler returns an HTTP handler listing an owner's properties.
// @Summary List owner properties
// @Description Callers may only list their own properties.
// @Tags owners
// @Produce json
// @Security BearerAuth
// @Param id path string true "Owner ID"
// @Success 200 {object} handlers.PropertiesResponse
// @Failure 403 {object} handlers.ErrorResponse "Not the caller"
// @Router /owners/{id}/properties [get]
func NewListOwnerPropertiesHandler(svc PropertyManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := uuidParam(r, "id")
		if !ok {
			writeError(w, http.StatusBadRequest, msgInvalidID)
			return
		}
		properties, err := svc.ListByOwner(r.Context(), identity(r), ownerID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, PropertiesResponse{Properties: properties})
	}
}

// NewListAvailablePropertiesHandler returns an HTTP handler searching the
// catalog for properties free over a stay.
// @Summary Search available properties
// @Tags properties
// @Accept json
// @Produce json
// @Param stayRequest body handlers.StayRequest true "Stay"
// @Success 200 {object} handlers.PropertiesResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid dates"
// @Router /properties/available [post]
func NewListAvailablePropertiesHandler(svc PropertyManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StayRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}
		stay, err := booking.ParseDateRange(req.CheckInDate, req.CheckOutDate)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		properties, err := svc.ListAvailable(r.Context(), stay)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, PropertiesResponse{Properties: properties})
	}
}
