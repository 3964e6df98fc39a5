package handlers

//go:generate mockgen -source=booking.go -destination=booking_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-property-booking/internal/booking"
	"github.com/sbilibin2017/gw-property-booking/internal/models"
	"github.com/sbilibin2017/gw-property-booking/internal/services"
)

// BookingManager defines the reservation operations used by the booking handlers.
type BookingManager interface {
	Quote(ctx context.Context, propertyID uuid.UUID, stay booking.DateRange) (*services.Quote, error)
	Create(ctx context.Context, id booking.Identity, propertyID uuid.UUID, stay booking.DateRange) (*models.BookingDB, error)
	Get(ctx context.Context, id booking.Identity, bookingID uuid.UUID) (*models.BookingDB, error)
	Cancel(ctx context.Context, id booking.Identity, bookingID uuid.UUID) (*models.BookingDB, error)
	ListForGuest(ctx context.Context, id booking.Identity) ([]models.BookingDB, error)
	ListForOwner(ctx context.Context, id booking.Identity) ([]models.BookingDB, error)
	ListForProperty(ctx context.Context, id booking.Identity, propertyID uuid.UUID, status *string) ([]models.BookingDB, error)
}

// CreateBookingRequest is the JSON body for reserving a stay
// swagger:model CreateBookingRequest
type CreateBookingRequest struct {
	// Property to book
	// required: true
	PropertyID uuid.UUID `json:"property_id"`

	// First night, YYYY-MM-DD
	// required: true
	// default: 2024-06-10
	CheckInDate string `json:"check_in_date"`

	// Departure day, YYYY-MM-DD
	// required: true
	// default: 2024-06-15
	CheckOutDate string `json:"check_out_date"`
}

// AvailabilityResponse is a stay quote
// swagger:model AvailabilityResponse
type AvailabilityResponse struct {
	PropertyID   uuid.UUID `json:"property_id"`
	CheckInDate  string    `json:"check_in_date"`
	CheckOutDate string    `json:"check_out_date"`
	Available    bool      `json:"available"`
	Nights       int       `json:"nights"`
	TotalPrice   float64   `json:"total_price"`
}

// BookingResponse wraps a booking
// swagger:model BookingResponse
type BookingResponse struct {
	Message string            `json:"message,omitempty"`
	Booking *models.BookingDB `json:"booking"`
}

// BookingsResponse lists bookings
// swagger:model BookingsResponse
type BookingsResponse struct {
	Bookings []models.BookingDB `json:"bookings"`
}

// NewAvailabilityHandler returns an HTTP handler quoting a stay at a property.
// @Summary Check availability
// @Description Reports whether the stay is free and what it would cost at the current rate.
// @Tags bookings
// @Produce json
// @Param id path string true "Property ID"
// @Param check_in query string true "First night, YYYY-MM-DD"
// @Param check_out query string true "Departure day, YYYY-MM-DD"
// @Success 200 {object} handlers.AvailabilityResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid dates"
// @Failure 404 {object} handlers.ErrorResponse "Property not found"
// @Router /properties/{id}/availability [get]
func NewAvailabilityHandler(svc BookingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		propertyID, ok := uuidParam(r, "id")
		if !ok {
			writeError(w, http.StatusBadRequest, msgInvalidID)
			return
		}
		q := r.URL.Query()
		stay, err := booking.ParseDateRange(q.Get("check_in"), q.Get("check_out"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		quote, err := svc.Quote(r.Context(), propertyID, stay)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, AvailabilityResponse{
			PropertyID:   quote.PropertyID,
			CheckInDate:  quote.Stay.CheckIn.Format(booking.DateLayout),
			CheckOutDate: quote.Stay.CheckOut.Format(booking.DateLayout),
			Available:    quote.Available,
			Nights:       quote.Nights,
			TotalPrice:   quote.TotalPrice,
		})
	}
}

// NewCreateBookingHandler returns an HTTP handler for reserving a stay.
// @Summary Create booking
// @Description Books the stay for the caller. Guest name and email are taken from the account.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createBookingRequest body handlers.CreateBookingRequest true "Stay to book"
// @Success 201 {object} handlers.BookingResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Property not found"
// @Failure 409 {object} handlers.ErrorResponse "Dates unavailable"
// @Router /bookings [post]
func NewCreateBookingHandler(svc BookingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateBookingRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}
		stay, err := booking.ParseDateRange(req.CheckInDate, req.CheckOutDate)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		b, err := svc.Create(r.Context(), identity(r), req.PropertyID, stay)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, BookingResponse{Message: "Booking created successfully", Booking: b})
	}
}

// NewGetBookingHandler returns an HTTP handler for one of the caller's bookings.
// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} handlers.BookingResponse
// @Failure 403 {object} handlers.ErrorResponse "Not the guest"
// @Failure 404 {object} handlers.ErrorResponse "Booking not found"
// @Router /bookings/{id} [get]
func NewGetBookingHandler(svc BookingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookingID, ok := uuidParam(r, "id")
		if !ok {
			writeError(w, http.StatusBadRequest, msgInvalidID)
			return
		}
		b, err := svc.Get(r.Context(), identity(r), bookingID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, BookingResponse{Booking: b})
	}
}

// NewCancelBookingHandler returns an HTTP handler for cancelling a booking.
// Cancelling an already cancelled booking succeeds.
// @Summary Cancel booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} handlers.BookingResponse
// @Failure 403 {object} handlers.ErrorResponse "Not the guest"
// @Failure 404 {object} handlers.ErrorResponse "Booking not found"
// @Router /bookings/{id}/cancel [put]
func NewCancelBookingHandler(svc BookingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookingID, ok := uuidParam(r, "id")
		if !ok {
			writeError(w, http.StatusBadRequest, msgInvalidID)
			return
		}
		b, err := svc.Cancel(r.Context(), identity(r), bookingID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, BookingResponse{Message: "Booking cancelled successfully", Booking: b})
	}
}

// NewListGuestBookingsHandler returns an HTTP handler listing the caller's bookings.
// @Summary List my bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.BookingsResponse
// @Router /user/bookings [get]
func NewListGuestBookingsHandler(svc BookingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookings, err := svc.ListForGuest(r.Context(), identity(r))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, BookingsResponse{Bookings: bookings})
	}
}

// NewListOwnerBookingsHandler returns an HTTP handler listing bookings across
// the caller's properties.
// @Summary List bookings of my properties
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.BookingsResponse
// @Failure 403 {object} handlers.ErrorResponse "Not an owner"
// @Router /owner/bookings [get]
func NewListOwnerBookingsHandler(svc BookingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookings, err := svc.ListForOwner(r.Context(), identity(r))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, BookingsResponse{Bookings: bookings})
	}
}

// NewListPropertyBookingsHandler returns an HTTP handler listing the bookings
// of one property, optionally filtered by status.
// @Summary List property bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Param status query string false "confirmed or cancelled"
// @Success 200 {object} handlers.BookingsResponse
// @Failure 403 {object} handlers.ErrorResponse "Not the owner"
// @Failure 404 {object} handlers.ErrorResponse "Property not found"
// @Router /properties/{id}/bookings [get]
func NewListPropertyBookingsHandler(svc BookingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		propertyID, ok := uuidParam(r, "id")
		if !ok {
			writeError(w, http.StatusBadRequest, msgInvalidID)
			return
		}
		var status *string
		if s := r.URL.Query().Get("status"); s != "" {
			status = &s
		}

		bookings, err := svc.ListForProperty(r.Context(), identity(r), propertyID, status)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, BookingsResponse{Bookings: bookings})
	}
}
