package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-property-booking/internal/booking"
	"github.com/sbilibin2017/gw-property-booking/internal/models"
	"github.com/sbilibin2017/gw-property-booking/internal/services"
)

var bookingID = uuid.MustParse("44444444-4444-4444-4444-444444444444")

func mustStay(t *testing.T, in, out string) booking.DateRange {
	t.Helper()
	stay, err := booking.ParseDateRange(in, out)
	require.NoError(t, err)
	return stay
}

func sampleBooking(t *testing.T, status string) *models.BookingDB {
	stay := mustStay(t, "2024-06-10", "2024-06-15")
	return &models.BookingDB{
		BookingID:    bookingID,
		PropertyID:   propertyID,
		GuestName:    "Gina",
		GuestEmail:   guestIdentity.Email,
		CheckInDate:  stay.CheckIn,
		CheckOutDate: stay.CheckOut,
		TotalPrice:   602.5,
		Status:       status,
	}
}

func TestAvailabilityHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockBookingManager(ctrl)

	t.Run("quote", func(t *testing.T) {
		stay := mustStay(t, "2024-06-10", "2024-06-15")
		mockSvc.EXPECT().Quote(gomock.Any(), propertyID, stay).Return(&services.Quote{
			PropertyID: propertyID,
			Stay:       stay,
			Available:  true,
			Nights:     5,
			TotalPrice: 602.5,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/properties/x/availability?check_in=2024-06-10&check_out=2024-06-15", nil)
		req = withURLParams(req, "id", propertyID.String())
		rr := httptest.NewRecorder()
		NewAvailabilityHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{
			"property_id":"`+propertyID.String()+`",
			"check_in_date":"2024-06-10",
			"check_out_date":"2024-06-15",
			"available":true,
			"nights":5,
			"total_price":602.5
		}`, rr.Body.String())
	})

	t.Run("missing dates", func(t *testing.T) {
		req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/properties/x/availability", nil), "id", propertyID.String())
		rr := httptest.NewRecorder()
		NewAvailabilityHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown property", func(t *testing.T) {
		mockSvc.EXPECT().Quote(gomock.Any(), propertyID, gomock.Any()).Return(nil, services.ErrPropertyNotFound)

		req := httptest.NewRequest(http.MethodGet, "/?check_in=2024-06-10&check_out=2024-06-11", nil)
		req = withURLParams(req, "id", propertyID.String())
		rr := httptest.NewRecorder()
		NewAvailabilityHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestCreateBookingHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockBookingManager(ctrl)
	body := `{"property_id":"` + propertyID.String() + `","check_in_date":"2024-06-10","check_out_date":"2024-06-15"}`

	tests := []struct {
		name         string
		body         string
		mockSetup    func()
		expectedCode int
	}{
		{
			name: "created",
			body: body,
			mockSetup: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), guestIdentity, propertyID, mustStay(t, "2024-06-10", "2024-06-15")).
					Return(sampleBooking(t, models.BookingConfirmed), nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "dates taken",
			body: body,
			mockSetup: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), guestIdentity, propertyID, gomock.Any()).
					Return(nil, services.ErrDatesUnavailable)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "unknown property",
			body: body,
			mockSetup: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), guestIdentity, propertyID, gomock.Any()).
					Return(nil, services.ErrPropertyNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "zero nights",
			body:         `{"property_id":"` + propertyID.String() + `","check_in_date":"2024-06-10","check_out_date":"2024-06-10"}`,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid json",
			body:         "{",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			req := withIdentity(httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString(tt.body)), guestIdentity)
			rr := httptest.NewRecorder()
			NewCreateBookingHandler(mockSvc)(rr, req)
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestGetBookingHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockBookingManager(ctrl)

	tests := []struct {
		name         string
		who          booking.Identity
		mockSetup    func()
		expectedCode int
	}{
		{
			name: "own booking",
			who:  guestIdentity,
			mockSetup: func() {
				mockSvc.EXPECT().Get(gomock.Any(), guestIdentity, bookingID).Return(sampleBooking(t, models.BookingConfirmed), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "someone else's booking",
			who:  ownerIdentity,
			mockSetup: func() {
				mockSvc.EXPECT().Get(gomock.Any(), ownerIdentity, bookingID).Return(nil, booking.ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "missing booking",
			who:  guestIdentity,
			mockSetup: func() {
				mockSvc.EXPECT().Get(gomock.Any(), guestIdentity, bookingID).Return(nil, services.ErrBookingNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			req := withURLParams(withIdentity(httptest.NewRequest(http.MethodGet, "/", nil), tt.who), "id", bookingID.String())
			rr := httptest.NewRecorder()
			NewGetBookingHandler(mockSvc)(rr, req)
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestCancelBookingHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockBookingManager(ctrl)

	// Repeating a cancellation returns the same cancelled booking.
	mockSvc.EXPECT().
		Cancel(gomock.Any(), guestIdentity, bookingID).
		Return(sampleBooking(t, models.BookingCancelled), nil).
		Times(2)

	for i := 0; i < 2; i++ {
		req := withURLParams(withIdentity(httptest.NewRequest(http.MethodPut, "/", nil), guestIdentity), "id", bookingID.String())
		rr := httptest.NewRecorder()
		NewCancelBookingHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp BookingResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, models.BookingCancelled, resp.Booking.Status)
	}
}

func TestListBookingsHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockBookingManager(ctrl)

	t.Run("guest", func(t *testing.T) {
		mockSvc.EXPECT().ListForGuest(gomock.Any(), guestIdentity).Return([]models.BookingDB{*sampleBooking(t, models.BookingConfirmed)}, nil)

		rr := httptest.NewRecorder()
		NewListGuestBookingsHandler(mockSvc)(rr, withIdentity(httptest.NewRequest(http.MethodGet, "/", nil), guestIdentity))

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp BookingsResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp.Bookings, 1)
	})

	t.Run("owner role required", func(t *testing.T) {
		mockSvc.EXPECT().ListForOwner(gomock.Any(), guestIdentity).Return(nil, booking.ErrForbidden)

		rr := httptest.NewRecorder()
		NewListOwnerBookingsHandler(mockSvc)(rr, withIdentity(httptest.NewRequest(http.MethodGet, "/", nil), guestIdentity))

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("property with status filter", func(t *testing.T) {
		status := models.BookingConfirmed
		mockSvc.EXPECT().ListForProperty(gomock.Any(), ownerIdentity, propertyID, &status).Return([]models.BookingDB{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/?status=confirmed", nil)
		req = withURLParams(withIdentity(req, ownerIdentity), "id", propertyID.String())
		rr := httptest.NewRecorder()
		NewListPropertyBookingsHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"bookings":[]}`, rr.Body.String())
	})

	t.Run("property without filter", func(t *testing.T) {
		mockSvc.EXPECT().ListForProperty(gomock.Any(), ownerIdentity, propertyID, nil).Return(nil, nil)

		req := withURLParams(withIdentity(httptest.NewRequest(http.MethodGet, "/", nil), ownerIdentity), "id", propertyID.String())
		rr := httptest.NewRecorder()
		NewListPropertyBookingsHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("property of another owner", func(t *testing.T) {
		mockSvc.EXPECT().ListForProperty(gomock.Any(), guestIdentity, propertyID, nil).Return(nil, booking.ErrForbidden)

		req := withURLParams(withIdentity(httptest.NewRequest(http.MethodGet, "/", nil), guestIdentity), "id", propertyID.String())
		rr := httptest.NewRecorder()
		NewListPropertyBookingsHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}
