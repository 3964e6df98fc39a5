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

	"github.com/sbilibin2017/gw-property-booking/internal/models"
	"github.com/sbilibin2017/gw-property-booking/internal/services"
)

func TestListFavoritesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockFavoriteManager(ctrl)
	mockSvc.EXPECT().List(gomock.Any(), guestIdentity).Return([]models.PropertyDB{*sampleProperty()}, nil)

	rr := httptest.NewRecorder()
	NewListFavoritesHandler(mockSvc)(rr, withIdentity(httptest.NewRequest(http.MethodGet, "/", nil), guestIdentity))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp FavoritesResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Favorites, 1)
	assert.Equal(t, propertyID, resp.Favorites[0].PropertyID)
}

func TestAddFavoriteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockFavoriteManager(ctrl)
	body := `{"property_id":"` + propertyID.String() + `"}`

	tests := []struct {
		name         string
		body         string
		mockSetup    func()
		expectedCode int
	}{
		{
			name: "added",
			body: body,
			mockSetup: func() {
				mockSvc.EXPECT().Add(gomock.Any(), guestIdentity, propertyID).
					Return(&models.FavoriteDB{FavoriteID: uuid.New(), UserID: guestID, PropertyID: propertyID}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "duplicate",
			body: body,
			mockSetup: func() {
				mockSvc.EXPECT().Add(gomock.Any(), guestIdentity, propertyID).Return(nil, services.ErrAlreadyFavorite)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "unknown property",
			body: body,
			mockSetup: func() {
				mockSvc.EXPECT().Add(gomock.Any(), guestIdentity, propertyID).Return(nil, services.ErrPropertyNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "malformed property id",
			body:         `{"property_id":"abc"}`,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			req := withIdentity(httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body)), guestIdentity)
			rr := httptest.NewRecorder()
			NewAddFavoriteHandler(mockSvc)(rr, req)
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestRemoveFavoriteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockFavoriteManager(ctrl)

	t.Run("removed", func(t *testing.T) {
		mockSvc.EXPECT().Remove(gomock.Any(), guestIdentity, propertyID).Return(nil)

		req := withURLParams(withIdentity(httptest.NewRequest(http.MethodDelete, "/", nil), guestIdentity), "propertyID", propertyID.String())
		rr := httptest.NewRecorder()
		NewRemoveFavoriteHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("not a favorite", func(t *testing.T) {
		mockSvc.EXPECT().Remove(gomock.Any(), guestIdentity, propertyID).Return(services.ErrFavoriteNotFound)

		req := withURLParams(withIdentity(httptest.NewRequest(http.MethodDelete, "/", nil), guestIdentity), "propertyID", propertyID.String())
		rr := httptest.NewRecorder()
		NewRemoveFavoriteHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
