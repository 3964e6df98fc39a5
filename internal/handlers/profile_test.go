package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-property-booking/internal/models"
	"github.com/sbilibin2017/gw-property-booking/internal/services"
)

func TestVerifyHandler(t *testing.T) {
	t.Run("authenticated", func(t *testing.T) {
		req := withIdentity(httptest.NewRequest(http.MethodGet, "/api/verify", nil), ownerIdentity)
		rr := httptest.NewRecorder()
		NewVerifyHandler()(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp VerifyResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Valid)
		assert.Equal(t, ownerID, resp.UserID)
		assert.Equal(t, "owner", resp.UserType)
	})

	t.Run("anonymous", func(t *testing.T) {
		rr := httptest.NewRecorder()
		NewVerifyHandler()(rr, httptest.NewRequest(http.MethodGet, "/api/verify", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestLogoutHandler(t *testing.T) {
	req := withIdentity(httptest.NewRequest(http.MethodPost, "/api/logout", nil), guestIdentity)
	rr := httptest.NewRecorder()
	NewLogoutHandler()(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Logged out successfully"}`, rr.Body.String())
}

func TestGetProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProfileManager(ctrl)

	t.Run("success", func(t *testing.T) {
		user := &models.UserDB{UserID: guestID, Email: "guest@example.com", Name: "Gina", Role: "guest"}
		mockSvc.EXPECT().GetProfile(gomock.Any(), guestIdentity).Return(user, nil)

		req := withIdentity(httptest.NewRequest(http.MethodGet, "/api/profile", nil), guestIdentity)
		rr := httptest.NewRecorder()
		NewGetProfileHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp ProfileResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Gina", resp.User.Name)
	})

	t.Run("deleted user", func(t *testing.T) {
		mockSvc.EXPECT().GetProfile(gomock.Any(), guestIdentity).Return(nil, services.ErrUserNotFound)

		req := withIdentity(httptest.NewRequest(http.MethodGet, "/api/profile", nil), guestIdentity)
		rr := httptest.NewRecorder()
		NewGetProfileHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestUpdateProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProfileManager(ctrl)

	tests := []struct {
		name         string
		body         string
		mockSetup    func()
		expectedCode int
	}{
		{
			name: "rename",
			body: `{"name":"Gina B"}`,
			mockSetup: func() {
				mockSvc.EXPECT().
					UpdateProfile(gomock.Any(), guestIdentity, gomock.Any(), nil).
					DoAndReturn(func(_, _ interface{}, name, _ *string) (*models.UserDB, error) {
						return &models.UserDB{UserID: guestID, Name: *name, Role: "guest"}, nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "short password",
			body: `{"password":"123"}`,
			mockSetup: func() {
				mockSvc.EXPECT().
					UpdateProfile(gomock.Any(), guestIdentity, nil, gomock.Any()).
					Return(nil, services.ErrInvalidPassword)
			},
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

			req := withIdentity(httptest.NewRequest(http.MethodPut, "/api/profile", bytes.NewBufferString(tt.body)), guestIdentity)
			rr := httptest.NewRecorder()
			NewUpdateProfileHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestListOwnersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockOwnerLister(ctrl)
	mockSvc.EXPECT().ListOwners(gomock.Any()).Return([]models.UserDB{
		{UserID: ownerID, Name: "Olga", Role: "owner", PasswordHash: "hash"},
	}, nil)

	rr := httptest.NewRecorder()
	NewListOwnersHandler(mockSvc)(rr, httptest.NewRequest(http.MethodGet, "/api/owners", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp OwnersResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Owners, 1)
	assert.Equal(t, "Olga", resp.Owners[0].Name)
	assert.NotContains(t, rr.Body.String(), "hash")
}
