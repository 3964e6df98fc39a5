package handlers

//go:generate mockgen -source=profile.go -destination=profile_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-property-booking/internal/booking"
	"github.com/sbilibin2017/gw-property-booking/internal/models"
)

// ProfileManager reads and updates the caller's own profile.
type ProfileManager interface {
	GetProfile(ctx context.Context, id booking.Identity) (*models.UserDB, error)
	UpdateProfile(ctx context.Context, id booking.Identity, name, password *string) (*models.UserDB, error)
}

// OwnerLister lists the registered owners.
type OwnerLister interface {
	ListOwners(ctx context.Context) ([]models.UserDB, error)
}

// VerifyResponse describes the identity carried by a valid token
// swagger:model VerifyResponse
type VerifyResponse struct {
	// Always true when the token is accepted
	Valid bool `json:"valid"`

	// User ID
	UserID uuid.UUID `json:"user_id"`

	// Email
	Email string `json:"email"`

	// guest or owner
	UserType string `json:"user_type"`
}

// UpdateProfileRequest changes the caller's name and/or password
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	// New display name
	Name *string `json:"name,omitempty"`

	// New password, at least 6 characters
	Password *string `json:"password,omitempty"`
}

// ProfileResponse wraps a user record
// swagger:model ProfileResponse
type ProfileResponse struct {
	User *models.UserDB `json:"user"`
}

// OwnersResponse lists owners
// swagger:model OwnersResponse
type OwnersResponse struct {
	Owners []models.UserDB `json:"owners"`
}

// NewVerifyHandler returns an HTTP handler that echoes the token identity.
// @Summary Verify token
// @Description Returns the identity carried by the bearer token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.VerifyResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /verify [get]
func NewVerifyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := identity(r)
		if id.Anonymous() {
			writeError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}
		writeJSON(w, http.StatusOK, VerifyResponse{
			Valid:    true,
			UserID:   id.UserID,
			Email:    id.Email,
			UserType: id.Role,
		})
	}
}

// NewLogoutHandler returns an HTTP handler for logout. Tokens are stateless,
// so the client discards its token.
// @Summary Logout
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.MessageResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /logout [post]
func NewLogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Logged out successfully"})
	}
}

// NewGetProfileHandler returns an HTTP handler for reading the caller's profile.
// @Summary Get profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.ProfileResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /profile [get]
func NewGetProfileHandler(svc ProfileManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := svc.GetProfile(r.Context(), identity(r))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, ProfileResponse{User: user})
	}
}

// NewUpdateProfileHandler returns an HTTP handler for updating the caller's profile.
// @Summary Update profile
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param updateProfileRequest body handlers.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} handlers.ProfileResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /profile [put]
func NewUpdateProfileHandler(svc ProfileManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateProfileRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		user, err := svc.UpdateProfile(r.Context(), identity(r), req.Name, req.Password)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, ProfileResponse{User: user})
	}
}

// NewListOwnersHandler returns an HTTP handler listing every owner.
// @Summary List owners
// @Tags owners
// @Produce json
// @Success 200 {object} handlers.OwnersResponse
// @Router /owners [get]
func NewListOwnersHandler(svc OwnerLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owners, err := svc.ListOwners(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, OwnersResponse{Owners: owners})
	}
}
