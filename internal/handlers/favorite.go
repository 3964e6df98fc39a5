package handlers

//go:generate mockgen -source=favorite.go -destination=favorite_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-property-booking/internal/booking"
	"github.com/sbilibin2017/gw-property-booking/internal/models"
)

// FavoriteManager defines the favorites operations used by the favorite handlers.
type FavoriteManager interface {
	List(ctx context.Context, id booking.Identity) ([]models.PropertyDB, error)
	Add(ctx context.Context, id booking.Identity, propertyID uuid.UUID) (*models.FavoriteDB, error)
	Remove(ctx context.Context, id booking.Identity, propertyID uuid.UUID) error
}

// FavoriteRequest marks a property as favorite
// swagger:model FavoriteRequest
type FavoriteRequest struct {
	// required: true
	PropertyID uuid.UUID `json:"property_id"`
}

// FavoriteResponse wraps a favorite pair
// swagger:model FavoriteResponse
type FavoriteResponse struct {
	Favorite *models.FavoriteDB `json:"favorite"`
}

// FavoritesResponse lists favorited properties
// swagger:model FavoritesResponse
type FavoritesResponse struct {
	Favorites []models.PropertyDB `json:"favorites"`
}

// NewListFavoritesHandler returns an HTTP handler listing the caller's favorites.
// @Summary List favorites
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.FavoritesResponse
// @Router /user/favorites [get]
func NewListFavoritesHandler(svc FavoriteManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		properties, err := svc.List(r.Context(), identity(r))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, FavoritesResponse{Favorites: properties})
	}
}

// NewAddFavoriteHandler returns an HTTP handler adding a favorite.
// @Summary Add favorite
// @Tags favorites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param favoriteRequest body handlers.FavoriteRequest true "Property"
// @Success 201 {object} handlers.FavoriteResponse
// @Failure 404 {object} handlers.ErrorResponse "Property not found"
// @Failure 409 {object} handlers.ErrorResponse "Already a favorite"
// @Router /user/favorites [post]
func NewAddFavoriteHandler(svc FavoriteManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FavoriteRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}
		fav, err := svc.Add(r.Context(), identity(r), req.PropertyID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, FavoriteResponse{Favorite: fav})
	}
}

// NewRemoveFavoriteHandler returns an HTTP handler removing a favorite.
// @Summary Remove favorite
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param propertyID path string true "Property ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.ErrorResponse "Favorite not found"
// @Router /user/favorites/{propertyID} [delete]
func NewRemoveFavoriteHandler(svc FavoriteManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		propertyID, ok := uuidParam(r, "propertyID")
		if !ok {
			writeError(w, http.StatusBadRequest, msgInvalidID)
			return
		}
		if err := svc.Remove(r.Context(), identity(r), propertyID); err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Favorite removed successfully"})
	}
}
