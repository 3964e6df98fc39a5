package services

//go:generate mockgen -source=favorite.go -destination=favorite_mock.go -package=services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-property-booking/internal/booking"
	"github.com/sbilibin2017/gw-property-booking/internal/models"
	"github.com/sbilibin2017/gw-property-booking/internal/repositories"
)

// FavoriteStore stores favorite (user, property) pairs.
type FavoriteStore interface {
	Find(ctx context.Context, userID, propertyID uuid.UUID) (*models.FavoriteDB, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.PropertyDB, error)
	Save(ctx context.Context, fav *models.FavoriteDB) error
	Delete(ctx context.Context, userID, propertyID uuid.UUID) (bool, error)
}

// FavoriteService manages the caller's favorite properties.
type FavoriteService struct {
	properties PropertyReader
	store      FavoriteStore
}

// NewFavoriteService creates a new FavoriteService.
func NewFavoriteService(properties PropertyReader, store FavoriteStore) *FavoriteService {
	return &FavoriteService{properties: properties, store: store}
}

// List returns the caller's favorite properties.
func (svc *FavoriteService) List(ctx context.Context, id booking.Identity) ([]models.PropertyDB, error) {
	if err := booking.Authorize(id, booking.ActionManageFavorites, booking.Resource{OwnerID: id.UserID}); err != nil {
		return nil, err
	}
	return svc.store.ListByUser(ctx, id.UserID)
}

// Add marks a property as a favorite of the caller.
func (svc *FavoriteService) Add(ctx context.Context, id booking.Identity, propertyID uuid.UUID) (*models.FavoriteDB, error) {
	if err := booking.Authorize(id, booking.ActionManageFavorites, booking.Resource{OwnerID: id.UserID}); err != nil {
		return nil, err
	}

	property, err := svc.properties.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}

	existing, err := svc.store.Find(ctx, id.UserID, propertyID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyFavorite
	}

	fav := &models.FavoriteDB{UserID: id.UserID, PropertyID: propertyID}
	if err := svc.store.Save(ctx, fav); err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			return nil, ErrAlreadyFavorite
		}
		return nil, err
	}
	return fav, nil
}

// Remove drops a property from the caller's favorites.
func (svc *FavoriteService) Remove(ctx context.Context, id booking.Identity, propertyID uuid.UUID) error {
	if err := booking.Authorize(id, booking.ActionManageFavorites, booking.Resource{OwnerID: id.UserID}); err != nil {
		return err
	}
	deleted, err := svc.store.Delete(ctx, id.UserID, propertyID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrFavoriteNotFound
	}
	return nil
}
