package services

//go:generate mockgen -source=property.go -destination=property_mock.go -package=services

import (
	"context"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-property-booking/internal/booking"
	"github.com/sbilibin2017/gw-property-booking/internal/logger"
	"github.com/sbilibin2017/gw-property-booking/internal/models"
)

// PropertyReader defines read operations for properties.
type PropertyReader interface {
	List(ctx context.Context) ([]models.PropertyDB, error)
	GetByID(ctx context.Context, propertyID uuid.UUID) (*models.PropertyDB, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.PropertyDB, error)
	ListAvailable(ctx context.Context, stay booking.DateRange) ([]models.PropertyDB, error)
}

// PropertyWriter defines write operations for properties.
type PropertyWriter interface {
	Save(ctx context.Context, p *models.PropertyDB) error
	Update(ctx context.Context, propertyID uuid.UUID, upd models.PropertyUpdate) (*models.PropertyDB, error)
	Delete(ctx context.Context, propertyID uuid.UUID) error
}

// PropertyCache caches property details.
type PropertyCache interface {
	Get(ctx context.Context, propertyID uuid.UUID) (*models.PropertyDB, error)
	Set(ctx context.Context, property *models.PropertyDB) error
	Delete(ctx context.Context, propertyID uuid.UUID) error
}

// PropertyInput holds the fields of a new property.
type PropertyInput struct {
	Name          string
	Description   string
	Location      string
	PricePerNight float64
	MaxGuests     int
	Amenities     string
}

// PropertyService manages the property catalog.
type PropertyService struct {
	reader PropertyReader
	writer PropertyWriter
	cache  PropertyCache
}

// NewPropertyService creates a new PropertyService. cache may be nil.
func NewPropertyService(reader PropertyReader, writer PropertyWriter, cache PropertyCache) *PropertyService {
	return &PropertyService{
		reader: reader,
		writer: writer,
		cache:  cache,
	}
}

func validPrice(p float64) bool {
	return p > 0 && !math.IsInf(p, 0) && !math.IsNaN(p)
}

// List returns the whole catalog.
func (svc *PropertyService) List(ctx context.Context) ([]models.PropertyDB, error) {
	return svc.reader.List(ctx)
}

// Get returns a property, reading through the cache.
func (svc *PropertyService) Get(ctx context.Context, propertyID uuid.UUID) (*models.PropertyDB, error) {
	log := logger.FromContext(ctx)

	if svc.cache != nil {
		cached, err := svc.cache.Get(ctx, propertyID)
		if err != nil {
			log.Errorw("property cache read failed", "property_id", propertyID, "err", err)
		}
		if cached != nil {
			return cached, nil
		}
	}

	property, err := svc.reader.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, property); err != nil {
			log.Errorw("property cache write failed", "property_id", propertyID, "err", err)
		}
	}
	return property, nil
}

// Create lists a new property owned by the caller. Only owners may list properties.
func (svc *PropertyService) Create(ctx context.Context, id booking.Identity, in PropertyInput) (*models.PropertyDB, error) {
	if err := booking.Authorize(id, booking.ActionCreateProperty, booking.Resource{OwnerID: id.UserID}); err != nil {
		return nil, err
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Location = strings.TrimSpace(in.Location)
	if in.MaxGuests == 0 {
		in.MaxGuests = 1
	}
	if in.Name == "" {
		return nil, ErrInvalidTitle
	}
	if in.Location == "" {
		return nil, ErrInvalidLocation
	}
	if !validPrice(in.PricePerNight) {
		return nil, ErrInvalidPrice
	}
	if in.MaxGuests < 0 {
		return nil, ErrInvalidMaxGuests
	}

	property := &models.PropertyDB{
		OwnerID:       id.UserID,
		Name:          in.Name,
		Description:   in.Description,
		Location:      in.Location,
		PricePerNight: in.PricePerNight,
		MaxGuests:     in.MaxGuests,
		Amenities:     in.Amenities,
	}
	if err := svc.writer.Save(ctx, property); err != nil {
		logger.FromContext(ctx).Errorw("failed to save property", "err", err)
		return nil, err
	}
	return property, nil
}

func validateUpdate(upd *models.PropertyUpdate) error {
	if upd.Empty() {
		return ErrEmptyUpdate
	}
	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return ErrInvalidTitle
		}
		upd.Name = &name
	}
	if upd.Location != nil {
		location := strings.TrimSpace(*upd.Location)
		if location == "" {
			return ErrInvalidLocation
		}
		upd.Location = &location
	}
	if upd.PricePerNight != nil && !validPrice(*upd.PricePerNight) {
		return ErrInvalidPrice
	}
	if upd.MaxGuests != nil && *upd.MaxGuests <= 0 {
		return ErrInvalidMaxGuests
	}
	return nil
}

// Update applies a partial update to a property owned by the caller.
func (svc *PropertyService) Update(ctx context.Context, id booking.Identity, propertyID uuid.UUID, upd models.PropertyUpdate) (*models.PropertyDB, error) {
	property, err := svc.reader.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}
	if err := booking.Authorize(id, booking.ActionUpdateProperty, booking.Resource{OwnerID: property.OwnerID}); err != nil {
		return nil, err
	}
	if err := validateUpdate(&upd); err != nil {
		return nil, err
	}

	updated, err := svc.writer.Update(ctx, propertyID, upd)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to update property", "property_id", propertyID, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrPropertyNotFound
	}
	svc.evict(ctx, propertyID)
	return updated, nil
}

// Delete removes a property owned by the caller together with its bookings,
// images and favorites.
func (svc *PropertyService) Delete(ctx context.Context, id booking.Identity, propertyID uuid.UUID) error {
	property, err := svc.reader.GetByID(ctx, propertyID)
	if err != nil {
		return err
	}
	if property == nil {
		return ErrPropertyNotFound
	}
	if err := booking.Authorize(id, booking.ActionDeleteProperty, booking.Resource{OwnerID: property.OwnerID}); err != nil {
		return err
	}

	if err := svc.writer.Delete(ctx, propertyID); err != nil {
		logger.FromContext(ctx).Errorw("failed to delete property", "property_id", propertyID, "err", err)
		return err
	}
	svc.evict(ctx, propertyID)
	return nil
}

// ListByOwner returns the properties of ownerID. Callers may only list their own.
func (svc *PropertyService) ListByOwner(ctx context.Context, id booking.Identity, ownerID uuid.UUID) ([]models.PropertyDB, error) {
	if err := booking.Authorize(id, booking.ActionListOwnerProperties, booking.Resource{OwnerID: ownerID}); err != nil {
		return nil, err
	}
	return svc.reader.ListByOwner(ctx, ownerID)
}

// ListAvailable returns the properties free for the whole stay.
func (svc *PropertyService) ListAvailable(ctx context.Context, stay booking.DateRange) ([]models.PropertyDB, error) {
	return svc.reader.ListAvailable(ctx, stay)
}

func (svc *PropertyService) evict(ctx context.Context, propertyID uuid.UUID) {
	if svc.cache == nil {
		return
	}
	if err := svc.cache.Delete(ctx, propertyID); err != nil {
		logger.FromContext(ctx).Errorw("property cache eviction failed", "property_id", propertyID, "err", err)
	}
}
