package services

//go:generate mockgen -source=image.go -destination=image_mock.go -package=services

import (
	"context"
	"net/url"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-property-booking/internal/booking"
	"github.com/sbilibin2017/gw-property-booking/internal/logger"
	"github.com/sbilibin2017/gw-property-booking/internal/models"
)

// ImageReader defines read operations for property images.
type ImageReader interface {
	ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]models.PropertyImageDB, error)
	GetByID(ctx context.Context, imageID uuid.UUID) (*models.PropertyImageDB, error)
	CountByProperty(ctx context.Context, propertyID uuid.UUID) (int, error)
}

// ImageWriter defines write operations for property images.
type ImageWriter interface {
	Save(ctx context.Context, img *models.PropertyImageDB) error
	Delete(ctx context.Context, imageID uuid.UUID) error
}

// ImageInput describes an image to register. Nil optional fields take defaults:
// the first image of a property is featured and images are appended in order.
type ImageInput struct {
	URL         string
	Name        string
	IsFeatured  *bool
	UploadOrder *int
}

// ImageService registers images for properties. Images are stored as URLs only.
type ImageService struct {
	properties PropertyReader
	reader     ImageReader
	writer     ImageWriter
}

// NewImageService creates a new ImageService.
func NewImageService(properties PropertyReader, reader ImageReader, writer ImageWriter) *ImageService {
	return &ImageService{
		properties: properties,
		reader:     reader,
		writer:     writer,
	}
}

func (svc *ImageService) property(ctx context.Context, propertyID uuid.UUID) (*models.PropertyDB, error) {
	property, err := svc.properties.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}
	return property, nil
}

// List returns the images of a property in upload order.
func (svc *ImageService) List(ctx context.Context, propertyID uuid.UUID) ([]models.PropertyImageDB, error) {
	if _, err := svc.property(ctx, propertyID); err != nil {
		return nil, err
	}
	return svc.reader.ListByProperty(ctx, propertyID)
}

func parseImageURL(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, ErrInvalidImageURL
	}
	return u, nil
}

// Add registers an image for a property owned by the caller.
func (svc *ImageService) Add(ctx context.Context, id booking.Identity, propertyID uuid.UUID, in ImageInput) (*models.PropertyImageDB, error) {
	property, err := svc.property(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if err := booking.Authorize(id, booking.ActionManageImages, booking.Resource{OwnerID: property.OwnerID}); err != nil {
		return nil, err
	}

	u, err := parseImageURL(in.URL)
	if err != nil {
		return nil, err
	}
	if in.UploadOrder != nil && *in.UploadOrder < 0 {
		return nil, ErrInvalidUploadOrder
	}

	count, err := svc.reader.CountByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	img := &models.PropertyImageDB{
		PropertyID:  propertyID,
		ImageURL:    u.String(),
		ImageName:   strings.TrimSpace(in.Name),
		IsFeatured:  count == 0,
		UploadOrder: count,
	}
	if img.ImageName == "" {
		img.ImageName = path.Base(u.Path)
	}
	if in.IsFeatured != nil {
		img.IsFeatured = *in.IsFeatured
	}
	if in.UploadOrder != nil {
		img.UploadOrder = *in.UploadOrder
	}

	if err := svc.writer.Save(ctx, img); err != nil {
		logger.FromContext(ctx).Errorw("failed to save image", "property_id", propertyID, "err", err)
		return nil, err
	}
	return img, nil
}

// Delete removes an image of a property owned by the caller.
func (svc *ImageService) Delete(ctx context.Context, id booking.Identity, imageID uuid.UUID) error {
	img, err := svc.reader.GetByID(ctx, imageID)
	if err != nil {
		return err
	}
	if img == nil {
		return ErrImageNotFound
	}
	property, err := svc.property(ctx, img.PropertyID)
	if err != nil {
		return err
	}
	if err := booking.Authorize(id, booking.ActionManageImages, booking.Resource{OwnerID: property.OwnerID}); err != nil {
		return err
	}

	if err := svc.writer.Delete(ctx, imageID); err != nil {
		logger.FromContext(ctx).Errorw("failed to delete image", "image_id", imageID, "err", err)
		return err
	}
	return nil
}
