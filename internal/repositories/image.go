package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-property-booking/internal/models"
)

const imageColumns = `image_id, property_id, image_url, image_name, is_featured, upload_order, created_at`

// ImageReadRepository handles property image read operations
type ImageReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewImageReadRepository(db *sqlx.DB, txGetter TxGetter) *ImageReadRepository {
	return &ImageReadRepository{db: db, txGetter: txGetter}
}

// ListByProperty returns the images of a property in upload order.
func (r *ImageReadRepository) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]models.PropertyImageDB, error) {
	query := `SELECT ` + imageColumns + ` FROM property_images
		WHERE property_id = $1
		ORDER BY upload_order, created_at`

	images := []models.PropertyImageDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &images, query, propertyID)
	logQuery(ctx, query, []any{propertyID}, len(images), err)

	return images, err
}

// GetByID returns the image, or nil if there is none.
func (r *ImageReadRepository) GetByID(ctx context.Context, imageID uuid.UUID) (*models.PropertyImageDB, error) {
	query := `SELECT ` + imageColumns + ` FROM property_images WHERE image_id = $1`

	var img models.PropertyImageDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &img, query, imageID)
	logQuery(ctx, query, []any{imageID}, img.ImageID, err)

	if err = noRows(err); err != nil || img.ImageID == uuid.Nil {
		return nil, err
	}
	return &img, nil
}

// CountByProperty returns how many images a property has.
func (r *ImageReadRepository) CountByProperty(ctx context.Context, propertyID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM property_images WHERE property_id = $1`

	var count int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &count, query, propertyID)
	logQuery(ctx, query, []any{propertyID}, count, err)

	return count, err
}

// ImageWriteRepository handles property image write operations
type ImageWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewImageWriteRepository(db *sqlx.DB, txGetter TxGetter) *ImageWriteRepository {
	return &ImageWriteRepository{db: db, txGetter: txGetter}
}

// Save registers an image and fills in its id and creation time.
func (r *ImageWriteRepository) Save(ctx context.Context, img *models.PropertyImageDB) error {
	query := `
		INSERT INTO property_images (image_id, property_id, image_url, image_name, is_featured, upload_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at
	`
	if img.ImageID == uuid.Nil {
		img.ImageID = uuid.New()
	}
	args := []any{img.ImageID, img.PropertyID, img.ImageURL, img.ImageName, img.IsFeatured, img.UploadOrder}

	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), img, query, args...)
	logQuery(ctx, query, args, img.ImageID, err)

	return classify(err)
}

// Delete removes an image record.
func (r *ImageWriteRepository) Delete(ctx context.Context, imageID uuid.UUID) error {
	query := `DELETE FROM property_images WHERE image_id = $1`

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, imageID)
	logQuery(ctx, query, []any{imageID}, nil, err)

	return err
}
