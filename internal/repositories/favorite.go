package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-property-booking/internal/models"
)

// FavoriteRepository stores the (user, property) favorite pairs
type FavoriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewFavoriteRepository(db *sqlx.DB, txGetter TxGetter) *FavoriteRepository {
	return &FavoriteRepository{db: db, txGetter: txGetter}
}

// Find returns the favorite pair, or nil if the user has not favorited the property.
func (r *FavoriteRepository) Find(ctx context.Context, userID, propertyID uuid.UUID) (*models.FavoriteDB, error) {
	query := `SELECT favorite_id, user_id, property_id, created_at FROM favorites WHERE user_id = $1 AND property_id = $2`

	var fav models.FavoriteDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &fav, query, userID, propertyID)
	logQuery(ctx, query, []any{userID, propertyID}, fav.FavoriteID, err)

	if err = noRows(err); err != nil || fav.FavoriteID == uuid.Nil {
		return nil, err
	}
	return &fav, nil
}

// ListByUser returns the properties the user has favorited, most recent first.
func (r *FavoriteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.PropertyDB, error) {
	query := `
		SELECT p.property_id, p.owner_id, p.name, p.description, p.location, p.price_per_night,
		       p.max_guests, p.amenities, p.created_at, p.updated_at
		FROM favorites f
		JOIN properties p ON p.property_id = f.property_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC, f.favorite_id
	`

	properties := []models.PropertyDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &properties, query, userID)
	logQuery(ctx, query, []any{userID}, len(properties), err)

	return properties, err
}

// Save inserts a favorite pair. A duplicate pair yields ErrUniqueViolation.
func (r *FavoriteRepository) Save(ctx context.Context, fav *models.FavoriteDB) error {
	query := `
		INSERT INTO favorites (favorite_id, user_id, property_id, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING created_at
	`
	if fav.FavoriteID == uuid.Nil {
		fav.FavoriteID = uuid.New()
	}
	args := []any{fav.FavoriteID, fav.UserID, fav.PropertyID}

	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), fav, query, args...)
	logQuery(ctx, query, args, fav.FavoriteID, err)

	return classify(err)
}

// Delete removes the pair and reports whether it existed.
func (r *FavoriteRepository) Delete(ctx context.Context, userID, propertyID uuid.UUID) (bool, error) {
	query := `DELETE FROM favorites WHERE user_id = $1 AND property_id = $2`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, userID, propertyID)
	var n int64
	if err == nil {
		n, err = res.RowsAffected()
	}
	logQuery(ctx, query, []any{userID, propertyID}, n, err)

	return n > 0, err
}
