package repositories

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-property-booking/internal/booking"
	"github.com/sbilibin2017/gw-property-booking/internal/models"
)

const propertyColumns = `property_id, owner_id, name, description, location, price_per_night, max_guests, amenities, created_at, updated_at`

// PropertyReadRepository handles property read operations
type PropertyReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewPropertyReadRepository(db *sqlx.DB, txGetter TxGetter) *PropertyReadRepository {
	return &PropertyReadRepository{db: db, txGetter: txGetter}
}

// List returns the whole catalog, oldest first.
func (r *PropertyReadRepository) List(ctx context.Context) ([]models.PropertyDB, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties ORDER BY created_at, property_id`

	properties := []models.PropertyDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &properties, query)
	logQuery(ctx, query, nil, len(properties), err)

	return properties, err
}

// GetByID returns the property, or nil if there is none.
func (r *PropertyReadRepository) GetByID(ctx context.Context, propertyID uuid.UUID) (*models.PropertyDB, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE property_id = $1`

	var property models.PropertyDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &property, query, propertyID)
	logQuery(ctx, query, []any{propertyID}, property.PropertyID, err)

	if err = noRows(err); err != nil || property.PropertyID == uuid.Nil {
		return nil, err
	}
	return &property, nil
}

// ListByOwner returns the properties owned by the given user.
func (r *PropertyReadRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.PropertyDB, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE owner_id = $1 ORDER BY created_at, property_id`

	properties := []models.PropertyDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &properties, query, ownerID)
	logQuery(ctx, query, []any{ownerID}, len(properties), err)

	return properties, err
}

// ListAvailable returns the properties with no confirmed booking overlapping
// the half-open range. The overlap test is evaluated per property as an
// existence check.
func (r *PropertyReadRepository) ListAvailable(ctx context.Context, stay booking.DateRange) ([]models.PropertyDB, error) {
	query := `
		SELECT ` + propertyColumns + `
		FROM properties p
		WHERE NOT EXISTS (
			SELECT 1 FROM bookings b
			WHERE b.property_id = p.property_id
			  AND b.status = 'confirmed'
			  AND NOT (b.check_out_date <= $1::date OR b.check_in_date >= $2::date)
		)
		ORDER BY p.created_at, p.property_id
	`
	args := []any{stay.CheckIn.Format(booking.DateLayout), stay.CheckOut.Format(booking.DateLayout)}

	properties := []models.PropertyDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &properties, query, args...)
	logQuery(ctx, query, args, len(properties), err)

	return properties, err
}

// PropertyWriteRepository handles property write operations
type PropertyWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewPropertyWriteRepository(db *sqlx.DB, txGetter TxGetter) *PropertyWriteRepository {
	return &PropertyWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new property and fills in its id and timestamps.
func (r *PropertyWriteRepository) Save(ctx context.Context, p *models.PropertyDB) error {
	query := `
		INSERT INTO properties (property_id, owner_id, name, description, location, price_per_night, max_guests, amenities, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	if p.PropertyID == uuid.Nil {
		p.PropertyID = uuid.New()
	}
	args := []any{p.PropertyID, p.OwnerID, p.Name, p.Description, p.Location, p.PricePerNight, p.MaxGuests, p.Amenities}

	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), p, query, args...)
	logQuery(ctx, query, args, p.PropertyID, err)

	return classify(err)
}

// Update applies the non-nil fields of upd and returns the stored row, or nil
// if the property does not exist.
func (r *PropertyWriteRepository) Update(ctx context.Context, propertyID uuid.UUID, upd models.PropertyUpdate) (*models.PropertyDB, error) {
	record := goqu.Record{"updated_at": goqu.L("NOW()")}
	if upd.Name != nil {
		record["name"] = *upd.Name
	}
	if upd.Description != nil {
		record["description"] = *upd.Description
	}
	if upd.Location != nil {
		record["location"] = *upd.Location
	}
	if upd.PricePerNight != nil {
		record["price_per_night"] = *upd.PricePerNight
	}
	if upd.MaxGuests != nil {
		record["max_guests"] = *upd.MaxGuests
	}
	if upd.Amenities != nil {
		record["amenities"] = *upd.Amenities
	}

	query, args, err := dialect.Update("properties").Prepared(true).
		Set(record).
		Where(goqu.Ex{"property_id": propertyID}).
		Returning(goqu.Star()).
		ToSQL()
	if err != nil {
		return nil, err
	}

	var property models.PropertyDB
	err = sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &property, query, args...)
	logQuery(ctx, query, args, property.PropertyID, err)

	if err = noRows(err); err != nil || property.PropertyID == uuid.Nil {
		return nil, err
	}
	return &property, nil
}

// Delete removes the property; bookings, images and favorites go with it
// through ON DELETE CASCADE.
func (r *PropertyWriteRepository) Delete(ctx context.Context, propertyID uuid.UUID) error {
	query := `DELETE FROM properties WHERE property_id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, propertyID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(ctx, query, []any{propertyID}, rowsAffected, err)

	return err
}

// LockByID takes a row lock on the property for the rest of the request
// transaction. Booking creation holds it across the availability check and
// the insert so concurrent bookings of one property are serialized.
func (r *PropertyWriteRepository) LockByID(ctx context.Context, propertyID uuid.UUID) error {
	if r.txGetter == nil || r.txGetter(ctx) == nil {
		return ErrNoTx
	}
	query := `SELECT property_id FROM properties WHERE property_id = $1 FOR UPDATE`

	var locked uuid.UUID
	err := sqlx.GetContext(ctx, r.txGetter(ctx), &locked, query, propertyID)
	logQuery(ctx, query, []any{propertyID}, locked, err)

	return noRows(err)
}
