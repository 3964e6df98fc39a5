package repositories

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-property-booking/internal/booking"
	"github.com/sbilibin2017/gw-property-booking/internal/models"
)

var bookingColumns = []any{
	"booking_id", "property_id", "guest_name", "guest_email",
	"check_in_date", "check_out_date", "total_price", "status",
	"created_at", "updated_at",
}

const bookingSelect = `SELECT b.booking_id, b.property_id, b.guest_name, b.guest_email,
	b.check_in_date, b.check_out_date, b.total_price, b.status, b.created_at, b.updated_at
	FROM bookings b`

// BookingReadRepository handles booking read operations
type BookingReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewBookingReadRepository(db *sqlx.DB, txGetter TxGetter) *BookingReadRepository {
	return &BookingReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the booking, or nil if there is none.
func (r *BookingReadRepository) GetByID(ctx context.Context, bookingID uuid.UUID) (*models.BookingDB, error) {
	query := bookingSelect + ` WHERE b.booking_id = $1`

	var b models.BookingDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &b, query, bookingID)
	logQuery(ctx, query, []any{bookingID}, b.BookingID, err)

	if err = noRows(err); err != nil || b.BookingID == uuid.Nil {
		return nil, err
	}
	return &b, nil
}

// ListByProperty returns the bookings of a property ordered by check-in.
// A non-nil status restricts the result to that status.
func (r *BookingReadRepository) ListByProperty(ctx context.Context, propertyID uuid.UUID, status *string) ([]models.BookingDB, error) {
	where := goqu.Ex{"property_id": propertyID}
	if status != nil {
		where["status"] = *status
	}
	query, args, err := dialect.From("bookings").Prepared(true).
		Select(bookingColumns...).
		Where(where).
		Order(goqu.C("check_in_date").Asc(), goqu.C("booking_id").Asc()).
		ToSQL()
	if err != nil {
		return nil, err
	}

	bookings := []models.BookingDB{}
	err = sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &bookings, query, args...)
	logQuery(ctx, query, args, len(bookings), err)

	return bookings, err
}

// ConfirmedRanges returns the stay ranges of the confirmed bookings of a property.
func (r *BookingReadRepository) ConfirmedRanges(ctx context.Context, propertyID uuid.UUID) ([]booking.DateRange, error) {
	status := models.BookingConfirmed
	bookings, err := r.ListByProperty(ctx, propertyID, &status)
	if err != nil {
		return nil, err
	}
	ranges := make([]booking.DateRange, 0, len(bookings))
	for _, b := range bookings {
		ranges = append(ranges, booking.DateRange{CheckIn: b.CheckInDate, CheckOut: b.CheckOutDate})
	}
	return ranges, nil
}

// ListByGuestEmail returns the bookings made under the given email, newest first.
func (r *BookingReadRepository) ListByGuestEmail(ctx context.Context, email string) ([]models.BookingDB, error) {
	query := bookingSelect + ` WHERE b.guest_email = $1 ORDER BY b.created_at DESC, b.booking_id`

	bookings := []models.BookingDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &bookings, query, email)
	logQuery(ctx, query, []any{email}, len(bookings), err)

	return bookings, err
}

// ListByOwner returns the bookings of every property owned by the given user, newest first.
func (r *BookingReadRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.BookingDB, error) {
	query := bookingSelect + `
		JOIN properties p ON p.property_id = b.property_id
		WHERE p.owner_id = $1
		ORDER BY b.created_at DESC, b.booking_id`

	bookings := []models.BookingDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &bookings, query, ownerID)
	logQuery(ctx, query, []any{ownerID}, len(bookings), err)

	return bookings, err
}

// BookingWriteRepository handles booking write operations
type BookingWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewBookingWriteRepository(db *sqlx.DB, txGetter TxGetter) *BookingWriteRepository {
	return &BookingWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a booking and fills in its id and timestamps.
// An overlapping confirmed booking yields ErrExclusionViolation.
func (r *BookingWriteRepository) Save(ctx context.Context, b *models.BookingDB) error {
	query := `
		INSERT INTO bookings (booking_id, property_id, guest_name, guest_email, check_in_date, check_out_date, total_price, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5::date, $6::date, $7, $8, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	if b.BookingID == uuid.Nil {
		b.BookingID = uuid.New()
	}
	args := []any{
		b.BookingID, b.PropertyID, b.GuestName, b.GuestEmail,
		b.CheckInDate.Format(booking.DateLayout), b.CheckOutDate.Format(booking.DateLayout),
		b.TotalPrice, b.Status,
	}

	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), b, query, args...)
	logQuery(ctx, query, args, b.BookingID, err)

	return classify(err)
}

// UpdateStatus sets the status of a booking and returns the stored row, or nil
// if the booking does not exist.
func (r *BookingWriteRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status string) (*models.BookingDB, error) {
	query := `
		UPDATE bookings SET status = $2, updated_at = NOW()
		WHERE booking_id = $1
		RETURNING booking_id, property_id, guest_name, guest_email, check_in_date, check_out_date, total_price, status, created_at, updated_at
	`

	var b models.BookingDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &b, query, bookingID, status)
	logQuery(ctx, query, []any{bookingID, status}, b.BookingID, err)

	if err = noRows(err); err != nil || b.BookingID == uuid.Nil {
		return nil, classify(err)
	}
	return &b, nil
}
