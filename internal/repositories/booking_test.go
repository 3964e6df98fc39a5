package repositories

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-property-booking/internal/booking"
	"github.com/sbilibin2017/gw-property-booking/internal/models"
)

func newBooking(t *testing.T, propertyID uuid.UUID, email, in, out string) *models.BookingDB {
	t.Helper()
	return &models.BookingDB{
		PropertyID:   propertyID,
		GuestName:    "Guest",
		GuestEmail:   email,
		CheckInDate:  mustDate(t, in),
		CheckOutDate: mustDate(t, out),
		TotalPrice:   100,
		Status:       models.BookingConfirmed,
	}
}

func TestBookingWriteRepository_Save(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	owner := insertUser(t, db, "owner@example.com", "owner")
	p := insertProperty(t, db, owner.UserID, "Cabin", 100)
	repo := NewBookingWriteRepository(db, nil)

	first := newBooking(t, p.PropertyID, "a@example.com", "2024-06-10", "2024-06-15")
	require.NoError(t, repo.Save(ctx, first))
	assert.NotEqual(t, uuid.Nil, first.BookingID)

	t.Run("overlap is rejected", func(t *testing.T) {
		err := repo.Save(ctx, newBooking(t, p.PropertyID, "b@example.com", "2024-06-12", "2024-06-20"))
		assert.ErrorIs(t, err, ErrExclusionViolation)
	})

	t.Run("back to back is allowed", func(t *testing.T) {
		assert.NoError(t, repo.Save(ctx, newBooking(t, p.PropertyID, "b@example.com", "2024-06-15", "2024-06-18")))
		assert.NoError(t, repo.Save(ctx, newBooking(t, p.PropertyID, "c@example.com", "2024-06-05", "2024-06-10")))
	})

	t.Run("cancelled booking frees the dates", func(t *testing.T) {
		cancelled, err := repo.UpdateStatus(ctx, first.BookingID, models.BookingCancelled)
		require.NoError(t, err)
		require.NotNil(t, cancelled)
		assert.Equal(t, models.BookingCancelled, cancelled.Status)

		assert.NoError(t, repo.Save(ctx, newBooking(t, p.PropertyID, "d@example.com", "2024-06-11", "2024-06-14")))
	})

	t.Run("UpdateStatus missing", func(t *testing.T) {
		b, err := repo.UpdateStatus(ctx, uuid.New(), models.BookingCancelled)
		assert.NoError(t, err)
		assert.Nil(t, b)
	})
}

func TestBookingWriteRepository_SaveConcurrency(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	owner := insertUser(t, db, "owner@example.com", "owner")
	p := insertProperty(t, db, owner.UserID, "Contended", 100)
	repo := NewBookingWriteRepository(db, nil)

	const numGoroutines = 20
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	template := newBooking(t, p.PropertyID, "race@example.com", "2024-07-01", "2024-07-05")
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			b := *template
			err := repo.Save(ctx, &b)
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
}

func TestBookingReadRepository(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	owner := insertUser(t, db, "owner@example.com", "owner")
	otherOwner := insertUser(t, db, "other@example.com", "owner")
	p := insertProperty(t, db, owner.UserID, "Cabin", 100)
	q := insertProperty(t, db, otherOwner.UserID, "Loft", 100)

	writeRepo := NewBookingWriteRepository(db, nil)
	b1 := newBooking(t, p.PropertyID, "guest@example.com", "2024-06-10", "2024-06-12")
	b2 := newBooking(t, p.PropertyID, "guest@example.com", "2024-06-01", "2024-06-03")
	b3 := newBooking(t, q.PropertyID, "someone@example.com", "2024-06-01", "2024-06-03")
	for _, b := range []*models.BookingDB{b1, b2, b3} {
		require.NoError(t, writeRepo.Save(ctx, b))
	}
	_, err := writeRepo.UpdateStatus(ctx, b2.BookingID, models.BookingCancelled)
	require.NoError(t, err)

	repo := NewBookingReadRepository(db, nil)

	t.Run("GetByID", func(t *testing.T) {
		got, err := repo.GetByID(ctx, b1.BookingID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "2024-06-10", got.CheckInDate.Format(booking.DateLayout))
		assert.Equal(t, "2024-06-12", got.CheckOutDate.Format(booking.DateLayout))
		assert.Equal(t, models.BookingConfirmed, got.Status)

		missing, err := repo.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("ListByProperty orders by check-in", func(t *testing.T) {
		all, err := repo.ListByProperty(ctx, p.PropertyID, nil)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, b2.BookingID, all[0].BookingID)
		assert.Equal(t, b1.BookingID, all[1].BookingID)
	})

	t.Run("ListByProperty filters by status", func(t *testing.T) {
		status := models.BookingConfirmed
		confirmed, err := repo.ListByProperty(ctx, p.PropertyID, &status)
		require.NoError(t, err)
		require.Len(t, confirmed, 1)
		assert.Equal(t, b1.BookingID, confirmed[0].BookingID)
	})

	t.Run("ConfirmedRanges", func(t *testing.T) {
		ranges, err := repo.ConfirmedRanges(ctx, p.PropertyID)
		require.NoError(t, err)
		require.Len(t, ranges, 1)
		assert.Equal(t, 2, ranges[0].Nights())
	})

	t.Run("ListByGuestEmail", func(t *testing.T) {
		mine, err := repo.ListByGuestEmail(ctx, "guest@example.com")
		require.NoError(t, err)
		assert.Len(t, mine, 2)
	})

	t.Run("ListByOwner", func(t *testing.T) {
		theirs, err := repo.ListByOwner(ctx, otherOwner.UserID)
		require.NoError(t, err)
		require.Len(t, theirs, 1)
		assert.Equal(t, b3.BookingID, theirs[0].BookingID)
	})

	t.Run("reads through transaction", func(t *testing.T) {
		tx, err := db.Beginx()
		require.NoError(t, err)
		defer tx.Rollback()

		txGetter := func(context.Context) *sqlx.Tx { return tx }
		b4 := newBooking(t, q.PropertyID, "tx@example.com", "2024-08-01", "2024-08-02")
		require.NoError(t, NewBookingWriteRepository(db, txGetter).Save(ctx, b4))

		inTx, err := NewBookingReadRepository(db, txGetter).GetByID(ctx, b4.BookingID)
		require.NoError(t, err)
		assert.NotNil(t, inTx)

		outside, err := repo.GetByID(ctx, b4.BookingID)
		require.NoError(t, err)
		assert.Nil(t, outside)
	})
}
