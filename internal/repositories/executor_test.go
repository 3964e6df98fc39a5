package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-property-booking/internal/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{"unique", &pgconn.PgError{Code: pgUniqueViolation}, ErrUniqueViolation},
		{"exclusion", &pgconn.PgError{Code: pgExclusionViolation}, ErrExclusionViolation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classify(tt.err)
			assert.ErrorIs(t, err, tt.expected)
			var pgErr *pgconn.PgError
			assert.True(t, errors.As(err, &pgErr))
		})
	}

	assert.NoError(t, classify(nil))
	other := errors.New("boom")
	assert.Equal(t, other, classify(other))
}

func TestPropertyWriteRepository_UpdateBuildsPartialStatement(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()
	db := sqlx.NewDb(sqlDB, "sqlmock")

	id := uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows([]string{"property_id", "owner_id", "name", "description", "location", "price_per_night", "max_guests", "amenities", "created_at", "updated_at"}).
		AddRow(id.String(), uuid.New().String(), "Renamed", "", "Faro", 70.0, 2, "", now, now)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE "properties" SET`)).WillReturnRows(rows)

	name := "Renamed"
	repo := NewPropertyWriteRepository(db, nil)
	got, err := repo.Update(context.Background(), id, models.PropertyUpdate{Name: &name})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, id, got.PropertyID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecutorPrefersTransaction(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()
	db := sqlx.NewDb(sqlDB, "sqlmock")

	mock.ExpectBegin()
	tx, err := db.Beginx()
	require.NoError(t, err)

	assert.Equal(t, db, executor(context.Background(), db, nil))
	assert.Equal(t, db, executor(context.Background(), db, func(context.Context) *sqlx.Tx { return nil }))
	assert.Equal(t, tx, executor(context.Background(), db, func(context.Context) *sqlx.Tx { return tx }))
}
