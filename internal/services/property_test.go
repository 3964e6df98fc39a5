package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-property-booking/internal/booking"
	"github.com/sbilibin2017/gw-property-booking/internal/models"
	"github.com/sbilibin2017/gw-property-booking/internal/services"
)

type propertyMocks struct {
	reader *services.MockPropertyReader
	writer *services.MockPropertyWriter
	cache  *services.MockPropertyCache
}

func newPropertyService(t *testing.T) (*services.PropertyService, propertyMocks) {
	ctrl := gomock.NewController(t)
	m := propertyMocks{
		reader: services.NewMockPropertyReader(ctrl),
		writer: services.NewMockPropertyWriter(ctrl),
		cache:  services.NewMockPropertyCache(ctrl),
	}
	return services.NewPropertyService(m.reader, m.writer, m.cache), m
}

func ownerIdentity() booking.Identity {
	return booking.Identity{UserID: uuid.New(), Email: "owner@example.com", Role: booking.RoleOwner}
}

func TestPropertyService_Get(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	property := &models.PropertyDB{PropertyID: id, Name: "Villa"}

	t.Run("cache hit", func(t *testing.T) {
		svc, m := newPropertyService(t)
		m.cache.EXPECT().Get(gomock.Any(), id).Return(property, nil)

		got, err := svc.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, property, got)
	})

	t.Run("cache miss fills cache", func(t *testing.T) {
		svc, m := newPropertyService(t)
		gomock.InOrder(
			m.cache.EXPECT().Get(gomock.Any(), id).Return(nil, nil),
			m.reader.EXPECT().GetByID(gomock.Any(), id).Return(property, nil),
			m.cache.EXPECT().Set(gomock.Any(), property).Return(nil),
		)

		got, err := svc.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, property, got)
	})

	t.Run("cache failure falls back to store", func(t *testing.T) {
		svc, m := newPropertyService(t)
		m.cache.EXPECT().Get(gomock.Any(), id).Return(nil, errors.New("redis down"))
		m.reader.EXPECT().GetByID(gomock.Any(), id).Return(property, nil)
		m.cache.EXPECT().Set(gomock.Any(), property).Return(errors.New("redis down"))

		got, err := svc.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, property, got)
	})

	t.Run("not found", func(t *testing.T) {
		svc, m := newPropertyService(t)
		m.cache.EXPECT().Get(gomock.Any(), id).Return(nil, nil)
		m.reader.EXPECT().GetByID(gomock.Any(), id).Return(nil, nil)

		_, err := svc.Get(ctx, id)
		assert.ErrorIs(t, err, services.ErrPropertyNotFound)
		assert.ErrorIs(t, err, booking.ErrNotFound)
	})

	t.Run("without cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := services.NewMockPropertyReader(ctrl)
		svc := services.NewPropertyService(reader, nil, nil)
		reader.EXPECT().GetByID(gomock.Any(), id).Return(property, nil)

		got, err := svc.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, property, got)
	})
}

func TestPropertyService_Create(t *testing.T) {
	ctx := context.Background()
	owner := ownerIdentity()
	valid := services.PropertyInput{Name: " Villa ", Location: "Lisbon", PricePerNight: 120}

	tests := []struct {
		name    string
		id      booking.Identity
		in      services.PropertyInput
		save    bool
		wantErr error
	}{
		{name: "owner creates", id: owner, in: valid, save: true},
		{name: "guest is forbidden", id: booking.Identity{UserID: uuid.New(), Role: booking.RoleGuest}, in: valid, wantErr: booking.ErrForbidden},
		{name: "anonymous is forbidden", id: booking.Identity{}, in: valid, wantErr: booking.ErrForbidden},
		{name: "missing name", id: owner, in: services.PropertyInput{Location: "x", PricePerNight: 1}, wantErr: services.ErrInvalidTitle},
		{name: "missing location", id: owner, in: services.PropertyInput{Name: "x", PricePerNight: 1}, wantErr: services.ErrInvalidLocation},
		{name: "zero price", id: owner, in: services.PropertyInput{Name: "x", Location: "y"}, wantErr: services.ErrInvalidPrice},
		{name: "negative guests", id: owner, in: services.PropertyInput{Name: "x", Location: "y", PricePerNight: 1, MaxGuests: -2}, wantErr: services.ErrInvalidMaxGuests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newPropertyService(t)
			if tt.save {
				m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			}

			got, err := svc.Create(ctx, tt.id, tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.id.UserID, got.OwnerID)
			assert.Equal(t, "Villa", got.Name)
			assert.Equal(t, 1, got.MaxGuests)
		})
	}
}

func TestPropertyService_Update(t *testing.T) {
	ctx := context.Background()
	owner := ownerIdentity()
	propertyID := uuid.New()
	stored := &models.PropertyDB{PropertyID: propertyID, OwnerID: owner.UserID, Name: "Villa"}
	name := "Renamed"
	badPrice := -5.0

	t.Run("owner updates and cache is evicted", func(t *testing.T) {
		svc, m := newPropertyService(t)
		upd := models.PropertyUpdate{Name: &name}
		m.reader.EXPECT().GetByID(gomock.Any(), propertyID).Return(stored, nil)
		m.writer.EXPECT().Update(gomock.Any(), propertyID, gomock.Any()).
			Return(&models.PropertyDB{PropertyID: propertyID, OwnerID: owner.UserID, Name: name}, nil)
		m.cache.EXPECT().Delete(gomock.Any(), propertyID).Return(nil)

		got, err := svc.Update(ctx, owner, propertyID, upd)
		require.NoError(t, err)
		assert.Equal(t, name, got.Name)
	})

	t.Run("missing property is not found before authorization", func(t *testing.T) {
		svc, m := newPropertyService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), propertyID).Return(nil, nil)

		_, err := svc.Update(ctx, booking.Identity{}, propertyID, models.PropertyUpdate{Name: &name})
		assert.ErrorIs(t, err, booking.ErrNotFound)
		assert.NotErrorIs(t, err, booking.ErrForbidden)
	})

	t.Run("other owner is forbidden", func(t *testing.T) {
		svc, m := newPropertyService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), propertyID).Return(stored, nil)

		_, err := svc.Update(ctx, ownerIdentity(), propertyID, models.PropertyUpdate{Name: &name})
		assert.ErrorIs(t, err, booking.ErrForbidden)
	})

	t.Run("empty update", func(t *testing.T) {
		svc, m := newPropertyService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), propertyID).Return(stored, nil)

		_, err := svc.Update(ctx, owner, propertyID, models.PropertyUpdate{})
		assert.ErrorIs(t, err, services.ErrEmptyUpdate)
	})

	t.Run("invalid price", func(t *testing.T) {
		svc, m := newPropertyService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), propertyID).Return(stored, nil)

		_, err := svc.Update(ctx, owner, propertyID, models.PropertyUpdate{PricePerNight: &badPrice})
		assert.ErrorIs(t, err, services.ErrInvalidPrice)
	})
}

func TestPropertyService_Delete(t *testing.T) {
	ctx := context.Background()
	owner := ownerIdentity()
	propertyID := uuid.New()
	stored := &models.PropertyDB{PropertyID: propertyID, OwnerID: owner.UserID}

	t.Run("owner deletes", func(t *testing.T) {
		svc, m := newPropertyService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), propertyID).Return(stored, nil)
		m.writer.EXPECT().Delete(gomock.Any(), propertyID).Return(nil)
		m.cache.EXPECT().Delete(gomock.Any(), propertyID).Return(nil)

		assert.NoError(t, svc.Delete(ctx, owner, propertyID))
	})

	t.Run("guest is forbidden", func(t *testing.T) {
		svc, m := newPropertyService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), propertyID).Return(stored, nil)

		err := svc.Delete(ctx, booking.Identity{UserID: owner.UserID, Role: booking.RoleGuest}, propertyID)
		assert.ErrorIs(t, err, booking.ErrForbidden)
	})

	t.Run("not found", func(t *testing.T) {
		svc, m := newPropertyService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), propertyID).Return(nil, nil)

		assert.ErrorIs(t, svc.Delete(ctx, owner, propertyID), services.ErrPropertyNotFound)
	})
}

func TestPropertyService_ListByOwner(t *testing.T) {
	ctx := context.Background()
	owner := ownerIdentity()

	t.Run("own listing", func(t *testing.T) {
		svc, m := newPropertyService(t)
		m.reader.EXPECT().ListByOwner(gomock.Any(), owner.UserID).Return([]models.PropertyDB{{Name: "A"}}, nil)

		got, err := svc.ListByOwner(ctx, owner, owner.UserID)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("someone else's listing", func(t *testing.T) {
		svc, _ := newPropertyService(t)
		_, err := svc.ListByOwner(ctx, owner, uuid.New())
		assert.ErrorIs(t, err, booking.ErrForbidden)
	})
}

func TestPropertyService_ListAvailable(t *testing.T) {
	svc, m := newPropertyService(t)
	stay, err := booking.ParseDateRange("2024-06-01", "2024-06-05")
	require.NoError(t, err)

	m.reader.EXPECT().ListAvailable(gomock.Any(), stay).Return([]models.PropertyDB{{Name: "Free"}}, nil)

	got, err := svc.ListAvailable(context.Background(), stay)
	require.NoError(t, err)
	assert.Equal(t, "Free", got[0].Name)
}
