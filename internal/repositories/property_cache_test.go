package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-property-booking/internal/models"
)

func TestPropertyCacheRepository(t *testing.T) {
	ctx := context.Background()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	repo := NewPropertyCacheRepository(rdb, 2*time.Second)

	property := &models.PropertyDB{
		PropertyID:    uuid.New(),
		OwnerID:       uuid.New(),
		Name:          "Cached",
		Location:      "Porto",
		PricePerNight: 99.5,
		MaxGuests:     3,
	}

	t.Run("miss returns nil", func(t *testing.T) {
		got, err := repo.Get(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Set and Get", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, property))

		got, err := repo.Get(ctx, property.PropertyID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, property.Name, got.Name)
		assert.Equal(t, property.PricePerNight, got.PricePerNight)
		assert.Equal(t, property.OwnerID, got.OwnerID)
	})

	t.Run("cached value expires", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, property))
		mr.FastForward(3 * time.Second)

		got, err := repo.Get(ctx, property.PropertyID)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Delete evicts", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, property))
		require.NoError(t, repo.Delete(ctx, property.PropertyID))

		got, err := repo.Get(ctx, property.PropertyID)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("corrupt entry is an error", func(t *testing.T) {
		id := uuid.New()
		require.NoError(t, mr.Set("property:"+id.String(), "{not json"))

		_, err := repo.Get(ctx, id)
		assert.Error(t, err)
	})
}
