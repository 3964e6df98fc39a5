package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-property-booking/internal/logger"
	"github.com/sbilibin2017/gw-property-booking/internal/models"
)

// PropertyCacheRepository caches property details in Redis
type PropertyCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration for cached properties
}

// NewPropertyCacheRepository creates a new cache repository with the given TTL
func NewPropertyCacheRepository(client *redis.Client, expiration time.Duration) *PropertyCacheRepository {
	return &PropertyCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func propertyKey(propertyID uuid.UUID) string {
	return fmt.Sprintf("property:%s", propertyID)
}

// Get returns the cached property, or nil on a miss.
func (r *PropertyCacheRepository) Get(ctx context.Context, propertyID uuid.UUID) (*models.PropertyDB, error) {
	key := propertyKey(propertyID)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.FromContext(ctx).Infow("cache get",
			"key", key,
			"hit", false,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var property models.PropertyDB
	if err := json.Unmarshal(val, &property); err != nil {
		logger.FromContext(ctx).Infow("cache get",
			"key", key,
			"hit", false,
			"error", err,
		)
		return nil, err
	}

	logger.FromContext(ctx).Infow("cache get",
		"key", key,
		"hit", true,
		"error", nil,
	)
	return &property, nil
}

// Set caches the property with the configured expiration.
func (r *PropertyCacheRepository) Set(ctx context.Context, property *models.PropertyDB) error {
	key := propertyKey(property.PropertyID)

	data, err := json.Marshal(property)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.FromContext(ctx).Infow("cache set",
		"key", key,
		"ttl", r.exp,
		"error", err,
	)
	return err
}

// Delete evicts the property from the cache.
func (r *PropertyCacheRepository) Delete(ctx context.Context, propertyID uuid.UUID) error {
	key := propertyKey(propertyID)
	err := r.client.Del(ctx, key).Err()

	logger.FromContext(ctx).Infow("cache delete",
		"key", key,
		"error", err,
	)
	return err
}
