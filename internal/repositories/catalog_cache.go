package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wildwatch/wildwatch/internal/logger"
	"github.com/wildwatch/wildwatch/internal/models"
)

// CatalogCacheRepository caches remote catalog species payloads in Redis,
// so a species that fails the country check is not re-fetched from the
// remote service on every retry.
type CatalogCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached payloads
}

// NewCatalogCacheRepository creates a new repository instance with the given TTL
func NewCatalogCacheRepository(client *redis.Client, expiration time.Duration) *CatalogCacheRepository {
	return &CatalogCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func catalogKey(name string) string {
	return fmt.Sprintf("catalog_species:%s", name)
}

// Get returns the cached payload for a species name, or nil on a cache miss.
func (r *CatalogCacheRepository) Get(ctx context.Context, name string) (*models.CatalogSpecies, error) {
	key := catalogKey(name)

	val, err := r.client.Get(ctx, key).Result()

	logger.Log.Infow(
		"key", key,
		"result", val,
		"error", err,
	)

	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var species models.CatalogSpecies
	if err := json.Unmarshal([]byte(val), &species); err != nil {
		return nil, err
	}

	return &species, nil
}

// Set stores the payload for a species name with the repository TTL.
func (r *CatalogCacheRepository) Set(ctx context.Context, name string, species *models.CatalogSpecies) error {
	key := catalogKey(name)

	data, err := json.Marshal(species)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"value", string(data),
		"error", err,
	)

	return err
}
