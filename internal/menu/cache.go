package menu

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/smarthub/restaurant-backend/pkg/logging"
)

const (
	cacheKeyCategories = "menu:categories"
	cacheKeyListPrefix = "menu:list:"
)

// Cache is a read-through Redis cache over a Repository. Only the
// storefront reads (List, Categories) are cached; chat grounding queries
// always hit Postgres so answers reflect the live menu. Any Redis failure
// falls through to the inner repository.
type Cache struct {
	inner  Repository
	client *redis.Client
	ttl    time.Duration
	logger *logging.Logger
}

// NewCache wraps inner with a Redis cache.
func NewCache(inner Repository, client *redis.Client, ttl time.Duration, logger *logging.Logger) *Cache {
	if client == nil {
		panic("menu: redis client required")
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Cache{inner: inner, client: client, ttl: ttl, logger: logger}
}

// List returns cached items for the category, loading on miss.
func (c *Cache) List(ctx context.Context, category string) ([]Item, error) {
	key := cacheKeyListPrefix + category
	if raw, err := c.client.Get(ctx, key).Result(); err == nil {
		var items []Item
		if err := json.Unmarshal([]byte(raw), &items); err == nil {
			return items, nil
		}
	} else if err != redis.Nil {
		c.logger.Warn("menu cache read failed", "key", key, "error", err)
	}

	items, err := c.inner.List(ctx, category)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, items)
	return items, nil
}

// Categories returns the cached category list, loading on miss.
func (c *Cache) Categories(ctx context.Context) ([]string, error) {
	if raw, err := c.client.Get(ctx, cacheKeyCategories).Result(); err == nil {
		var categories []string
		if err := json.Unmarshal([]byte(raw), &categories); err == nil {
			return categories, nil
		}
	} else if err != redis.Nil {
		c.logger.Warn("menu cache read failed", "key", cacheKeyCategories, "error", err)
	}

	categories, err := c.inner.Categories(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, cacheKeyCategories, categories)
	return categories, nil
}

// Search is not cached; grounding must see the live catalog.
func (c *Cache) Search(ctx context.Context, terms []string, limit int) ([]GroundingItem, error) {
	return c.inner.Search(ctx, terms, limit)
}

// Sample is not cached.
func (c *Cache) Sample(ctx context.Context, limit int) ([]GroundingItem, error) {
	return c.inner.Sample(ctx, limit)
}

// PricesByID is not cached; checkout amounts must be current.
func (c *Cache) PricesByID(ctx context.Context, ids []string) (map[string]float64, error) {
	return c.inner.PricesByID(ctx, ids)
}

func (c *Cache) store(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("menu cache write failed", "key", key, "error", err)
	}
}
