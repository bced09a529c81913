package menu

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingRepo counts hits to the inner repository.
type countingRepo struct {
	listCalls       int
	categoriesCalls int
	searchCalls     int
	items           []Item
	categories      []string
	err             error
}

func (c *countingRepo) List(_ context.Context, category string) ([]Item, error) {
	c.listCalls++
	return c.items, c.err
}

func (c *countingRepo) Categories(_ context.Context) ([]string, error) {
	c.categoriesCalls++
	return c.categories, c.err
}

func (c *countingRepo) Search(_ context.Context, terms []string, limit int) ([]GroundingItem, error) {
	c.searchCalls++
	return nil, c.err
}

func (c *countingRepo) Sample(_ context.Context, limit int) ([]GroundingItem, error) {
	return nil, c.err
}

func (c *countingRepo) PricesByID(_ context.Context, ids []string) (map[string]float64, error) {
	return nil, c.err
}

func newTestCache(t *testing.T, inner Repository) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewCache(inner, client, time.Minute, nil), mr
}

func TestCache_ListReadThrough(t *testing.T) {
	inner := &countingRepo{items: []Item{{ID: "1", Name: "Pizza", Category: "Main Course"}}}
	cache, _ := newTestCache(t, inner)

	first, err := cache.List(context.Background(), "")
	require.NoError(t, err)
	second, err := cache.List(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.listCalls, "second read should be served from cache")
}

func TestCache_ListPerCategoryKeys(t *testing.T) {
	inner := &countingRepo{items: []Item{{ID: "1", Name: "Kheer", Category: "Dessert"}}}
	cache, _ := newTestCache(t, inner)

	_, err := cache.List(context.Background(), "Dessert")
	require.NoError(t, err)
	_, err = cache.List(context.Background(), "Main Course")
	require.NoError(t, err)

	assert.Equal(t, 2, inner.listCalls, "different categories cache separately")
}

func TestCache_CategoriesReadThrough(t *testing.T) {
	inner := &countingRepo{categories: []string{"Dessert", "Main Course"}}
	cache, _ := newTestCache(t, inner)

	first, err := cache.Categories(context.Background())
	require.NoError(t, err)
	second, err := cache.Categories(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.categoriesCalls)
}

func TestCache_RedisDownFallsThrough(t *testing.T) {
	inner := &countingRepo{categories: []string{"Dessert"}}
	cache, mr := newTestCache(t, inner)
	mr.Close()

	categories, err := cache.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Dessert"}, categories)
	assert.Equal(t, 1, inner.categoriesCalls)
}

func TestCache_SearchNeverCached(t *testing.T) {
	inner := &countingRepo{}
	cache, _ := newTestCache(t, inner)

	_, _ = cache.Search(context.Background(), []string{"spicy"}, 10)
	_, _ = cache.Search(context.Background(), []string{"spicy"}, 10)
	assert.Equal(t, 2, inner.searchCalls, "grounding queries must hit the store")
}

func TestCache_InnerErrorPropagates(t *testing.T) {
	inner := &countingRepo{err: errors.New("db down")}
	cache, _ := newTestCache(t, inner)

	_, err := cache.List(context.Background(), "")
	assert.Error(t, err)
}
