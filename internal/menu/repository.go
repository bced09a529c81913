package menu

import "context"

// Repository reads menu data for the storefront and the chat router.
type Repository interface {
	// List returns items, optionally filtered by exact category.
	List(ctx context.Context, category string) ([]Item, error)
	// Categories returns the distinct category names.
	Categories(ctx context.Context) ([]string, error)
	// Search returns up to limit items whose name, description, or
	// category contains any of the terms (case-insensitive, OR-combined).
	Search(ctx context.Context, terms []string, limit int) ([]GroundingItem, error)
	// Sample returns up to limit items with no filter applied.
	Sample(ctx context.Context, limit int) ([]GroundingItem, error)
	// PricesByID returns the price for each known item id.
	PricesByID(ctx context.Context, ids []string) (map[string]float64, error)
}
