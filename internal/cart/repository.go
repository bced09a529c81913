package cart

import "context"

// Repository persists per-user carts.
type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]Item, error)
	// Upsert adds quantity to an existing row for the same menu item, or
	// inserts a new one.
	Upsert(ctx context.Context, userID, menuItemID string, quantity int) (*Item, error)
	// UpdateQuantity sets an absolute quantity on an existing row.
	UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) (*Item, error)
	Delete(ctx context.Context, userID, itemID string) error
}
