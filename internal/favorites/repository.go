package favorites

import "context"

// Repository persists per-user favorites.
type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]Favorite, error)
	// Add returns ErrAlreadyExists when the pair is already saved.
	Add(ctx context.Context, userID, menuItemID string) (*Favorite, error)
	// Remove deletes by menu item id, not favorite row id.
	Remove(ctx context.Context, userID, menuItemID string) error
}
