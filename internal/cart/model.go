package cart

import (
	"errors"
	"time"

	"github.com/smarthub/restaurant-backend/internal/menu"
)

// Item is one row of a user's cart with the menu item joined in, which
// is the shape the storefront renders directly.
type Item struct {
	ID         string    `json:"id"`
	MenuItemID string    `json:"menu_item_id"`
	Quantity   int       `json:"quantity"`
	CreatedAt  time.Time `json:"created_at"`
	MenuItem   menu.Item `json:"menu_items"`
}

// AddRequest is the payload for adding an item to the cart.
type AddRequest struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

var (
	// ErrInvalidRequest flags a missing item id or non-positive quantity.
	ErrInvalidRequest = errors.New("cart: menu item id and valid quantity required")
	// ErrNotFound means the cart row does not exist for this user.
	ErrNotFound = errors.New("cart: item not found")
)

// Validate checks an add request.
func (r *AddRequest) Validate() error {
	if r.MenuItemID == "" || r.Quantity <= 0 {
		return ErrInvalidRequest
	}
	return nil
}
