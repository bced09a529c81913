package favorites

import (
	"errors"
	"time"

	"github.com/smarthub/restaurant-backend/internal/menu"
)

// Favorite is one saved menu item with the item joined in.
type Favorite struct {
	ID         string    `json:"id"`
	MenuItemID string    `json:"menu_item_id"`
	CreatedAt  time.Time `json:"created_at"`
	MenuItem   menu.Item `json:"menu_items"`
}

// AddRequest is the payload for saving a favorite.
type AddRequest struct {
	MenuItemID string `json:"menu_item_id"`
}

var (
	// ErrInvalidRequest flags a missing menu item id.
	ErrInvalidRequest = errors.New("favorites: menu item id required")
	// ErrAlreadyExists means the user already favorited this menu item.
	ErrAlreadyExists = errors.New("favorites: already favorited")
)

// Validate checks an add request.
func (r *AddRequest) Validate() error {
	if r.MenuItemID == "" {
		return ErrInvalidRequest
	}
	return nil
}
