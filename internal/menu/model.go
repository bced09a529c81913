package menu

import "time"

// Item is a row from the menu_items table.
type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	Category    string    `json:"category"`
	ImageURL    *string   `json:"image_url,omitempty"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
}

// GroundingItem is the projection of a menu item used to ground chat
// answers: just enough to cite a dish, never the full row.
type GroundingItem struct {
	Name        string
	Description *string
	Price       *float64
	Category    string
}
