package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// db is the slice of pgx we use, so tests can substitute pgxmock.
type db interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresRepository stores carts in the relational database.
type PostgresRepository struct {
	db db
}

// NewPostgresRepository initializes a repo backed by pgx.
func NewPostgresRepository(db db) *PostgresRepository {
	if db == nil {
		panic("cart: pgx pool required")
	}
	return &PostgresRepository{db: db}
}

const cartItemColumns = `
	c.id, c.menu_item_id, c.quantity, c.created_at,
	m.id, m.name, m.description, m.price, m.category, m.image_url, m.is_available, m.created_at
`

func scanItem(row pgx.Row) (*Item, error) {
	var item Item
	if err := row.Scan(
		&item.ID,
		&item.MenuItemID,
		&item.Quantity,
		&item.CreatedAt,
		&item.MenuItem.ID,
		&item.MenuItem.Name,
		&item.MenuItem.Description,
		&item.MenuItem.Price,
		&item.MenuItem.Category,
		&item.MenuItem.ImageURL,
		&item.MenuItem.IsAvailable,
		&item.MenuItem.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &item, nil
}

// ListByUser returns the user's cart, oldest entries first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]Item, error) {
	query := `
		SELECT` + cartItemColumns + `
		FROM user_cart_items c
		JOIN menu_items m ON m.id = c.menu_item_id
		WHERE c.user_id = $1
		ORDER BY c.created_at ASC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("cart: list failed: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("cart: scan failed: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("cart: rows failed: %w", err)
	}
	return items, nil
}

// Upsert inserts the item or bumps the quantity of the existing row for
// the same menu item.
func (r *PostgresRepository) Upsert(ctx context.Context, userID, menuItemID string, quantity int) (*Item, error) {
	query := `
		WITH upserted AS (
			INSERT INTO user_cart_items (id, user_id, menu_item_id, quantity)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (user_id, menu_item_id)
			DO UPDATE SET quantity = user_cart_items.quantity + EXCLUDED.quantity
			RETURNING id, menu_item_id, quantity, created_at
		)
		SELECT
			c.id, c.menu_item_id, c.quantity, c.created_at,
			m.id, m.name, m.description, m.price, m.category, m.image_url, m.is_available, m.created_at
		FROM upserted c
		JOIN menu_items m ON m.id = c.menu_item_id
	`
	item, err := scanItem(r.db.QueryRow(ctx, query, uuid.New(), userID, menuItemID, quantity))
	if err != nil {
		return nil, fmt.Errorf("cart: upsert failed: %w", err)
	}
	return item, nil
}

// UpdateQuantity sets an absolute quantity on the user's cart row.
func (r *PostgresRepository) UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) (*Item, error) {
	query := `
		WITH updated AS (
			UPDATE user_cart_items
			SET quantity = $3
			WHERE user_id = $1 AND id = $2
			RETURNING id, menu_item_id, quantity, created_at
		)
		SELECT
			c.id, c.menu_item_id, c.quantity, c.created_at,
			m.id, m.name, m.description, m.price, m.category, m.image_url, m.is_available, m.created_at
		FROM updated c
		JOIN menu_items m ON m.id = c.menu_item_id
	`
	item, err := scanItem(r.db.QueryRow(ctx, query, userID, itemID, quantity))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("cart: update failed: %w", err)
	}
	return item, nil
}

// Delete removes the user's cart row. Deleting a row that is already
// gone is not an error.
func (r *PostgresRepository) Delete(ctx context.Context, userID, itemID string) error {
	query := `DELETE FROM user_cart_items WHERE user_id = $1 AND id = $2`
	if _, err := r.db.Exec(ctx, query, userID, itemID); err != nil {
		return fmt.Errorf("cart: delete failed: %w", err)
	}
	return nil
}
