package menu

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

type db interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresRepository reads menu_items via pgx.
type PostgresRepository struct {
	db db
}

// NewPostgresRepository initializes a repo backed by pgxpool.
func NewPostgresRepository(db db) *PostgresRepository {
	if db == nil {
		panic("menu: db required")
	}
	return &PostgresRepository{db: db}
}

// List returns menu items, optionally filtered by category.
func (r *PostgresRepository) List(ctx context.Context, category string) ([]Item, error) {
	query := `
		SELECT id, name, description, price, category, image_url, is_available, created_at
		FROM menu_items
	`
	var args []any
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY name`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("menu: list failed: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var item Item
		if err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Description,
			&item.Price,
			&item.Category,
			&item.ImageURL,
			&item.IsAvailable,
			&item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("menu: scan failed: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Categories returns the distinct category names in alphabetical order.
func (r *PostgresRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT category FROM menu_items ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("menu: categories failed: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("menu: scan failed: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// Search matches terms against name, description, and category with
// case-insensitive substring semantics, OR-combined across terms.
func (r *PostgresRepository) Search(ctx context.Context, terms []string, limit int) ([]GroundingItem, error) {
	if len(terms) == 0 {
		return r.Sample(ctx, limit)
	}

	conds := make([]string, 0, len(terms))
	args := make([]any, 0, len(terms)+1)
	for _, term := range terms {
		args = append(args, "%"+term+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("name ILIKE $%d OR description ILIKE $%d OR category ILIKE $%d", n, n, n))
	}
	args = append(args, limit)

	query := fmt.Sprintf(`
		SELECT name, description, price, category
		FROM menu_items
		WHERE %s
		LIMIT $%d
	`, strings.Join(conds, " OR "), len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("menu: search failed: %w", err)
	}
	defer rows.Close()
	return scanGroundingItems(rows)
}

// Sample returns up to limit items with no filter.
func (r *PostgresRepository) Sample(ctx context.Context, limit int) ([]GroundingItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT name, description, price, category
		FROM menu_items
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("menu: sample failed: %w", err)
	}
	defer rows.Close()
	return scanGroundingItems(rows)
}

// PricesByID returns prices for the given item ids. Unknown ids are
// simply absent from the result.
func (r *PostgresRepository) PricesByID(ctx context.Context, ids []string) (map[string]float64, error) {
	prices := make(map[string]float64, len(ids))
	if len(ids) == 0 {
		return prices, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, price
		FROM menu_items
		WHERE id = ANY($1) AND price IS NOT NULL
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("menu: price lookup failed: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		var price float64
		if err := rows.Scan(&id, &price); err != nil {
			return nil, fmt.Errorf("menu: scan failed: %w", err)
		}
		prices[id] = price
	}
	return prices, rows.Err()
}

func scanGroundingItems(rows pgx.Rows) ([]GroundingItem, error) {
	var items []GroundingItem
	for rows.Next() {
		var item GroundingItem
		if err := rows.Scan(&item.Name, &item.Description, &item.Price, &item.Category); err != nil {
			return nil, fmt.Errorf("menu: scan failed: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
