package favorites

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the Postgres error code for a unique constraint hit.
const uniqueViolation = "23505"

// db is the slice of pgx we use, so tests can substitute pgxmock.
type db interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresRepository stores favorites in the relational database.
type PostgresRepository struct {
	db db
}

// NewPostgresRepository initializes a repo backed by pgx.
func NewPostgresRepository(db db) *PostgresRepository {
	if db == nil {
		panic("favorites: pgx pool required")
	}
	return &PostgresRepository{db: db}
}

func scanFavorite(row pgx.Row) (*Favorite, error) {
	var fav Favorite
	if err := row.Scan(
		&fav.ID,
		&fav.MenuItemID,
		&fav.CreatedAt,
		&fav.MenuItem.ID,
		&fav.MenuItem.Name,
		&fav.MenuItem.Description,
		&fav.MenuItem.Price,
		&fav.MenuItem.Category,
		&fav.MenuItem.ImageURL,
		&fav.MenuItem.IsAvailable,
		&fav.MenuItem.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &fav, nil
}

// ListByUser returns the user's saved items.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]Favorite, error) {
	query := `
		SELECT
			f.id, f.menu_item_id, f.created_at,
			m.id, m.name, m.description, m.price, m.category, m.image_url, m.is_available, m.created_at
		FROM user_favorites f
		JOIN menu_items m ON m.id = f.menu_item_id
		WHERE f.user_id = $1
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("favorites: list failed: %w", err)
	}
	defer rows.Close()

	var favs []Favorite
	for rows.Next() {
		fav, err := scanFavorite(rows)
		if err != nil {
			return nil, fmt.Errorf("favorites: scan failed: %w", err)
		}
		favs = append(favs, *fav)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("favorites: rows failed: %w", err)
	}
	return favs, nil
}

// Add saves a favorite. The (user_id, menu_item_id) pair is unique.
func (r *PostgresRepository) Add(ctx context.Context, userID, menuItemID string) (*Favorite, error) {
	query := `
		WITH inserted AS (
			INSERT INTO user_favorites (id, user_id, menu_item_id)
			VALUES ($1, $2, $3)
			RETURNING id, menu_item_id, created_at
		)
		SELECT
			f.id, f.menu_item_id, f.created_at,
			m.id, m.name, m.description, m.price, m.category, m.image_url, m.is_available, m.created_at
		FROM inserted f
		JOIN menu_items m ON m.id = f.menu_item_id
	`
	fav, err := scanFavorite(r.db.QueryRow(ctx, query, uuid.New(), userID, menuItemID))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("favorites: insert failed: %w", err)
	}
	return fav, nil
}

// Remove deletes the user's favorite by menu item id.
func (r *PostgresRepository) Remove(ctx context.Context, userID, menuItemID string) error {
	query := `DELETE FROM user_favorites WHERE user_id = $1 AND menu_item_id = $2`
	if _, err := r.db.Exec(ctx, query, userID, menuItemID); err != nil {
		return fmt.Errorf("favorites: delete failed: %w", err)
	}
	return nil
}
