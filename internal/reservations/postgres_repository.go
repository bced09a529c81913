package reservations

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// db is the slice of pgx we use, so tests can substitute pgxmock.
type db interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresRepository stores reservations in the relational database.
type PostgresRepository struct {
	db db
}

// NewPostgresRepository initializes a repo backed by pgx.
func NewPostgresRepository(db db) *PostgresRepository {
	if db == nil {
		panic("reservations: pgx pool required")
	}
	return &PostgresRepository{db: db}
}

// Create inserts a new row.
func (r *PostgresRepository) Create(ctx context.Context, req *CreateReservationRequest) (*Reservation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	id := uuid.New()
	query := `
		INSERT INTO reservations (id, name, email, guests, date, time, requests)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`
	var createdAt time.Time
	if err := r.db.QueryRow(ctx, query,
		id,
		req.Name,
		req.Email,
		req.Guests,
		req.Date,
		req.Time,
		req.Requests,
	).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("reservations: insert failed: %w", err)
	}

	return &Reservation{
		ID:        id.String(),
		Name:      req.Name,
		Email:     req.Email,
		Guests:    req.Guests,
		Date:      req.Date,
		Time:      req.Time,
		Requests:  req.Requests,
		CreatedAt: createdAt,
	}, nil
}
