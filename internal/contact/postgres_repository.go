package contact

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// db is the slice of pgx we use, so tests can substitute pgxmock.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresRepository stores contact submissions in the relational database.
type PostgresRepository struct {
	db db
}

// NewPostgresRepository initializes a repo backed by pgx.
func NewPostgresRepository(db db) *PostgresRepository {
	if db == nil {
		panic("contact: pgx pool required")
	}
	return &PostgresRepository{db: db}
}

// Create inserts a new submission.
func (r *PostgresRepository) Create(ctx context.Context, sub *Submission) error {
	if err := sub.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO contact_submissions (id, name, email, subject, message)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := r.db.Exec(ctx, query, uuid.New(), sub.Name, sub.Email, sub.Subject, sub.Message); err != nil {
		return fmt.Errorf("contact: insert failed: %w", err)
	}
	return nil
}
