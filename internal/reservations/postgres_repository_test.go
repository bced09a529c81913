package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
)

func TestPostgresRepositoryCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	created := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO reservations`).
		WithArgs(pgxmock.AnyArg(), "Priya", "priya@example.com", 4, "2026-09-12", "19:30", (*string)(nil)).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(created))

	repo := NewPostgresRepository(mock)
	res, err := repo.Create(context.Background(), &CreateReservationRequest{
		Name:   "Priya",
		Email:  "priya@example.com",
		Guests: 4,
		Date:   "2026-09-12",
		Time:   "19:30",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if res.ID == "" {
		t.Error("expected generated id")
	}
	if !res.CreatedAt.Equal(created) {
		t.Errorf("created_at = %v, want %v", res.CreatedAt, created)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresRepositoryCreateValidates(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	repo := NewPostgresRepository(mock)
	if _, err := repo.Create(context.Background(), &CreateReservationRequest{Name: "Priya"}); err == nil {
		t.Fatal("expected validation error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("no query should run for invalid input: %v", err)
	}
}
