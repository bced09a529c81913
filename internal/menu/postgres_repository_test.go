package menu

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func strPtr(s string) *string   { return &s }
func numPtr(f float64) *float64 { return &f }

func TestPostgresRepository_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rows := pgxmock.NewRows([]string{"id", "name", "description", "price", "category", "image_url", "is_available", "created_at"}).
		AddRow("1", "Chicken Biryani", strPtr("Fragrant basmati rice"), numPtr(14.5), "Main Course", strPtr("https://img/biryani.jpg"), true, created).
		AddRow("2", "Gulab Jamun", nil, numPtr(6.0), "Dessert", nil, true, created)

	mock.ExpectQuery("SELECT id, name, description, price, category, image_url, is_available, created_at").
		WillReturnRows(rows)

	repo := NewPostgresRepository(mock)
	items, err := repo.List(context.Background(), "")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	if items[0].Name != "Chicken Biryani" || *items[0].Price != 14.5 {
		t.Errorf("unexpected first item: %+v", items[0])
	}
	if items[1].Description != nil {
		t.Errorf("expected nil description, got %v", *items[1].Description)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresRepository_ListByCategory(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery("WHERE category = \\$1").
		WithArgs("Dessert").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "description", "price", "category", "image_url", "is_available", "created_at"}))

	repo := NewPostgresRepository(mock)
	if _, err := repo.List(context.Background(), "Dessert"); err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresRepository_Categories(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery("SELECT DISTINCT category FROM menu_items").
		WillReturnRows(pgxmock.NewRows([]string{"category"}).AddRow("Dessert").AddRow("Main Course"))

	repo := NewPostgresRepository(mock)
	categories, err := repo.Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories() error = %v", err)
	}
	if len(categories) != 2 || categories[0] != "Dessert" {
		t.Errorf("categories = %v", categories)
	}
}

func TestPostgresRepository_Search(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	rows := pgxmock.NewRows([]string{"name", "description", "price", "category"}).
		AddRow("Spicy Chicken Curry", strPtr("House special"), numPtr(13.0), "Main Course")

	mock.ExpectQuery("name ILIKE \\$1 OR description ILIKE \\$1 OR category ILIKE \\$1").
		WithArgs("%spicy%", "%chicken%", 10).
		WillReturnRows(rows)

	repo := NewPostgresRepository(mock)
	items, err := repo.Search(context.Background(), []string{"spicy", "chicken"}, 10)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(items) != 1 || items[0].Name != "Spicy Chicken Curry" {
		t.Errorf("items = %+v", items)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresRepository_SearchNoTermsSamples(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery("SELECT name, description, price, category").
		WithArgs(5).
		WillReturnRows(pgxmock.NewRows([]string{"name", "description", "price", "category"}).
			AddRow("Samosa", nil, nil, "Appetizer"))

	repo := NewPostgresRepository(mock)
	items, err := repo.Search(context.Background(), nil, 5)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(items) != 1 || items[0].Name != "Samosa" {
		t.Errorf("items = %+v", items)
	}
}

func TestPostgresRepository_PricesByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery("SELECT id, price").
		WithArgs([]string{"1", "2"}).
		WillReturnRows(pgxmock.NewRows([]string{"id", "price"}).
			AddRow("1", 10.0).
			AddRow("2", 20.0))

	repo := NewPostgresRepository(mock)
	prices, err := repo.PricesByID(context.Background(), []string{"1", "2"})
	if err != nil {
		t.Fatalf("PricesByID() error = %v", err)
	}
	if prices["1"] != 10.0 || prices["2"] != 20.0 {
		t.Errorf("prices = %v", prices)
	}
}

func TestPostgresRepository_PricesByIDEmpty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	repo := NewPostgresRepository(mock)
	prices, err := repo.PricesByID(context.Background(), nil)
	if err != nil {
		t.Fatalf("PricesByID() error = %v", err)
	}
	if len(prices) != 0 {
		t.Errorf("prices = %v, want empty", prices)
	}
}
