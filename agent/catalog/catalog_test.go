package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadEmbeddedSeed(t *testing.T) {
	t.Parallel()

	c, err := Load(Config{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(c.Products()) == 0 {
		t.Fatal("expected seeded products")
	}
	if _, err := c.OrderByID("A1003"); err != nil {
		t.Fatalf("expected seeded order A1003, got %v", err)
	}
}

func TestLoadFromDataDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	products := `[{"title":"Test Dress","price":50,"color":"red","sizes":["M"],"tags":["test"]}]`
	orders := `[{"order_id":"B2001","email":"kim@example.com","created_at":"2025-03-01T10:00:00Z"}]`

	if err := os.WriteFile(filepath.Join(dir, "products.json"), []byte(products), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "orders.json"), []byte(orders), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := Load(Config{DataDir: dir})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(c.Products()) != 1 || c.Products()[0].Title != "Test Dress" {
		t.Fatalf("unexpected products: %+v", c.Products())
	}

	order, err := c.OrderByID("B2001")
	if err != nil {
		t.Fatalf("OrderByID() error = %v", err)
	}
	if !order.CreatedAt.Equal(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected created_at: %v", order.CreatedAt)
	}
}

func TestLoadMissingDataDir(t *testing.T) {
	t.Parallel()

	_, err := Load(Config{DataDir: filepath.Join(t.TempDir(), "nope")})
	if !errors.Is(err, ErrCatalogLoad) {
		t.Fatalf("expected ErrCatalogLoad, got %v", err)
	}
}

func TestOrderByIDNotFound(t *testing.T) {
	t.Parallel()

	c := New(nil, []Order{{OrderID: "A1", Email: "a@example.com"}})
	if _, err := c.OrderByID("A2"); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderByIDAndEmailExactMatch(t *testing.T) {
	t.Parallel()

	c := New(nil, []Order{{OrderID: "A1", Email: "a@example.com"}})
	if got := c.OrderByIDAndEmail("A1", "a@example.com"); got == nil {
		t.Fatal("expected match on both fields")
	}
	if got := c.OrderByIDAndEmail("A1", "b@example.com"); got != nil {
		t.Fatal("wrong email must not resolve")
	}
}
