package catalog

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var (
	ErrCatalogLoad   = errors.New("catalog load failed")
	ErrOrderNotFound = errors.New("order not found")
)

//go:embed data/products.json data/orders.json
var seedFS embed.FS

// Product is a read-only catalog entry.
type Product struct {
	Title string   `json:"title"`
	Price float64  `json:"price"`
	Color string   `json:"color"`
	Sizes []string `json:"sizes"`
	Tags  []string `json:"tags"`
}

// Order is a read-only order record. Cancellation is a computed decision;
// nothing in the service ever mutates these records.
type Order struct {
	OrderID   string    `json:"order_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type Config struct {
	DataDir string `envconfig:"DATA_DIR" split_words:"true"`
}

// Catalog holds the two collections loaded once at process start.
type Catalog struct {
	products []Product
	orders   []Order
}

// New builds a catalog from in-memory collections. Tests and callers that
// manage their own fixtures use this instead of Load.
func New(products []Product, orders []Order) *Catalog {
	return &Catalog{
		products: append([]Product(nil), products...),
		orders:   append([]Order(nil), orders...),
	}
}

// Load reads products.json and orders.json from cfg.DataDir, or falls back to
// the embedded seed data when no directory is configured.
func Load(cfg Config) (*Catalog, error) {
	dir := strings.TrimSpace(cfg.DataDir)

	read := func(name string) ([]byte, error) {
		if dir == "" {
			return seedFS.ReadFile("data/" + name)
		}
		return os.ReadFile(filepath.Join(dir, name))
	}

	rawProducts, err := read("products.json")
	if err != nil {
		return nil, fmt.Errorf("%w: read products: %v", ErrCatalogLoad, err)
	}
	rawOrders, err := read("orders.json")
	if err != nil {
		return nil, fmt.Errorf("%w: read orders: %v", ErrCatalogLoad, err)
	}

	var products []Product
	if err := json.Unmarshal(rawProducts, &products); err != nil {
		return nil, fmt.Errorf("%w: decode products: %v", ErrCatalogLoad, err)
	}
	var orders []Order
	if err := json.Unmarshal(rawOrders, &orders); err != nil {
		return nil, fmt.Errorf("%w: decode orders: %v", ErrCatalogLoad, err)
	}

	return &Catalog{products: products, orders: orders}, nil
}

// Products returns the catalog entries in data-source order.
func (c *Catalog) Products() []Product {
	return c.products
}

// OrderByID resolves an order by id only.
func (c *Catalog) OrderByID(orderID string) (*Order, error) {
	for i := range c.orders {
		if c.orders[i].OrderID == orderID {
			return &c.orders[i], nil
		}
	}
	return nil, fmt.Errorf("%w: id=%s", ErrOrderNotFound, orderID)
}

// OrderByIDAndEmail resolves an order by exact match on both fields.
// Returns nil when no record matches; a correct id with the wrong email does
// not resolve.
func (c *Catalog) OrderByIDAndEmail(orderID, email string) *Order {
	for i := range c.orders {
		if c.orders[i].OrderID == orderID && c.orders[i].Email == email {
			return &c.orders[i]
		}
	}
	return nil
}
