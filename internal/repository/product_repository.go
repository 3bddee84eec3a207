package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/kiwipantry/smartcart/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for catalog data access.
// Implementations must return products in a stable order so cart
// generation stays deterministic across calls.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
}

// InMemoryProductRepository implements ProductRepository with in-memory
// storage. Products are kept in insertion order.
type InMemoryProductRepository struct {
	products []models.Product
	byID     map[string]int
}

// NewInMemoryProductRepository creates a repository seeded with the
// built-in market snapshot catalog.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return newRepository(seedCatalog())
}

// NewFromFile creates a repository from a JSON catalog file: an array of
// product records.
func NewFromFile(path string) (*InMemoryProductRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("catalog file %s contains no products", path)
	}

	return newRepository(products), nil
}

func newRepository(products []models.Product) *InMemoryProductRepository {
	byID := make(map[string]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	return &InMemoryProductRepository{
		products: products,
		byID:     byID,
	}
}

// GetAll returns all products in catalog order.
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByID returns a product by its ID.
func (r *InMemoryProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	i, exists := r.byID[id]
	if !exists {
		return nil, ErrProductNotFound
	}
	product := r.products[i]
	return &product, nil
}
