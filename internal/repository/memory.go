package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/vuminh/product-api/internal/model"
	"github.com/vuminh/product-api/internal/storage/db"
)

// MemoryProductRepository keeps products in a map with the same error
// semantics as the Postgres repository, including the unique sku
// constraint. Used by tests and local development.
type MemoryProductRepository struct {
	mu       sync.Mutex
	products map[uuid.UUID]model.Product
}

var _ ProductRepository = (*MemoryProductRepository)(nil)

func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products: make(map[uuid.UUID]model.Product),
	}
}

func (r *MemoryProductRepository) WithDB(_ db.DB) ProductRepository {
	return r
}

func (r *MemoryProductRepository) CreateProduct(_ context.Context, product model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; ok {
		return fmt.Errorf("create product: %w", ErrDuplicateKey)
	}
	for _, existing := range r.products {
		if existing.Sku == product.Sku {
			return fmt.Errorf("create product: %w", ErrDuplicateKey)
		}
	}

	r.products[product.ID] = product
	return nil
}

func (r *MemoryProductRepository) GetProduct(_ context.Context, id uuid.UUID) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return model.Product{}, fmt.Errorf("get product: %w", ErrProductNotFound)
	}
	return product, nil
}

func (r *MemoryProductRepository) UpdateProduct(_ context.Context, product model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return fmt.Errorf("update product: %w", ErrProductNotFound)
	}

	r.products[product.ID] = product
	return nil
}
