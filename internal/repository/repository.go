package repository

import (
	"context"

	"inventory-api/internal/model"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// GetAll retrieves every product ordered by id.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by its ID.
	// Returns nil without error when no row matches.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// Create inserts a product built from fields and returns the stored row.
	Create(ctx context.Context, fields model.ProductFields) (*model.Product, error)

	// Update writes every mutable column of product.
	// Returns nil without error when no row matches product.ID.
	Update(ctx context.Context, product *model.Product) (*model.Product, error)

	// Delete removes the product with the given ID.
	// Reports false when no row matched.
	Delete(ctx context.Context, id int64) (bool, error)
}
