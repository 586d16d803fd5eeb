package service

import (
	"context"

	"inventory-api/internal/model"
)

// ProductService defines operations for product management.
// Missing products are reported with an error satisfying model.IsNotFound.
type ProductService interface {
	// ListAll retrieves every product.
	ListAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// Create stores a new product built from the supplied fields.
	Create(ctx context.Context, fields model.ProductFields) (*model.Product, error)

	// Update merges the supplied fields into the stored product.
	Update(ctx context.Context, id int64, fields model.ProductFields) (*model.Product, error)

	// Delete permanently removes a product.
	Delete(ctx context.Context, id int64) error
}
