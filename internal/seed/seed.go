// Package seed inserts fixture products into the store. Fixtures come from
// the built-in sample set or from JSON-lines files on disk or in S3.
package seed

import (
	"context"
	"fmt"

	"inventory-api/internal/model"

	"github.com/rs/zerolog"
)

// Loader reads fixture products from a named source.
type Loader interface {
	// Load returns the fixtures stored at path.
	Load(ctx context.Context, path string) ([]model.ProductFields, error)
}

// ProductCreator persists a single product. repository.ProductRepository
// satisfies it.
type ProductCreator interface {
	Create(ctx context.Context, fields model.ProductFields) (*model.Product, error)
}

// DefaultProducts returns the two sample products seeded when no fixture
// file is given.
func DefaultProducts() []model.ProductFields {
	name1, desc1, price1, stock1 := "Product 1", "Product 1 description", 479.99, 15
	name2, price2, stock2 := "Product 2", 15.99, 24

	return []model.ProductFields{
		{Name: &name1, Description: &desc1, Price: &price1, Stock: &stock1},
		{Name: &name2, Price: &price2, Stock: &stock2},
	}
}

// Seed inserts every fixture in order and returns the stored products.
// It stops at the first failure; rows inserted before it are kept.
func Seed(ctx context.Context, creator ProductCreator, fixtures []model.ProductFields, logger zerolog.Logger) ([]model.Product, error) {
	logger = logger.With().Str("component", "seeder").Logger()

	created := make([]model.Product, 0, len(fixtures))
	for i, fields := range fixtures {
		product, err := creator.Create(ctx, fields)
		if err != nil {
			logger.Error().Err(err).Int("fixture", i).Msg("failed to seed product")
			return created, fmt.Errorf("failed to seed fixture %d: %w", i, err)
		}
		created = append(created, *product)
	}

	logger.Info().Int("count", len(created)).Msg("products seeded")

	return created, nil
}
