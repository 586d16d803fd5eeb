package service

import (
	"context"
	"fmt"
	"strconv"

	"inventory-api/internal/config"
	"inventory-api/internal/model"
	"inventory-api/internal/repository"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	merge       func(p *model.Product, fields model.ProductFields)
	logger      zerolog.Logger
}

// NewProductService creates a new product service. updateMode selects the
// merge rule used by Update; anything other than config.UpdateModePresent
// uses the truthy rule.
func NewProductService(productRepo repository.ProductRepository, updateMode string, logger zerolog.Logger) ProductService {
	merge := (*model.Product).MergeTruthy
	if updateMode == config.UpdateModePresent {
		merge = (*model.Product).MergePresent
	}

	return &productService{
		productRepo: productRepo,
		merge:       merge,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

func notFound(id int64) error {
	return model.NewProductNotFoundError(strconv.FormatInt(id, 10))
}

// ListAll retrieves every product.
func (s *productService) ListAll(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	s.logger.Debug().Int("count", len(products)).Msg("retrieved products")

	return products, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Int64("product_id", id).Msg("product not found")
		return nil, notFound(id)
	}

	return product, nil
}

// Create stores a new product built from the supplied fields.
func (s *productService) Create(ctx context.Context, fields model.ProductFields) (*model.Product, error) {
	product, err := s.productRepo.Create(ctx, fields)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().Int64("product_id", product.ID).Msg("product created")

	return product, nil
}

// Update loads the product, merges the supplied fields and writes it back.
// Concurrent updates to the same product are last-writer-wins.
func (s *productService) Update(ctx context.Context, id int64, fields model.ProductFields) (*model.Product, error) {
	product, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.merge(product, fields)

	updated, err := s.productRepo.Update(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	// Deleted between the read and the write.
	if updated == nil {
		return nil, notFound(id)
	}

	s.logger.Info().Int64("product_id", id).Msg("product updated")

	return updated, nil
}

// Delete permanently removes a product.
func (s *productService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if !deleted {
		s.logger.Debug().Int64("product_id", id).Msg("product not found")
		return notFound(id)
	}

	s.logger.Info().Int64("product_id", id).Msg("product deleted")

	return nil
}
