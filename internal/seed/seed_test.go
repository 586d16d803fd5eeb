package seed

import (
	"context"
	"errors"
	"testing"

	"inventory-api/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCreator records created products and fails on request.
type fakeCreator struct {
	created []model.ProductFields
	failAt  int
}

func (c *fakeCreator) Create(ctx context.Context, fields model.ProductFields) (*model.Product, error) {
	if c.failAt > 0 && len(c.created)+1 == c.failAt {
		return nil, errors.New("insert failed")
	}
	c.created = append(c.created, fields)
	p := model.NewProduct(fields)
	p.ID = int64(len(c.created))
	return &p, nil
}

func TestDefaultProducts(t *testing.T) {
	products := DefaultProducts()
	require.Len(t, products, 2)

	first := products[0]
	assert.Equal(t, "Product 1", *first.Name)
	assert.Equal(t, "Product 1 description", *first.Description)
	assert.Equal(t, 479.99, *first.Price)
	assert.Equal(t, 15, *first.Stock)

	second := products[1]
	assert.Equal(t, "Product 2", *second.Name)
	assert.Nil(t, second.Description)
	assert.Equal(t, 15.99, *second.Price)
	assert.Equal(t, 24, *second.Stock)
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	t.Run("Inserts every fixture in order", func(t *testing.T) {
		creator := &fakeCreator{}

		created, err := Seed(ctx, creator, DefaultProducts(), logger)
		require.NoError(t, err)
		require.Len(t, created, 2)
		assert.Equal(t, int64(1), created[0].ID)
		assert.Equal(t, "Product 1", created[0].Name)
		assert.Equal(t, int64(2), created[1].ID)
		assert.Equal(t, "Product 2", created[1].Name)
		assert.Equal(t, DefaultProducts(), creator.created)
	})

	t.Run("Stops at first failure", func(t *testing.T) {
		creator := &fakeCreator{failAt: 2}

		created, err := Seed(ctx, creator, DefaultProducts(), logger)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to seed fixture 1")
		assert.Len(t, created, 1)
	})

	t.Run("No fixtures", func(t *testing.T) {
		created, err := Seed(ctx, &fakeCreator{}, nil, logger)
		require.NoError(t, err)
		assert.Empty(t, created)
	})
}
