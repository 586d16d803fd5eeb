package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductView_ExposesExactlyProductFields(t *testing.T) {
	data, err := json.Marshal(NewProductView(storedProduct()))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	keys := make([]string, 0, len(decoded))
	for k := range decoded {
		keys = append(keys, k)
	}
	expected := append([]string(nil), ProductFieldNames...)
	sort.Strings(keys)
	sort.Strings(expected)
	assert.Equal(t, expected, keys)

	assert.Equal(t, float64(7), decoded["id"])
	assert.Equal(t, "Widget", decoded["name"])
	assert.Equal(t, "A widget", decoded["description"])
	assert.Equal(t, 9.5, decoded["price"])
	assert.Equal(t, float64(12), decoded["stock"])
}

func TestNewProductView_NullableFields(t *testing.T) {
	data, err := json.Marshal(NewProductView(Product{ID: 1, Name: "X"}))
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":1,"name":"X","description":null,"price":null,"stock":null}`, string(data))
}

func TestNewProductViews(t *testing.T) {
	t.Run("Empty input encodes as empty array", func(t *testing.T) {
		data, err := json.Marshal(NewProductViews(nil))
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
	})

	t.Run("Applies the single projection per element", func(t *testing.T) {
		products := []Product{storedProduct(), {ID: 8, Name: "Other"}}
		views := NewProductViews(products)

		require.Len(t, views, 2)
		for i, p := range products {
			assert.Equal(t, NewProductView(p), views[i])
		}
	})
}

func TestIsNotFound(t *testing.T) {
	err := NewProductNotFoundError("42")

	assert.Equal(t, "Product with id 42 does not exist", err.Error())
	assert.True(t, IsNotFound(err))
	assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsNotFound(NewDomainError("OTHER", "other")))
	assert.False(t, IsNotFound(errors.New("boom")))
	assert.False(t, IsNotFound(nil))
}
