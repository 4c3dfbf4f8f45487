package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartItemProductRefAliases(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    int64
	}{
		{"product key", `{"product": 7}`, 7},
		{"product_id key", `{"product_id": 8}`, 8},
		{"id key", `{"id": 9}`, 9},
		{"product wins over product_id", `{"product": 1, "product_id": 2}`, 1},
		{"product_id wins over id", `{"product_id": 2, "id": 3}`, 2},
		{"zero product falls through to id", `{"product": 0, "id": 4}`, 4},
		{"string reference", `{"product_id": "12"}`, 12},
		{"no reference", `{"title": "x"}`, 0},
		{"garbage reference", `{"product": "abc"}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var item CartItem
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &item))
			assert.Equal(t, tt.want, item.ProductRef())
		})
	}
}

func TestCartItemQuantityDefault(t *testing.T) {
	var item CartItem
	require.NoError(t, json.Unmarshal([]byte(`{"product": 1}`), &item))
	assert.Equal(t, 1, item.ItemQuantity())
}

func TestCartItemQuantityVerbatim(t *testing.T) {
	var item CartItem
	require.NoError(t, json.Unmarshal([]byte(`{"product": 1, "quantity": 0}`), &item))
	// Present values are taken as-is, no clamping at this layer.
	assert.Equal(t, 0, item.ItemQuantity())

	require.NoError(t, json.Unmarshal([]byte(`{"product": 1, "quantity": "5"}`), &item))
	assert.Equal(t, 5, item.ItemQuantity())
}

func TestCartItemPriceForms(t *testing.T) {
	var item CartItem
	require.NoError(t, json.Unmarshal([]byte(`{"title": "Mystery Box", "price": "19.99"}`), &item))
	assert.Equal(t, "19.99", item.Price.String())

	require.NoError(t, json.Unmarshal([]byte(`{"title": "Mystery Box", "price": 19.99}`), &item))
	assert.Equal(t, "19.99", item.Price.String())
}

func TestCartItemImagePreference(t *testing.T) {
	var item CartItem
	require.NoError(t, json.Unmarshal([]byte(`{"image_url": "a.png", "thumbnail": "b.png"}`), &item))
	assert.Equal(t, "a.png", item.ItemImage())

	item = CartItem{}
	require.NoError(t, json.Unmarshal([]byte(`{"thumbnail": "b.png"}`), &item))
	assert.Equal(t, "b.png", item.ItemImage())
}

func TestCartItemStockDefault(t *testing.T) {
	var item CartItem
	require.NoError(t, json.Unmarshal([]byte(`{}`), &item))
	assert.Equal(t, 100, item.ItemStock())

	require.NoError(t, json.Unmarshal([]byte(`{"stock": 7}`), &item))
	assert.Equal(t, 7, item.ItemStock())
}
