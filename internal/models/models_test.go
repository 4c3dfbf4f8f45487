package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestDiscountedPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		discount string
		want     string
	}{
		{"quarter off", "100.00", "25", "75"},
		{"no discount", "50.00", "0", "50"},
		{"full discount", "10.00", "100", "0"},
		{"fractional discount", "19.99", "10", "17.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Product{Price: dec(tt.price), Discount: dec(tt.discount)}
			assert.True(t, dec(tt.want).Equal(p.DiscountedPrice()),
				"got %s, want %s", p.DiscountedPrice(), tt.want)
		})
	}
}

func TestOrderTotalItems(t *testing.T) {
	order := &Order{
		Items: []OrderItem{
			{Quantity: 2},
			{Quantity: 3},
			{Quantity: 1},
		},
	}

	assert.Equal(t, 6, order.TotalItems())
}

func TestOrderTotalItemsEmpty(t *testing.T) {
	order := &Order{}
	assert.Equal(t, 0, order.TotalItems())
	assert.True(t, order.TotalPrice().IsZero())
}

func TestOrderTotalPrice(t *testing.T) {
	mystery := &Product{ID: 1, Price: dec("19.99")}
	widget := &Product{ID: 2, Price: dec("5.00")}

	order := &Order{
		Items: []OrderItem{
			{ProductID: 1, Quantity: 2, Product: mystery},
			{ProductID: 2, Quantity: 3, Product: widget},
		},
	}

	assert.True(t, dec("54.98").Equal(order.TotalPrice()))
}

func TestOrderTotalPriceTracksCurrentPrice(t *testing.T) {
	product := &Product{ID: 1, Price: dec("10.00")}
	order := &Order{
		Items: []OrderItem{{ProductID: 1, Quantity: 2, Product: product}},
	}

	assert.True(t, dec("20.00").Equal(order.TotalPrice()))

	// Totals are recomputed from the live price, never snapshotted.
	product.Price = dec("15.00")
	assert.True(t, dec("30.00").Equal(order.TotalPrice()))
}

func TestOrderTotalPriceDuplicateProductRefs(t *testing.T) {
	product := &Product{ID: 1, Price: dec("4.50")}
	order := &Order{
		Items: []OrderItem{
			{ProductID: 1, Quantity: 1, Product: product},
			{ProductID: 1, Quantity: 2, Product: product},
		},
	}

	assert.Equal(t, 3, order.TotalItems())
	assert.True(t, dec("13.50").Equal(order.TotalPrice()))
}
