package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() *ProductInput {
	return &ProductInput{
		Title:    "Test Product",
		Price:    decimal.NewFromFloat(99.99),
		Stock:    50,
		Discount: decimal.NewFromInt(10),
	}
}

func TestProductInputValid(t *testing.T) {
	assert.NoError(t, validInput().Validate())
}

func TestProductInputValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ProductInput)
		field  string
	}{
		{"missing title", func(in *ProductInput) { in.Title = "" }, "title"},
		{"zero price", func(in *ProductInput) { in.Price = decimal.Zero }, "price"},
		{"negative price", func(in *ProductInput) { in.Price = decimal.NewFromInt(-5) }, "price"},
		{"negative stock", func(in *ProductInput) { in.Stock = -1 }, "stock"},
		{"discount above 100", func(in *ProductInput) { in.Discount = decimal.NewFromInt(101) }, "discount"},
		{"negative discount", func(in *ProductInput) { in.Discount = decimal.NewFromInt(-1) }, "discount"},
		{"bad additional_images", func(in *ProductInput) { in.AdditionalImages = "not json" }, "additional_images"},
		{"additional_images not array", func(in *ProductInput) { in.AdditionalImages = `{"a": 1}` }, "additional_images"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(in)

			err := in.Validate()
			require.Error(t, err)

			verr, ok := err.(*ValidationError)
			require.True(t, ok)
			assert.Contains(t, verr.Fields, tt.field)
		})
	}
}

func TestProductInputAdditionalImagesArray(t *testing.T) {
	in := validInput()
	in.AdditionalImages = `["https://example.com/1.png", "https://example.com/2.png"]`
	assert.NoError(t, in.Validate())

	in.AdditionalImages = `[]`
	assert.NoError(t, in.Validate())
}

func TestProductInputReportsAllFields(t *testing.T) {
	in := &ProductInput{Stock: -1, Discount: decimal.NewFromInt(200)}

	err := in.Validate()
	require.Error(t, err)

	verr := err.(*ValidationError)
	assert.Contains(t, verr.Fields, "title")
	assert.Contains(t, verr.Fields, "price")
	assert.Contains(t, verr.Fields, "stock")
	assert.Contains(t, verr.Fields, "discount")
}
