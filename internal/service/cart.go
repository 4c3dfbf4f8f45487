package service

import (
	"encoding/json"
	"strconv"
	"strings"
)

// CartItem is one entry of an inbound cart payload. Clients reference the
// product under any of several key names and send scalars as either JSON
// numbers or strings, so the reference and price fields tolerate both.
type CartItem struct {
	Product     flexInt64  `json:"product"`
	ProductID   flexInt64  `json:"product_id"`
	ID          flexInt64  `json:"id"`
	Quantity    *flexInt64 `json:"quantity"`
	Title       string     `json:"title"`
	Price       flexString `json:"price"`
	Description string     `json:"description"`
	ImageURL    string     `json:"image_url"`
	Thumbnail   string     `json:"thumbnail"`
	Stock       *flexInt64 `json:"stock"`
}

// ProductRef resolves the referenced product id. Accepted keys are checked
// in order: product, product_id, id. First non-zero value wins.
func (ci *CartItem) ProductRef() int64 {
	for _, ref := range []flexInt64{ci.Product, ci.ProductID, ci.ID} {
		if ref != 0 {
			return int64(ref)
		}
	}
	return 0
}

// ItemQuantity returns the requested quantity, defaulting to 1 when the
// field is absent. Present values are taken verbatim.
func (ci *CartItem) ItemQuantity() int {
	if ci.Quantity == nil {
		return 1
	}
	return int(*ci.Quantity)
}

// ItemImage returns the ad-hoc product image, image_url first then thumbnail.
func (ci *CartItem) ItemImage() string {
	if ci.ImageURL != "" {
		return ci.ImageURL
	}
	return ci.Thumbnail
}

// ItemStock returns the ad-hoc product stock, defaulting to 100.
func (ci *CartItem) ItemStock() int {
	if ci.Stock == nil {
		return 100
	}
	return int(*ci.Stock)
}

// flexInt64 unmarshals from a JSON number or a numeric string. Anything
// else decodes to zero rather than failing the whole payload, matching the
// item-level skip semantics of assembly.
type flexInt64 int64

func (f *flexInt64) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexInt64(n)
	return nil
}

// flexString unmarshals from a JSON string or number, keeping the raw text
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	*f = flexString(strings.TrimSpace(string(data)))
	return nil
}

func (f flexString) String() string {
	return string(f)
}
