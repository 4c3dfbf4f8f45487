package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User account types
const (
	UserTypeCustomer = "customer"
	UserTypeSeller   = "seller"
)

// User represents a registered account
type User struct {
	ID           int64     `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Profile holds marketplace-specific account data. Created lazily at
// registration or first login, defaulting to customer.
type Profile struct {
	ID       int64  `db:"id" json:"id"`
	UserID   int64  `db:"user_id" json:"user_id"`
	Phone    string `db:"phone" json:"phone"`
	UserType string `db:"user_type" json:"user_type"`
}

// Product represents a product in the catalog, owned by its seller
type Product struct {
	ID               int64           `db:"id" json:"id"`
	SellerID         int64           `db:"seller_id" json:"seller"`
	Title            string          `db:"title" json:"title"`
	Description      string          `db:"description" json:"description"`
	Price            decimal.Decimal `db:"price" json:"price"`
	Stock            int             `db:"stock" json:"stock"`
	Category         string          `db:"category" json:"category"`
	Brand            string          `db:"brand" json:"brand"`
	Tags             string          `db:"tags" json:"tags"`
	Discount         decimal.Decimal `db:"discount" json:"discount"`
	ImageURL         string          `db:"image_url" json:"image_url"`
	Thumbnail        string          `db:"thumbnail" json:"thumbnail"`
	AdditionalImages string          `db:"additional_images" json:"additional_images"`
	Rating           decimal.Decimal `db:"rating" json:"rating"`
	ReviewsCount     int             `db:"reviews_count" json:"reviews_count"`
	CreatedAt        time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at" json:"updated_at"`
}

// DiscountedPrice returns price reduced by the discount percentage.
// Computed on read, never stored.
func (p *Product) DiscountedPrice() decimal.Decimal {
	reduction := p.Price.Mul(p.Discount).Div(decimal.NewFromInt(100))
	return p.Price.Sub(reduction).Round(2)
}

// Order represents a customer order. Items are loaded alongside the row;
// an order always has at least one item once persisted.
type Order struct {
	ID        int64       `db:"id" json:"id"`
	UserID    int64       `db:"user_id" json:"user_id"`
	CreatedAt time.Time   `db:"created_at" json:"created_at"`
	Items     []OrderItem `db:"-" json:"items"`
}

// TotalItems returns the sum of item quantities. Empty order yields 0.
func (o *Order) TotalItems() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}

// TotalPrice sums quantity * product price over all items, using the
// CURRENT price of each referenced product. Totals are never snapshotted
// at order time, so they track later price changes.
func (o *Order) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		if item.Product == nil {
			continue
		}
		line := item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	return total
}

// OrderItem links an order to a product with a quantity
type OrderItem struct {
	ID        int64    `db:"id" json:"-"`
	OrderID   int64    `db:"order_id" json:"-"`
	ProductID int64    `db:"product_id" json:"-"`
	Quantity  int      `db:"quantity" json:"quantity"`
	Product   *Product `db:"-" json:"product"`
}

// SalesRow is one seller-owned line item joined with its order, product
// and purchasing customer. Input to the sales aggregations.
type SalesRow struct {
	ItemID         int64           `db:"item_id"`
	OrderID        int64           `db:"order_id"`
	OrderCreatedAt time.Time       `db:"order_created_at"`
	Customer       string          `db:"customer"`
	ProductID      int64           `db:"product_id"`
	ProductTitle   string          `db:"product_title"`
	Price          decimal.Decimal `db:"price"`
	Quantity       int             `db:"quantity"`
}
