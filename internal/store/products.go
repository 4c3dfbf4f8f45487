package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"marketplace-api/internal/models"

	"github.com/jmoiron/sqlx"
)

// Ordering fields accepted by ListProducts; a leading '-' flips direction.
var productOrderColumns = map[string]string{
	"price":      "price",
	"title":      "title",
	"created_at": "created_at",
	"rating":     "rating",
}

const productInsert = `
	INSERT INTO products
		(seller_id, title, description, price, stock, category, brand, tags,
		 discount, image_url, thumbnail, additional_images, rating, reviews_count)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	RETURNING id, created_at, updated_at`

// CreateProduct inserts a new product row
func (s *Store) CreateProduct(ctx context.Context, p *models.Product) error {
	return s.db.GetContext(ctx, p, productInsert,
		p.SellerID, p.Title, p.Description, p.Price, p.Stock, p.Category, p.Brand,
		p.Tags, p.Discount, p.ImageURL, p.Thumbnail, p.AdditionalImages,
		p.Rating, p.ReviewsCount)
}

// CreateProductTx inserts a product within an open transaction
func (s *Store) CreateProductTx(ctx context.Context, tx *sqlx.Tx, p *models.Product) error {
	return tx.GetContext(ctx, p, productInsert,
		p.SellerID, p.Title, p.Description, p.Price, p.Stock, p.Category, p.Brand,
		p.Tags, p.Discount, p.ImageURL, p.Thumbnail, p.AdditionalImages,
		p.Rating, p.ReviewsCount)
}

// GetProductByID retrieves a product by ID, nil when absent
func (s *Store) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	err := s.db.GetContext(ctx, &product, "SELECT * FROM products WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// GetProductByIDTx retrieves a product within an open transaction, nil when absent
func (s *Store) GetProductByIDTx(ctx context.Context, tx *sqlx.Tx, id int64) (*models.Product, error) {
	var product models.Product
	err := tx.GetContext(ctx, &product, "SELECT * FROM products WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// GetSellerProduct retrieves a product only if owned by the seller, nil when absent
func (s *Store) GetSellerProduct(ctx context.Context, sellerID, id int64) (*models.Product, error) {
	var product models.Product
	err := s.db.GetContext(ctx, &product,
		"SELECT * FROM products WHERE id = $1 AND seller_id = $2", id, sellerID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct updates a seller-owned product row
func (s *Store) UpdateProduct(ctx context.Context, p *models.Product) error {
	query := `
		UPDATE products SET
			title = $1, description = $2, price = $3, stock = $4, category = $5,
			brand = $6, tags = $7, discount = $8, image_url = $9, thumbnail = $10,
			additional_images = $11, updated_at = NOW()
		WHERE id = $12 AND seller_id = $13
		RETURNING updated_at`

	return s.db.GetContext(ctx, &p.UpdatedAt, query,
		p.Title, p.Description, p.Price, p.Stock, p.Category, p.Brand, p.Tags,
		p.Discount, p.ImageURL, p.Thumbnail, p.AdditionalImages, p.ID, p.SellerID)
}

// DeleteProduct deletes a seller-owned product. Returns false when no row matched.
func (s *Store) DeleteProduct(ctx context.Context, sellerID, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM products WHERE id = $1 AND seller_id = $2", id, sellerID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// ListProducts retrieves products for the public catalog. Search matches
// title/description/category/brand/tags; ordering accepts the whitelisted
// fields with an optional '-' prefix for descending.
func (s *Store) ListProducts(ctx context.Context, search, ordering string) ([]models.Product, error) {
	query := "SELECT * FROM products"
	args := []interface{}{}

	if search != "" {
		query += ` WHERE title ILIKE $1 OR description ILIKE $1
			OR category ILIKE $1 OR brand ILIKE $1 OR tags ILIKE $1`
		args = append(args, "%"+search+"%")
	}

	query += " ORDER BY " + orderClause(ordering)

	var products []models.Product
	err := s.db.SelectContext(ctx, &products, query, args...)
	return products, err
}

func orderClause(ordering string) string {
	direction := "ASC"
	field := ordering
	if strings.HasPrefix(ordering, "-") {
		direction = "DESC"
		field = ordering[1:]
	}
	column, ok := productOrderColumns[field]
	if !ok {
		return "id ASC"
	}
	return fmt.Sprintf("%s %s", column, direction)
}

// ListProductsBySeller retrieves all products owned by a seller
func (s *Store) ListProductsBySeller(ctx context.Context, sellerID int64) ([]models.Product, error) {
	var products []models.Product
	err := s.db.SelectContext(ctx, &products,
		"SELECT * FROM products WHERE seller_id = $1 ORDER BY created_at DESC", sellerID)
	return products, err
}

// CountProductsBySeller counts products owned by a seller
func (s *Store) CountProductsBySeller(ctx context.Context, sellerID int64) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM products WHERE seller_id = $1", sellerID)
	return count, err
}
