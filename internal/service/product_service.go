package service

import (
	"context"
	"encoding/json"
	"fmt"

	"marketplace-api/internal/models"
	"marketplace-api/internal/redisclient"
	"marketplace-api/internal/store"
	"marketplace-api/internal/util"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ProductService handles the public catalog and seller-scoped CRUD
type ProductService struct {
	store  *store.Store
	cache  *redisclient.Client // nil when Redis is unavailable
	logger *zap.Logger
}

// NewProductService creates a new product service
func NewProductService(store *store.Store, cache *redisclient.Client) *ProductService {
	return &ProductService{
		store:  store,
		cache:  cache,
		logger: util.GetLogger(),
	}
}

// ProductInput is the seller write payload
type ProductInput struct {
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Price            decimal.Decimal `json:"price"`
	Stock            int             `json:"stock"`
	Category         string          `json:"category"`
	Brand            string          `json:"brand"`
	Tags             string          `json:"tags"`
	Discount         decimal.Decimal `json:"discount"`
	ImageURL         string          `json:"image_url"`
	Thumbnail        string          `json:"thumbnail"`
	AdditionalImages string          `json:"additional_images"`
}

var discountMax = decimal.NewFromInt(100)

// Validate checks the seller write invariants and reports every violated
// field at once.
func (in *ProductInput) Validate() error {
	verr := newValidationError()

	if in.Title == "" {
		verr.add("title", "this field is required")
	}
	if !in.Price.IsPositive() {
		verr.add("price", "must be greater than 0")
	}
	if in.Stock < 0 {
		verr.add("stock", "must be 0 or greater")
	}
	if in.Discount.IsNegative() || in.Discount.GreaterThan(discountMax) {
		verr.add("discount", "must be between 0 and 100")
	}
	if in.AdditionalImages != "" {
		var images []json.RawMessage
		if err := json.Unmarshal([]byte(in.AdditionalImages), &images); err != nil {
			verr.add("additional_images", "must be a valid JSON array")
		}
	}

	return verr.orNil()
}

// List serves the public catalog. The unfiltered listing is cached;
// filtered queries always hit the database.
func (s *ProductService) List(ctx context.Context, search, ordering string) ([]models.Product, error) {
	ctx, span := util.StartSpan(ctx, "ProductService.List")
	defer span.End()

	cacheable := search == "" && ordering == ""
	if cacheable && s.cache != nil {
		var products []models.Product
		if hit, err := s.cache.GetJSON(ctx, redisclient.AllProductsKey, &products); err == nil && hit {
			util.ProductCacheHitsTotal.Inc()
			return products, nil
		}
		util.ProductCacheMissesTotal.Inc()
	}

	products, err := s.store.ListProducts(ctx, search, ordering)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}

	if cacheable && s.cache != nil {
		go func() {
			if err := s.cache.SetJSON(context.Background(), redisclient.AllProductsKey, products, redisclient.ProductCacheTTL); err != nil {
				s.logger.Warn("Failed to cache product list", zap.Error(err))
			}
		}()
	}

	return products, nil
}

// Get serves the public product detail, cached per product
func (s *ProductService) Get(ctx context.Context, id int64) (*models.Product, error) {
	ctx, span := util.StartSpan(ctx, "ProductService.Get")
	defer span.End()

	key := redisclient.ProductKey(id)
	if s.cache != nil {
		var product models.Product
		if hit, err := s.cache.GetJSON(ctx, key, &product); err == nil && hit {
			util.ProductCacheHitsTotal.Inc()
			return &product, nil
		}
		util.ProductCacheMissesTotal.Inc()
	}

	product, err := s.store.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}

	if s.cache != nil {
		go func() {
			if err := s.cache.SetJSON(context.Background(), key, product, redisclient.ProductCacheTTL); err != nil {
				s.logger.Warn("Failed to cache product", zap.Error(err))
			}
		}()
	}

	return product, nil
}

// CreateForSeller validates and persists a seller-owned product
func (s *ProductService) CreateForSeller(ctx context.Context, sellerID int64, in *ProductInput) (*models.Product, error) {
	ctx, span := util.StartSpan(ctx, "ProductService.CreateForSeller")
	defer span.End()

	if err := in.Validate(); err != nil {
		return nil, err
	}

	product := &models.Product{
		SellerID:         sellerID,
		Title:            in.Title,
		Description:      in.Description,
		Price:            in.Price,
		Stock:            in.Stock,
		Category:         in.Category,
		Brand:            in.Brand,
		Tags:             in.Tags,
		Discount:         in.Discount,
		ImageURL:         in.ImageURL,
		Thumbnail:        in.Thumbnail,
		AdditionalImages: in.AdditionalImages,
	}
	if err := s.store.CreateProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	util.ProductWritesTotal.WithLabelValues("create").Inc()
	s.invalidateCache(product.ID)
	return product, nil
}

// UpdateForSeller updates a product only when owned by the seller
func (s *ProductService) UpdateForSeller(ctx context.Context, sellerID, id int64, in *ProductInput) (*models.Product, error) {
	ctx, span := util.StartSpan(ctx, "ProductService.UpdateForSeller")
	defer span.End()

	product, err := s.store.GetSellerProduct(ctx, sellerID, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}

	if err := in.Validate(); err != nil {
		return nil, err
	}

	product.Title = in.Title
	product.Description = in.Description
	product.Price = in.Price
	product.Stock = in.Stock
	product.Category = in.Category
	product.Brand = in.Brand
	product.Tags = in.Tags
	product.Discount = in.Discount
	product.ImageURL = in.ImageURL
	product.Thumbnail = in.Thumbnail
	product.AdditionalImages = in.AdditionalImages

	if err := s.store.UpdateProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	util.ProductWritesTotal.WithLabelValues("update").Inc()
	s.invalidateCache(id)
	return product, nil
}

// DeleteForSeller deletes a product only when owned by the seller
func (s *ProductService) DeleteForSeller(ctx context.Context, sellerID, id int64) error {
	ctx, span := util.StartSpan(ctx, "ProductService.DeleteForSeller")
	defer span.End()

	deleted, err := s.store.DeleteProduct(ctx, sellerID, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}

	util.ProductWritesTotal.WithLabelValues("delete").Inc()
	s.invalidateCache(id)
	return nil
}

// ListForSeller returns all products owned by the seller
func (s *ProductService) ListForSeller(ctx context.Context, sellerID int64) ([]models.Product, error) {
	ctx, span := util.StartSpan(ctx, "ProductService.ListForSeller")
	defer span.End()

	products, err := s.store.ListProductsBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// invalidateCache drops the listing and detail cache entries after a write
func (s *ProductService) invalidateCache(id int64) {
	if s.cache == nil {
		return
	}
	go func() {
		if err := s.cache.Invalidate(context.Background(), redisclient.AllProductsKey, redisclient.ProductKey(id)); err != nil {
			s.logger.Warn("Failed to invalidate product cache",
				zap.Int64("product_id", id),
				zap.Error(err))
		}
	}()
}
