package api

import (
	"errors"
	"net/http"
	"time"

	"marketplace-api/internal/models"
	"marketplace-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ProductView is a product plus its computed discounted price
type ProductView struct {
	*models.Product
	DiscountedPrice decimal.Decimal `json:"discounted_price"`
}

func newProductView(p *models.Product) ProductView {
	return ProductView{Product: p, DiscountedPrice: p.DiscountedPrice()}
}

func newProductViews(products []models.Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for i := range products {
		views = append(views, newProductView(&products[i]))
	}
	return views
}

// OrderItemView embeds the full product detail per line item
type OrderItemView struct {
	Product  ProductView `json:"product"`
	Quantity int         `json:"quantity"`
}

// OrderView carries the order with its computed totals
type OrderView struct {
	ID         int64           `json:"id"`
	Items      []OrderItemView `json:"items"`
	TotalItems int             `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
}

func newOrderView(o *models.Order) OrderView {
	items := make([]OrderItemView, 0, len(o.Items))
	for i := range o.Items {
		items = append(items, OrderItemView{
			Product:  newProductView(o.Items[i].Product),
			Quantity: o.Items[i].Quantity,
		})
	}
	return OrderView{
		ID:         o.ID,
		Items:      items,
		TotalItems: o.TotalItems(),
		TotalPrice: o.TotalPrice(),
		CreatedAt:  o.CreatedAt,
	}
}

// writeServiceError maps service errors onto HTTP responses
func writeServiceError(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, verr.Fields)
	case errors.Is(err, service.ErrNoValidItems):
		c.JSON(http.StatusBadRequest, gin.H{"items": []string{service.NoValidItemsMessage}})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "No active account found with the given credentials"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error."})
	}
}
