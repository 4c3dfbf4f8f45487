package api

import (
	"net/http"

	"marketplace-api/internal/service"

	"github.com/gin-gonic/gin"
)

// createOrderRequest is the cart payload
type createOrderRequest struct {
	Items []service.CartItem `json:"items"`
}

// createOrder assembles an order from the caller's cart
func (h *Handler) createOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}

	order, err := h.orders.Assemble(c.Request.Context(), currentUserID(c), req.Items)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newOrderView(order))
}

// listOrders returns the caller's own orders
func (h *Handler) listOrders(c *gin.Context) {
	orders, err := h.orders.ListOrders(c.Request.Context(), currentUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	views := make([]OrderView, 0, len(orders))
	for i := range orders {
		views = append(views, newOrderView(&orders[i]))
	}

	c.JSON(http.StatusOK, views)
}
