package api

import (
	"net/http"
	"strconv"

	"marketplace-api/internal/service"

	"github.com/gin-gonic/gin"
)

// listProducts serves the public catalog with search and ordering
func (h *Handler) listProducts(c *gin.Context) {
	search := c.Query("search")
	ordering := c.Query("ordering")

	products, err := h.products.List(c.Request.Context(), search, ordering)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newProductViews(products))
}

// getProduct serves the public product detail
func (h *Handler) getProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid product ID"})
		return
	}

	product, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newProductView(product))
}

// listSellerProducts lists the caller's own products
func (h *Handler) listSellerProducts(c *gin.Context) {
	products, err := h.products.ListForSeller(c.Request.Context(), currentUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newProductViews(products))
}

// getSellerProduct fetches one of the caller's own products
func (h *Handler) getSellerProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid product ID"})
		return
	}

	product, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if product.SellerID != currentUserID(c) {
		writeServiceError(c, service.ErrNotFound)
		return
	}

	c.JSON(http.StatusOK, newProductView(product))
}

// createSellerProduct creates a product owned by the caller
func (h *Handler) createSellerProduct(c *gin.Context) {
	var input service.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}

	product, err := h.products.CreateForSeller(c.Request.Context(), currentUserID(c), &input)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newProductView(product))
}

// updateSellerProduct updates one of the caller's own products
func (h *Handler) updateSellerProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid product ID"})
		return
	}

	var input service.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}

	product, err := h.products.UpdateForSeller(c.Request.Context(), currentUserID(c), id, &input)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newProductView(product))
}

// deleteSellerProduct deletes one of the caller's own products
func (h *Handler) deleteSellerProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid product ID"})
		return
	}

	if err := h.products.DeleteForSeller(c.Request.Context(), currentUserID(c), id); err != nil {
		writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// salesSummary serves the caller's sales summary statistics
func (h *Handler) salesSummary(c *gin.Context) {
	summary, err := h.sales.Summary(c.Request.Context(), currentUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// salesOrders serves the caller's per-order sales breakdown
func (h *Handler) salesOrders(c *gin.Context) {
	reports, err := h.sales.Orders(c.Request.Context(), currentUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reports)
}
