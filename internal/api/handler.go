package api

import (
	"net/http"
	"strconv"
	"time"

	"marketplace-api/internal/auth"
	"marketplace-api/internal/service"
	"marketplace-api/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler contains HTTP handlers
type Handler struct {
	accounts *service.AccountService
	products *service.ProductService
	orders   *service.OrderService
	sales    *service.SalesService
	tokens   *auth.TokenManager
}

// NewHandler creates a new HTTP handler
func NewHandler(
	accounts *service.AccountService,
	products *service.ProductService,
	orders *service.OrderService,
	sales *service.SalesService,
	tokens *auth.TokenManager,
) *Handler {
	return &Handler{
		accounts: accounts,
		products: products,
		orders:   orders,
		sales:    sales,
		tokens:   tokens,
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.POST("/users/register", h.register)
		api.POST("/users/login", h.login)

		api.GET("/products", h.listProducts)
		api.GET("/products/:id", h.getProduct)

		seller := api.Group("/products/seller")
		seller.Use(RequireAuth(h.tokens))
		{
			seller.GET("", h.listSellerProducts)
			seller.POST("", h.createSellerProduct)
			seller.GET("/sales-summary", h.salesSummary)
			seller.GET("/sales-orders", h.salesOrders)
			seller.GET("/:id", h.getSellerProduct)
			seller.PUT("/:id", h.updateSellerProduct)
			seller.DELETE("/:id", h.deleteSellerProduct)
		}

		orders := api.Group("/orders")
		orders.Use(RequireAuth(h.tokens))
		{
			orders.POST("", h.createOrder)
			orders.GET("", h.listOrders)
		}
	}
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// readinessCheck handles readiness check requests
func (h *Handler) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().Unix(),
	})
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
