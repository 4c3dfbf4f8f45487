package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersPlacedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_placed_total",
		Help: "Total number of orders placed",
	})

	OrdersRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_rejected_total",
		Help: "Total number of rejected order requests",
	}, []string{"reason"})

	OrderItemsSkippedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "order_items_skipped_total",
		Help: "Total number of cart items skipped during order assembly",
	}, []string{"reason"})

	AdhocProductsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "adhoc_products_created_total",
		Help: "Total number of products created on the fly during order assembly",
	})

	OrderAssemblyLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "order_assembly_latency_seconds",
		Help:    "Latency of order assembly transactions",
		Buckets: prometheus.DefBuckets,
	})

	ProductWritesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "product_writes_total",
		Help: "Total number of seller product writes",
	}, []string{"op"})

	ProductCacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "product_cache_hits_total",
		Help: "Total number of product reads served from cache",
	})

	ProductCacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "product_cache_misses_total",
		Help: "Total number of product reads that fell through to the database",
	})

	LoginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "logins_total",
		Help: "Total number of login attempts",
	}, []string{"outcome"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
