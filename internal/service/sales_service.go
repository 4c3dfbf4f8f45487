package service

import (
	"context"
	"sort"
	"time"

	"marketplace-api/internal/models"
	"marketplace-api/internal/store"
	"marketplace-api/internal/util"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// SalesService produces seller-facing sales reports. Every operation is
// scoped to the seller identity passed in; a seller can never see another
// seller's line items, even inside a shared order.
type SalesService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewSalesService creates a new sales service
func NewSalesService(store *store.Store) *SalesService {
	return &SalesService{
		store:  store,
		logger: util.GetLogger(),
	}
}

// SalesSummary aggregates a seller's sales. Revenue uses the current
// product prices, same read-time semantics as order totals.
type SalesSummary struct {
	TotalProducts  int     `json:"total_products"`
	TotalOrders    int     `json:"total_orders"`
	TotalItemsSold int     `json:"total_items_sold"`
	TotalRevenue   float64 `json:"total_revenue"`
}

// OrderReport is one order group in the seller's per-order breakdown,
// holding only that seller's own line items.
type OrderReport struct {
	OrderID   int64             `json:"order_id"`
	Customer  string            `json:"customer"`
	CreatedAt time.Time         `json:"created_at"`
	Items     []OrderReportItem `json:"items"`
	Total     float64           `json:"total"`
}

// OrderReportItem is one line entry in an order group
type OrderReportItem struct {
	ProductID    int64   `json:"product_id"`
	ProductTitle string  `json:"product_title"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
	Total        float64 `json:"total"`
}

// Summary returns the seller's sales summary statistics
func (s *SalesService) Summary(ctx context.Context, sellerID int64) (*SalesSummary, error) {
	ctx, span := util.StartSpan(ctx, "SalesService.Summary")
	defer span.End()

	totalProducts, err := s.store.CountProductsBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	rows, err := s.store.SalesRowsBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	summary := buildSummary(totalProducts, rows)
	return &summary, nil
}

// Orders returns the seller's per-order breakdown, most recent first
func (s *SalesService) Orders(ctx context.Context, sellerID int64) ([]OrderReport, error) {
	ctx, span := util.StartSpan(ctx, "SalesService.Orders")
	defer span.End()

	rows, err := s.store.SalesRowsBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	return groupSalesOrders(rows), nil
}

// buildSummary folds sales rows into summary statistics
func buildSummary(totalProducts int, rows []models.SalesRow) SalesSummary {
	orders := make(map[int64]struct{}, len(rows))
	itemsSold := 0
	revenue := decimal.Zero

	for _, row := range rows {
		orders[row.OrderID] = struct{}{}
		itemsSold += row.Quantity
		line := row.Price.Mul(decimal.NewFromInt(int64(row.Quantity)))
		revenue = revenue.Add(line)
	}

	return SalesSummary{
		TotalProducts:  totalProducts,
		TotalOrders:    len(orders),
		TotalItemsSold: itemsSold,
		TotalRevenue:   revenue.InexactFloat64(),
	}
}

// groupSalesOrders groups rows by order, sorted by order recency. Ties
// keep the grouping order the rows were encountered in.
func groupSalesOrders(rows []models.SalesRow) []OrderReport {
	reports := []OrderReport{}
	index := map[int64]int{}

	for _, row := range rows {
		pos, ok := index[row.OrderID]
		if !ok {
			pos = len(reports)
			index[row.OrderID] = pos
			reports = append(reports, OrderReport{
				OrderID:   row.OrderID,
				Customer:  row.Customer,
				CreatedAt: row.OrderCreatedAt,
				Items:     []OrderReportItem{},
			})
		}

		lineTotal := row.Price.Mul(decimal.NewFromInt(int64(row.Quantity)))
		reports[pos].Items = append(reports[pos].Items, OrderReportItem{
			ProductID:    row.ProductID,
			ProductTitle: row.ProductTitle,
			Price:        row.Price.InexactFloat64(),
			Quantity:     row.Quantity,
			Total:        lineTotal.InexactFloat64(),
		})
	}

	for i := range reports {
		total := decimal.Zero
		for _, item := range reports[i].Items {
			total = total.Add(decimal.NewFromFloat(item.Total))
		}
		reports[i].Total = total.InexactFloat64()
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})

	return reports
}
