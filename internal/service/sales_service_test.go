package service

import (
	"testing"
	"time"

	"marketplace-api/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func salesDec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestBuildSummaryEmpty(t *testing.T) {
	summary := buildSummary(0, nil)

	assert.Equal(t, 0, summary.TotalProducts)
	assert.Equal(t, 0, summary.TotalOrders)
	assert.Equal(t, 0, summary.TotalItemsSold)
	assert.Equal(t, 0.0, summary.TotalRevenue)
}

func TestBuildSummary(t *testing.T) {
	rows := []models.SalesRow{
		{OrderID: 1, ProductID: 10, Price: salesDec("19.99"), Quantity: 2},
		{OrderID: 1, ProductID: 11, Price: salesDec("5.00"), Quantity: 1},
		{OrderID: 2, ProductID: 10, Price: salesDec("19.99"), Quantity: 3},
	}

	summary := buildSummary(5, rows)

	assert.Equal(t, 5, summary.TotalProducts)
	// Two distinct orders even though order 1 appears twice.
	assert.Equal(t, 2, summary.TotalOrders)
	assert.Equal(t, 6, summary.TotalItemsSold)
	assert.InDelta(t, 2*19.99+5.00+3*19.99, summary.TotalRevenue, 0.001)
}

func TestGroupSalesOrdersSingleGroupPerOrder(t *testing.T) {
	placedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	rows := []models.SalesRow{
		{OrderID: 1, OrderCreatedAt: placedAt, Customer: "alice",
			ProductID: 10, ProductTitle: "Lamp", Price: salesDec("30.00"), Quantity: 1},
		{OrderID: 1, OrderCreatedAt: placedAt, Customer: "alice",
			ProductID: 11, ProductTitle: "Desk", Price: salesDec("120.00"), Quantity: 2},
	}

	reports := groupSalesOrders(rows)

	require.Len(t, reports, 1)
	report := reports[0]
	assert.Equal(t, int64(1), report.OrderID)
	assert.Equal(t, "alice", report.Customer)
	require.Len(t, report.Items, 2)
	assert.Equal(t, "Lamp", report.Items[0].ProductTitle)
	assert.InDelta(t, 30.00, report.Items[0].Total, 0.001)
	assert.Equal(t, "Desk", report.Items[1].ProductTitle)
	assert.InDelta(t, 240.00, report.Items[1].Total, 0.001)
	assert.InDelta(t, 270.00, report.Total, 0.001)
}

func TestGroupSalesOrdersSortedByRecency(t *testing.T) {
	older := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	rows := []models.SalesRow{
		{OrderID: 1, OrderCreatedAt: older, Customer: "bob",
			ProductID: 10, ProductTitle: "Lamp", Price: salesDec("10.00"), Quantity: 1},
		{OrderID: 2, OrderCreatedAt: newer, Customer: "carol",
			ProductID: 10, ProductTitle: "Lamp", Price: salesDec("10.00"), Quantity: 1},
	}

	reports := groupSalesOrders(rows)

	require.Len(t, reports, 2)
	assert.Equal(t, int64(2), reports[0].OrderID)
	assert.Equal(t, int64(1), reports[1].OrderID)
}

func TestGroupSalesOrdersStableTies(t *testing.T) {
	placedAt := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	rows := []models.SalesRow{
		{OrderID: 3, OrderCreatedAt: placedAt, ProductID: 1, Price: salesDec("1.00"), Quantity: 1},
		{OrderID: 4, OrderCreatedAt: placedAt, ProductID: 2, Price: salesDec("2.00"), Quantity: 1},
	}

	reports := groupSalesOrders(rows)

	require.Len(t, reports, 2)
	assert.Equal(t, int64(3), reports[0].OrderID)
	assert.Equal(t, int64(4), reports[1].OrderID)
}

func TestGroupSalesOrdersInterleavedRows(t *testing.T) {
	// Rows for the same order arriving non-adjacent still form one group.
	placedAt := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	rows := []models.SalesRow{
		{OrderID: 1, OrderCreatedAt: placedAt, ProductID: 1, Price: salesDec("1.00"), Quantity: 1},
		{OrderID: 2, OrderCreatedAt: placedAt, ProductID: 2, Price: salesDec("2.00"), Quantity: 1},
		{OrderID: 1, OrderCreatedAt: placedAt, ProductID: 3, Price: salesDec("3.00"), Quantity: 1},
	}

	reports := groupSalesOrders(rows)

	require.Len(t, reports, 2)
	assert.Len(t, reports[0].Items, 2)
	assert.InDelta(t, 4.00, reports[0].Total, 0.001)
	assert.Len(t, reports[1].Items, 1)
}
