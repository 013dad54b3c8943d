package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TopItemResult represents an item's sales performance
type TopItemResult struct {
	ItemID       uuid.UUID
	ItemName     string
	SKU          string
	QuantitySold int
	Revenue      float64
}

// TopCustomerResult represents a customer's spending data
type TopCustomerResult struct {
	CustomerID   uuid.UUID
	CustomerName string
	TotalSpent   float64
	SaleCount    int
}

// MonthlyRevenueResult represents revenue aggregated for one month
type MonthlyRevenueResult struct {
	Month   time.Time
	Sales   float64
	Income  float64
	Expense float64
}

// DailySalesResult represents sales data for a single day
type DailySalesResult struct {
	Date    time.Time
	Revenue float64
	Count   int
}

// CategoryTotalResult represents sold totals for one item category
type CategoryTotalResult struct {
	CategoryID   *uuid.UUID
	CategoryName string
	QuantitySold int
	Revenue      float64
}

// AnalyticsRepository defines interface for dashboard aggregation queries
type AnalyticsRepository interface {
	// GetTopItems returns top selling items by revenue
	GetTopItems(ctx context.Context, limit int) ([]TopItemResult, error)

	// GetTopCustomers returns top customers by total spending
	GetTopCustomers(ctx context.Context, limit int) ([]TopCustomerResult, error)

	// GetMonthlyRevenue returns per-month sales, income and expense
	// totals for the last N months.
	GetMonthlyRevenue(ctx context.Context, months int) ([]MonthlyRevenueResult, error)

	// GetDailySales returns daily sales data for the last N days
	GetDailySales(ctx context.Context, days int) ([]DailySalesResult, error)

	// GetCategoryTotals returns sold quantity and revenue per item
	// category, uncategorized items grouped under a nil category.
	GetCategoryTotals(ctx context.Context) ([]CategoryTotalResult, error)

	// GetTotalRevenue returns the all-time total of revenue-counting sales
	GetTotalRevenue(ctx context.Context) (float64, error)

	// CountSales returns the number of revenue-counting sales
	CountSales(ctx context.Context) (int64, error)

	// CountActiveCustomers returns the number of active customers
	CountActiveCustomers(ctx context.Context) (int64, error)

	// CountLowStockItems returns the number of items at or below their minimum level
	CountLowStockItems(ctx context.Context) (int64, error)
}
