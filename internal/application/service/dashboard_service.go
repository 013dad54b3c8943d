package service

import (
	"context"

	"github.com/primag/sales-api/internal/domain/repository"
	"github.com/primag/sales-api/pkg/chart"
)

// DashboardService aggregates business stats and renders charts
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(analyticsRepo repository.AnalyticsRepository) *DashboardService {
	return &DashboardService{analyticsRepo: analyticsRepo}
}

// DashboardStats is the aggregate payload for the dashboard endpoint
type DashboardStats struct {
	TotalSales        int64                             `json:"total_sales"`
	TotalRevenue      float64                           `json:"total_revenue"`
	AverageOrderValue float64                           `json:"average_order_value"`
	ActiveCustomers   int64                             `json:"active_customers"`
	LowStockItems     int64                             `json:"low_stock_items"`
	TopItems          []repository.TopItemResult        `json:"top_items"`
	TopCustomers      []repository.TopCustomerResult    `json:"top_customers"`
	MonthlyRevenue    []repository.MonthlyRevenueResult `json:"monthly_revenue"`
	DailySales        []repository.DailySalesResult     `json:"daily_sales"`
	CategoryTotals    []repository.CategoryTotalResult  `json:"category_totals"`
}

// GetStats builds the dashboard aggregate
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	totalRevenue, err := s.analyticsRepo.GetTotalRevenue(ctx)
	if err != nil {
		return nil, err
	}

	totalSales, err := s.analyticsRepo.CountSales(ctx)
	if err != nil {
		return nil, err
	}

	activeCustomers, err := s.analyticsRepo.CountActiveCustomers(ctx)
	if err != nil {
		return nil, err
	}

	lowStock, err := s.analyticsRepo.CountLowStockItems(ctx)
	if err != nil {
		return nil, err
	}

	topItems, err := s.analyticsRepo.GetTopItems(ctx, 5)
	if err != nil {
		return nil, err
	}

	topCustomers, err := s.analyticsRepo.GetTopCustomers(ctx, 5)
	if err != nil {
		return nil, err
	}

	monthly, err := s.analyticsRepo.GetMonthlyRevenue(ctx, 12)
	if err != nil {
		return nil, err
	}

	daily, err := s.analyticsRepo.GetDailySales(ctx, 30)
	if err != nil {
		return nil, err
	}

	categories, err := s.analyticsRepo.GetCategoryTotals(ctx)
	if err != nil {
		return nil, err
	}

	avgOrderValue := 0.0
	if totalSales > 0 {
		avgOrderValue = totalRevenue / float64(totalSales)
	}

	return &DashboardStats{
		TotalSales:        totalSales,
		TotalRevenue:      totalRevenue,
		AverageOrderValue: avgOrderValue,
		ActiveCustomers:   activeCustomers,
		LowStockItems:     lowStock,
		TopItems:          topItems,
		TopCustomers:      topCustomers,
		MonthlyRevenue:    monthly,
		DailySales:        daily,
		CategoryTotals:    categories,
	}, nil
}

// MonthlyRevenueChart renders the monthly revenue bar chart as PNG
func (s *DashboardService) MonthlyRevenueChart(ctx context.Context, months int) ([]byte, error) {
	monthly, err := s.analyticsRepo.GetMonthlyRevenue(ctx, months)
	if err != nil {
		return nil, err
	}

	points := make([]chart.MonthlyPoint, 0, len(monthly))
	for _, m := range monthly {
		points = append(points, chart.MonthlyPoint{
			Month: m.Month,
			Value: m.Sales + m.Income,
		})
	}
	return chart.RenderMonthlyRevenue(points)
}

// DailySalesChart renders the daily sales trend line as PNG
func (s *DashboardService) DailySalesChart(ctx context.Context, days int) ([]byte, error) {
	daily, err := s.analyticsRepo.GetDailySales(ctx, days)
	if err != nil {
		return nil, err
	}

	points := make([]chart.DailyPoint, 0, len(daily))
	for _, d := range daily {
		points = append(points, chart.DailyPoint{
			Date:  d.Date,
			Value: d.Revenue,
		})
	}
	return chart.RenderDailySalesTrend(points)
}
