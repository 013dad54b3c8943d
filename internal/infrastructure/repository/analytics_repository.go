package repository

import (
	"context"
	"time"

	"github.com/primag/sales-api/internal/domain/entity"
	"github.com/primag/sales-api/internal/domain/enum"
	domainRepo "github.com/primag/sales-api/internal/domain/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetTopItems(ctx context.Context, limit int) ([]domainRepo.TopItemResult, error) {
	var results []domainRepo.TopItemResult
	err := r.db.WithContext(ctx).
		Table("sale_items").
		Select(`items.id as item_id,
			items.name as item_name,
			items.sku as sku,
			SUM(sale_items.quantity) as quantity_sold,
			SUM(sale_items.line_total) as revenue`).
		Joins("JOIN items ON items.id = sale_items.item_id").
		Joins("JOIN sales ON sales.id = sale_items.sale_id").
		Where("sales.status IN ? AND sales.deleted_at IS NULL", revenueStatuses()).
		Group("items.id, items.name, items.sku").
		Order("revenue DESC").
		Limit(limit).
		Scan(&results).Error
	return results, err
}

func (r *analyticsRepository) GetTopCustomers(ctx context.Context, limit int) ([]domainRepo.TopCustomerResult, error) {
	var results []domainRepo.TopCustomerResult
	err := r.db.WithContext(ctx).
		Table("sales").
		Select(`customers.id as customer_id,
			customers.name as customer_name,
			SUM(sales.grand_total) as total_spent,
			COUNT(sales.id) as sale_count`).
		Joins("JOIN customers ON customers.id = sales.customer_id").
		Where("sales.status IN ? AND sales.deleted_at IS NULL", revenueStatuses()).
		Group("customers.id, customers.name").
		Order("total_spent DESC").
		Limit(limit).
		Scan(&results).Error
	return results, err
}

func (r *analyticsRepository) GetMonthlyRevenue(ctx context.Context, months int) ([]domainRepo.MonthlyRevenueResult, error) {
	since := time.Now().AddDate(0, -months, 0)
	var results []domainRepo.MonthlyRevenueResult

	rows := []struct {
		Month  time.Time
		Amount float64
		Kind   string
	}{}

	err := r.db.WithContext(ctx).Raw(`
		SELECT date_trunc('month', sale_date) AS month, SUM(grand_total) AS amount, 'sales' AS kind
		FROM sales
		WHERE status IN ? AND deleted_at IS NULL AND sale_date >= ?
		GROUP BY 1
		UNION ALL
		SELECT date_trunc('month', transaction_date) AS month, SUM(total_amount) AS amount,
			CASE WHEN type = ? THEN 'income' ELSE 'expense' END AS kind
		FROM transactions
		WHERE transaction_date >= ?
		GROUP BY 1, type
		ORDER BY month ASC`,
		revenueStatuses(), since, enum.TransactionTypeIncome, since).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	byMonth := map[time.Time]*domainRepo.MonthlyRevenueResult{}
	order := []time.Time{}
	for _, row := range rows {
		m, ok := byMonth[row.Month]
		if !ok {
			m = &domainRepo.MonthlyRevenueResult{Month: row.Month}
			byMonth[row.Month] = m
			order = append(order, row.Month)
		}
		switch row.Kind {
		case "sales":
			m.Sales += row.Amount
		case "income":
			m.Income += row.Amount
		case "expense":
			m.Expense += row.Amount
		}
	}
	for _, month := range order {
		results = append(results, *byMonth[month])
	}
	return results, nil
}

func (r *analyticsRepository) GetDailySales(ctx context.Context, days int) ([]domainRepo.DailySalesResult, error) {
	since := time.Now().AddDate(0, 0, -days)
	var results []domainRepo.DailySalesResult
	err := r.db.WithContext(ctx).
		Table("sales").
		Select("sale_date as date, SUM(grand_total) as revenue, COUNT(id) as count").
		Where("status IN ? AND deleted_at IS NULL AND sale_date >= ?", revenueStatuses(), since).
		Group("sale_date").
		Order("sale_date ASC").
		Scan(&results).Error
	return results, err
}

func (r *analyticsRepository) GetCategoryTotals(ctx context.Context) ([]domainRepo.CategoryTotalResult, error) {
	var results []domainRepo.CategoryTotalResult
	err := r.db.WithContext(ctx).
		Table("sale_items").
		Select(`categories.id as category_id,
			COALESCE(categories.name, 'Uncategorized') as category_name,
			SUM(sale_items.quantity) as quantity_sold,
			SUM(sale_items.line_total) as revenue`).
		Joins("JOIN items ON items.id = sale_items.item_id").
		Joins("LEFT JOIN categories ON categories.id = items.category_id").
		Joins("JOIN sales ON sales.id = sale_items.sale_id").
		Where("sales.status IN ? AND sales.deleted_at IS NULL", revenueStatuses()).
		Group("categories.id, categories.name").
		Order("revenue DESC").
		Scan(&results).Error
	return results, err
}

func (r *analyticsRepository) GetTotalRevenue(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Table("sales").
		Select("COALESCE(SUM(grand_total), 0)").
		Where("status IN ? AND deleted_at IS NULL", revenueStatuses()).
		Scan(&total).Error
	return total, err
}

func (r *analyticsRepository) CountSales(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Sale{}).
		Where("status IN ?", revenueStatuses()).
		Count(&count).Error
	return count, err
}

func (r *analyticsRepository) CountActiveCustomers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Customer{}).
		Where("is_active = ?", true).
		Count(&count).Error
	return count, err
}

func (r *analyticsRepository) CountLowStockItems(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Item{}).
		Where("is_active = ? AND quantity <= min_stock_level", true).
		Count(&count).Error
	return count, err
}
