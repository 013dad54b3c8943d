package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/primag/sales-api/internal/domain/entity"
	"github.com/primag/sales-api/internal/domain/enum"
	domainRepo "github.com/primag/sales-api/internal/domain/repository"
	"github.com/primag/sales-api/pkg/pagination"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	// GORM persists the items alongside the sale in one transaction
	return r.db.WithContext(ctx).Create(sale).Error
}

func (r *saleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Items.Item").
		First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) GetByNumber(ctx context.Context, number string) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Items.Item").
		First(&sale, "sale_number = ?", number).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) Update(ctx context.Context, sale *entity.Sale) error {
	return r.db.WithContext(ctx).Omit("Items").Save(sale).Error
}

func (r *saleRepository) ReplaceItems(ctx context.Context, sale *entity.Sale) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.SaleItem{}, "sale_id = ?", sale.ID).Error; err != nil {
			return err
		}
		for i := range sale.Items {
			sale.Items[i].SaleID = sale.ID
			if err := tx.Create(&sale.Items[i]).Error; err != nil {
				return err
			}
		}
		return tx.Omit("Items").Save(sale).Error
	})
}

func (r *saleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Sale{}, "id = ?", id).Error
}

func applySaleFilter(query *gorm.DB, filter domainRepo.SaleFilter) *gorm.DB {
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.DateFrom != nil {
		query = query.Where("sale_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("sale_date <= ?", *filter.DateTo)
	}
	return query
}

func (r *saleRepository) List(ctx context.Context, params *pagination.PaginationParams, filter domainRepo.SaleFilter) ([]entity.Sale, int64, error) {
	var sales []entity.Sale
	var total int64

	query := applySaleFilter(r.db.WithContext(ctx).Model(&entity.Sale{}), filter)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Customer").
		Preload("Items").
		Order("sale_date DESC, created_at DESC").
		Find(&sales).Error

	return sales, total, err
}

func (r *saleRepository) ListByFilter(ctx context.Context, filter domainRepo.SaleFilter) ([]entity.Sale, error) {
	var sales []entity.Sale
	query := applySaleFilter(r.db.WithContext(ctx).Model(&entity.Sale{}), filter)
	err := query.Preload("Customer").
		Preload("Items.Item").
		Order("sale_date DESC, created_at DESC").
		Find(&sales).Error
	return sales, err
}

func (r *saleRepository) CountCreatedOn(ctx context.Context, day time.Time) (int64, error) {
	var count int64
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	err := r.db.WithContext(ctx).Model(&entity.Sale{}).
		Unscoped().
		Where("created_at >= ? AND created_at < ?", start, start.AddDate(0, 0, 1)).
		Count(&count).Error
	return count, err
}

func (r *saleRepository) TotalsForPeriod(ctx context.Context, customerID uuid.UUID, start, end time.Time) (entity.PeriodTotals, error) {
	var row struct {
		Total decimal.Decimal
		Tax   decimal.Decimal
		GST   decimal.Decimal
		Count int64
	}
	err := r.db.WithContext(ctx).Model(&entity.Sale{}).
		Select(`COALESCE(SUM(grand_total), 0) as total,
			COALESCE(SUM(tax_total), 0) as tax,
			COALESCE(SUM(gst_total), 0) as gst,
			COUNT(id) as count`).
		Where("customer_id = ? AND status IN ? AND sale_date BETWEEN ? AND ?",
			customerID, revenueStatuses(), start, end).
		Scan(&row).Error
	if err != nil {
		return entity.PeriodTotals{}, err
	}
	return entity.PeriodTotals{Total: row.Total, Tax: row.Tax, GST: row.GST, Count: row.Count}, nil
}

// RevenueDates lists the distinct sale dates that carry revenue-counting
// sales for the customer, oldest first.
func (r *saleRepository) RevenueDates(ctx context.Context, customerID uuid.UUID) ([]time.Time, error) {
	var dates []time.Time
	err := r.db.WithContext(ctx).Model(&entity.Sale{}).
		Distinct("sale_date").
		Where("customer_id = ? AND status IN ?", customerID, revenueStatuses()).
		Order("sale_date").
		Pluck("sale_date", &dates).Error
	return dates, err
}

func revenueStatuses() []enum.SaleStatus {
	return []enum.SaleStatus{
		enum.SaleStatusConfirmed,
		enum.SaleStatusDispatched,
		enum.SaleStatusDelivered,
	}
}
