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
	"gorm.io/gorm"
)

type revenueRepository struct {
	db *gorm.DB
}

// NewRevenueRepository creates a new revenue repository
func NewRevenueRepository(db *gorm.DB) domainRepo.RevenueRepository {
	return &revenueRepository{db: db}
}

// GetOrCreate finds or inserts the period row. When two recomputes race
// on the same period, the loser's insert hits the unique index and the
// winner's row is read back instead.
func (r *revenueRepository) GetOrCreate(ctx context.Context, customerID uuid.UUID, freq enum.Frequency, start, end time.Time) (*entity.Revenue, bool, error) {
	var revenue entity.Revenue
	err := r.db.WithContext(ctx).
		First(&revenue, "customer_id = ? AND frequency = ? AND start_date = ?", customerID, freq, start).Error
	if err == nil {
		return &revenue, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	revenue = entity.Revenue{
		CustomerID: customerID,
		Frequency:  freq,
		StartDate:  start,
		EndDate:    end,
	}
	if err := r.db.WithContext(ctx).Create(&revenue).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing entity.Revenue
			retryErr := r.db.WithContext(ctx).
				First(&existing, "customer_id = ? AND frequency = ? AND start_date = ?", customerID, freq, start).Error
			if retryErr != nil {
				return nil, false, retryErr
			}
			return &existing, false, nil
		}
		return nil, false, err
	}
	return &revenue, true, nil
}

func (r *revenueRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Revenue, error) {
	var revenue entity.Revenue
	err := r.db.WithContext(ctx).
		Preload("Customer").
		First(&revenue, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &revenue, err
}

func (r *revenueRepository) Update(ctx context.Context, revenue *entity.Revenue) error {
	return r.db.WithContext(ctx).Save(revenue).Error
}

func (r *revenueRepository) List(ctx context.Context, params *pagination.PaginationParams, customerID *uuid.UUID, freq *enum.Frequency) ([]entity.Revenue, int64, error) {
	var revenues []entity.Revenue
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Revenue{})
	if customerID != nil {
		query = query.Where("customer_id = ?", *customerID)
	}
	if freq != nil {
		query = query.Where("frequency = ?", *freq)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Customer").
		Order("start_date DESC").
		Find(&revenues).Error

	return revenues, total, err
}

func (r *revenueRepository) ListByFilter(ctx context.Context, customerID *uuid.UUID, freq *enum.Frequency, from, to *time.Time) ([]entity.Revenue, error) {
	var revenues []entity.Revenue

	query := r.db.WithContext(ctx).Model(&entity.Revenue{})
	if customerID != nil {
		query = query.Where("customer_id = ?", *customerID)
	}
	if freq != nil {
		query = query.Where("frequency = ?", *freq)
	}
	if from != nil {
		query = query.Where("start_date >= ?", *from)
	}
	if to != nil {
		query = query.Where("start_date <= ?", *to)
	}

	err := query.Preload("Customer").
		Order("start_date DESC").
		Find(&revenues).Error
	return revenues, err
}
