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

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) domainRepo.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, tx *entity.Transaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

func (r *transactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var tx entity.Transaction
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Receipt").
		First(&tx, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &tx, err
}

func (r *transactionRepository) Update(ctx context.Context, tx *entity.Transaction) error {
	return r.db.WithContext(ctx).Save(tx).Error
}

func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Transaction{}, "id = ?", id).Error
}

func applyTransactionFilter(query *gorm.DB, filter domainRepo.TransactionFilter) *gorm.DB {
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}
	if filter.DateFrom != nil {
		query = query.Where("transaction_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("transaction_date <= ?", *filter.DateTo)
	}
	return query
}

func (r *transactionRepository) List(ctx context.Context, params *pagination.PaginationParams, filter domainRepo.TransactionFilter) ([]entity.Transaction, int64, error) {
	var txs []entity.Transaction
	var total int64

	query := applyTransactionFilter(r.db.WithContext(ctx).Model(&entity.Transaction{}), filter)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Customer").
		Order("transaction_date DESC, created_at DESC").
		Find(&txs).Error

	return txs, total, err
}

func (r *transactionRepository) ListByFilter(ctx context.Context, filter domainRepo.TransactionFilter) ([]entity.Transaction, error) {
	var txs []entity.Transaction
	query := applyTransactionFilter(r.db.WithContext(ctx).Model(&entity.Transaction{}), filter)
	err := query.Preload("Customer").
		Order("transaction_date DESC, created_at DESC").
		Find(&txs).Error
	return txs, err
}

func (r *transactionRepository) IncomeTotalsForPeriod(ctx context.Context, customerID uuid.UUID, start, end time.Time) (entity.PeriodTotals, error) {
	var row struct {
		Total decimal.Decimal
		Tax   decimal.Decimal
		GST   decimal.Decimal
		Count int64
	}
	err := r.db.WithContext(ctx).Model(&entity.Transaction{}).
		Select(`COALESCE(SUM(total_amount), 0) as total,
			COALESCE(SUM(tax_amount), 0) as tax,
			COALESCE(SUM(gst_amount), 0) as gst,
			COUNT(id) as count`).
		Where("customer_id = ? AND type = ? AND transaction_date BETWEEN ? AND ?",
			customerID, enum.TransactionTypeIncome, start, end).
		Scan(&row).Error
	if err != nil {
		return entity.PeriodTotals{}, err
	}
	return entity.PeriodTotals{Total: row.Total, Tax: row.Tax, GST: row.GST, Count: row.Count}, nil
}

func (r *transactionRepository) IncomeDates(ctx context.Context, customerID uuid.UUID) ([]time.Time, error) {
	var dates []time.Time
	err := r.db.WithContext(ctx).Model(&entity.Transaction{}).
		Distinct("transaction_date").
		Where("customer_id = ? AND type = ?", customerID, enum.TransactionTypeIncome).
		Order("transaction_date").
		Pluck("transaction_date", &dates).Error
	return dates, err
}

func (r *transactionRepository) CountCreatedOn(ctx context.Context, day time.Time) (int64, error) {
	var count int64
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	err := r.db.WithContext(ctx).Model(&entity.Transaction{}).
		Where("created_at >= ? AND created_at < ?", start, start.AddDate(0, 0, 1)).
		Count(&count).Error
	return count, err
}

type receiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository creates a new receipt repository
func NewReceiptRepository(db *gorm.DB) domainRepo.ReceiptRepository {
	return &receiptRepository{db: db}
}

func (r *receiptRepository) Create(ctx context.Context, receipt *entity.Receipt) error {
	return r.db.WithContext(ctx).Create(receipt).Error
}

func (r *receiptRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	var receipt entity.Receipt
	err := r.db.WithContext(ctx).
		Preload("Transaction.Customer").
		First(&receipt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &receipt, err
}

func (r *receiptRepository) GetByTransactionID(ctx context.Context, transactionID uuid.UUID) (*entity.Receipt, error) {
	var receipt entity.Receipt
	err := r.db.WithContext(ctx).First(&receipt, "transaction_id = ?", transactionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &receipt, err
}

func (r *receiptRepository) GetByNumber(ctx context.Context, number string) (*entity.Receipt, error) {
	var receipt entity.Receipt
	err := r.db.WithContext(ctx).
		Preload("Transaction.Customer").
		First(&receipt, "receipt_number = ?", number).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &receipt, err
}

func (r *receiptRepository) Update(ctx context.Context, receipt *entity.Receipt) error {
	return r.db.WithContext(ctx).Save(receipt).Error
}

func (r *receiptRepository) List(ctx context.Context, params *pagination.PaginationParams, status *enum.ReceiptStatus) ([]entity.Receipt, int64, error) {
	var receipts []entity.Receipt
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Receipt{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Transaction.Customer").
		Order("created_at DESC").
		Find(&receipts).Error

	return receipts, total, err
}

func (r *receiptRepository) CountCreatedOn(ctx context.Context, day time.Time) (int64, error) {
	var count int64
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	err := r.db.WithContext(ctx).Model(&entity.Receipt{}).
		Where("created_at >= ? AND created_at < ?", start, start.AddDate(0, 0, 1)).
		Count(&count).Error
	return count, err
}
