package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/primag/sales-api/internal/domain/entity"
	"github.com/primag/sales-api/internal/domain/enum"
	"github.com/primag/sales-api/pkg/pagination"
)

// TransactionFilter narrows transaction listings and export queries.
type TransactionFilter struct {
	CustomerID *uuid.UUID
	Type       *enum.TransactionType
	DateFrom   *time.Time
	DateTo     *time.Time
}

// TransactionRepository defines the interface for transaction data operations
type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	Update(ctx context.Context, tx *entity.Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, filter TransactionFilter) ([]entity.Transaction, int64, error)
	// ListByFilter returns all matching transactions without pagination, for exports.
	ListByFilter(ctx context.Context, filter TransactionFilter) ([]entity.Transaction, error)
	// IncomeTotalsForPeriod sums total, tax, GST and count over income
	// transactions for a customer between start and end inclusive.
	IncomeTotalsForPeriod(ctx context.Context, customerID uuid.UUID, start, end time.Time) (entity.PeriodTotals, error)
	// IncomeDates returns the distinct dates of a customer's income
	// transactions, oldest first.
	IncomeDates(ctx context.Context, customerID uuid.UUID) ([]time.Time, error)
	// CountCreatedOn counts transactions created on the given calendar day.
	CountCreatedOn(ctx context.Context, day time.Time) (int64, error)
}

// ReceiptRepository defines the interface for receipt data operations
type ReceiptRepository interface {
	Create(ctx context.Context, receipt *entity.Receipt) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)
	GetByTransactionID(ctx context.Context, transactionID uuid.UUID) (*entity.Receipt, error)
	GetByNumber(ctx context.Context, number string) (*entity.Receipt, error)
	Update(ctx context.Context, receipt *entity.Receipt) error
	List(ctx context.Context, params *pagination.PaginationParams, status *enum.ReceiptStatus) ([]entity.Receipt, int64, error)
	// CountCreatedOn counts receipts created on the given calendar day,
	// used to derive the next receipt number.
	CountCreatedOn(ctx context.Context, day time.Time) (int64, error)
}
