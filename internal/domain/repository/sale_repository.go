package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/primag/sales-api/internal/domain/entity"
	"github.com/primag/sales-api/internal/domain/enum"
	"github.com/primag/sales-api/pkg/pagination"
)

// SaleFilter narrows sale listings and export queries.
type SaleFilter struct {
	CustomerID *uuid.UUID
	Status     *enum.SaleStatus
	DateFrom   *time.Time
	DateTo     *time.Time
}

// SaleRepository defines the interface for sale data operations
type SaleRepository interface {
	// Create persists a sale with its items in one transaction.
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	GetByNumber(ctx context.Context, number string) (*entity.Sale, error)
	Update(ctx context.Context, sale *entity.Sale) error
	// ReplaceItems swaps a sale's line items and updates its totals atomically.
	ReplaceItems(ctx context.Context, sale *entity.Sale) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, filter SaleFilter) ([]entity.Sale, int64, error)
	ListByFilter(ctx context.Context, filter SaleFilter) ([]entity.Sale, error)
	// CountCreatedOn counts sales created on the given calendar day,
	// used to derive the next sale number.
	CountCreatedOn(ctx context.Context, day time.Time) (int64, error)
	// TotalsForPeriod sums grand total, tax, GST and count over
	// revenue-counting sales for a customer between start and end
	// inclusive.
	TotalsForPeriod(ctx context.Context, customerID uuid.UUID, start, end time.Time) (entity.PeriodTotals, error)
	// RevenueDates returns the distinct sale dates of revenue-counting
	// sales for a customer, oldest first. Drives the bulk rollup so
	// back-dated and historical periods are rebuilt too.
	RevenueDates(ctx context.Context, customerID uuid.UUID) ([]time.Time, error)
}
