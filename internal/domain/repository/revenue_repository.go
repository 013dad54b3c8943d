package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/primag/sales-api/internal/domain/entity"
	"github.com/primag/sales-api/internal/domain/enum"
	"github.com/primag/sales-api/pkg/pagination"
)

// RevenueRepository defines the interface for revenue rollup data operations
type RevenueRepository interface {
	// GetOrCreate returns the row for (customer, frequency, start) or
	// inserts a zeroed one, reporting whether it inserted. A concurrent
	// insert losing the unique-index race is retried by re-reading the
	// winner's row.
	GetOrCreate(ctx context.Context, customerID uuid.UUID, freq enum.Frequency, start, end time.Time) (*entity.Revenue, bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Revenue, error)
	Update(ctx context.Context, revenue *entity.Revenue) error
	List(ctx context.Context, params *pagination.PaginationParams, customerID *uuid.UUID, freq *enum.Frequency) ([]entity.Revenue, int64, error)
	ListByFilter(ctx context.Context, customerID *uuid.UUID, freq *enum.Frequency, from, to *time.Time) ([]entity.Revenue, error)
}
