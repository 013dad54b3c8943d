package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/primag/sales-api/internal/domain/entity"
	"github.com/primag/sales-api/pkg/pagination"
)

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	GetByEmail(ctx context.Context, email string) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns customers with page-based pagination, optionally filtered by a search term.
	List(ctx context.Context, params *pagination.PaginationParams, search string, activeOnly bool) ([]entity.Customer, int64, error)
	// ListWithCursor returns customers using cursor-based pagination.
	ListWithCursor(ctx context.Context, params *pagination.CursorParams, search string) ([]entity.Customer, error)
	// ListAll returns every active customer without pagination, for bulk recomputes and exports.
	ListAll(ctx context.Context) ([]entity.Customer, error)
}
