package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/primag/sales-api/internal/domain/entity"
	"github.com/primag/sales-api/pkg/pagination"
)

// ItemRepository defines the interface for inventory item data operations
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string, categoryID *uuid.UUID, lowStockOnly bool) ([]entity.Item, int64, error)
	ListAll(ctx context.Context) ([]entity.Item, error)
	// AdjustQuantity applies a signed delta to the item's quantity and
	// records the movement in one transaction. Returns the updated item.
	AdjustQuantity(ctx context.Context, itemID uuid.UUID, delta int, movement *entity.StockMovement) (*entity.Item, error)
}

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	GetByName(ctx context.Context, name string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.Category, error)
}

// StockMovementRepository defines the interface for stock movement data operations
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	ListByItem(ctx context.Context, itemID uuid.UUID, params *pagination.PaginationParams) ([]entity.StockMovement, int64, error)
}
