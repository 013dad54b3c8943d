package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/primag/sales-api/internal/domain/entity"
	"github.com/primag/sales-api/internal/domain/enum"
	"github.com/primag/sales-api/internal/domain/repository"
	"github.com/primag/sales-api/pkg/apperror"
	"github.com/primag/sales-api/pkg/pagination"
	"github.com/primag/sales-api/pkg/utils"
	"github.com/shopspring/decimal"
)

// ItemService handles inventory operations
type ItemService struct {
	itemRepo     repository.ItemRepository
	categoryRepo repository.CategoryRepository
	movementRepo repository.StockMovementRepository
}

// NewItemService creates a new item service
func NewItemService(
	itemRepo repository.ItemRepository,
	categoryRepo repository.CategoryRepository,
	movementRepo repository.StockMovementRepository,
) *ItemService {
	return &ItemService{
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
		movementRepo: movementRepo,
	}
}

// CreateItemInput represents the create item input
type CreateItemInput struct {
	CreatedBy     uuid.UUID
	Name          string
	SKU           string
	Description   string
	CategoryID    *uuid.UUID
	UnitOfMeasure string
	CostPrice     decimal.Decimal
	SellingPrice  decimal.Decimal
	Quantity      int
	MinStockLevel int
}

// CreateItem creates an inventory item. An empty SKU gets a generated
// one; an opening quantity is recorded as a purchase movement.
func (s *ItemService) CreateItem(ctx context.Context, input *CreateItemInput) (*entity.Item, error) {
	if input.SellingPrice.IsNegative() || input.CostPrice.IsNegative() {
		return nil, apperror.NewBadRequestError("Prices must not be negative")
	}
	if input.Quantity < 0 || input.MinStockLevel < 0 {
		return nil, apperror.NewBadRequestError("Quantities must not be negative")
	}

	sku := input.SKU
	if sku == "" {
		sku = utils.GenerateSKU()
	} else {
		existing, err := s.itemRepo.GetBySKU(ctx, sku)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Item with this SKU already exists")
		}
	}

	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
	}

	item := &entity.Item{
		CreatedBy:     input.CreatedBy,
		Name:          input.Name,
		SKU:           sku,
		Description:   input.Description,
		CategoryID:    input.CategoryID,
		UnitOfMeasure: input.UnitOfMeasure,
		CostPrice:     input.CostPrice,
		SellingPrice:  input.SellingPrice,
		Quantity:      input.Quantity,
		MinStockLevel: input.MinStockLevel,
		IsActive:      true,
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	if input.Quantity > 0 {
		movement := &entity.StockMovement{
			ItemID:    item.ID,
			Type:      enum.MovementTypePurchase,
			Quantity:  input.Quantity,
			Notes:     "opening stock",
			CreatedBy: input.CreatedBy,
		}
		if err := s.movementRepo.Create(ctx, movement); err != nil {
			return nil, err
		}
	}

	return item, nil
}

// GetItem retrieves an item by ID
func (s *ItemService) GetItem(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}
	return item, nil
}

// ListItems lists items with pagination and filters
func (s *ItemService) ListItems(ctx context.Context, params *pagination.PaginationParams, search string, categoryID *uuid.UUID, lowStockOnly bool) (*pagination.PaginatedResult[entity.Item], error) {
	items, total, err := s.itemRepo.List(ctx, params, search, categoryID, lowStockOnly)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}

// ListItemsForExport returns all active items without pagination
func (s *ItemService) ListItemsForExport(ctx context.Context) ([]entity.Item, error) {
	return s.itemRepo.ListAll(ctx)
}

// UpdateItemInput represents the update item input
type UpdateItemInput struct {
	ID            uuid.UUID
	Name          *string
	Description   *string
	CategoryID    *uuid.UUID
	UnitOfMeasure *string
	CostPrice     *decimal.Decimal
	SellingPrice  *decimal.Decimal
	MinStockLevel *int
	IsActive      *bool
}

// UpdateItem updates an item. Quantity changes go through AdjustStock
// so every change leaves a movement row.
func (s *ItemService) UpdateItem(ctx context.Context, input *UpdateItemInput) (*entity.Item, error) {
	item, err := s.GetItem(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
		item.CategoryID = input.CategoryID
	}
	if input.UnitOfMeasure != nil {
		item.UnitOfMeasure = *input.UnitOfMeasure
	}
	if input.CostPrice != nil {
		if input.CostPrice.IsNegative() {
			return nil, apperror.NewBadRequestError("Prices must not be negative")
		}
		item.CostPrice = *input.CostPrice
	}
	if input.SellingPrice != nil {
		if input.SellingPrice.IsNegative() {
			return nil, apperror.NewBadRequestError("Prices must not be negative")
		}
		item.SellingPrice = *input.SellingPrice
	}
	if input.MinStockLevel != nil {
		if *input.MinStockLevel < 0 {
			return nil, apperror.NewBadRequestError("Quantities must not be negative")
		}
		item.MinStockLevel = *input.MinStockLevel
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// AdjustStockInput represents a manual stock adjustment
type AdjustStockInput struct {
	ItemID    uuid.UUID
	ActorID   uuid.UUID
	Delta     int
	Type      enum.MovementType
	Reference string
	Notes     string
}

// AdjustStock applies a signed quantity change with a movement record.
// Stock can never go negative.
func (s *ItemService) AdjustStock(ctx context.Context, input *AdjustStockInput) (*entity.Item, error) {
	if input.Delta == 0 {
		return nil, apperror.NewBadRequestError("Adjustment must be non-zero")
	}

	item, err := s.GetItem(ctx, input.ItemID)
	if err != nil {
		return nil, err
	}
	if item.Quantity+input.Delta < 0 {
		return nil, apperror.NewConflictError("Adjustment would make stock negative")
	}

	movement := &entity.StockMovement{
		Type:      input.Type,
		Reference: input.Reference,
		Notes:     input.Notes,
		CreatedBy: input.ActorID,
	}
	return s.itemRepo.AdjustQuantity(ctx, input.ItemID, input.Delta, movement)
}

// ListMovements lists an item's stock movements
func (s *ItemService) ListMovements(ctx context.Context, itemID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.StockMovement], error) {
	if _, err := s.GetItem(ctx, itemID); err != nil {
		return nil, err
	}

	movements, total, err := s.movementRepo.ListByItem(ctx, itemID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(movements, pag), nil
}

// DeleteItem soft-deletes an item
func (s *ItemService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetItem(ctx, id); err != nil {
		return err
	}
	return s.itemRepo.Delete(ctx, id)
}

// CreateCategory creates an item category
func (s *ItemService) CreateCategory(ctx context.Context, name, description string) (*entity.Category, error) {
	existing, err := s.categoryRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Category with this name already exists")
	}

	category := &entity.Category{
		Name:        name,
		Description: description,
		IsActive:    true,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories lists all categories
func (s *ItemService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return s.categoryRepo.List(ctx)
}

// UpdateCategory updates a category's name or description
func (s *ItemService) UpdateCategory(ctx context.Context, id uuid.UUID, name, description *string) (*entity.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}

	if name != nil && *name != category.Name {
		existing, err := s.categoryRepo.GetByName(ctx, *name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Category with this name already exists")
		}
		category.Name = *name
	}
	if description != nil {
		category.Description = *description
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory soft-deletes a category
func (s *ItemService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.NewNotFoundError("Category")
	}
	return s.categoryRepo.Delete(ctx, id)
}
