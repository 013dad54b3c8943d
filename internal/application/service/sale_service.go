package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/primag/sales-api/internal/application/hook"
	"github.com/primag/sales-api/internal/config"
	"github.com/primag/sales-api/internal/domain/entity"
	"github.com/primag/sales-api/internal/domain/enum"
	"github.com/primag/sales-api/internal/domain/repository"
	"github.com/primag/sales-api/pkg/apperror"
	"github.com/primag/sales-api/pkg/pagination"
	"github.com/primag/sales-api/pkg/report"
	"github.com/primag/sales-api/pkg/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SaleService handles sale order operations
type SaleService struct {
	saleRepo   repository.SaleRepository
	itemRepo   repository.ItemRepository
	customerRepo repository.CustomerRepository
	letterhead config.LetterheadConfig
	dispatcher *hook.Dispatcher
}

// NewSaleService creates a new sale service
func NewSaleService(
	saleRepo repository.SaleRepository,
	itemRepo repository.ItemRepository,
	customerRepo repository.CustomerRepository,
	letterhead config.LetterheadConfig,
	dispatcher *hook.Dispatcher,
) *SaleService {
	return &SaleService{
		saleRepo:     saleRepo,
		itemRepo:     itemRepo,
		customerRepo: customerRepo,
		letterhead:   letterhead,
		dispatcher:   dispatcher,
	}
}

// SaleLineInput is one requested line on a sale
type SaleLineInput struct {
	ItemID        uuid.UUID
	Quantity      int
	UnitPrice     *decimal.Decimal
	TaxPercentage decimal.Decimal
	GSTPercentage decimal.Decimal
}

// CreateSaleInput represents the create sale input
type CreateSaleInput struct {
	CustomerID uuid.UUID
	CreatedBy  uuid.UUID
	SaleDate   time.Time
	Notes      string
	Lines      []SaleLineInput
}

// CreateSale creates a draft sale with derived totals and a daily
// sequential sale number. Lines default to the item's selling price
// when no unit price is given.
func (s *SaleService) CreateSale(ctx context.Context, input *CreateSaleInput) (*entity.Sale, error) {
	if len(input.Lines) == 0 {
		return nil, apperror.NewBadRequestError("Sale requires at least one line")
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	items := make([]entity.SaleItem, 0, len(input.Lines))
	for _, line := range input.Lines {
		if line.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Line quantity must be positive")
		}
		item, err := s.itemRepo.GetByID(ctx, line.ItemID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, apperror.NewNotFoundError("Item")
		}

		unitPrice := item.SellingPrice
		if line.UnitPrice != nil {
			unitPrice = *line.UnitPrice
		}

		items = append(items, entity.SaleItem{
			ItemID:        item.ID,
			Quantity:      line.Quantity,
			UnitPrice:     unitPrice,
			TaxPercentage: line.TaxPercentage,
			GSTPercentage: line.GSTPercentage,
		})
	}

	var sale *entity.Sale
	for attempt := 0; attempt < numberRetries; attempt++ {
		count, err := s.saleRepo.CountCreatedOn(ctx, time.Now())
		if err != nil {
			return nil, err
		}

		sale = &entity.Sale{
			SaleNumber: utils.SequentialNumber("SAL", time.Now(), count+1),
			CustomerID: input.CustomerID,
			CreatedBy:  input.CreatedBy,
			Status:     enum.SaleStatusDraft,
			SaleDate:   input.SaleDate,
			Notes:      input.Notes,
			Items:      items,
		}
		sale.RecomputeTotals()

		err = s.saleRepo.Create(ctx, sale)
		if err == nil {
			s.dispatcher.Dispatch(ctx, hook.Event{
				Entity:   "sale",
				Action:   "create",
				EntityID: sale.ID.String(),
				Payload:  sale,
			})
			return sale, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
	}
	return nil, apperror.NewConflictError("Could not allocate a sale number, try again")
}

// GetSale retrieves a sale by ID
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListSales lists sales with pagination and filters
func (s *SaleService) ListSales(ctx context.Context, params *pagination.PaginationParams, filter repository.SaleFilter) (*pagination.PaginatedResult[entity.Sale], error) {
	sales, total, err := s.saleRepo.List(ctx, params, filter)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(sales, pag), nil
}

// ListSalesForExport returns all matching sales without pagination
func (s *SaleService) ListSalesForExport(ctx context.Context, filter repository.SaleFilter) ([]entity.Sale, error) {
	return s.saleRepo.ListByFilter(ctx, filter)
}

// UpdateSaleInput represents the update sale input
type UpdateSaleInput struct {
	ID       uuid.UUID
	SaleDate *time.Time
	Notes    *string
	Lines    []SaleLineInput
}

// UpdateSale replaces a draft sale's lines and recomputes its totals.
// Only draft sales can be edited.
func (s *SaleService) UpdateSale(ctx context.Context, input *UpdateSaleInput) (*entity.Sale, error) {
	sale, err := s.GetSale(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if sale.Status != enum.SaleStatusDraft {
		return nil, apperror.NewConflictError("Only draft sales can be edited")
	}

	if input.SaleDate != nil {
		sale.SaleDate = *input.SaleDate
	}
	if input.Notes != nil {
		sale.Notes = *input.Notes
	}

	if input.Lines != nil {
		if len(input.Lines) == 0 {
			return nil, apperror.NewBadRequestError("Sale requires at least one line")
		}
		items := make([]entity.SaleItem, 0, len(input.Lines))
		for _, line := range input.Lines {
			if line.Quantity <= 0 {
				return nil, apperror.NewBadRequestError("Line quantity must be positive")
			}
			item, err := s.itemRepo.GetByID(ctx, line.ItemID)
			if err != nil {
				return nil, err
			}
			if item == nil {
				return nil, apperror.NewNotFoundError("Item")
			}
			unitPrice := item.SellingPrice
			if line.UnitPrice != nil {
				unitPrice = *line.UnitPrice
			}
			items = append(items, entity.SaleItem{
				ItemID:        item.ID,
				Quantity:      line.Quantity,
				UnitPrice:     unitPrice,
				TaxPercentage: line.TaxPercentage,
				GSTPercentage: line.GSTPercentage,
			})
		}
		sale.Items = items
		sale.RecomputeTotals()

		if err := s.saleRepo.ReplaceItems(ctx, sale); err != nil {
			return nil, err
		}
	} else {
		if err := s.saleRepo.Update(ctx, sale); err != nil {
			return nil, err
		}
	}

	s.dispatcher.Dispatch(ctx, hook.Event{
		Entity:   "sale",
		Action:   "update",
		EntityID: sale.ID.String(),
		Payload:  sale,
	})

	return sale, nil
}

// TransitionStatus moves a sale to the next status, applying stock
// effects: confirming deducts stock, cancelling a confirmed sale or
// taking a return puts it back.
func (s *SaleService) TransitionStatus(ctx context.Context, id, actorID uuid.UUID, next enum.SaleStatus) (*entity.Sale, error) {
	sale, err := s.GetSale(ctx, id)
	if err != nil {
		return nil, err
	}
	if !sale.CanTransitionTo(next) {
		return nil, apperror.NewConflictError(
			fmt.Sprintf("Cannot move sale from %s to %s", sale.Status.String(), next.String()))
	}

	prev := sale.Status

	switch next {
	case enum.SaleStatusConfirmed:
		if err := s.deductStock(ctx, sale, actorID); err != nil {
			return nil, err
		}
	case enum.SaleStatusCancelled:
		if prev == enum.SaleStatusConfirmed {
			if err := s.restock(ctx, sale, actorID, enum.MovementTypeReturn, "cancelled"); err != nil {
				return nil, err
			}
		}
	case enum.SaleStatusReturned:
		if err := s.restock(ctx, sale, actorID, enum.MovementTypeReturn, "returned"); err != nil {
			return nil, err
		}
	case enum.SaleStatusDelivered:
		now := time.Now()
		sale.DeliveredAt = &now
	}

	sale.Status = next
	if err := s.saleRepo.Update(ctx, sale); err != nil {
		return nil, err
	}

	s.dispatcher.Dispatch(ctx, hook.Event{
		Entity:   "sale",
		Action:   "status",
		EntityID: sale.ID.String(),
		Payload:  sale,
	})

	return sale, nil
}

// DeleteSale removes a draft sale. Sales past draft must be cancelled
// instead so the ledger keeps its history.
func (s *SaleService) DeleteSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.GetSale(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale.Status != enum.SaleStatusDraft {
		return nil, apperror.NewConflictError("Only draft sales can be deleted")
	}

	if err := s.saleRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.dispatcher.Dispatch(ctx, hook.Event{
		Entity:   "sale",
		Action:   "delete",
		EntityID: sale.ID.String(),
		Payload:  sale,
	})

	return sale, nil
}

// RenderInvoicePDF renders the sale as an invoice on letterhead
func (s *SaleService) RenderInvoicePDF(ctx context.Context, id uuid.UUID) ([]byte, string, error) {
	sale, err := s.GetSale(ctx, id)
	if err != nil {
		return nil, "", err
	}

	lines := make([]report.InvoiceLine, 0, len(sale.Items))
	for _, item := range sale.Items {
		lines = append(lines, report.InvoiceLine{
			Name:      item.Item.Name,
			SKU:       item.Item.SKU,
			Quantity:  fmt.Sprintf("%d", item.Quantity),
			UnitPrice: item.UnitPrice.StringFixed(2),
			TaxAmount: item.TaxAmount.StringFixed(2),
			GSTAmount: item.GSTAmount.StringFixed(2),
			LineTotal: item.LineTotal.StringFixed(2),
		})
	}

	data := report.InvoiceData{
		SaleNumber:    sale.SaleNumber,
		SaleDate:      sale.SaleDate.Format("2006-01-02"),
		Status:        sale.Status.String(),
		CustomerName:  sale.Customer.DisplayName(),
		CustomerGSTIN: sale.Customer.GSTIN,
		Lines:         lines,
		Subtotal:      sale.Subtotal.StringFixed(2),
		TaxTotal:      sale.TaxTotal.StringFixed(2),
		GSTTotal:      sale.GSTTotal.StringFixed(2),
		GrandTotal:    sale.GrandTotal.StringFixed(2),
		Notes:         sale.Notes,
	}

	pdf, err := report.WriteInvoicePDF(data, report.Letterhead{
		BusinessName: s.letterhead.BusinessName,
		AddressLine1: s.letterhead.AddressLine1,
		AddressLine2: s.letterhead.AddressLine2,
		Phone:        s.letterhead.Phone,
		Email:        s.letterhead.Email,
		GSTIN:        s.letterhead.GSTIN,
		FooterNote:   s.letterhead.FooterNote,
	})
	if err != nil {
		return nil, "", err
	}
	return pdf, sale.SaleNumber + ".pdf", nil
}

func (s *SaleService) deductStock(ctx context.Context, sale *entity.Sale, actorID uuid.UUID) error {
	// Verify availability across all lines before touching stock
	for _, line := range sale.Items {
		item, err := s.itemRepo.GetByID(ctx, line.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return apperror.NewNotFoundError("Item")
		}
		if item.Quantity < line.Quantity {
			return apperror.NewConflictError(
				fmt.Sprintf("Insufficient stock for %s: have %d, need %d", item.Name, item.Quantity, line.Quantity))
		}
	}

	for _, line := range sale.Items {
		movement := &entity.StockMovement{
			Type:      enum.MovementTypeSale,
			Reference: sale.SaleNumber,
			CreatedBy: actorID,
		}
		if _, err := s.itemRepo.AdjustQuantity(ctx, line.ItemID, -line.Quantity, movement); err != nil {
			return err
		}
	}
	return nil
}

func (s *SaleService) restock(ctx context.Context, sale *entity.Sale, actorID uuid.UUID, movementType enum.MovementType, note string) error {
	for _, line := range sale.Items {
		movement := &entity.StockMovement{
			Type:      movementType,
			Reference: sale.SaleNumber,
			Notes:     note,
			CreatedBy: actorID,
		}
		if _, err := s.itemRepo.AdjustQuantity(ctx, line.ItemID, line.Quantity, movement); err != nil {
			return err
		}
	}
	return nil
}
