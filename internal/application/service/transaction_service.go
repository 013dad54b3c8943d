package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/primag/sales-api/internal/application/hook"
	"github.com/primag/sales-api/internal/domain/entity"
	"github.com/primag/sales-api/internal/domain/enum"
	"github.com/primag/sales-api/internal/domain/repository"
	"github.com/primag/sales-api/pkg/apperror"
	"github.com/primag/sales-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// TransactionService handles income and expense ledger operations
type TransactionService struct {
	transactionRepo repository.TransactionRepository
	customerRepo    repository.CustomerRepository
	dispatcher      *hook.Dispatcher
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	transactionRepo repository.TransactionRepository,
	customerRepo repository.CustomerRepository,
	dispatcher *hook.Dispatcher,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		customerRepo:    customerRepo,
		dispatcher:      dispatcher,
	}
}

// CreateTransactionInput represents the create transaction input
type CreateTransactionInput struct {
	CustomerID      uuid.UUID
	CreatedBy       uuid.UUID
	Type            enum.TransactionType
	Amount          decimal.Decimal
	Description     string
	PaymentMethod   enum.PaymentMethod
	ReferenceNo     string
	IsTaxable       bool
	TaxPercentage   decimal.Decimal
	GSTApplicable   bool
	GSTPercentage   decimal.Decimal
	TransactionDate time.Time
}

// CreateTransaction creates a transaction with derived tax and totals
func (s *TransactionService) CreateTransaction(ctx context.Context, input *CreateTransactionInput) (*entity.Transaction, error) {
	if input.Amount.IsNegative() {
		return nil, apperror.NewBadRequestError("Amount must not be negative")
	}
	if input.TaxPercentage.IsNegative() || input.GSTPercentage.IsNegative() {
		return nil, apperror.NewBadRequestError("Percentages must not be negative")
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	tx := &entity.Transaction{
		CustomerID:      input.CustomerID,
		CreatedBy:       input.CreatedBy,
		Type:            input.Type,
		Amount:          input.Amount,
		Description:     input.Description,
		PaymentMethod:   input.PaymentMethod,
		ReferenceNo:     input.ReferenceNo,
		IsTaxable:       input.IsTaxable,
		TaxPercentage:   input.TaxPercentage,
		GSTApplicable:   input.GSTApplicable,
		GSTPercentage:   input.GSTPercentage,
		TransactionDate: input.TransactionDate,
	}
	tx.ComputeTotals()

	if err := s.transactionRepo.Create(ctx, tx); err != nil {
		return nil, err
	}

	s.dispatcher.Dispatch(ctx, hook.Event{
		Entity:   "transaction",
		Action:   "create",
		EntityID: tx.ID.String(),
		Payload:  tx,
	})

	return tx, nil
}

// GetTransaction retrieves a transaction by ID
func (s *TransactionService) GetTransaction(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	tx, err := s.transactionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, apperror.NewNotFoundError("Transaction")
	}
	return tx, nil
}

// ListTransactions lists transactions with pagination and filters
func (s *TransactionService) ListTransactions(ctx context.Context, params *pagination.PaginationParams, filter repository.TransactionFilter) (*pagination.PaginatedResult[entity.Transaction], error) {
	txs, total, err := s.transactionRepo.List(ctx, params, filter)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(txs, pag), nil
}

// ListTransactionsForExport returns all matching transactions without pagination
func (s *TransactionService) ListTransactionsForExport(ctx context.Context, filter repository.TransactionFilter) ([]entity.Transaction, error) {
	return s.transactionRepo.ListByFilter(ctx, filter)
}

// UpdateTransactionInput represents the update transaction input
type UpdateTransactionInput struct {
	ID              uuid.UUID
	Amount          *decimal.Decimal
	Description     *string
	PaymentMethod   *enum.PaymentMethod
	ReferenceNo     *string
	IsTaxable       *bool
	TaxPercentage   *decimal.Decimal
	GSTApplicable   *bool
	GSTPercentage   *decimal.Decimal
	TransactionDate *time.Time
}

// UpdateTransaction updates a transaction and recomputes its totals
func (s *TransactionService) UpdateTransaction(ctx context.Context, input *UpdateTransactionInput) (*entity.Transaction, *entity.Transaction, error) {
	tx, err := s.transactionRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, nil, err
	}
	if tx == nil {
		return nil, nil, apperror.NewNotFoundError("Transaction")
	}

	before := *tx

	if input.Amount != nil {
		if input.Amount.IsNegative() {
			return nil, nil, apperror.NewBadRequestError("Amount must not be negative")
		}
		tx.Amount = *input.Amount
	}
	if input.Description != nil {
		tx.Description = *input.Description
	}
	if input.PaymentMethod != nil {
		tx.PaymentMethod = *input.PaymentMethod
	}
	if input.ReferenceNo != nil {
		tx.ReferenceNo = *input.ReferenceNo
	}
	if input.IsTaxable != nil {
		tx.IsTaxable = *input.IsTaxable
	}
	if input.TaxPercentage != nil {
		if input.TaxPercentage.IsNegative() {
			return nil, nil, apperror.NewBadRequestError("Percentages must not be negative")
		}
		tx.TaxPercentage = *input.TaxPercentage
	}
	if input.GSTApplicable != nil {
		tx.GSTApplicable = *input.GSTApplicable
	}
	if input.GSTPercentage != nil {
		if input.GSTPercentage.IsNegative() {
			return nil, nil, apperror.NewBadRequestError("Percentages must not be negative")
		}
		tx.GSTPercentage = *input.GSTPercentage
	}
	if input.TransactionDate != nil {
		tx.TransactionDate = *input.TransactionDate
	}

	tx.ComputeTotals()

	if err := s.transactionRepo.Update(ctx, tx); err != nil {
		return nil, nil, err
	}

	s.dispatcher.Dispatch(ctx, hook.Event{
		Entity:   "transaction",
		Action:   "update",
		EntityID: tx.ID.String(),
		Payload:  tx,
	})

	return tx, &before, nil
}

// DeleteTransaction deletes a transaction. Transactions with an issued
// receipt cannot be removed.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	tx, err := s.transactionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, apperror.NewNotFoundError("Transaction")
	}
	if tx.Receipt != nil && tx.Receipt.Status == enum.ReceiptStatusIssued {
		return nil, apperror.NewConflictError("Transaction has an issued receipt")
	}

	if err := s.transactionRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.dispatcher.Dispatch(ctx, hook.Event{
		Entity:   "transaction",
		Action:   "delete",
		EntityID: tx.ID.String(),
		Payload:  tx,
	})

	return tx, nil
}
