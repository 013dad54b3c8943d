package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/primag/sales-api/internal/config"
	"github.com/primag/sales-api/internal/domain/entity"
	"github.com/primag/sales-api/internal/domain/enum"
	"github.com/primag/sales-api/internal/domain/repository"
	"github.com/primag/sales-api/pkg/apperror"
	"github.com/primag/sales-api/pkg/email"
	"github.com/primag/sales-api/pkg/pagination"
	"github.com/primag/sales-api/pkg/report"
	"github.com/primag/sales-api/pkg/utils"
	"gorm.io/gorm"
)

// numberRetries bounds how often a create is retried when two writers
// race on the same daily sequence number.
const numberRetries = 3

// ReceiptService handles receipt lifecycle operations
type ReceiptService struct {
	receiptRepo     repository.ReceiptRepository
	transactionRepo repository.TransactionRepository
	letterhead      config.LetterheadConfig
	emailService    *email.EmailService
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	receiptRepo repository.ReceiptRepository,
	transactionRepo repository.TransactionRepository,
	letterhead config.LetterheadConfig,
	emailService *email.EmailService,
) *ReceiptService {
	return &ReceiptService{
		receiptRepo:     receiptRepo,
		transactionRepo: transactionRepo,
		letterhead:      letterhead,
		emailService:    emailService,
	}
}

// CreateReceipt creates a draft receipt for a transaction. The receipt
// amount mirrors the transaction total and the number is assigned from
// the daily sequence, retrying on a lost uniqueness race.
func (s *ReceiptService) CreateReceipt(ctx context.Context, transactionID, createdBy uuid.UUID, notes string) (*entity.Receipt, error) {
	tx, err := s.transactionRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, apperror.NewNotFoundError("Transaction")
	}

	existing, err := s.receiptRepo.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Transaction already has a receipt")
	}

	var receipt *entity.Receipt
	for attempt := 0; attempt < numberRetries; attempt++ {
		count, err := s.receiptRepo.CountCreatedOn(ctx, time.Now())
		if err != nil {
			return nil, err
		}

		receipt = &entity.Receipt{
			ReceiptNumber: utils.SequentialNumber("RCT", time.Now(), count+1),
			TransactionID: transactionID,
			Status:        enum.ReceiptStatusDraft,
			Amount:        tx.TotalAmount,
			Notes:         notes,
			CreatedBy:     createdBy,
		}

		err = s.receiptRepo.Create(ctx, receipt)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
	}
	return nil, apperror.NewConflictError("Could not allocate a receipt number, try again")
}

// GetReceipt retrieves a receipt by ID
func (s *ReceiptService) GetReceipt(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	receipt, err := s.receiptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperror.NewNotFoundError("Receipt")
	}
	return receipt, nil
}

// ListReceipts lists receipts with pagination
func (s *ReceiptService) ListReceipts(ctx context.Context, params *pagination.PaginationParams, status *enum.ReceiptStatus) (*pagination.PaginatedResult[entity.Receipt], error) {
	receipts, total, err := s.receiptRepo.List(ctx, params, status)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(receipts, pag), nil
}

// IssueReceipt transitions a draft receipt to issued and stamps the
// issue date.
func (s *ReceiptService) IssueReceipt(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	receipt, err := s.GetReceipt(ctx, id)
	if err != nil {
		return nil, err
	}
	if !receipt.CanIssue() {
		return nil, apperror.NewConflictError("Only draft receipts can be issued")
	}

	now := time.Now()
	receipt.Status = enum.ReceiptStatusIssued
	receipt.IssuedDate = &now

	if err := s.receiptRepo.Update(ctx, receipt); err != nil {
		return nil, err
	}
	return receipt, nil
}

// CancelReceipt transitions a receipt to cancelled
func (s *ReceiptService) CancelReceipt(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	receipt, err := s.GetReceipt(ctx, id)
	if err != nil {
		return nil, err
	}
	if !receipt.CanCancel() {
		return nil, apperror.NewConflictError("Receipt is already cancelled")
	}

	receipt.Status = enum.ReceiptStatusCancelled

	if err := s.receiptRepo.Update(ctx, receipt); err != nil {
		return nil, err
	}
	return receipt, nil
}

// RenderPDF renders the receipt as a PDF on the configured letterhead
func (s *ReceiptService) RenderPDF(ctx context.Context, id uuid.UUID) ([]byte, string, error) {
	receipt, err := s.GetReceipt(ctx, id)
	if err != nil {
		return nil, "", err
	}

	issued := ""
	if receipt.IssuedDate != nil {
		issued = receipt.IssuedDate.Format("2006-01-02")
	}

	data := report.ReceiptData{
		ReceiptNumber: receipt.ReceiptNumber,
		IssuedDate:    issued,
		CustomerName:  receipt.Transaction.Customer.DisplayName(),
		CustomerGSTIN: receipt.Transaction.Customer.GSTIN,
		Description:   receipt.Transaction.Description,
		PaymentMethod: receipt.Transaction.PaymentMethod.String(),
		Amount:        receipt.Transaction.Amount.StringFixed(2),
		TaxAmount:     receipt.Transaction.TaxAmount.StringFixed(2),
		GSTAmount:     receipt.Transaction.GSTAmount.StringFixed(2),
		TotalAmount:   receipt.Transaction.TotalAmount.StringFixed(2),
		Notes:         receipt.Notes,
	}

	pdf, err := report.WriteReceiptPDF(data, s.letterheadData())
	if err != nil {
		return nil, "", err
	}
	return pdf, receipt.ReceiptNumber + ".pdf", nil
}

// EmailReceipt sends the receipt PDF to the customer's email address.
// Only issued receipts can be sent.
func (s *ReceiptService) EmailReceipt(ctx context.Context, id uuid.UUID) error {
	receipt, err := s.GetReceipt(ctx, id)
	if err != nil {
		return err
	}
	if receipt.Status != enum.ReceiptStatusIssued {
		return apperror.NewConflictError("Only issued receipts can be emailed")
	}

	customer := receipt.Transaction.Customer
	if customer.Email == "" {
		return apperror.NewBadRequestError("Customer has no email address")
	}

	pdf, _, err := s.RenderPDF(ctx, id)
	if err != nil {
		return err
	}

	return s.emailService.SendReceiptEmail(customer.Email, customer.Name, receipt.ReceiptNumber, pdf)
}

func (s *ReceiptService) letterheadData() report.Letterhead {
	return report.Letterhead{
		BusinessName: s.letterhead.BusinessName,
		AddressLine1: s.letterhead.AddressLine1,
		AddressLine2: s.letterhead.AddressLine2,
		Phone:        s.letterhead.Phone,
		Email:        s.letterhead.Email,
		GSTIN:        s.letterhead.GSTIN,
		FooterNote:   s.letterhead.FooterNote,
	}
}
