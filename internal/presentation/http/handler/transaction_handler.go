package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/primag/sales-api/internal/application/service"
	"github.com/primag/sales-api/internal/domain/enum"
	"github.com/primag/sales-api/internal/domain/repository"
	"github.com/primag/sales-api/internal/presentation/http/dto/response"
	"github.com/primag/sales-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// TransactionHandler handles income and expense transaction HTTP requests
type TransactionHandler struct {
	transactionService *service.TransactionService
	auditService       *service.AuditService
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService *service.TransactionService, auditService *service.AuditService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		auditService:       auditService,
	}
}

// transactionFilterFromQuery builds a filter from request query parameters
func transactionFilterFromQuery(c *gin.Context) repository.TransactionFilter {
	var filter repository.TransactionFilter

	if customerIDStr := c.Query("customer_id"); customerIDStr != "" {
		if customerID, err := uuid.Parse(customerIDStr); err == nil {
			filter.CustomerID = &customerID
		}
	}
	if typeStr := c.Query("type"); typeStr != "" {
		if txType, ok := enum.ParseTransactionType(typeStr); ok {
			filter.Type = &txType
		}
	}
	if fromStr := c.Query("date_from"); fromStr != "" {
		if from, err := time.Parse("2006-01-02", fromStr); err == nil {
			filter.DateFrom = &from
		}
	}
	if toStr := c.Query("date_to"); toStr != "" {
		if to, err := time.Parse("2006-01-02", toStr); err == nil {
			filter.DateTo = &to
		}
	}

	return filter
}

// List handles listing transactions with filters
func (h *TransactionHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}

	result, err := h.transactionService.ListTransactions(c.Request.Context(), params, transactionFilterFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Transactions retrieved successfully", result)
}

// Create handles creating a transaction
func (h *TransactionHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		CustomerID      uuid.UUID           `json:"customer_id" binding:"required"`
		Type            enum.TransactionType `json:"type"`
		Amount          decimal.Decimal     `json:"amount" binding:"required"`
		Description     string              `json:"description"`
		PaymentMethod   enum.PaymentMethod  `json:"payment_method"`
		ReferenceNo     string              `json:"reference_no"`
		IsTaxable       bool                `json:"is_taxable"`
		TaxPercentage   decimal.Decimal     `json:"tax_percentage"`
		GSTApplicable   bool                `json:"gst_applicable"`
		GSTPercentage   decimal.Decimal     `json:"gst_percentage"`
		TransactionDate time.Time           `json:"transaction_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	tx, err := h.transactionService.CreateTransaction(c.Request.Context(), &service.CreateTransactionInput{
		CustomerID:      req.CustomerID,
		CreatedBy:       *userID,
		Type:            req.Type,
		Amount:          req.Amount,
		Description:     req.Description,
		PaymentMethod:   req.PaymentMethod,
		ReferenceNo:     req.ReferenceNo,
		IsTaxable:       req.IsTaxable,
		TaxPercentage:   req.TaxPercentage,
		GSTApplicable:   req.GSTApplicable,
		GSTPercentage:   req.GSTPercentage,
		TransactionDate: req.TransactionDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	h.recordAudit(c, enum.AuditActionCreate, tx.ID,
		tx.Type.String()+" of "+tx.TotalAmount.StringFixed(2)+" recorded", nil, tx.Snapshot())

	response.Created(c, "Transaction created successfully", tx)
}

// Get handles getting a single transaction
func (h *TransactionHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	tx, err := h.transactionService.GetTransaction(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaction retrieved successfully", tx)
}

// Update handles updating a transaction
func (h *TransactionHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	var req struct {
		Amount          *decimal.Decimal    `json:"amount"`
		Description     *string             `json:"description"`
		PaymentMethod   *enum.PaymentMethod `json:"payment_method"`
		ReferenceNo     *string             `json:"reference_no"`
		IsTaxable       *bool               `json:"is_taxable"`
		TaxPercentage   *decimal.Decimal    `json:"tax_percentage"`
		GSTApplicable   *bool               `json:"gst_applicable"`
		GSTPercentage   *decimal.Decimal    `json:"gst_percentage"`
		TransactionDate *time.Time          `json:"transaction_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	after, before, err := h.transactionService.UpdateTransaction(c.Request.Context(), &service.UpdateTransactionInput{
		ID:              id,
		Amount:          req.Amount,
		Description:     req.Description,
		PaymentMethod:   req.PaymentMethod,
		ReferenceNo:     req.ReferenceNo,
		IsTaxable:       req.IsTaxable,
		TaxPercentage:   req.TaxPercentage,
		GSTApplicable:   req.GSTApplicable,
		GSTPercentage:   req.GSTPercentage,
		TransactionDate: req.TransactionDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	h.recordAudit(c, enum.AuditActionUpdate, after.ID,
		after.Type.String()+" updated to "+after.TotalAmount.StringFixed(2), before.Snapshot(), after.Snapshot())

	response.OK(c, "Transaction updated successfully", after)
}

// Delete handles deleting a transaction
func (h *TransactionHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	deleted, err := h.transactionService.DeleteTransaction(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.recordAudit(c, enum.AuditActionDelete, deleted.ID,
		deleted.Type.String()+" of "+deleted.TotalAmount.StringFixed(2)+" deleted", deleted.Snapshot(), nil)

	response.NoContent(c)
}

func (h *TransactionHandler) recordAudit(c *gin.Context, action enum.AuditAction, entityID uuid.UUID, description string, oldVals, newVals map[string]string) {
	h.auditService.Record(c.Request.Context(), service.RecordInput{
		UserID:      GetUserID(c),
		Action:      action,
		EntityType:  "transaction",
		EntityID:    entityID.String(),
		EntityLabel: entityID.String(),
		Description: description,
		OldValues:   oldVals,
		NewValues:   newVals,
		IPAddress:   c.ClientIP(),
		UserAgent:   c.Request.UserAgent(),
	})
}
