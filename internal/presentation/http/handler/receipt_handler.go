package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/primag/sales-api/internal/application/service"
	"github.com/primag/sales-api/internal/domain/enum"
	"github.com/primag/sales-api/internal/presentation/http/dto/response"
	"github.com/primag/sales-api/pkg/pagination"
)

// ReceiptHandler handles receipt-related HTTP requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
	auditService   *service.AuditService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService, auditService *service.AuditService) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService: receiptService,
		auditService:   auditService,
	}
}

// List handles listing receipts
func (h *ReceiptHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}

	var status *enum.ReceiptStatus
	if statusStr := c.Query("status"); statusStr != "" {
		if parsed, ok := enum.ParseReceiptStatus(statusStr); ok {
			status = &parsed
		}
	}

	result, err := h.receiptService.ListReceipts(c.Request.Context(), params, status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Receipts retrieved successfully", result)
}

// Create handles creating a draft receipt for a transaction
func (h *ReceiptHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		TransactionID uuid.UUID `json:"transaction_id" binding:"required"`
		Notes         string    `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	receipt, err := h.receiptService.CreateReceipt(c.Request.Context(), req.TransactionID, *userID, req.Notes)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.recordAudit(c, enum.AuditActionCreate, receipt.ID, receipt.ReceiptNumber,
		"Receipt "+receipt.ReceiptNumber+" created", nil, map[string]string{
			"receipt_number": receipt.ReceiptNumber,
			"status":         receipt.Status.String(),
		})

	response.Created(c, "Receipt created successfully", receipt)
}

// Get handles getting a single receipt
func (h *ReceiptHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	receipt, err := h.receiptService.GetReceipt(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt retrieved successfully", receipt)
}

// Issue handles issuing a draft receipt
func (h *ReceiptHandler) Issue(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	receipt, err := h.receiptService.IssueReceipt(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.recordAudit(c, enum.AuditActionUpdate, receipt.ID, receipt.ReceiptNumber,
		"Receipt "+receipt.ReceiptNumber+" issued",
		map[string]string{"status": enum.ReceiptStatusDraft.String()},
		map[string]string{"status": receipt.Status.String()})

	response.OK(c, "Receipt issued successfully", receipt)
}

// Cancel handles cancelling a receipt
func (h *ReceiptHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	receipt, err := h.receiptService.CancelReceipt(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.recordAudit(c, enum.AuditActionUpdate, receipt.ID, receipt.ReceiptNumber,
		"Receipt "+receipt.ReceiptNumber+" cancelled", nil,
		map[string]string{"status": receipt.Status.String()})

	response.OK(c, "Receipt cancelled successfully", receipt)
}

// DownloadPDF streams the receipt as a PDF document
func (h *ReceiptHandler) DownloadPDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	pdf, filename, err := h.receiptService.RenderPDF(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(200, "application/pdf", pdf)
}

// Email sends the receipt PDF to the customer's email address
func (h *ReceiptHandler) Email(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	if err := h.receiptService.EmailReceipt(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt emailed successfully", nil)
}

func (h *ReceiptHandler) recordAudit(c *gin.Context, action enum.AuditAction, entityID uuid.UUID, label, description string, oldVals, newVals map[string]string) {
	h.auditService.Record(c.Request.Context(), service.RecordInput{
		UserID:      GetUserID(c),
		Action:      action,
		EntityType:  "receipt",
		EntityID:    entityID.String(),
		EntityLabel: label,
		Description: description,
		OldValues:   oldVals,
		NewValues:   newVals,
		IPAddress:   c.ClientIP(),
		UserAgent:   c.Request.UserAgent(),
	})
}
