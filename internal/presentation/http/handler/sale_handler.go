package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/primag/sales-api/internal/application/service"
	"github.com/primag/sales-api/internal/domain/entity"
	"github.com/primag/sales-api/internal/domain/enum"
	"github.com/primag/sales-api/internal/domain/repository"
	"github.com/primag/sales-api/internal/presentation/http/dto/response"
	"github.com/primag/sales-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// SaleHandler handles sales order HTTP requests
type SaleHandler struct {
	saleService  *service.SaleService
	auditService *service.AuditService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService, auditService *service.AuditService) *SaleHandler {
	return &SaleHandler{
		saleService:  saleService,
		auditService: auditService,
	}
}

// saleLineRequest is one order line in a create or update request
type saleLineRequest struct {
	ItemID        uuid.UUID        `json:"item_id" binding:"required"`
	Quantity      int              `json:"quantity" binding:"required,min=1"`
	UnitPrice     *decimal.Decimal `json:"unit_price"`
	TaxPercentage decimal.Decimal  `json:"tax_percentage"`
	GSTPercentage decimal.Decimal  `json:"gst_percentage"`
}

func saleLineInputs(lines []saleLineRequest) []service.SaleLineInput {
	inputs := make([]service.SaleLineInput, 0, len(lines))
	for _, line := range lines {
		inputs = append(inputs, service.SaleLineInput{
			ItemID:        line.ItemID,
			Quantity:      line.Quantity,
			UnitPrice:     line.UnitPrice,
			TaxPercentage: line.TaxPercentage,
			GSTPercentage: line.GSTPercentage,
		})
	}
	return inputs
}

// saleFilterFromQuery builds a filter from request query parameters
func saleFilterFromQuery(c *gin.Context) repository.SaleFilter {
	var filter repository.SaleFilter

	if customerIDStr := c.Query("customer_id"); customerIDStr != "" {
		if customerID, err := uuid.Parse(customerIDStr); err == nil {
			filter.CustomerID = &customerID
		}
	}
	if statusStr := c.Query("status"); statusStr != "" {
		if status, ok := enum.ParseSaleStatus(statusStr); ok {
			filter.Status = &status
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

// List handles listing sales with filters
func (h *SaleHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}

	result, err := h.saleService.ListSales(c.Request.Context(), params, saleFilterFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Sales retrieved successfully", result)
}

// Create handles creating a draft sale
func (h *SaleHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		CustomerID uuid.UUID         `json:"customer_id" binding:"required"`
		SaleDate   time.Time         `json:"sale_date"`
		Notes      string            `json:"notes"`
		Lines      []saleLineRequest `json:"lines" binding:"required,min=1,dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), &service.CreateSaleInput{
		CustomerID: req.CustomerID,
		CreatedBy:  *userID,
		SaleDate:   req.SaleDate,
		Notes:      req.Notes,
		Lines:      saleLineInputs(req.Lines),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	h.recordAudit(c, enum.AuditActionCreate, sale.ID, sale.SaleNumber,
		"Sale "+sale.SaleNumber+" created", nil, map[string]string{
			"sale_number": sale.SaleNumber,
			"status":      sale.Status.String(),
			"grand_total": sale.GrandTotal.StringFixed(2),
		})
	h.recordLineAudits(c, enum.AuditActionCreate, sale)

	response.Created(c, "Sale created successfully", sale)
}

// Get handles getting a single sale with its lines
func (h *SaleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved successfully", sale)
}

// Update handles editing a draft sale
func (h *SaleHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	var req struct {
		SaleDate *time.Time        `json:"sale_date"`
		Notes    *string           `json:"notes"`
		Lines    []saleLineRequest `json:"lines"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sale, err := h.saleService.UpdateSale(c.Request.Context(), &service.UpdateSaleInput{
		ID:       id,
		SaleDate: req.SaleDate,
		Notes:    req.Notes,
		Lines:    saleLineInputs(req.Lines),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	h.recordAudit(c, enum.AuditActionUpdate, sale.ID, sale.SaleNumber,
		"Sale "+sale.SaleNumber+" updated", nil, map[string]string{
			"sale_number": sale.SaleNumber,
			"grand_total": sale.GrandTotal.StringFixed(2),
		})

	response.OK(c, "Sale updated successfully", sale)
}

// Transition handles moving a sale to a new lifecycle status
func (h *SaleHandler) Transition(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	next, ok := enum.ParseSaleStatus(req.Status)
	if !ok {
		response.BadRequest(c, "Unknown sale status")
		return
	}

	sale, err := h.saleService.TransitionStatus(c.Request.Context(), id, *userID, next)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.recordAudit(c, enum.AuditActionUpdate, sale.ID, sale.SaleNumber,
		"Sale "+sale.SaleNumber+" moved to "+sale.Status.String(), nil, map[string]string{
			"sale_number": sale.SaleNumber,
			"status":      sale.Status.String(),
		})

	response.OK(c, "Sale status updated successfully", sale)
}

// Delete handles deleting a draft sale
func (h *SaleHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.saleService.DeleteSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.recordAudit(c, enum.AuditActionDelete, sale.ID, sale.SaleNumber,
		"Sale "+sale.SaleNumber+" deleted", map[string]string{
			"sale_number": sale.SaleNumber,
			"status":      sale.Status.String(),
		}, nil)
	h.recordLineAudits(c, enum.AuditActionDelete, sale)

	response.NoContent(c)
}

// DownloadInvoicePDF streams the sale invoice as a PDF document
func (h *SaleHandler) DownloadInvoicePDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	pdf, filename, err := h.saleService.RenderInvoicePDF(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(200, "application/pdf", pdf)
}

func (h *SaleHandler) recordAudit(c *gin.Context, action enum.AuditAction, entityID uuid.UUID, label, description string, oldVals, newVals map[string]string) {
	h.auditService.Record(c.Request.Context(), service.RecordInput{
		UserID:      GetUserID(c),
		Action:      action,
		EntityType:  "sale",
		EntityID:    entityID.String(),
		EntityLabel: label,
		Description: description,
		OldValues:   oldVals,
		NewValues:   newVals,
		IPAddress:   c.ClientIP(),
		UserAgent:   c.Request.UserAgent(),
	})
}

// recordLineAudits mirrors each line of a created or deleted sale into
// the trail, so line-level history survives sale edits and deletes.
func (h *SaleHandler) recordLineAudits(c *gin.Context, action enum.AuditAction, sale *entity.Sale) {
	for _, line := range sale.Items {
		snapshot := map[string]string{
			"item_id":    line.ItemID.String(),
			"quantity":   strconv.Itoa(line.Quantity),
			"unit_price": line.UnitPrice.StringFixed(2),
			"line_total": line.LineTotal.StringFixed(2),
		}
		input := service.RecordInput{
			UserID:      GetUserID(c),
			Action:      action,
			EntityType:  "sale_item",
			EntityID:    line.ID.String(),
			EntityLabel: sale.SaleNumber,
			IPAddress:   c.ClientIP(),
			UserAgent:   c.Request.UserAgent(),
		}
		if action == enum.AuditActionDelete {
			input.Description = "Line removed from sale " + sale.SaleNumber
			input.OldValues = snapshot
		} else {
			input.Description = "Line added to sale " + sale.SaleNumber
			input.NewValues = snapshot
		}
		h.auditService.Record(c.Request.Context(), input)
	}
}
