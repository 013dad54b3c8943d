package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/primag/sales-api/internal/application/service"
	"github.com/primag/sales-api/internal/domain/enum"
	"github.com/primag/sales-api/internal/presentation/http/dto/response"
)

// ExportHandler handles report download HTTP requests
type ExportHandler struct {
	exportService *service.ExportService
	auditService  *service.AuditService
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService *service.ExportService, auditService *service.AuditService) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
		auditService:  auditService,
	}
}

// Transactions handles exporting the transaction ledger
func (h *ExportHandler) Transactions(c *gin.Context) {
	format, err := service.ParseExportFormat(c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.exportService.ExportTransactions(c.Request.Context(), format, transactionFilterFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	h.send(c, "transaction", result)
}

// Sales handles exporting the sales report
func (h *ExportHandler) Sales(c *gin.Context) {
	format, err := service.ParseExportFormat(c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.exportService.ExportSales(c.Request.Context(), format, saleFilterFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	h.send(c, "sale", result)
}

// Inventory handles exporting the inventory report
func (h *ExportHandler) Inventory(c *gin.Context) {
	format, err := service.ParseExportFormat(c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.exportService.ExportInventory(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.send(c, "item", result)
}

// Revenues handles exporting the revenue rollup report
func (h *ExportHandler) Revenues(c *gin.Context) {
	format, err := service.ParseExportFormat(c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}

	var filter service.RevenueExportFilter
	if customerIDStr := c.Query("customer_id"); customerIDStr != "" {
		if customerID, err := uuid.Parse(customerIDStr); err == nil {
			filter.CustomerID = &customerID
		}
	}
	if freqStr := c.Query("frequency"); freqStr != "" {
		if freq, ok := enum.ParseFrequency(freqStr); ok {
			filter.Frequency = &freq
		}
	}
	if fromStr := c.Query("date_from"); fromStr != "" {
		if from, err := time.Parse("2006-01-02", fromStr); err == nil {
			filter.From = &from
		}
	}
	if toStr := c.Query("date_to"); toStr != "" {
		if to, err := time.Parse("2006-01-02", toStr); err == nil {
			filter.To = &to
		}
	}

	result, err := h.exportService.ExportRevenues(c.Request.Context(), format, filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.send(c, "revenue", result)
}

func (h *ExportHandler) send(c *gin.Context, entityType string, result *service.ExportResult) {
	h.auditService.Record(c.Request.Context(), service.RecordInput{
		UserID:      GetUserID(c),
		Action:      enum.AuditActionExport,
		EntityType:  entityType,
		EntityID:    result.Filename,
		EntityLabel: result.Filename,
		Description: "Exported " + entityType + " to " + result.Filename,
		IPAddress:   c.ClientIP(),
		UserAgent:   c.Request.UserAgent(),
	})

	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Data(200, result.ContentType, result.Data)
}
