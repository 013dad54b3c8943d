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
)

// AuditHandler handles audit trail HTTP requests
type AuditHandler struct {
	auditService *service.AuditService
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(auditService *service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// List handles listing audit log entries with filters
func (h *AuditHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}

	var filter repository.AuditFilter
	filter.EntityType = c.Query("entity_type")

	if userIDStr := c.Query("user_id"); userIDStr != "" {
		if userID, err := uuid.Parse(userIDStr); err == nil {
			filter.UserID = &userID
		}
	}
	if actionStr := c.Query("action"); actionStr != "" {
		if action, ok := enum.ParseAuditAction(actionStr); ok {
			filter.Action = &action
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

	result, err := h.auditService.ListLogs(c.Request.Context(), params, filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Audit logs retrieved successfully", result)
}
