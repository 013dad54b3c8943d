package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/primag/sales-api/internal/application/service"
	"github.com/primag/sales-api/internal/domain/enum"
	"github.com/primag/sales-api/internal/presentation/http/dto/response"
	"github.com/primag/sales-api/pkg/pagination"
)

// RevenueHandler handles revenue rollup HTTP requests
type RevenueHandler struct {
	revenueService *service.RevenueService
}

// NewRevenueHandler creates a new revenue handler
func NewRevenueHandler(revenueService *service.RevenueService) *RevenueHandler {
	return &RevenueHandler{revenueService: revenueService}
}

// List handles listing revenue rollups
func (h *RevenueHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}

	var customerID *uuid.UUID
	if customerIDStr := c.Query("customer_id"); customerIDStr != "" {
		if parsed, err := uuid.Parse(customerIDStr); err == nil {
			customerID = &parsed
		}
	}

	var freq *enum.Frequency
	if freqStr := c.Query("frequency"); freqStr != "" {
		if parsed, ok := enum.ParseFrequency(freqStr); ok {
			freq = &parsed
		}
	}

	result, err := h.revenueService.ListRevenues(c.Request.Context(), params, customerID, freq)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Revenues retrieved successfully", result)
}

// Get handles getting a single revenue rollup
func (h *RevenueHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid revenue ID")
		return
	}

	revenue, err := h.revenueService.GetRevenue(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Revenue retrieved successfully", revenue)
}

// Recompute handles an on-demand rollup recompute. With a customer_id it
// recomputes that customer's period containing the reference date;
// without one it rebuilds every period with activity for every
// customer.
func (h *RevenueHandler) Recompute(c *gin.Context) {
	var req struct {
		CustomerID *uuid.UUID `json:"customer_id"`
		Frequency  *string    `json:"frequency"`
		Reference  *time.Time `json:"reference"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	ref := time.Now()
	if req.Reference != nil {
		ref = *req.Reference
	}

	if req.CustomerID == nil {
		created, updated, err := h.revenueService.RecomputeAll(c.Request.Context())
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Revenue recomputed successfully", gin.H{
			"created": created,
			"updated": updated,
		})
		return
	}

	if req.Frequency != nil {
		freq, ok := enum.ParseFrequency(*req.Frequency)
		if !ok {
			response.BadRequest(c, "Unknown frequency")
			return
		}
		revenue, _, err := h.revenueService.RecomputePeriod(c.Request.Context(), *req.CustomerID, freq, ref)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Revenue recomputed successfully", revenue)
		return
	}

	revenue, err := h.revenueService.RecomputeForCustomer(c.Request.Context(), *req.CustomerID, ref)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Revenue recomputed successfully", revenue)
}
