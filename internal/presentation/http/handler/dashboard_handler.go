package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/primag/sales-api/internal/application/service"
	"github.com/primag/sales-api/internal/presentation/http/dto/response"
	"github.com/primag/sales-api/pkg/chart"
)

// DashboardHandler handles dashboard statistics and chart HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats handles fetching aggregate dashboard statistics
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard stats retrieved successfully", stats)
}

// MonthlyRevenueChart streams a PNG bar chart of monthly revenue
func (h *DashboardHandler) MonthlyRevenueChart(c *gin.Context) {
	months, _ := strconv.Atoi(c.DefaultQuery("months", "12"))
	if months < 1 || months > 36 {
		months = 12
	}

	png, err := h.dashboardService.MonthlyRevenueChart(c.Request.Context(), months)
	if err != nil {
		if errors.Is(err, chart.ErrNoData) {
			response.ServiceUnavailable(c, "Not enough data to render chart")
			return
		}
		response.Error(c, err)
		return
	}

	c.Data(200, "image/png", png)
}

// DailySalesChart streams a PNG line chart of the daily sales trend
func (h *DashboardHandler) DailySalesChart(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	if days < 1 || days > 365 {
		days = 30
	}

	png, err := h.dashboardService.DailySalesChart(c.Request.Context(), days)
	if err != nil {
		if errors.Is(err, chart.ErrNoData) {
			response.ServiceUnavailable(c, "Not enough data to render chart")
			return
		}
		response.Error(c, err)
		return
	}

	c.Data(200, "image/png", png)
}
