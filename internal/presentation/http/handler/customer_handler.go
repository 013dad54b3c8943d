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

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
	auditService    *service.AuditService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService, auditService *service.AuditService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		auditService:    auditService,
	}
}

// List handles listing customers (supports both page-based and cursor-based pagination)
func (h *CustomerHandler) List(c *gin.Context) {
	search := c.Query("search")

	if cursor := c.Query("cursor"); cursor != "" || c.Query("limit") != "" {
		h.listWithCursor(c, search)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	activeOnly := c.Query("active") == "true"

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}

	result, err := h.customerService.ListCustomers(c.Request.Context(), params, search, activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Customers retrieved successfully", result)
}

func (h *CustomerHandler) listWithCursor(c *gin.Context, search string) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "15"))

	params := &pagination.CursorParams{
		Cursor:    c.Query("cursor"),
		Direction: pagination.CursorDirection(c.DefaultQuery("direction", "next")),
		Limit:     limit,
	}

	result, err := h.customerService.ListCustomersWithCursor(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithCursorPagination(c, 200, "Customers retrieved successfully", result)
}

// Create handles creating a customer
func (h *CustomerHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		Name        string          `json:"name" binding:"required"`
		Email       string          `json:"email"`
		Phone       string          `json:"phone"`
		Address     string          `json:"address"`
		City        string          `json:"city"`
		State       string          `json:"state"`
		PostalCode  string          `json:"postal_code"`
		Country     string          `json:"country"`
		CompanyName string          `json:"company_name"`
		GSTIN       string          `json:"gstin"`
		PAN         string          `json:"pan"`
		Frequency   *enum.Frequency `json:"frequency"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), &service.CreateCustomerInput{
		CreatedBy:   *userID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		PostalCode:  req.PostalCode,
		Country:     req.Country,
		CompanyName: req.CompanyName,
		GSTIN:       req.GSTIN,
		PAN:         req.PAN,
		Frequency:   req.Frequency,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	h.recordAudit(c, enum.AuditActionCreate, customer.ID, customer.Name,
		"Customer "+customer.Name+" created", nil, customer.Snapshot())

	response.Created(c, "Customer created successfully", customer)
}

// Get handles getting a single customer
func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer retrieved successfully", customer)
}

// Update handles updating a customer
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req struct {
		Name        *string         `json:"name"`
		Email       *string         `json:"email"`
		Phone       *string         `json:"phone"`
		Address     *string         `json:"address"`
		City        *string         `json:"city"`
		State       *string         `json:"state"`
		PostalCode  *string         `json:"postal_code"`
		Country     *string         `json:"country"`
		CompanyName *string         `json:"company_name"`
		GSTIN       *string         `json:"gstin"`
		PAN         *string         `json:"pan"`
		Frequency   *enum.Frequency `json:"frequency"`
		IsActive    *bool           `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), &service.UpdateCustomerInput{
		ID:          id,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		PostalCode:  req.PostalCode,
		Country:     req.Country,
		CompanyName: req.CompanyName,
		GSTIN:       req.GSTIN,
		PAN:         req.PAN,
		Frequency:   req.Frequency,
		IsActive:    req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	h.recordAudit(c, enum.AuditActionUpdate, customer.ID, customer.Name,
		"Customer "+customer.Name+" updated", nil, customer.Snapshot())

	response.OK(c, "Customer updated successfully", customer)
}

// Delete handles deleting a customer
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	customer, err := h.customerService.DeleteCustomer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.recordAudit(c, enum.AuditActionDelete, customer.ID, customer.Name,
		"Customer "+customer.Name+" deleted", customer.Snapshot(), nil)

	response.NoContent(c)
}

func (h *CustomerHandler) recordAudit(c *gin.Context, action enum.AuditAction, entityID uuid.UUID, label, description string, oldVals, newVals map[string]string) {
	h.auditService.Record(c.Request.Context(), service.RecordInput{
		UserID:      GetUserID(c),
		Action:      action,
		EntityType:  "customer",
		EntityID:    entityID.String(),
		EntityLabel: label,
		Description: description,
		OldValues:   oldVals,
		NewValues:   newVals,
		IPAddress:   c.ClientIP(),
		UserAgent:   c.Request.UserAgent(),
	})
}
