package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/primag/sales-api/internal/application/service"
	"github.com/primag/sales-api/internal/domain/enum"
	"github.com/primag/sales-api/internal/presentation/http/dto/response"
	"github.com/primag/sales-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// ItemHandler handles inventory item and category HTTP requests
type ItemHandler struct {
	itemService *service.ItemService
}

// NewItemHandler creates a new item handler
func NewItemHandler(itemService *service.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// List handles listing items
func (h *ItemHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	search := c.Query("search")
	lowStockOnly := c.Query("low_stock") == "true"

	var categoryID *uuid.UUID
	if categoryIDStr := c.Query("category_id"); categoryIDStr != "" {
		if parsed, err := uuid.Parse(categoryIDStr); err == nil {
			categoryID = &parsed
		}
	}

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}

	result, err := h.itemService.ListItems(c.Request.Context(), params, search, categoryID, lowStockOnly)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Items retrieved successfully", result)
}

// Create handles creating an item
func (h *ItemHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		Name          string          `json:"name" binding:"required"`
		SKU           string          `json:"sku"`
		Description   string          `json:"description"`
		CategoryID    *uuid.UUID      `json:"category_id"`
		UnitOfMeasure string          `json:"unit_of_measure"`
		CostPrice     decimal.Decimal `json:"cost_price"`
		SellingPrice  decimal.Decimal `json:"selling_price"`
		Quantity      int             `json:"quantity"`
		MinStockLevel int             `json:"min_stock_level"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.itemService.CreateItem(c.Request.Context(), &service.CreateItemInput{
		CreatedBy:     *userID,
		Name:          req.Name,
		SKU:           req.SKU,
		Description:   req.Description,
		CategoryID:    req.CategoryID,
		UnitOfMeasure: req.UnitOfMeasure,
		CostPrice:     req.CostPrice,
		SellingPrice:  req.SellingPrice,
		Quantity:      req.Quantity,
		MinStockLevel: req.MinStockLevel,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Item created successfully", item)
}

// Get handles getting a single item
func (h *ItemHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	item, err := h.itemService.GetItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item retrieved successfully", item)
}

// Update handles updating an item
func (h *ItemHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req struct {
		Name          *string          `json:"name"`
		Description   *string          `json:"description"`
		CategoryID    *uuid.UUID       `json:"category_id"`
		UnitOfMeasure *string          `json:"unit_of_measure"`
		CostPrice     *decimal.Decimal `json:"cost_price"`
		SellingPrice  *decimal.Decimal `json:"selling_price"`
		MinStockLevel *int             `json:"min_stock_level"`
		IsActive      *bool            `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.itemService.UpdateItem(c.Request.Context(), &service.UpdateItemInput{
		ID:            id,
		Name:          req.Name,
		Description:   req.Description,
		CategoryID:    req.CategoryID,
		UnitOfMeasure: req.UnitOfMeasure,
		CostPrice:     req.CostPrice,
		SellingPrice:  req.SellingPrice,
		MinStockLevel: req.MinStockLevel,
		IsActive:      req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item updated successfully", item)
}

// Delete handles deleting an item
func (h *ItemHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	if err := h.itemService.DeleteItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// AdjustStock handles a manual stock adjustment
func (h *ItemHandler) AdjustStock(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req struct {
		Delta     int    `json:"delta" binding:"required"`
		Type      string `json:"type"`
		Reference string `json:"reference"`
		Notes     string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	movementType := enum.MovementTypeAdjustment
	if req.Type != "" {
		parsed, ok := enum.ParseMovementType(req.Type)
		if !ok {
			response.BadRequest(c, "Unknown movement type")
			return
		}
		movementType = parsed
	}

	item, err := h.itemService.AdjustStock(c.Request.Context(), &service.AdjustStockInput{
		ItemID:    id,
		ActorID:   *userID,
		Delta:     req.Delta,
		Type:      movementType,
		Reference: req.Reference,
		Notes:     req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock adjusted successfully", item)
}

// ListMovements handles listing an item's stock movement history
func (h *ItemHandler) ListMovements(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}

	result, err := h.itemService.ListMovements(c.Request.Context(), id, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Stock movements retrieved successfully", result)
}

// ListCategories handles listing categories
func (h *ItemHandler) ListCategories(c *gin.Context) {
	categories, err := h.itemService.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Categories retrieved successfully", categories)
}

// CreateCategory handles creating a category
func (h *ItemHandler) CreateCategory(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.itemService.CreateCategory(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Category created successfully", category)
}

// UpdateCategory handles updating a category
func (h *ItemHandler) UpdateCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.itemService.UpdateCategory(c.Request.Context(), id, req.Name, req.Description)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Category updated successfully", category)
}

// DeleteCategory handles deleting a category
func (h *ItemHandler) DeleteCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	if err := h.itemService.DeleteCategory(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
