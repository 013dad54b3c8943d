package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/primag/sales-api/internal/application/service"
	"github.com/primag/sales-api/internal/domain/enum"
	"github.com/primag/sales-api/internal/presentation/http/dto/response"
)

// UserHandler handles user management HTTP requests
type UserHandler struct {
	userService  *service.UserService
	auditService *service.AuditService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *service.UserService, auditService *service.AuditService) *UserHandler {
	return &UserHandler{
		userService:  userService,
		auditService: auditService,
	}
}

// List handles listing users
func (h *UserHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	result, err := h.userService.ListUsers(c.Request.Context(), &service.ListUsersInput{
		Page:    page,
		PerPage: perPage,
		Search:  c.Query("search"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Users retrieved successfully", result)
}

// Get handles getting a single user with role and permissions
func (h *UserHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User retrieved successfully", user)
}

// AssignRole handles setting a user's role
func (h *UserHandler) AssignRole(c *gin.Context) {
	actorID := GetUserID(c)
	if actorID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	var req struct {
		RoleID uint `json:"role_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.AssignRole(c.Request.Context(), &service.AssignRoleInput{
		UserID:     id,
		RoleID:     req.RoleID,
		AssignedBy: *actorID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	roleName := ""
	if user.RoleAssignment != nil {
		roleName = user.RoleAssignment.Role.Name
	}
	h.auditService.Record(c.Request.Context(), service.RecordInput{
		UserID:      actorID,
		Action:      enum.AuditActionPermissionChange,
		EntityType:  "user",
		EntityID:    id.String(),
		EntityLabel: user.Email,
		Description: "Role " + roleName + " assigned to " + user.Email,
		NewValues:   map[string]string{"role": roleName},
		IPAddress:   c.ClientIP(),
		UserAgent:   c.Request.UserAgent(),
	})

	response.OK(c, "Role assigned successfully", user)
}

// RemoveRole handles clearing a user's role
func (h *UserHandler) RemoveRole(c *gin.Context) {
	actorID := GetUserID(c)
	if actorID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	if err := h.userService.RemoveRole(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	h.auditService.Record(c.Request.Context(), service.RecordInput{
		UserID:      actorID,
		Action:      enum.AuditActionPermissionChange,
		EntityType:  "user",
		EntityID:    id.String(),
		Description: "Role assignment removed",
		NewValues:   map[string]string{"role": ""},
		IPAddress:   c.ClientIP(),
		UserAgent:   c.Request.UserAgent(),
	})

	response.OK(c, "Role removed successfully", nil)
}

// SetActive handles activating or deactivating a user
func (h *UserHandler) SetActive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	var req struct {
		IsActive *bool `json:"is_active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.SetUserActive(c.Request.Context(), id, *req.IsActive)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User updated successfully", user)
}

// Delete handles deleting a user
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ListRoles handles listing roles
func (h *UserHandler) ListRoles(c *gin.Context) {
	roles, err := h.userService.ListRoles(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Roles retrieved successfully", roles)
}

// ListPermissions handles listing permissions
func (h *UserHandler) ListPermissions(c *gin.Context) {
	permissions, err := h.userService.ListPermissions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Permissions retrieved successfully", permissions)
}
