package handler

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/primag/sales-api/internal/application/service"
	"github.com/primag/sales-api/internal/domain/enum"
	"github.com/primag/sales-api/internal/presentation/http/dto/request"
	"github.com/primag/sales-api/internal/presentation/http/dto/response"
	"github.com/primag/sales-api/pkg/apperror"
	"github.com/primag/sales-api/pkg/oauth"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService  *service.AuthService
	auditService *service.AuditService
	googleOAuth  *oauth.GoogleOAuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, auditService *service.AuditService, googleOAuth *oauth.GoogleOAuthService) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		auditService: auditService,
		googleOAuth:  googleOAuth,
	}
}

// Login handles user login
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	output, err := h.authService.Login(c.Request.Context(), &service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	h.recordLogin(c, output)

	response.OK(c, "Login successful", loginPayload(output))
}

// Register handles user registration
func (h *AuthHandler) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.Register(c.Request.Context(), &service.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Registration successful", gin.H{
		"user": gin.H{
			"id":         user.ID,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"email":      user.Email,
			"username":   user.Username,
		},
	})
}

// RefreshToken handles token refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req request.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	output, err := h.authService.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Token refreshed successfully", gin.H{
		"access_token":  output.AccessToken,
		"refresh_token": output.RefreshToken,
		"token_type":    "Bearer",
	})
}

// Logout handles user logout
func (h *AuthHandler) Logout(c *gin.Context) {
	// JWT is stateless; the client discards the tokens
	response.OK(c, "Logged out successfully", nil)
}

// GoogleLogin redirects the user to Google's consent page
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	if h.googleOAuth == nil || !h.googleOAuth.IsConfigured() {
		response.ServiceUnavailable(c, "Google login is not configured")
		return
	}

	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		response.InternalServerError(c, "Failed to generate state")
		return
	}
	state := hex.EncodeToString(raw)

	c.SetCookie("oauth_state", state, 600, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, h.googleOAuth.GetAuthURL(state))
}

// GoogleCallback completes the OAuth flow and issues tokens
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	if h.googleOAuth == nil || !h.googleOAuth.IsConfigured() {
		response.ServiceUnavailable(c, "Google login is not configured")
		return
	}

	state, err := c.Cookie("oauth_state")
	if err != nil || state == "" || state != c.Query("state") {
		response.BadRequest(c, "Invalid OAuth state")
		return
	}

	token, err := h.googleOAuth.ExchangeCode(c.Request.Context(), c.Query("code"))
	if err != nil {
		response.BadRequest(c, "Invalid authorization code")
		return
	}

	info, err := h.googleOAuth.GetUserInfo(c.Request.Context(), token)
	if err != nil {
		response.InternalServerError(c, "Failed to fetch Google profile")
		return
	}

	output, err := h.authService.LoginWithGoogle(c.Request.Context(), &service.GoogleLoginInput{
		Email:     info.Email,
		FirstName: info.GivenName,
		LastName:  info.FamilyName,
		Photo:     info.Picture,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	h.recordLogin(c, output)

	response.OK(c, "Login successful", loginPayload(output))
}

// GetProfile handles fetching current user profile
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	user, err := h.authService.GetCurrentUser(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	roleName := ""
	if user.RoleAssignment != nil {
		roleName = user.RoleAssignment.Role.Name
	}

	response.OK(c, "Profile retrieved successfully", gin.H{
		"user": gin.H{
			"id":            user.ID,
			"first_name":    user.FirstName,
			"last_name":     user.LastName,
			"email":         user.Email,
			"username":      user.Username,
			"photo":         user.Photo,
			"role":          roleName,
			"permissions":   user.GetPermissions(),
			"last_login_at": user.LastLoginAt,
			"created_at":    user.CreatedAt,
			"updated_at":    user.UpdatedAt,
		},
	})
}

// UpdateProfile handles updating user profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		FirstName string  `json:"first_name"`
		LastName  string  `json:"last_name"`
		Username  string  `json:"username"`
		Photo     *string `json:"photo"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.UpdateProfile(c.Request.Context(), &service.UpdateProfileInput{
		UserID:    *userID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Photo:     req.Photo,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Profile updated successfully", gin.H{"user": user})
}

// ChangePassword handles password change
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	err := h.authService.ChangePassword(c.Request.Context(), &service.ChangePasswordInput{
		UserID:          *userID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		if apperror.IsAppError(err) {
			response.Error(c, err)
		} else {
			response.BadRequest(c, err.Error())
		}
		return
	}

	response.OK(c, "Password changed successfully", nil)
}

// ForgotPassword handles forgot password request
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req request.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	_ = h.authService.ForgotPassword(c.Request.Context(), &service.ForgotPasswordInput{
		Email: req.Email,
	})

	// Always succeed to prevent email enumeration
	response.OK(c, "If the email exists, a reset link has been sent", nil)
}

// ResetPassword handles password reset
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req request.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	err := h.authService.ResetPassword(c.Request.Context(), &service.ResetPasswordInput{
		Email:       req.Email,
		Token:       req.Token,
		NewPassword: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Password reset successfully", nil)
}

func (h *AuthHandler) recordLogin(c *gin.Context, output *service.LoginOutput) {
	h.auditService.Record(c.Request.Context(), service.RecordInput{
		UserID:      &output.User.ID,
		Action:      enum.AuditActionLogin,
		EntityType:  "user",
		EntityID:    output.User.ID.String(),
		EntityLabel: output.User.Email,
		Description: "User " + output.User.Email + " logged in",
		IPAddress:   c.ClientIP(),
		UserAgent:   c.Request.UserAgent(),
	})
}

func loginPayload(output *service.LoginOutput) gin.H {
	roleName := ""
	if output.User.RoleAssignment != nil {
		roleName = output.User.RoleAssignment.Role.Name
	}

	return gin.H{
		"user": gin.H{
			"id":          output.User.ID,
			"first_name":  output.User.FirstName,
			"last_name":   output.User.LastName,
			"email":       output.User.Email,
			"username":    output.User.Username,
			"photo":       output.User.Photo,
			"role":        roleName,
			"permissions": output.User.GetPermissions(),
		},
		"access_token":  output.AccessToken,
		"refresh_token": output.RefreshToken,
		"token_type":    "Bearer",
	}
}
