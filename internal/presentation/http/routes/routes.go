package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/primag/sales-api/internal/config"
	"github.com/primag/sales-api/internal/presentation/http/handler"
	"github.com/primag/sales-api/internal/presentation/http/middleware"
	"github.com/primag/sales-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth        *handler.AuthHandler
	Customer    *handler.CustomerHandler
	Transaction *handler.TransactionHandler
	Receipt     *handler.ReceiptHandler
	Sale        *handler.SaleHandler
	Item        *handler.ItemHandler
	Revenue     *handler.RevenueHandler
	Audit       *handler.AuditHandler
	User        *handler.UserHandler
	Dashboard   *handler.DashboardHandler
	Export      *handler.ExportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
		auth.POST("/reset-password", h.Auth.ResetPassword)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleLogin)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	registerDashboardRoutes(protected, h)
	registerCustomerRoutes(protected, h)
	registerTransactionRoutes(protected, h)
	registerReceiptRoutes(protected, h)
	registerSaleRoutes(protected, h)
	registerInventoryRoutes(protected, h)
	registerRevenueRoutes(protected, h)
	registerExportRoutes(protected, h)
	registerAuditRoutes(protected, h)
	registerUserRoutes(protected, h)
}

func registerDashboardRoutes(protected *gin.RouterGroup, h *Handlers) {
	dashboard := protected.Group("/dashboard")
	dashboard.Use(middleware.RequirePermission("view-dashboard"))
	{
		dashboard.GET("", h.Dashboard.GetStats)
		dashboard.GET("/charts/monthly-revenue", h.Dashboard.MonthlyRevenueChart)
		dashboard.GET("/charts/daily-sales", h.Dashboard.DailySalesChart)
	}
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	customers.Use(middleware.RequirePermission("manage-customers"))
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}
}

func registerTransactionRoutes(protected *gin.RouterGroup, h *Handlers) {
	transactions := protected.Group("/transactions")
	transactions.Use(middleware.RequirePermission("manage-transactions"))
	{
		transactions.GET("", h.Transaction.List)
		transactions.POST("", h.Transaction.Create)
		transactions.GET("/:id", h.Transaction.Get)
		transactions.PUT("/:id", h.Transaction.Update)
		transactions.DELETE("/:id", h.Transaction.Delete)
	}
}

func registerReceiptRoutes(protected *gin.RouterGroup, h *Handlers) {
	receipts := protected.Group("/receipts")
	receipts.Use(middleware.RequirePermission("manage-receipts"))
	{
		receipts.GET("", h.Receipt.List)
		receipts.POST("", h.Receipt.Create)
		receipts.GET("/:id", h.Receipt.Get)
		receipts.POST("/:id/issue", h.Receipt.Issue)
		receipts.POST("/:id/cancel", h.Receipt.Cancel)
		receipts.GET("/:id/pdf", h.Receipt.DownloadPDF)
		receipts.POST("/:id/email", h.Receipt.Email)
	}
}

func registerSaleRoutes(protected *gin.RouterGroup, h *Handlers) {
	sales := protected.Group("/sales")
	sales.Use(middleware.RequirePermission("manage-sales"))
	{
		sales.GET("", h.Sale.List)
		sales.POST("", h.Sale.Create)
		sales.GET("/:id", h.Sale.Get)
		sales.PUT("/:id", h.Sale.Update)
		sales.PUT("/:id/status", h.Sale.Transition)
		sales.DELETE("/:id", h.Sale.Delete)
		sales.GET("/:id/invoice", h.Sale.DownloadInvoicePDF)
	}
}

func registerInventoryRoutes(protected *gin.RouterGroup, h *Handlers) {
	items := protected.Group("/items")
	items.Use(middleware.RequirePermission("manage-inventory"))
	{
		items.GET("", h.Item.List)
		items.POST("", h.Item.Create)
		items.GET("/:id", h.Item.Get)
		items.PUT("/:id", h.Item.Update)
		items.DELETE("/:id", h.Item.Delete)
		items.POST("/:id/adjust-stock", h.Item.AdjustStock)
		items.GET("/:id/movements", h.Item.ListMovements)
	}

	categories := protected.Group("/categories")
	categories.Use(middleware.RequirePermission("manage-categories"))
	{
		categories.GET("", h.Item.ListCategories)
		categories.POST("", h.Item.CreateCategory)
		categories.PUT("/:id", h.Item.UpdateCategory)
		categories.DELETE("/:id", h.Item.DeleteCategory)
	}
}

func registerRevenueRoutes(protected *gin.RouterGroup, h *Handlers) {
	revenues := protected.Group("/revenues")
	revenues.Use(middleware.RequirePermission("view-revenue"))
	{
		revenues.GET("", h.Revenue.List)
		revenues.GET("/:id", h.Revenue.Get)
		revenues.POST("/recompute", h.Revenue.Recompute)
	}
}

func registerExportRoutes(protected *gin.RouterGroup, h *Handlers) {
	exports := protected.Group("/exports")
	exports.Use(middleware.RequirePermission("export-reports"))
	{
		exports.GET("/transactions", h.Export.Transactions)
		exports.GET("/sales", h.Export.Sales)
		exports.GET("/inventory", h.Export.Inventory)
		exports.GET("/revenues", h.Export.Revenues)
	}
}

func registerAuditRoutes(protected *gin.RouterGroup, h *Handlers) {
	audits := protected.Group("/audit-logs")
	audits.Use(middleware.RequirePermission("view-audit-logs"))
	{
		audits.GET("", h.Audit.List)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequirePermission("manage-users"))
	{
		users.GET("", h.User.List)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id/role", h.User.AssignRole)
		users.DELETE("/:id/role", h.User.RemoveRole)
		users.PUT("/:id/active", h.User.SetActive)
		users.DELETE("/:id", h.User.Delete)
	}

	roles := protected.Group("/roles")
	roles.Use(middleware.RequirePermission("manage-users"))
	{
		roles.GET("", h.User.ListRoles)
	}

	permissions := protected.Group("/permissions")
	permissions.Use(middleware.RequirePermission("manage-users"))
	{
		permissions.GET("", h.User.ListPermissions)
	}
}
