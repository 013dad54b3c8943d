package main

import (
	"context"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	apphook "github.com/primag/sales-api/internal/application/hook"
	"github.com/primag/sales-api/internal/application/service"
	"github.com/primag/sales-api/internal/config"
	"github.com/primag/sales-api/internal/domain/entity"
	"github.com/primag/sales-api/internal/infrastructure/database"
	"github.com/primag/sales-api/internal/infrastructure/repository"
	"github.com/primag/sales-api/internal/presentation/http/handler"
	"github.com/primag/sales-api/internal/presentation/http/routes"
	"github.com/primag/sales-api/pkg/email"
	"github.com/primag/sales-api/pkg/logger"
	"github.com/primag/sales-api/pkg/oauth"
	"github.com/primag/sales-api/pkg/utils"
)

func main() {
	cfg := config.Load()

	logger.SetLevel(cfg.App.LogLevel)
	appLog := logger.Get()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := database.SeedDefaultData(db); err != nil {
		appLog.WithError(err).Warn("failed to seed default data")
	}

	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours, cfg.JWT.RefreshExpiryHours)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	permissionRepo := repository.NewPermissionRepository(db)
	passwordResetRepo := repository.NewPasswordResetTokenRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	receiptRepo := repository.NewReceiptRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	itemRepo := repository.NewItemRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	movementRepo := repository.NewStockMovementRepository(db)
	revenueRepo := repository.NewRevenueRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// External services
	smtpPort, _ := strconv.Atoi(cfg.SMTP.Port)
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.SMTP.Host,
		SMTPPort:     smtpPort,
		SMTPUsername: cfg.SMTP.Username,
		SMTPPassword: cfg.SMTP.Password,
		FromName:     cfg.Letterhead.BusinessName,
		FromEmail:    cfg.SMTP.From,
	})
	googleOAuth := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		RedirectURL:  cfg.Google.RedirectURL,
	})

	// Application services
	dispatcher := apphook.NewDispatcher(appLog)
	authService := service.NewAuthService(userRepo, roleRepo, passwordResetRepo, jwtManager, emailService)
	auditService := service.NewAuditService(auditRepo)
	customerService := service.NewCustomerService(customerRepo)
	transactionService := service.NewTransactionService(transactionRepo, customerRepo, dispatcher)
	receiptService := service.NewReceiptService(receiptRepo, transactionRepo, cfg.Letterhead, emailService)
	saleService := service.NewSaleService(saleRepo, itemRepo, customerRepo, cfg.Letterhead, dispatcher)
	itemService := service.NewItemService(itemRepo, categoryRepo, movementRepo)
	revenueService := service.NewRevenueService(revenueRepo, customerRepo, saleRepo, transactionRepo)
	dashboardService := service.NewDashboardService(analyticsRepo)
	exportService := service.NewExportService(transactionService, saleService, itemService, revenueService, cfg.Letterhead)
	userService := service.NewUserService(userRepo, roleRepo, permissionRepo)

	registerRevenueHooks(dispatcher, revenueService)

	// HTTP handlers
	handlers := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService, auditService, googleOAuth),
		Customer:    handler.NewCustomerHandler(customerService, auditService),
		Transaction: handler.NewTransactionHandler(transactionService, auditService),
		Receipt:     handler.NewReceiptHandler(receiptService, auditService),
		Sale:        handler.NewSaleHandler(saleService, auditService),
		Item:        handler.NewItemHandler(itemService),
		Revenue:     handler.NewRevenueHandler(revenueService),
		Audit:       handler.NewAuditHandler(auditService),
		User:        handler.NewUserHandler(userService, auditService),
		Dashboard:   handler.NewDashboardHandler(dashboardService),
		Export:      handler.NewExportHandler(exportService, auditService),
	}

	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	scheduler := startRevenueScheduler(cfg.Revenue.CronSpec, revenueService, appLog)
	defer scheduler.Stop()

	appLog.WithFields(logrus.Fields{
		"port": cfg.App.Port,
		"env":  cfg.App.Env,
	}).Info("starting server")
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// registerRevenueHooks keeps revenue rollups current by recomputing
// the period containing each written sale or transaction, so a
// back-dated write rebuilds its own period rather than the current
// one. Handler failures are logged by the dispatcher and never block
// the triggering write.
func registerRevenueHooks(dispatcher *apphook.Dispatcher, revenueService *service.RevenueService) {
	dispatcher.Register("sale", "revenue-recompute", func(ctx context.Context, evt apphook.Event) error {
		sale, ok := evt.Payload.(*entity.Sale)
		if !ok {
			return nil
		}
		_, err := revenueService.RecomputeForCustomer(ctx, sale.CustomerID, sale.SaleDate)
		return err
	})
	dispatcher.Register("transaction", "revenue-recompute", func(ctx context.Context, evt apphook.Event) error {
		tx, ok := evt.Payload.(*entity.Transaction)
		if !ok {
			return nil
		}
		_, err := revenueService.RecomputeForCustomer(ctx, tx.CustomerID, tx.TransactionDate)
		return err
	})
}

// startRevenueScheduler runs the full revenue rollup on the configured
// cron schedule so periods stay correct even if individual hooks were
// missed while the process was down.
func startRevenueScheduler(spec string, revenueService *service.RevenueService, appLog *logrus.Logger) *cron.Cron {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		created, updated, err := revenueService.RecomputeAll(context.Background())
		if err != nil {
			appLog.WithError(err).Error("scheduled revenue recompute failed")
			return
		}
		appLog.WithFields(logrus.Fields{
			"created": created,
			"updated": updated,
		}).Info("scheduled revenue recompute completed")
	})
	if err != nil {
		appLog.WithError(err).WithField("spec", spec).Warn("invalid revenue cron spec, scheduler disabled")
		return c
	}
	c.Start()
	return c
}
