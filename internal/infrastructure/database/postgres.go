package database

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/primag/sales-api/internal/config"
	"github.com/primag/sales-api/internal/domain/entity"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// User-related entities
		&entity.User{},
		&entity.Role{},
		&entity.Permission{},
		&entity.UserRole{},
		&entity.PasswordResetToken{},

		// Party entities
		&entity.Customer{},

		// Ledger entities
		&entity.Transaction{},
		&entity.Receipt{},
		&entity.Revenue{},

		// Inventory entities
		&entity.Category{},
		&entity.Item{},
		&entity.StockMovement{},

		// Sales entities
		&entity.Sale{},
		&entity.SaleItem{},

		// System entities
		&entity.AuditLog{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the database with default data (roles, permissions, admin user)
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	// Create default permissions
	permissions := []entity.Permission{
		{Name: "view-dashboard"},
		{Name: "manage-customers"},
		{Name: "manage-transactions"},
		{Name: "manage-receipts"},
		{Name: "manage-sales"},
		{Name: "manage-inventory"},
		{Name: "manage-categories"},
		{Name: "manage-users"},
		{Name: "view-revenue"},
		{Name: "view-audit-logs"},
		{Name: "export-reports"},
	}

	for i := range permissions {
		var existing entity.Permission
		if err := db.Where("name = ?", permissions[i].Name).First(&existing).Error; err != nil {
			if err := db.Create(&permissions[i]).Error; err != nil {
				log.Printf("Warning: failed to create permission %s: %v", permissions[i].Name, err)
			}
		}
	}

	// Reload permissions with IDs
	var allPermissions []entity.Permission
	db.Find(&allPermissions)

	pickPermissions := func(names []string) []entity.Permission {
		var picked []entity.Permission
		for _, name := range names {
			for _, p := range allPermissions {
				if p.Name == name {
					picked = append(picked, p)
					break
				}
			}
		}
		return picked
	}

	// Create admin role with all permissions
	var adminRole entity.Role
	if err := db.Where("name = ?", "admin").First(&adminRole).Error; err != nil {
		adminRole = entity.Role{
			Name:        "admin",
			Description: "Full access to all modules",
			Permissions: allPermissions,
		}
		if err := db.Create(&adminRole).Error; err != nil {
			log.Printf("Warning: failed to create admin role: %v", err)
		}
	}

	// Create accountant role
	var accountantRole entity.Role
	if err := db.Where("name = ?", "accountant").First(&accountantRole).Error; err != nil {
		accountantRole = entity.Role{
			Name:        "accountant",
			Description: "Transactions, receipts, revenue and exports",
			Permissions: pickPermissions([]string{
				"view-dashboard",
				"manage-customers",
				"manage-transactions",
				"manage-receipts",
				"view-revenue",
				"export-reports",
			}),
		}
		if err := db.Create(&accountantRole).Error; err != nil {
			log.Printf("Warning: failed to create accountant role: %v", err)
		}
	}

	// Create salesperson role
	var salesRole entity.Role
	if err := db.Where("name = ?", "salesperson").First(&salesRole).Error; err != nil {
		salesRole = entity.Role{
			Name:        "salesperson",
			Description: "Sales, customers and inventory lookups",
			Permissions: pickPermissions([]string{
				"view-dashboard",
				"manage-customers",
				"manage-sales",
				"manage-inventory",
			}),
		}
		if err := db.Create(&salesRole).Error; err != nil {
			log.Printf("Warning: failed to create salesperson role: %v", err)
		}
	}

	// Create viewer role for read-only registrants
	var viewerRole entity.Role
	if err := db.Where("name = ?", "viewer").First(&viewerRole).Error; err != nil {
		viewerRole = entity.Role{
			Name:        "viewer",
			Description: "Dashboard access only",
			Permissions: pickPermissions([]string{"view-dashboard"}),
		}
		if err := db.Create(&viewerRole).Error; err != nil {
			log.Printf("Warning: failed to create viewer role: %v", err)
		}
	}

	// Create admin user if configured via environment variables
	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminName := viper.GetString("ADMIN_NAME")

	if adminEmail != "" && adminPassword != "" {
		var existingAdmin entity.User
		if err := db.Where("email = ?", adminEmail).First(&existingAdmin).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				var role entity.Role
				if err := db.Where("name = ?", "admin").First(&role).Error; err == nil {
					if adminName == "" {
						adminName = "Admin User"
					}
					firstName := adminName
					lastName := ""
					for i, c := range adminName {
						if c == ' ' {
							firstName = adminName[:i]
							lastName = adminName[i+1:]
							break
						}
					}
					adminUser := entity.User{
						ID:        uuid.New(),
						FirstName: firstName,
						LastName:  lastName,
						Email:     adminEmail,
						Password:  string(hashedPassword),
					}
					if err := db.Create(&adminUser).Error; err != nil {
						log.Printf("Warning: failed to create admin user: %v", err)
					} else {
						assignment := entity.UserRole{
							UserID: adminUser.ID,
							RoleID: role.ID,
						}
						if err := db.Create(&assignment).Error; err != nil {
							log.Printf("Warning: failed to assign admin role: %v", err)
						}
						log.Printf("Admin user created: %s", adminEmail)
					}
				}
			}
		} else {
			log.Printf("Admin user already exists: %s", adminEmail)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
