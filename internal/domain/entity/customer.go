package entity

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/primag/sales-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Customer represents a buyer/counterparty tracked by the platform
type Customer struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Email      string    `gorm:"size:255;unique;not null" json:"email"`
	Phone      string    `gorm:"size:50" json:"phone"`
	Address    string    `gorm:"type:text" json:"address"`
	City       string    `gorm:"size:100" json:"city"`
	State      string    `gorm:"size:100" json:"state"`
	PostalCode string    `gorm:"size:20" json:"postal_code"`
	Country    string    `gorm:"size:100" json:"country"`

	// Business info
	CompanyName string `gorm:"size:255" json:"company_name"`
	GSTIN       string `gorm:"size:20" json:"gstin"`
	PAN         string `gorm:"size:20" json:"pan"`

	// How often this customer's revenue is rolled up
	Frequency enum.Frequency `gorm:"default:2" json:"frequency"`

	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedBy uuid.UUID      `gorm:"type:uuid;not null;index" json:"created_by"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Creator      User          `gorm:"foreignKey:CreatedBy" json:"-"`
	Transactions []Transaction `gorm:"foreignKey:CustomerID" json:"-"`
	Sales        []Sale        `gorm:"foreignKey:CustomerID" json:"-"`
	Revenues     []Revenue     `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

// Snapshot captures the audited customer fields as strings.
func (c *Customer) Snapshot() map[string]string {
	return map[string]string{
		"name":         c.Name,
		"email":        c.Email,
		"phone":        c.Phone,
		"company_name": c.CompanyName,
		"gstin":        c.GSTIN,
		"frequency":    c.Frequency.String(),
		"is_active":    strconv.FormatBool(c.IsActive),
	}
}

// DisplayName returns the customer name with the company name when present
func (c *Customer) DisplayName() string {
	if c.CompanyName != "" {
		return c.Name + " (" + c.CompanyName + ")"
	}
	return c.Name
}
