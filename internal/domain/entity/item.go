package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Item is a stocked product available for sale.
type Item struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name          string          `gorm:"size:255;not null" json:"name"`
	SKU           string          `gorm:"size:100;unique;not null" json:"sku"`
	Description   string          `gorm:"type:text" json:"description"`
	CategoryID    *uuid.UUID      `gorm:"type:uuid;index" json:"category_id,omitempty"`
	UnitOfMeasure string          `gorm:"size:30;default:'piece'" json:"unit_of_measure"`
	CostPrice     decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"cost_price"`
	SellingPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"selling_price"`
	Quantity      int             `gorm:"default:0" json:"quantity"`
	MinStockLevel int             `gorm:"default:0" json:"min_stock_level"`
	IsActive      bool            `gorm:"default:true" json:"is_active"`
	CreatedBy     uuid.UUID       `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Category  *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Creator   User            `gorm:"foreignKey:CreatedBy" json:"-"`
	Movements []StockMovement `gorm:"foreignKey:ItemID" json:"movements,omitempty"`
}

// BeforeCreate generates a UUID before creating a new item
func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Item model
func (Item) TableName() string {
	return "items"
}

// IsLowStock reports whether quantity has reached the minimum level.
func (i *Item) IsLowStock() bool {
	return i.Quantity <= i.MinStockLevel
}

// ProfitPerUnit returns selling price minus cost price.
func (i *Item) ProfitPerUnit() decimal.Decimal {
	return i.SellingPrice.Sub(i.CostPrice)
}

// MarginPercentage returns the profit margin as a percentage of the
// selling price, zero when the selling price is zero.
func (i *Item) MarginPercentage() decimal.Decimal {
	if i.SellingPrice.IsZero() {
		return decimal.Zero
	}
	return i.ProfitPerUnit().Mul(hundred).Div(i.SellingPrice).Round(2)
}
