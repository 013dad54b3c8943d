package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/primag/sales-api/internal/domain/enum"
	"gorm.io/gorm"
)

// StockMovement records one quantity change against an item. Quantity
// is signed: inbound movements are positive, outbound negative.
type StockMovement struct {
	ID        uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	ItemID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"item_id"`
	Type      enum.MovementType `gorm:"not null" json:"movement_type"`
	Quantity  int               `gorm:"not null" json:"quantity"`
	Reference string            `gorm:"size:100" json:"reference"`
	Notes     string            `gorm:"type:text" json:"notes"`
	CreatedBy uuid.UUID         `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt time.Time         `gorm:"index" json:"created_at"`

	// Relationships
	Item    Item `gorm:"foreignKey:ItemID" json:"item,omitempty"`
	Creator User `gorm:"foreignKey:CreatedBy" json:"-"`
}

// BeforeCreate generates a UUID before creating a new stock movement
func (s *StockMovement) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StockMovement model
func (StockMovement) TableName() string {
	return "stock_movements"
}
