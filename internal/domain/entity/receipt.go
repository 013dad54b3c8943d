package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/primag/sales-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Receipt is a printable acknowledgement for exactly one transaction.
// Its amount mirrors the transaction total at issue time.
type Receipt struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	ReceiptNumber string             `gorm:"size:50;unique;not null" json:"receipt_number"`
	TransactionID uuid.UUID          `gorm:"type:uuid;unique;not null" json:"transaction_id"`
	Status        enum.ReceiptStatus `gorm:"default:0" json:"status"`
	Amount        decimal.Decimal    `gorm:"type:decimal(12,2);not null" json:"amount"`
	IssuedDate    *time.Time         `json:"issued_date,omitempty"`
	Notes         string             `gorm:"type:text" json:"notes"`
	CreatedBy     uuid.UUID          `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`

	// Relationships
	Transaction Transaction `gorm:"foreignKey:TransactionID" json:"transaction,omitempty"`
	Creator     User        `gorm:"foreignKey:CreatedBy" json:"-"`
}

// BeforeCreate generates a UUID before creating a new receipt
func (r *Receipt) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Receipt model
func (Receipt) TableName() string {
	return "receipts"
}

// CanIssue reports whether the receipt may transition to issued.
func (r *Receipt) CanIssue() bool {
	return r.Status == enum.ReceiptStatusDraft
}

// CanCancel reports whether the receipt may transition to cancelled.
func (r *Receipt) CanCancel() bool {
	return r.Status != enum.ReceiptStatusCancelled
}
