package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/primag/sales-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var hundred = decimal.NewFromInt(100)

// Transaction represents one income or expenditure ledger entry.
// Tax, GST and total amounts are derived from the base amount and the
// percentage fields; they are recomputed on every write, never hand-set.
type Transaction struct {
	ID            uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID    uuid.UUID            `gorm:"type:uuid;not null;index" json:"customer_id"`
	Type          enum.TransactionType `gorm:"default:0" json:"transaction_type"`
	Amount        decimal.Decimal      `gorm:"type:decimal(12,2);not null" json:"amount"`
	Description   string               `gorm:"type:text" json:"description"`
	PaymentMethod enum.PaymentMethod   `gorm:"default:0" json:"payment_method"`
	ReferenceNo   string               `gorm:"size:100" json:"reference_no"`

	// Tax information
	IsTaxable     bool            `gorm:"default:true" json:"is_taxable"`
	TaxPercentage decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"tax_percentage"`
	TaxAmount     decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"tax_amount"`

	// GST information
	GSTApplicable bool            `gorm:"default:false" json:"gst_applicable"`
	GSTPercentage decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"gst_percentage"`
	GSTAmount     decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"gst_amount"`

	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_amount"`

	TransactionDate time.Time `gorm:"type:date;not null;index" json:"transaction_date"`
	CreatedBy       uuid.UUID `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Relationships
	Customer Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Creator  User     `gorm:"foreignKey:CreatedBy" json:"-"`
	Receipt  *Receipt `gorm:"foreignKey:TransactionID" json:"receipt,omitempty"`
}

// BeforeCreate generates a UUID before creating a new transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}

// ComputeTotals derives tax, GST and total from the stored inputs.
// Idempotent: recomputing from the same inputs yields the same outputs.
// When a taxable/GST flag is off the corresponding amount is forced to
// zero regardless of the stored percentage.
func (t *Transaction) ComputeTotals() {
	if t.IsTaxable {
		t.TaxAmount = t.Amount.Mul(t.TaxPercentage).Div(hundred).Round(2)
	} else {
		t.TaxAmount = decimal.Zero
	}

	if t.GSTApplicable {
		t.GSTAmount = t.Amount.Mul(t.GSTPercentage).Div(hundred).Round(2)
	} else {
		t.GSTAmount = decimal.Zero
	}

	t.TotalAmount = t.Amount.Add(t.TaxAmount).Add(t.GSTAmount)
}

// Snapshot returns a flat string map of the transaction's significant
// fields, used for audit before/after captures.
func (t *Transaction) Snapshot() map[string]string {
	return map[string]string{
		"customer_id":    t.CustomerID.String(),
		"type":           t.Type.String(),
		"amount":         t.Amount.StringFixed(2),
		"payment_method": t.PaymentMethod.String(),
		"tax_amount":     t.TaxAmount.StringFixed(2),
		"gst_amount":     t.GSTAmount.StringFixed(2),
		"total_amount":   t.TotalAmount.StringFixed(2),
		"reference_no":   t.ReferenceNo,
	}
}
