package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/primag/sales-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Sale is a customer order with line items. Totals are derived from the
// lines and recomputed whenever the lines change.
type Sale struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	SaleNumber string          `gorm:"size:50;unique;not null" json:"sale_number"`
	CustomerID uuid.UUID       `gorm:"type:uuid;not null;index" json:"customer_id"`
	Status     enum.SaleStatus `gorm:"default:0" json:"status"`
	SaleDate   time.Time       `gorm:"type:date;not null;index" json:"sale_date"`

	Subtotal    decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"subtotal"`
	TaxTotal    decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"tax_total"`
	GSTTotal    decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"gst_total"`
	GrandTotal  decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"grand_total"`
	Notes       string          `gorm:"type:text" json:"notes"`
	DeliveredAt *time.Time      `json:"delivered_at,omitempty"`

	CreatedBy uuid.UUID      `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Customer Customer   `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Creator  User       `gorm:"foreignKey:CreatedBy" json:"-"`
	Items    []SaleItem `gorm:"foreignKey:SaleID" json:"items,omitempty"`
}

// SaleItem is one line on a sale. LineTotal is derived from unit price,
// quantity and the per-line tax and GST amounts.
type SaleItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SaleID    uuid.UUID `gorm:"type:uuid;not null;index" json:"sale_id"`
	ItemID    uuid.UUID `gorm:"type:uuid;not null" json:"item_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`

	TaxPercentage decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"tax_percentage"`
	TaxAmount     decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"tax_amount"`
	GSTPercentage decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"gst_percentage"`
	GSTAmount     decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"gst_amount"`
	LineTotal     decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"line_total"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Item Item `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// BeforeCreate generates a UUID before creating a new sale item
func (s *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleItem model
func (SaleItem) TableName() string {
	return "sale_items"
}

// ComputeTotals derives the line's tax, GST and total amounts from the
// unit price, quantity and percentages.
func (s *SaleItem) ComputeTotals() {
	base := s.UnitPrice.Mul(decimal.NewFromInt(int64(s.Quantity)))
	s.TaxAmount = base.Mul(s.TaxPercentage).Div(hundred).Round(2)
	s.GSTAmount = base.Mul(s.GSTPercentage).Div(hundred).Round(2)
	s.LineTotal = base.Add(s.TaxAmount).Add(s.GSTAmount)
}

// RecomputeTotals derives the sale's totals from its items. Each item's
// own totals are recomputed first.
func (s *Sale) RecomputeTotals() {
	subtotal := decimal.Zero
	taxTotal := decimal.Zero
	gstTotal := decimal.Zero
	for i := range s.Items {
		s.Items[i].ComputeTotals()
		base := s.Items[i].UnitPrice.Mul(decimal.NewFromInt(int64(s.Items[i].Quantity)))
		subtotal = subtotal.Add(base)
		taxTotal = taxTotal.Add(s.Items[i].TaxAmount)
		gstTotal = gstTotal.Add(s.Items[i].GSTAmount)
	}
	s.Subtotal = subtotal
	s.TaxTotal = taxTotal
	s.GSTTotal = gstTotal
	s.GrandTotal = subtotal.Add(taxTotal).Add(gstTotal)
}

// CanTransitionTo reports whether the status change is allowed.
func (s *Sale) CanTransitionTo(next enum.SaleStatus) bool {
	allowed, ok := saleTransitions[s.Status]
	if !ok {
		return false
	}
	for _, st := range allowed {
		if st == next {
			return true
		}
	}
	return false
}

var saleTransitions = map[enum.SaleStatus][]enum.SaleStatus{
	enum.SaleStatusDraft:      {enum.SaleStatusConfirmed, enum.SaleStatusCancelled},
	enum.SaleStatusConfirmed:  {enum.SaleStatusDispatched, enum.SaleStatusCancelled},
	enum.SaleStatusDispatched: {enum.SaleStatusDelivered, enum.SaleStatusReturned},
	enum.SaleStatusDelivered:  {enum.SaleStatusReturned},
}
