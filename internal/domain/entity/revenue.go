package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/primag/sales-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Revenue is a per-customer, per-period rollup of sales and transaction
// income. One row exists per (customer, frequency, period start); the
// composite unique index backs the get-or-create upsert so concurrent
// recomputes converge on a single row.
type Revenue struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_revenue_period" json:"customer_id"`
	Frequency  enum.Frequency  `gorm:"not null;uniqueIndex:idx_revenue_period" json:"frequency"`
	StartDate  time.Time       `gorm:"type:date;not null;uniqueIndex:idx_revenue_period" json:"start_date"`
	EndDate    time.Time       `gorm:"type:date;not null" json:"end_date"`
	SalesTotal       decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"sales_total"`
	OtherTotal       decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"other_total"`
	TaxTotal         decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"tax_total"`
	GSTTotal         decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"gst_total"`
	GrandTotal       decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"grand_total"`
	TransactionCount int64           `gorm:"default:0" json:"transaction_count"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`

	// Relationships
	Customer Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}

// BeforeCreate generates a UUID before creating a new revenue row
func (r *Revenue) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Revenue model
func (Revenue) TableName() string {
	return "revenues"
}

// PeriodTotals is one source's contribution to a rollup period: summed
// amounts plus the number of records behind them.
type PeriodTotals struct {
	Total decimal.Decimal
	Tax   decimal.Decimal
	GST   decimal.Decimal
	Count int64
}

// SetTotals stores the sale and income contributions and their sums.
func (r *Revenue) SetTotals(sales, other PeriodTotals) {
	r.SalesTotal = sales.Total
	r.OtherTotal = other.Total
	r.TaxTotal = sales.Tax.Add(other.Tax)
	r.GSTTotal = sales.GST.Add(other.GST)
	r.GrandTotal = sales.Total.Add(other.Total)
	r.TransactionCount = sales.Count + other.Count
}

// PeriodBounds returns the inclusive start and end dates of the period
// that contains ref for the given frequency. Weekly periods start on
// Monday; monthly and yearly periods follow calendar boundaries so a
// December period ends on the 31st and February honours leap years.
func PeriodBounds(freq enum.Frequency, ref time.Time) (time.Time, time.Time) {
	ref = time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	switch freq {
	case enum.FrequencyDaily:
		return ref, ref
	case enum.FrequencyWeekly:
		offset := (int(ref.Weekday()) + 6) % 7
		start := ref.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 6)
	case enum.FrequencyYearly:
		start := time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		return start, time.Date(ref.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
	default:
		start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, -1)
	}
}
