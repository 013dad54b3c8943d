package entity

import (
	"testing"
	"time"

	"github.com/primag/sales-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPeriodBoundsDaily(t *testing.T) {
	start, end := PeriodBounds(enum.FrequencyDaily, date(2024, time.March, 15))
	if !start.Equal(date(2024, time.March, 15)) || !end.Equal(date(2024, time.March, 15)) {
		t.Errorf("daily bounds = %v to %v", start, end)
	}
}

func TestPeriodBoundsWeeklyStartsMonday(t *testing.T) {
	// 2024-03-15 is a Friday, so the week runs 11th through 17th.
	start, end := PeriodBounds(enum.FrequencyWeekly, date(2024, time.March, 15))
	if !start.Equal(date(2024, time.March, 11)) {
		t.Errorf("week start = %v, want 2024-03-11", start)
	}
	if !end.Equal(date(2024, time.March, 17)) {
		t.Errorf("week end = %v, want 2024-03-17", end)
	}

	// A Monday is its own week start.
	start, _ = PeriodBounds(enum.FrequencyWeekly, date(2024, time.March, 11))
	if !start.Equal(date(2024, time.March, 11)) {
		t.Errorf("monday week start = %v, want 2024-03-11", start)
	}

	// A Sunday belongs to the week that started the previous Monday.
	start, _ = PeriodBounds(enum.FrequencyWeekly, date(2024, time.March, 17))
	if !start.Equal(date(2024, time.March, 11)) {
		t.Errorf("sunday week start = %v, want 2024-03-11", start)
	}
}

func TestPeriodBoundsWeeklyCrossesMonthEdge(t *testing.T) {
	// 2024-04-01 is a Monday, 2024-03-31 a Sunday: the boundary week
	// spans both months.
	start, end := PeriodBounds(enum.FrequencyWeekly, date(2024, time.March, 31))
	if !start.Equal(date(2024, time.March, 25)) {
		t.Errorf("week start = %v, want 2024-03-25", start)
	}
	if !end.Equal(date(2024, time.March, 31)) {
		t.Errorf("week end = %v, want 2024-03-31", end)
	}
}

func TestPeriodBoundsMonthly(t *testing.T) {
	start, end := PeriodBounds(enum.FrequencyMonthly, date(2024, time.February, 10))
	if !start.Equal(date(2024, time.February, 1)) {
		t.Errorf("month start = %v, want 2024-02-01", start)
	}
	// 2024 is a leap year.
	if !end.Equal(date(2024, time.February, 29)) {
		t.Errorf("month end = %v, want 2024-02-29", end)
	}

	start, end = PeriodBounds(enum.FrequencyMonthly, date(2023, time.February, 28))
	if !end.Equal(date(2023, time.February, 28)) {
		t.Errorf("non-leap month end = %v, want 2023-02-28", end)
	}
	if !start.Equal(date(2023, time.February, 1)) {
		t.Errorf("non-leap month start = %v, want 2023-02-01", start)
	}
}

func TestPeriodBoundsYearly(t *testing.T) {
	start, end := PeriodBounds(enum.FrequencyYearly, date(2024, time.December, 31))
	if !start.Equal(date(2024, time.January, 1)) {
		t.Errorf("year start = %v, want 2024-01-01", start)
	}
	if !end.Equal(date(2024, time.December, 31)) {
		t.Errorf("year end = %v, want 2024-12-31", end)
	}
}

func TestPeriodBoundsNormalizesTimeOfDay(t *testing.T) {
	ref := time.Date(2024, time.June, 5, 23, 45, 12, 0, time.UTC)
	start, end := PeriodBounds(enum.FrequencyDaily, ref)
	if !start.Equal(date(2024, time.June, 5)) || !end.Equal(date(2024, time.June, 5)) {
		t.Errorf("daily bounds with time-of-day = %v to %v", start, end)
	}
}

func TestSetTotals(t *testing.T) {
	var r Revenue
	r.SetTotals(
		PeriodTotals{
			Total: decimal.NewFromInt(1200),
			Tax:   decimal.NewFromInt(120),
			GST:   decimal.NewFromInt(216),
			Count: 4,
		},
		PeriodTotals{
			Total: decimal.RequireFromString("350.50"),
			Tax:   decimal.RequireFromString("35.05"),
			Count: 2,
		},
	)

	if got := r.SalesTotal.StringFixed(2); got != "1200.00" {
		t.Errorf("sales total = %s, want 1200.00", got)
	}
	if got := r.OtherTotal.StringFixed(2); got != "350.50" {
		t.Errorf("other total = %s, want 350.50", got)
	}
	if got := r.GrandTotal.StringFixed(2); got != "1550.50" {
		t.Errorf("grand total = %s, want 1550.50", got)
	}
	if got := r.TaxTotal.StringFixed(2); got != "155.05" {
		t.Errorf("tax total = %s, want 155.05", got)
	}
	if got := r.GSTTotal.StringFixed(2); got != "216.00" {
		t.Errorf("gst total = %s, want 216.00", got)
	}
	if r.TransactionCount != 6 {
		t.Errorf("transaction count = %d, want 6", r.TransactionCount)
	}
}
