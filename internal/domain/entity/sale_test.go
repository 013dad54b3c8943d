package entity

import (
	"testing"

	"github.com/primag/sales-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

func TestRecomputeTotalsSumsLines(t *testing.T) {
	sale := &Sale{
		Items: []SaleItem{
			{
				Quantity:      2,
				UnitPrice:     decimal.NewFromInt(100),
				TaxPercentage: decimal.NewFromInt(10),
				GSTPercentage: decimal.NewFromInt(18),
			},
			{
				Quantity:  3,
				UnitPrice: decimal.NewFromInt(50),
			},
		},
	}
	sale.RecomputeTotals()

	if got := sale.Subtotal.StringFixed(2); got != "350.00" {
		t.Errorf("subtotal = %s, want 350.00", got)
	}
	if got := sale.TaxTotal.StringFixed(2); got != "20.00" {
		t.Errorf("tax total = %s, want 20.00", got)
	}
	if got := sale.GSTTotal.StringFixed(2); got != "36.00" {
		t.Errorf("gst total = %s, want 36.00", got)
	}
	if got := sale.GrandTotal.StringFixed(2); got != "406.00" {
		t.Errorf("grand total = %s, want 406.00", got)
	}
}

func TestRecomputeTotalsUpdatesLineTotals(t *testing.T) {
	sale := &Sale{
		Items: []SaleItem{
			{
				Quantity:      4,
				UnitPrice:     decimal.RequireFromString("25.50"),
				GSTPercentage: decimal.NewFromInt(5),
			},
		},
	}
	sale.RecomputeTotals()

	line := sale.Items[0]
	if got := line.GSTAmount.StringFixed(2); got != "5.10" {
		t.Errorf("line gst = %s, want 5.10", got)
	}
	if got := line.LineTotal.StringFixed(2); got != "107.10" {
		t.Errorf("line total = %s, want 107.10", got)
	}
}

func TestRecomputeTotalsEmptySale(t *testing.T) {
	sale := &Sale{}
	sale.RecomputeTotals()

	if !sale.GrandTotal.IsZero() {
		t.Errorf("grand total = %s, want 0", sale.GrandTotal)
	}
}

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		from    enum.SaleStatus
		to      enum.SaleStatus
		allowed bool
	}{
		{enum.SaleStatusDraft, enum.SaleStatusConfirmed, true},
		{enum.SaleStatusDraft, enum.SaleStatusCancelled, true},
		{enum.SaleStatusDraft, enum.SaleStatusDelivered, false},
		{enum.SaleStatusConfirmed, enum.SaleStatusDispatched, true},
		{enum.SaleStatusConfirmed, enum.SaleStatusDraft, false},
		{enum.SaleStatusDispatched, enum.SaleStatusDelivered, true},
		{enum.SaleStatusDispatched, enum.SaleStatusReturned, true},
		{enum.SaleStatusDelivered, enum.SaleStatusReturned, true},
		{enum.SaleStatusDelivered, enum.SaleStatusCancelled, false},
		{enum.SaleStatusCancelled, enum.SaleStatusDraft, false},
		{enum.SaleStatusReturned, enum.SaleStatusDraft, false},
	}

	for _, tc := range cases {
		sale := &Sale{Status: tc.from}
		if got := sale.CanTransitionTo(tc.to); got != tc.allowed {
			t.Errorf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}
