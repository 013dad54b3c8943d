package entity

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestIsLowStock(t *testing.T) {
	cases := []struct {
		quantity int
		min      int
		want     bool
	}{
		{10, 5, false},
		{5, 5, true},
		{0, 5, true},
		{0, 0, true},
		{1, 0, false},
	}
	for _, tc := range cases {
		item := &Item{Quantity: tc.quantity, MinStockLevel: tc.min}
		if got := item.IsLowStock(); got != tc.want {
			t.Errorf("quantity=%d min=%d: got %v, want %v", tc.quantity, tc.min, got, tc.want)
		}
	}
}

func TestMarginPercentage(t *testing.T) {
	item := &Item{
		CostPrice:    decimal.NewFromInt(60),
		SellingPrice: decimal.NewFromInt(100),
	}
	if got := item.MarginPercentage().StringFixed(2); got != "40.00" {
		t.Errorf("margin = %s, want 40.00", got)
	}
}

func TestMarginPercentageZeroSellingPrice(t *testing.T) {
	item := &Item{CostPrice: decimal.NewFromInt(10)}
	if !item.MarginPercentage().IsZero() {
		t.Errorf("margin = %s, want 0", item.MarginPercentage())
	}
}

func TestProfitPerUnitNegative(t *testing.T) {
	item := &Item{
		CostPrice:    decimal.NewFromInt(120),
		SellingPrice: decimal.NewFromInt(100),
	}
	if got := item.ProfitPerUnit().StringFixed(2); got != "-20.00" {
		t.Errorf("profit = %s, want -20.00", got)
	}
}
