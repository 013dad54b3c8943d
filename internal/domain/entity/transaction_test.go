package entity

import (
	"testing"

	"github.com/primag/sales-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

func TestComputeTotalsDerivesTaxAndGST(t *testing.T) {
	tx := &Transaction{
		Amount:        decimal.NewFromInt(1000),
		IsTaxable:     true,
		TaxPercentage: decimal.NewFromInt(10),
		GSTApplicable: true,
		GSTPercentage: decimal.NewFromInt(18),
	}
	tx.ComputeTotals()

	if got := tx.TaxAmount.StringFixed(2); got != "100.00" {
		t.Errorf("tax amount = %s, want 100.00", got)
	}
	if got := tx.GSTAmount.StringFixed(2); got != "180.00" {
		t.Errorf("gst amount = %s, want 180.00", got)
	}
	if got := tx.TotalAmount.StringFixed(2); got != "1280.00" {
		t.Errorf("total amount = %s, want 1280.00", got)
	}
}

func TestComputeTotalsZeroesAmountsWhenFlagsOff(t *testing.T) {
	tx := &Transaction{
		Amount:        decimal.NewFromInt(500),
		IsTaxable:     false,
		TaxPercentage: decimal.NewFromInt(10),
		GSTApplicable: false,
		GSTPercentage: decimal.NewFromInt(18),
	}
	tx.ComputeTotals()

	if !tx.TaxAmount.IsZero() {
		t.Errorf("tax amount = %s, want 0", tx.TaxAmount)
	}
	if !tx.GSTAmount.IsZero() {
		t.Errorf("gst amount = %s, want 0", tx.GSTAmount)
	}
	if !tx.TotalAmount.Equal(tx.Amount) {
		t.Errorf("total amount = %s, want %s", tx.TotalAmount, tx.Amount)
	}
}

func TestComputeTotalsRoundsToTwoPlaces(t *testing.T) {
	tx := &Transaction{
		Amount:        decimal.RequireFromString("99.99"),
		IsTaxable:     true,
		TaxPercentage: decimal.RequireFromString("12.5"),
	}
	tx.ComputeTotals()

	// 99.99 * 12.5% = 12.49875, rounds to 12.50
	if got := tx.TaxAmount.StringFixed(2); got != "12.50" {
		t.Errorf("tax amount = %s, want 12.50", got)
	}
	if got := tx.TotalAmount.StringFixed(2); got != "112.49" {
		t.Errorf("total amount = %s, want 112.49", got)
	}
}

func TestComputeTotalsIsIdempotent(t *testing.T) {
	tx := &Transaction{
		Amount:        decimal.NewFromInt(250),
		IsTaxable:     true,
		TaxPercentage: decimal.NewFromInt(5),
		GSTApplicable: true,
		GSTPercentage: decimal.NewFromInt(12),
	}
	tx.ComputeTotals()
	first := tx.TotalAmount

	tx.ComputeTotals()
	if !tx.TotalAmount.Equal(first) {
		t.Errorf("recompute changed total from %s to %s", first, tx.TotalAmount)
	}
}

func TestSnapshotCapturesDerivedAmounts(t *testing.T) {
	tx := &Transaction{
		Type:          enum.TransactionTypeIncome,
		Amount:        decimal.NewFromInt(100),
		IsTaxable:     true,
		TaxPercentage: decimal.NewFromInt(10),
	}
	tx.ComputeTotals()
	snap := tx.Snapshot()

	if snap["amount"] != "100.00" {
		t.Errorf("snapshot amount = %q, want 100.00", snap["amount"])
	}
	if snap["tax_amount"] != "10.00" {
		t.Errorf("snapshot tax_amount = %q, want 10.00", snap["tax_amount"])
	}
	if snap["type"] != "income" {
		t.Errorf("snapshot type = %q, want income", snap["type"])
	}
}
