package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

type orderStatus string

func (s orderStatus) String() string { return string(s) }

type buyer struct {
	Name string
	Tags map[string]string
}

type order struct {
	Number   string
	Buyer    *buyer
	Status   orderStatus
	Total    decimal.Decimal
	PlacedAt time.Time
	Quantity int
}

func (o *order) Oversized() bool { return o.Quantity > 10 }

func TestBuildTableResolvesDotPaths(t *testing.T) {
	orders := []order{
		{
			Number:   "SAL-001",
			Buyer:    &buyer{Name: "Acme Traders"},
			Status:   "confirmed",
			Total:    decimal.NewFromFloat(192.5),
			PlacedAt: time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC),
			Quantity: 3,
		},
		{
			Number:   "SAL-002",
			Status:   "draft",
			Total:    decimal.NewFromInt(40),
			Quantity: 12,
		},
	}

	table, err := BuildTable("Orders", []Field{
		{Header: "Number", Path: "Number"},
		{Header: "Buyer", Path: "Buyer.Name"},
		{Header: "Status", Path: "Status"},
		{Header: "Total", Path: "Total"},
		{Header: "Placed", Path: "PlacedAt"},
		{Header: "Oversized", Path: "Oversized"},
	}, orders)
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}

	if len(table.Headers) != 6 || table.Headers[1] != "Buyer" {
		t.Fatalf("headers = %v", table.Headers)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}

	first := table.Rows[0]
	want := []string{"SAL-001", "Acme Traders", "confirmed", "192.50", "2024-03-15 09:30:00", "false"}
	for i, cell := range want {
		if first[i] != cell {
			t.Errorf("row 0 col %d = %q, want %q", i, first[i], cell)
		}
	}

	second := table.Rows[1]
	// Nil relation and zero time render as empty cells
	if second[1] != "" {
		t.Errorf("nil buyer cell = %q, want empty", second[1])
	}
	if second[4] != "" {
		t.Errorf("zero time cell = %q, want empty", second[4])
	}
	if second[5] != "true" {
		t.Errorf("method cell = %q, want true", second[5])
	}
}

func TestBuildTableSerializesStructuredValues(t *testing.T) {
	orders := []order{
		{Number: "SAL-003", Buyer: &buyer{Name: "Acme", Tags: map[string]string{"tier": "gold"}}},
	}

	table, err := BuildTable("Orders", []Field{
		{Header: "Tags", Path: "Buyer.Tags"},
	}, orders)
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}
	if got := table.Rows[0][0]; got != `{"tier":"gold"}` {
		t.Errorf("tags cell = %q", got)
	}
}

func TestBuildTableUnknownSegment(t *testing.T) {
	if _, err := BuildTable("Orders", []Field{{Header: "X", Path: "Missing"}}, []order{{}}); err == nil {
		t.Fatal("expected error for unknown path segment")
	}
}

func TestBuildTableRejectsNonSlice(t *testing.T) {
	if _, err := BuildTable("Orders", nil, order{}); err == nil {
		t.Fatal("expected error for non-slice records")
	}
}
