package report

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func sampleTable() *Table {
	return &Table{
		Name:    "Transactions",
		Headers: []string{"Date", "Customer", "Amount"},
		Rows: [][]string{
			{"2024-03-01", "Acme Traders", "1500.00"},
			{"2024-03-02", "Blue Ocean, Ltd", "320.50"},
		},
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 30, 22, 0, time.UTC)
	got := Filename("transactions", "csv", now)
	want := "transactions_20240315_143022.csv"
	if got != want {
		t.Errorf("Filename = %q, want %q", got, want)
	}
}

func TestWriteCSV(t *testing.T) {
	data, err := WriteCSV(sampleTable())
	if err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Date,Customer,Amount" {
		t.Errorf("header = %q", lines[0])
	}
	// Comma inside a field must be quoted
	if !strings.Contains(lines[2], `"Blue Ocean, Ltd"`) {
		t.Errorf("comma field not quoted: %q", lines[2])
	}
}

func TestWriteXLSX(t *testing.T) {
	data, err := WriteXLSX(sampleTable())
	if err != nil {
		t.Fatalf("WriteXLSX: %v", err)
	}
	// XLSX files are zip archives
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Error("output is not a zip archive")
	}
}

func TestWritePDF(t *testing.T) {
	lh := Letterhead{BusinessName: "Primag Sales", FooterNote: "Thank you"}
	data, err := WritePDF(sampleTable(), lh)
	if err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("output is not a PDF document")
	}
}

func TestWriteReceiptPDF(t *testing.T) {
	data, err := WriteReceiptPDF(ReceiptData{
		ReceiptNumber: "RCT-20240315-00001",
		IssuedDate:    "2024-03-15",
		CustomerName:  "Acme Traders",
		PaymentMethod: "bank_transfer",
		Amount:        "1000.00",
		TaxAmount:     "100.00",
		GSTAmount:     "180.00",
		TotalAmount:   "1280.00",
	}, Letterhead{BusinessName: "Primag Sales"})
	if err != nil {
		t.Fatalf("WriteReceiptPDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("output is not a PDF document")
	}
}

func TestWriteInvoicePDF(t *testing.T) {
	data, err := WriteInvoicePDF(InvoiceData{
		SaleNumber:   "SAL-20240315-00002",
		SaleDate:     "2024-03-15",
		Status:       "confirmed",
		CustomerName: "Acme Traders",
		Lines: []InvoiceLine{
			{Name: "Widget", SKU: "ITM-AB12CD34", Quantity: "3", UnitPrice: "50.00", TaxAmount: "15.00", GSTAmount: "27.00", LineTotal: "192.00"},
		},
		Subtotal:   "150.00",
		TaxTotal:   "15.00",
		GSTTotal:   "27.00",
		GrandTotal: "192.00",
	}, Letterhead{BusinessName: "Primag Sales"})
	if err != nil {
		t.Fatalf("WriteInvoicePDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("output is not a PDF document")
	}
}
