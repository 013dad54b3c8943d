package report

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"
)

// ReceiptData carries everything printed on a receipt PDF.
type ReceiptData struct {
	ReceiptNumber string
	IssuedDate    string
	CustomerName  string
	CustomerGSTIN string
	Description   string
	PaymentMethod string
	Amount        string
	TaxAmount     string
	GSTAmount     string
	TotalAmount   string
	Notes         string
}

// InvoiceLine is one row on an invoice PDF.
type InvoiceLine struct {
	Name      string
	SKU       string
	Quantity  string
	UnitPrice string
	TaxAmount string
	GSTAmount string
	LineTotal string
}

// InvoiceData carries everything printed on a sale invoice PDF.
type InvoiceData struct {
	SaleNumber    string
	SaleDate      string
	Status        string
	CustomerName  string
	CustomerGSTIN string
	Lines         []InvoiceLine
	Subtotal      string
	TaxTotal      string
	GSTTotal      string
	GrandTotal    string
	Notes         string
}

// WriteReceiptPDF renders a single-transaction receipt on letterhead.
func WriteReceiptPDF(data ReceiptData, lh Letterhead) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	writeLetterhead(pdf, lh)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "RECEIPT", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	labelled(pdf, "Receipt No", data.ReceiptNumber)
	labelled(pdf, "Date", data.IssuedDate)
	labelled(pdf, "Received From", data.CustomerName)
	if data.CustomerGSTIN != "" {
		labelled(pdf, "Customer GSTIN", data.CustomerGSTIN)
	}
	if data.Description != "" {
		labelled(pdf, "Towards", data.Description)
	}
	labelled(pdf, "Payment Method", data.PaymentMethod)
	pdf.Ln(4)

	amountRow(pdf, "Amount", data.Amount, false)
	amountRow(pdf, "Tax", data.TaxAmount, false)
	amountRow(pdf, "GST", data.GSTAmount, false)
	amountRow(pdf, "Total", data.TotalAmount, true)

	if data.Notes != "" {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(0, 5, data.Notes, "", "L", false)
	}

	writeFooter(pdf, lh)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteInvoicePDF renders a sale invoice with line items on letterhead.
func WriteInvoicePDF(data InvoiceData, lh Letterhead) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	writeLetterhead(pdf, lh)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "TAX INVOICE", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	labelled(pdf, "Invoice No", data.SaleNumber)
	labelled(pdf, "Date", data.SaleDate)
	labelled(pdf, "Status", data.Status)
	labelled(pdf, "Billed To", data.CustomerName)
	if data.CustomerGSTIN != "" {
		labelled(pdf, "Customer GSTIN", data.CustomerGSTIN)
	}
	pdf.Ln(4)

	widths := []float64{60, 25, 15, 25, 20, 20, 25}
	headers := []string{"Item", "SKU", "Qty", "Unit Price", "Tax", "GST", "Total"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 7, header, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, line := range data.Lines {
		cells := []string{line.Name, line.SKU, line.Quantity, line.UnitPrice, line.TaxAmount, line.GSTAmount, line.LineTotal}
		for i, value := range cells {
			pdf.CellFormat(widths[i], 6, value, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)

	amountRow(pdf, "Subtotal", data.Subtotal, false)
	amountRow(pdf, "Tax", data.TaxTotal, false)
	amountRow(pdf, "GST", data.GSTTotal, false)
	amountRow(pdf, "Grand Total", data.GrandTotal, true)

	if data.Notes != "" {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(0, 5, data.Notes, "", "L", false)
	}

	writeFooter(pdf, lh)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func labelled(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(40, 6, label+":", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}

func amountRow(pdf *gofpdf.Fpdf, label, value string, bold bool) {
	style := ""
	if bold {
		style = "B"
	}
	pdf.SetFont("Helvetica", style, 10)
	pdf.CellFormat(120, 6, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(35, 6, label, "1", 0, "L", false, 0, "")
	pdf.CellFormat(35, 6, value, "1", 1, "R", false, 0, "")
}
