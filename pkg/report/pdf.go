package report

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"
)

// WritePDF renders the table as a landscape A4 PDF with the letterhead
// at the top and column widths split evenly.
func WritePDF(table *Table, lh Letterhead) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	writeLetterhead(pdf, lh)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, table.Name, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageW - left - right
	colW := usable / float64(len(table.Headers))

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for _, header := range table.Headers {
		pdf.CellFormat(colW, 7, header, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range table.Rows {
		for _, value := range row {
			pdf.CellFormat(colW, 6, value, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	writeFooter(pdf, lh)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeLetterhead(pdf *gofpdf.Fpdf, lh Letterhead) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 9, lh.BusinessName, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	if lh.AddressLine1 != "" {
		pdf.CellFormat(0, 5, lh.AddressLine1, "", 1, "L", false, 0, "")
	}
	if lh.AddressLine2 != "" {
		pdf.CellFormat(0, 5, lh.AddressLine2, "", 1, "L", false, 0, "")
	}
	contact := lh.Phone
	if lh.Email != "" {
		if contact != "" {
			contact += "  |  "
		}
		contact += lh.Email
	}
	if contact != "" {
		pdf.CellFormat(0, 5, contact, "", 1, "L", false, 0, "")
	}
	if lh.GSTIN != "" {
		pdf.CellFormat(0, 5, "GSTIN: "+lh.GSTIN, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func writeFooter(pdf *gofpdf.Fpdf, lh Letterhead) {
	if lh.FooterNote == "" {
		return
	}
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 5, lh.FooterNote, "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}
