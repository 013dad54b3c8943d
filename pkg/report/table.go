package report

import (
	"fmt"
	"time"
)

// Table is a flat, format-agnostic report: headers plus string rows.
// Services build Tables and hand them to the CSV, XLSX or PDF writers.
type Table struct {
	Name    string
	Headers []string
	Rows    [][]string
}

// Letterhead is the business identity printed on PDF documents.
type Letterhead struct {
	BusinessName string
	AddressLine1 string
	AddressLine2 string
	Phone        string
	Email        string
	GSTIN        string
	FooterNote   string
}

// Filename builds a timestamped download name such as
// transactions_20240315_143022.csv.
func Filename(name, ext string, now time.Time) string {
	return fmt.Sprintf("%s_%s.%s", name, now.Format("20060102_150405"), ext)
}
