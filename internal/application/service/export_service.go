package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/primag/sales-api/internal/config"
	"github.com/primag/sales-api/internal/domain/enum"
	"github.com/primag/sales-api/internal/domain/repository"
	"github.com/primag/sales-api/pkg/apperror"
	"github.com/primag/sales-api/pkg/report"
)

// ExportFormat names a supported export output
type ExportFormat string

const (
	FormatCSV  ExportFormat = "csv"
	FormatXLSX ExportFormat = "xlsx"
	FormatPDF  ExportFormat = "pdf"
)

// ContentType returns the MIME type for the format
func (f ExportFormat) ContentType() string {
	switch f {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPDF:
		return "application/pdf"
	default:
		return "text/csv; charset=utf-8"
	}
}

// ParseExportFormat validates a format query value, defaulting to CSV
func ParseExportFormat(raw string) (ExportFormat, error) {
	switch raw {
	case "", "csv":
		return FormatCSV, nil
	case "xlsx", "excel":
		return FormatXLSX, nil
	case "pdf":
		return FormatPDF, nil
	default:
		return "", apperror.NewBadRequestError(fmt.Sprintf("Unsupported export format: %s", raw))
	}
}

// ExportService turns domain listings into downloadable files
type ExportService struct {
	transactionService *TransactionService
	saleService        *SaleService
	itemService        *ItemService
	revenueService     *RevenueService
	letterhead         config.LetterheadConfig
}

// NewExportService creates a new export service
func NewExportService(
	transactionService *TransactionService,
	saleService *SaleService,
	itemService *ItemService,
	revenueService *RevenueService,
	letterhead config.LetterheadConfig,
) *ExportService {
	return &ExportService{
		transactionService: transactionService,
		saleService:        saleService,
		itemService:        itemService,
		revenueService:     revenueService,
		letterhead:         letterhead,
	}
}

// ExportResult is a rendered download
type ExportResult struct {
	Data        []byte
	Filename    string
	ContentType string
}

// ExportTransactions renders the filtered transaction ledger
func (s *ExportService) ExportTransactions(ctx context.Context, format ExportFormat, filter repository.TransactionFilter) (*ExportResult, error) {
	txs, err := s.transactionService.ListTransactionsForExport(ctx, filter)
	if err != nil {
		return nil, err
	}

	table, err := report.BuildTable("Transactions", []report.Field{
		{Header: "Date", Path: "TransactionDate"},
		{Header: "Customer", Path: "Customer.Name"},
		{Header: "Type", Path: "Type"},
		{Header: "Amount", Path: "Amount"},
		{Header: "Tax", Path: "TaxAmount"},
		{Header: "GST", Path: "GSTAmount"},
		{Header: "Total", Path: "TotalAmount"},
		{Header: "Payment Method", Path: "PaymentMethod"},
		{Header: "Reference", Path: "ReferenceNo"},
	}, txs)
	if err != nil {
		return nil, err
	}

	return s.render(table, "transactions", format)
}

// ExportSales renders the filtered sales register
func (s *ExportService) ExportSales(ctx context.Context, format ExportFormat, filter repository.SaleFilter) (*ExportResult, error) {
	sales, err := s.saleService.ListSalesForExport(ctx, filter)
	if err != nil {
		return nil, err
	}

	table, err := report.BuildTable("Sales", []report.Field{
		{Header: "Sale No", Path: "SaleNumber"},
		{Header: "Date", Path: "SaleDate"},
		{Header: "Customer", Path: "Customer.Name"},
		{Header: "Status", Path: "Status"},
		{Header: "Subtotal", Path: "Subtotal"},
		{Header: "Tax", Path: "TaxTotal"},
		{Header: "GST", Path: "GSTTotal"},
		{Header: "Grand Total", Path: "GrandTotal"},
	}, sales)
	if err != nil {
		return nil, err
	}

	return s.render(table, "sales", format)
}

// ExportInventory renders the current stock list
func (s *ExportService) ExportInventory(ctx context.Context, format ExportFormat) (*ExportResult, error) {
	items, err := s.itemService.ListItemsForExport(ctx)
	if err != nil {
		return nil, err
	}

	table, err := report.BuildTable("Inventory", []report.Field{
		{Header: "SKU", Path: "SKU"},
		{Header: "Name", Path: "Name"},
		{Header: "Category", Path: "Category.Name"},
		{Header: "Unit", Path: "UnitOfMeasure"},
		{Header: "Cost", Path: "CostPrice"},
		{Header: "Price", Path: "SellingPrice"},
		{Header: "Quantity", Path: "Quantity"},
		{Header: "Min Level", Path: "MinStockLevel"},
		{Header: "Low Stock", Path: "IsLowStock"},
	}, items)
	if err != nil {
		return nil, err
	}

	return s.render(table, "inventory", format)
}

// ExportRevenues renders the revenue rollup report
func (s *ExportService) ExportRevenues(ctx context.Context, format ExportFormat, filter RevenueExportFilter) (*ExportResult, error) {
	revenues, err := s.revenueService.ListRevenuesForExport(ctx, filter.CustomerID, filter.Frequency, filter.From, filter.To)
	if err != nil {
		return nil, err
	}

	table, err := report.BuildTable("Revenue", []report.Field{
		{Header: "Customer", Path: "Customer.Name"},
		{Header: "Frequency", Path: "Frequency"},
		{Header: "Period Start", Path: "StartDate"},
		{Header: "Period End", Path: "EndDate"},
		{Header: "Sales Total", Path: "SalesTotal"},
		{Header: "Other Income", Path: "OtherTotal"},
		{Header: "Tax Total", Path: "TaxTotal"},
		{Header: "GST Total", Path: "GSTTotal"},
		{Header: "Grand Total", Path: "GrandTotal"},
		{Header: "Entries", Path: "TransactionCount"},
	}, revenues)
	if err != nil {
		return nil, err
	}

	return s.render(table, "revenue", format)
}

// RevenueExportFilter narrows the revenue export
type RevenueExportFilter struct {
	CustomerID *uuid.UUID
	Frequency  *enum.Frequency
	From       *time.Time
	To         *time.Time
}

func (s *ExportService) render(table *report.Table, name string, format ExportFormat) (*ExportResult, error) {
	var data []byte
	var err error
	var ext string

	switch format {
	case FormatXLSX:
		ext = "xlsx"
		data, err = report.WriteXLSX(table)
	case FormatPDF:
		ext = "pdf"
		data, err = report.WritePDF(table, report.Letterhead{
			BusinessName: s.letterhead.BusinessName,
			AddressLine1: s.letterhead.AddressLine1,
			AddressLine2: s.letterhead.AddressLine2,
			Phone:        s.letterhead.Phone,
			Email:        s.letterhead.Email,
			GSTIN:        s.letterhead.GSTIN,
			FooterNote:   s.letterhead.FooterNote,
		})
	default:
		ext = "csv"
		data, err = report.WriteCSV(table)
	}
	if err != nil {
		return nil, err
	}

	return &ExportResult{
		Data:        data,
		Filename:    report.Filename(name, ext, time.Now()),
		ContentType: format.ContentType(),
	}, nil
}
