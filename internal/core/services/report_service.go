package services

import (
	"bytes"
	"context"
	"fmt"

	portsrepo "github.com/bizbooks/bizbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
	"github.com/xuri/excelize/v2"
)

// reportService renders xlsx exports of sales and inventory.
type reportService struct {
	BaseService
	saleRepo    portsrepo.SaleRepository
	productRepo portsrepo.ProductRepository
}

// NewReportService creates a new ReportService.
func NewReportService(saleRepo portsrepo.SaleRepository, productRepo portsrepo.ProductRepository) portssvc.ReportService {
	return &reportService{
		saleRepo:    saleRepo,
		productRepo: productRepo,
	}
}

var _ portssvc.ReportService = (*reportService)(nil)

// SalesReportXLSX renders one row per posted sale invoice.
func (s *reportService) SalesReportXLSX(ctx context.Context) ([]byte, error) {
	invoices, err := s.saleRepo.ListSaleInvoices(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sale invoices for report")
		return nil, err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"invoice_number",
		"date",
		"customer",
		"subtotal",
		"discount",
		"tax",
		"total",
		"paid",
		"remaining",
		"status",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("writing report header: %w", err)
	}

	row := 2
	for _, inv := range invoices {
		excelRow := []interface{}{
			inv.InvoiceNumber,
			inv.Date.Format(invoiceDateLayout),
			inv.CustomerName,
			inv.Subtotal.String(),
			inv.DiscountTotal.String(),
			inv.TaxTotal.String(),
			inv.Total.String(),
			inv.Paid.String(),
			inv.Remaining.String(),
			inv.Status,
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, fmt.Errorf("writing report row %d: %w", row, err)
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("writing report row %d: %w", row, err)
		}
		row++
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("encoding sales report: %w", err)
	}
	return buf.Bytes(), nil
}

// InventoryReportXLSX renders one row per product with its current stock
// level and a low-stock flag.
func (s *reportService) InventoryReportXLSX(ctx context.Context) ([]byte, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products for report")
		return nil, err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"code",
		"name",
		"category",
		"unit",
		"price",
		"cost",
		"quantity",
		"min_stock",
		"low_stock",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("writing report header: %w", err)
	}

	row := 2
	for _, p := range products {
		excelRow := []interface{}{
			p.Code,
			p.Name,
			p.Category,
			p.Unit,
			p.Price.String(),
			p.Cost.String(),
			p.Quantity,
			p.MinStock,
			p.IsLowStock(),
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, fmt.Errorf("writing report row %d: %w", row, err)
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("writing report row %d: %w", row, err)
		}
		row++
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("encoding inventory report: %w", err)
	}
	return buf.Bytes(), nil
}
