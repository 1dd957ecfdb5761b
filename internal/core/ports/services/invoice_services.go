package services

import (
	"context"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	"github.com/bizbooks/bizbooks_backend/internal/dto"
)

// SaleService posts and reads sale invoices. PostSale validates the request
// (required fields, arithmetic consistency, referential integrity) and then
// persists the invoice with its stock and balance side effects atomically.
type SaleService interface {
	PostSale(ctx context.Context, req dto.CreateSaleInvoiceRequest) (*domain.SaleInvoice, error)
	GetSaleByID(ctx context.Context, invoiceID int64) (*domain.SaleInvoice, error)
	ListSales(ctx context.Context) ([]domain.SaleInvoice, error)
	DeleteSale(ctx context.Context, invoiceID int64) error
}

// PurchaseService posts and reads purchase invoices.
type PurchaseService interface {
	PostPurchase(ctx context.Context, req dto.CreatePurchaseInvoiceRequest) (*domain.PurchaseInvoice, error)
	GetPurchaseByID(ctx context.Context, invoiceID int64) (*domain.PurchaseInvoice, error)
	ListPurchases(ctx context.Context) ([]domain.PurchaseInvoice, error)
	DeletePurchase(ctx context.Context, invoiceID int64) error
}

// DashboardService produces the read-only summary snapshot.
type DashboardService interface {
	GetSummary(ctx context.Context) (*domain.DashboardSummary, error)
}

// ReportService renders exportable report files.
type ReportService interface {
	SalesReportXLSX(ctx context.Context) ([]byte, error)
	InventoryReportXLSX(ctx context.Context) ([]byte, error)
}
