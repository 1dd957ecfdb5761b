package repositories

import (
	"context"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
)

// SaleRepository defines persistence operations for sale invoices.
//
// CreateSaleInvoice must execute as a single database transaction: it
// generates the invoice number from the current max invoice ID, inserts the
// header and its items, subtracts each item's quantity from the referenced
// product's stock, and adds the invoice's remaining amount to the customer's
// balance. Any failure rolls the whole posting back.
type SaleRepository interface {
	CreateSaleInvoice(ctx context.Context, invoice domain.SaleInvoice) (*domain.SaleInvoice, error)
	FindSaleInvoiceByID(ctx context.Context, invoiceID int64) (*domain.SaleInvoice, error)
	ListSaleInvoices(ctx context.Context) ([]domain.SaleInvoice, error)
	ListRecentSaleInvoices(ctx context.Context, limit int) ([]domain.SaleInvoice, error)
	// DeleteSaleInvoice removes the invoice; its items cascade with it.
	// Prior stock and balance side effects are intentionally not reversed.
	DeleteSaleInvoice(ctx context.Context, invoiceID int64) error
}

// PurchaseRepository defines persistence operations for purchase invoices.
// CreatePurchaseInvoice mirrors CreateSaleInvoice with inverted stock
// movement: item quantities are added to product stock, and the remaining
// amount is added to the supplier's balance.
type PurchaseRepository interface {
	CreatePurchaseInvoice(ctx context.Context, invoice domain.PurchaseInvoice) (*domain.PurchaseInvoice, error)
	FindPurchaseInvoiceByID(ctx context.Context, invoiceID int64) (*domain.PurchaseInvoice, error)
	ListPurchaseInvoices(ctx context.Context) ([]domain.PurchaseInvoice, error)
	DeletePurchaseInvoice(ctx context.Context, invoiceID int64) error
}
