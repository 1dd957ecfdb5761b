package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceKind distinguishes the two invoice types and carries the prefix
// used in generated invoice numbers.
type InvoiceKind string

const (
	SaleKind     InvoiceKind = "S"
	PurchaseKind InvoiceKind = "P"
)

// FormatInvoiceNumber builds the display number for an invoice:
// {S|P}-{YYYYMMDD}-{seq}, seq zero-padded to four digits and uncapped
// beyond. The date is the posting date, not the invoice's business date.
func FormatInvoiceNumber(kind InvoiceKind, postedAt time.Time, seq int64) string {
	return fmt.Sprintf("%s-%s-%04d", kind, postedAt.Format("20060102"), seq)
}

// SaleInvoice is a posted sale. All monetary totals are caller-supplied and
// validated for internal consistency before posting; they are never
// recomputed after the invoice is persisted.
type SaleInvoice struct {
	ID            int64
	CustomerID    int64
	CustomerName  string
	InvoiceNumber string
	Date          time.Time
	Subtotal      decimal.Decimal
	DiscountTotal decimal.Decimal
	TaxTotal      decimal.Decimal
	Total         decimal.Decimal
	Paid          decimal.Decimal
	Remaining     decimal.Decimal
	Status        string
	CreatedDate   time.Time
	Items         []SaleItem
}

// SaleItem is one line of a sale invoice. Items are owned by the invoice and
// cascade-deleted with it.
type SaleItem struct {
	ID          int64
	InvoiceID   int64
	ProductID   int64
	ProductName string
	Quantity    int64
	Price       decimal.Decimal
	Discount    decimal.Decimal
	Total       decimal.Decimal
}

// PurchaseInvoice is a posted purchase from a supplier.
type PurchaseInvoice struct {
	ID            int64
	SupplierID    int64
	SupplierName  string
	InvoiceNumber string
	Date          time.Time
	Subtotal      decimal.Decimal
	DiscountTotal decimal.Decimal
	TaxTotal      decimal.Decimal
	Total         decimal.Decimal
	Paid          decimal.Decimal
	Remaining     decimal.Decimal
	Status        string
	CreatedDate   time.Time
	Items         []PurchaseItem
}

// PurchaseItem is one line of a purchase invoice.
type PurchaseItem struct {
	ID          int64
	InvoiceID   int64
	ProductID   int64
	ProductName string
	Quantity    int64
	Cost        decimal.Decimal
	Discount    decimal.Decimal
	Total       decimal.Decimal
}
