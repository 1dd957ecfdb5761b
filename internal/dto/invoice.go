package dto

import (
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// SaleItemRequest is one requested line of a sale posting. The line total is
// caller-supplied; the service verifies it is consistent with the header.
type SaleItemRequest struct {
	ProductID int64           `json:"product_id" binding:"required"`
	Quantity  int64           `json:"quantity" binding:"required,gt=0"`
	Price     decimal.Decimal `json:"price" binding:"dgte0"`
	Discount  decimal.Decimal `json:"discount" binding:"omitempty,dgte0"`
	Total     decimal.Decimal `json:"total" binding:"dgte0"`
}

// CreateSaleInvoiceRequest is the body of POST /api/sales.
type CreateSaleInvoiceRequest struct {
	CustomerID    int64             `json:"customer_id" binding:"required"`
	Date          string            `json:"date" binding:"required,datetime=2006-01-02"`
	Items         []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
	Subtotal      decimal.Decimal   `json:"subtotal" binding:"dgte0"`
	DiscountTotal decimal.Decimal   `json:"discount_total" binding:"omitempty,dgte0"`
	TaxTotal      decimal.Decimal   `json:"tax_total" binding:"omitempty,dgte0"`
	Total         decimal.Decimal   `json:"total" binding:"dgte0"`
	Paid          decimal.Decimal   `json:"paid" binding:"omitempty,dgte0"`
	Remaining     decimal.Decimal   `json:"remaining"`
	Status        string            `json:"status"`
}

// PurchaseItemRequest is one requested line of a purchase posting.
type PurchaseItemRequest struct {
	ProductID int64           `json:"product_id" binding:"required"`
	Quantity  int64           `json:"quantity" binding:"required,gt=0"`
	Cost      decimal.Decimal `json:"cost" binding:"dgte0"`
	Discount  decimal.Decimal `json:"discount" binding:"omitempty,dgte0"`
	Total     decimal.Decimal `json:"total" binding:"dgte0"`
}

// CreatePurchaseInvoiceRequest is the body of POST /api/purchases.
type CreatePurchaseInvoiceRequest struct {
	SupplierID    int64                 `json:"supplier_id" binding:"required"`
	Date          string                `json:"date" binding:"required,datetime=2006-01-02"`
	Items         []PurchaseItemRequest `json:"items" binding:"required,min=1,dive"`
	Subtotal      decimal.Decimal       `json:"subtotal" binding:"dgte0"`
	DiscountTotal decimal.Decimal       `json:"discount_total" binding:"omitempty,dgte0"`
	TaxTotal      decimal.Decimal       `json:"tax_total" binding:"omitempty,dgte0"`
	Total         decimal.Decimal       `json:"total" binding:"dgte0"`
	Paid          decimal.Decimal       `json:"paid" binding:"omitempty,dgte0"`
	Remaining     decimal.Decimal       `json:"remaining"`
	Status        string                `json:"status"`
}

// SaleItemResponse is one line of a returned sale invoice, enriched with the
// referenced product's display name.
type SaleItemResponse struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Discount    decimal.Decimal `json:"discount"`
	Total       decimal.Decimal `json:"total"`
}

// SaleInvoiceResponse defines the data returned for a sale invoice.
type SaleInvoiceResponse struct {
	ID            int64              `json:"id"`
	InvoiceNumber string             `json:"invoice_number"`
	CustomerID    int64              `json:"customer_id"`
	CustomerName  string             `json:"customer_name"`
	Date          string             `json:"date"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	DiscountTotal decimal.Decimal    `json:"discount_total"`
	TaxTotal      decimal.Decimal    `json:"tax_total"`
	Total         decimal.Decimal    `json:"total"`
	Paid          decimal.Decimal    `json:"paid"`
	Remaining     decimal.Decimal    `json:"remaining"`
	Status        string             `json:"status"`
	Items         []SaleItemResponse `json:"items"`
}

// PurchaseItemResponse is one line of a returned purchase invoice.
type PurchaseItemResponse struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	Cost        decimal.Decimal `json:"cost"`
	Discount    decimal.Decimal `json:"discount"`
	Total       decimal.Decimal `json:"total"`
}

// PurchaseInvoiceResponse defines the data returned for a purchase invoice.
type PurchaseInvoiceResponse struct {
	ID            int64                  `json:"id"`
	InvoiceNumber string                 `json:"invoice_number"`
	SupplierID    int64                  `json:"supplier_id"`
	SupplierName  string                 `json:"supplier_name"`
	Date          string                 `json:"date"`
	Subtotal      decimal.Decimal        `json:"subtotal"`
	DiscountTotal decimal.Decimal        `json:"discount_total"`
	TaxTotal      decimal.Decimal        `json:"tax_total"`
	Total         decimal.Decimal        `json:"total"`
	Paid          decimal.Decimal        `json:"paid"`
	Remaining     decimal.Decimal        `json:"remaining"`
	Status        string                 `json:"status"`
	Items         []PurchaseItemResponse `json:"items"`
}

// ToSaleInvoiceResponse converts a domain.SaleInvoice to its response DTO.
func ToSaleInvoiceResponse(inv *domain.SaleInvoice) SaleInvoiceResponse {
	items := make([]SaleItemResponse, len(inv.Items))
	for i, it := range inv.Items {
		items[i] = SaleItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
			Discount:    it.Discount,
			Total:       it.Total,
		}
	}
	return SaleInvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		CustomerID:    inv.CustomerID,
		CustomerName:  inv.CustomerName,
		Date:          inv.Date.Format(dateLayout),
		Subtotal:      inv.Subtotal,
		DiscountTotal: inv.DiscountTotal,
		TaxTotal:      inv.TaxTotal,
		Total:         inv.Total,
		Paid:          inv.Paid,
		Remaining:     inv.Remaining,
		Status:        inv.Status,
		Items:         items,
	}
}

// ToListSaleInvoiceResponse converts a slice of sale invoices to DTOs.
func ToListSaleInvoiceResponse(invoices []domain.SaleInvoice) []SaleInvoiceResponse {
	res := make([]SaleInvoiceResponse, len(invoices))
	for i, inv := range invoices {
		res[i] = ToSaleInvoiceResponse(&inv)
	}
	return res
}

// ToPurchaseInvoiceResponse converts a domain.PurchaseInvoice to its response DTO.
func ToPurchaseInvoiceResponse(inv *domain.PurchaseInvoice) PurchaseInvoiceResponse {
	items := make([]PurchaseItemResponse, len(inv.Items))
	for i, it := range inv.Items {
		items[i] = PurchaseItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Cost:        it.Cost,
			Discount:    it.Discount,
			Total:       it.Total,
		}
	}
	return PurchaseInvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		SupplierID:    inv.SupplierID,
		SupplierName:  inv.SupplierName,
		Date:          inv.Date.Format(dateLayout),
		Subtotal:      inv.Subtotal,
		DiscountTotal: inv.DiscountTotal,
		TaxTotal:      inv.TaxTotal,
		Total:         inv.Total,
		Paid:          inv.Paid,
		Remaining:     inv.Remaining,
		Status:        inv.Status,
		Items:         items,
	}
}

// ToListPurchaseInvoiceResponse converts a slice of purchase invoices to DTOs.
func ToListPurchaseInvoiceResponse(invoices []domain.PurchaseInvoice) []PurchaseInvoiceResponse {
	res := make([]PurchaseInvoiceResponse, len(invoices))
	for i, inv := range invoices {
		res[i] = ToPurchaseInvoiceResponse(&inv)
	}
	return res
}
