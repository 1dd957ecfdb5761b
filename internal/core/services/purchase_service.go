package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bizbooks/bizbooks_backend/internal/apperrors"
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	portsrepo "github.com/bizbooks/bizbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
	"github.com/bizbooks/bizbooks_backend/internal/dto"
	"github.com/bizbooks/bizbooks_backend/internal/platform/metrics"
	"github.com/shopspring/decimal"
)

// purchaseService posts and reads purchase invoices.
type purchaseService struct {
	BaseService
	purchaseRepo portsrepo.PurchaseRepository
	supplierRepo portsrepo.SupplierRepository
	productRepo  portsrepo.ProductRepository
}

// NewPurchaseService creates a new PurchaseService.
func NewPurchaseService(purchaseRepo portsrepo.PurchaseRepository, supplierRepo portsrepo.SupplierRepository, productRepo portsrepo.ProductRepository) portssvc.PurchaseService {
	return &purchaseService{
		purchaseRepo: purchaseRepo,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
	}
}

var _ portssvc.PurchaseService = (*purchaseService)(nil)

// PostPurchase validates a purchase request and persists it atomically. The
// same checks as sale posting apply, with the supplier standing in for the
// customer and stock moving in the opposite direction.
func (s *purchaseService) PostPurchase(ctx context.Context, req dto.CreatePurchaseInvoiceRequest) (*domain.PurchaseInvoice, error) {
	date, err := time.Parse(invoiceDateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid invoice date %q", apperrors.ErrValidation, req.Date)
	}

	lineTotals := make([]decimal.Decimal, len(req.Items))
	productIDs := make([]int64, len(req.Items))
	for i, item := range req.Items {
		lineTotals[i] = item.Total
		productIDs[i] = item.ProductID
	}
	if err := validateInvoiceTotals(req.Subtotal, req.DiscountTotal, req.TaxTotal, req.Total, req.Paid, req.Remaining, lineTotals); err != nil {
		metrics.PostingFailures.WithLabelValues("purchase").Inc()
		return nil, err
	}

	if _, err := s.supplierRepo.FindSupplierByID(ctx, req.SupplierID); err != nil {
		metrics.PostingFailures.WithLabelValues("purchase").Inc()
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: supplier %d does not exist", apperrors.ErrValidation, req.SupplierID)
		}
		return nil, err
	}
	products, err := s.productRepo.FindProductsByIDs(ctx, productIDs)
	if err != nil {
		metrics.PostingFailures.WithLabelValues("purchase").Inc()
		return nil, err
	}
	for _, id := range productIDs {
		if _, ok := products[id]; !ok {
			metrics.PostingFailures.WithLabelValues("purchase").Inc()
			return nil, fmt.Errorf("%w: product %d does not exist", apperrors.ErrValidation, id)
		}
	}

	invoice := domain.PurchaseInvoice{
		SupplierID:    req.SupplierID,
		Date:          date,
		Subtotal:      req.Subtotal,
		DiscountTotal: req.DiscountTotal,
		TaxTotal:      req.TaxTotal,
		Total:         req.Total,
		Paid:          req.Paid,
		Remaining:     req.Remaining,
		Status:        req.Status,
		CreatedDate:   time.Now().UTC(),
		Items:         make([]domain.PurchaseItem, len(req.Items)),
	}
	if invoice.Status == "" {
		invoice.Status = defaultInvoiceStatus
	}
	for i, item := range req.Items {
		invoice.Items[i] = domain.PurchaseItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Cost:      item.Cost,
			Discount:  item.Discount,
			Total:     item.Total,
		}
	}

	created, err := s.purchaseRepo.CreatePurchaseInvoice(ctx, invoice)
	if err != nil {
		metrics.PostingFailures.WithLabelValues("purchase").Inc()
		s.LogError(ctx, err, "Failed to post purchase invoice", slog.Int64("supplier_id", req.SupplierID))
		return nil, err
	}

	metrics.InvoicesPosted.WithLabelValues("purchase").Inc()
	s.LogInfo(ctx, "Purchase invoice posted",
		slog.String("invoice_number", created.InvoiceNumber),
		slog.Int64("supplier_id", created.SupplierID))
	return created, nil
}

// GetPurchaseByID retrieves a single purchase invoice with items.
func (s *purchaseService) GetPurchaseByID(ctx context.Context, invoiceID int64) (*domain.PurchaseInvoice, error) {
	return s.purchaseRepo.FindPurchaseInvoiceByID(ctx, invoiceID)
}

// ListPurchases retrieves all purchase invoices with items.
func (s *purchaseService) ListPurchases(ctx context.Context) ([]domain.PurchaseInvoice, error) {
	return s.purchaseRepo.ListPurchaseInvoices(ctx)
}

// DeletePurchase removes a purchase invoice and its items without reversing
// the posting's stock and balance effects.
func (s *purchaseService) DeletePurchase(ctx context.Context, invoiceID int64) error {
	return s.purchaseRepo.DeletePurchaseInvoice(ctx, invoiceID)
}
