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

const invoiceDateLayout = "2006-01-02"

// defaultInvoiceStatus applies when the caller omits the free-text status.
const defaultInvoiceStatus = "partial"

// saleService posts and reads sale invoices.
type saleService struct {
	BaseService
	saleRepo     portsrepo.SaleRepository
	customerRepo portsrepo.CustomerRepository
	productRepo  portsrepo.ProductRepository
}

// NewSaleService creates a new SaleService.
func NewSaleService(saleRepo portsrepo.SaleRepository, customerRepo portsrepo.CustomerRepository, productRepo portsrepo.ProductRepository) portssvc.SaleService {
	return &saleService{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
	}
}

var _ portssvc.SaleService = (*saleService)(nil)

// PostSale validates a sale request and persists it atomically. Validation
// covers arithmetic consistency of the caller-supplied totals and the
// existence of the customer and every referenced product; any unresolved
// reference fails the posting before side effects are applied. The
// repository re-verifies references under row locks inside the transaction,
// so a concurrent delete still aborts the whole posting.
func (s *saleService) PostSale(ctx context.Context, req dto.CreateSaleInvoiceRequest) (*domain.SaleInvoice, error) {
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
		metrics.PostingFailures.WithLabelValues("sale").Inc()
		return nil, err
	}

	if _, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID); err != nil {
		metrics.PostingFailures.WithLabelValues("sale").Inc()
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: customer %d does not exist", apperrors.ErrValidation, req.CustomerID)
		}
		return nil, err
	}
	products, err := s.productRepo.FindProductsByIDs(ctx, productIDs)
	if err != nil {
		metrics.PostingFailures.WithLabelValues("sale").Inc()
		return nil, err
	}
	for _, id := range productIDs {
		if _, ok := products[id]; !ok {
			metrics.PostingFailures.WithLabelValues("sale").Inc()
			return nil, fmt.Errorf("%w: product %d does not exist", apperrors.ErrValidation, id)
		}
	}

	invoice := domain.SaleInvoice{
		CustomerID:    req.CustomerID,
		Date:          date,
		Subtotal:      req.Subtotal,
		DiscountTotal: req.DiscountTotal,
		TaxTotal:      req.TaxTotal,
		Total:         req.Total,
		Paid:          req.Paid,
		Remaining:     req.Remaining,
		Status:        req.Status,
		CreatedDate:   time.Now().UTC(),
		Items:         make([]domain.SaleItem, len(req.Items)),
	}
	if invoice.Status == "" {
		invoice.Status = defaultInvoiceStatus
	}
	for i, item := range req.Items {
		invoice.Items[i] = domain.SaleItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Discount:  item.Discount,
			Total:     item.Total,
		}
	}

	created, err := s.saleRepo.CreateSaleInvoice(ctx, invoice)
	if err != nil {
		metrics.PostingFailures.WithLabelValues("sale").Inc()
		s.LogError(ctx, err, "Failed to post sale invoice", slog.Int64("customer_id", req.CustomerID))
		return nil, err
	}

	metrics.InvoicesPosted.WithLabelValues("sale").Inc()
	s.LogInfo(ctx, "Sale invoice posted",
		slog.String("invoice_number", created.InvoiceNumber),
		slog.Int64("customer_id", created.CustomerID))
	return created, nil
}

// GetSaleByID retrieves a single sale invoice with items.
func (s *saleService) GetSaleByID(ctx context.Context, invoiceID int64) (*domain.SaleInvoice, error) {
	return s.saleRepo.FindSaleInvoiceByID(ctx, invoiceID)
}

// ListSales retrieves all sale invoices with items.
func (s *saleService) ListSales(ctx context.Context) ([]domain.SaleInvoice, error) {
	return s.saleRepo.ListSaleInvoices(ctx)
}

// DeleteSale removes a sale invoice and its items. The stock and balance
// effects of the original posting are deliberately left in place.
func (s *saleService) DeleteSale(ctx context.Context, invoiceID int64) error {
	return s.saleRepo.DeleteSaleInvoice(ctx, invoiceID)
}
