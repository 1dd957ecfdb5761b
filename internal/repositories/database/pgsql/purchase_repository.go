package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/bizbooks/bizbooks_backend/internal/apperrors"
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	portsrepo "github.com/bizbooks/bizbooks_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPurchaseRepository struct {
	BaseRepository
}

// newPgxPurchaseRepository creates a new repository for purchase invoices.
func newPgxPurchaseRepository(pool *pgxpool.Pool) portsrepo.PurchaseRepository {
	return &PgxPurchaseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PurchaseRepository = (*PgxPurchaseRepository)(nil)

// CreatePurchaseInvoice posts a purchase atomically. It mirrors the sale
// posting with inverted stock movement: item quantities are added to product
// stock, and the remaining amount is added to the supplier's balance.
func (r *PgxPurchaseRepository) CreatePurchaseInvoice(ctx context.Context, invoice domain.PurchaseInvoice) (*domain.PurchaseInvoice, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	seq, err := nextInvoiceSeq(ctx, tx, "purchase_invoices")
	if err != nil {
		return nil, err
	}
	invoice.InvoiceNumber = domain.FormatInvoiceNumber(domain.PurchaseKind, invoice.CreatedDate, seq)

	headerQuery := `
		INSERT INTO purchase_invoices (supplier_id, invoice_number, date, subtotal, discount_total, tax_total, total, paid, remaining, status, created_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id;
	`
	err = tx.QueryRow(ctx, headerQuery,
		invoice.SupplierID,
		invoice.InvoiceNumber,
		invoice.Date,
		invoice.Subtotal,
		invoice.DiscountTotal,
		invoice.TaxTotal,
		invoice.Total,
		invoice.Paid,
		invoice.Remaining,
		invoice.Status,
		invoice.CreatedDate,
	).Scan(&invoice.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert purchase invoice: %w", err)
	}

	productIDs := make([]int64, 0, len(invoice.Items))
	for _, item := range invoice.Items {
		productIDs = append(productIDs, item.ProductID)
	}
	products, err := lockProductsForUpdate(ctx, tx, productIDs)
	if err != nil {
		return nil, err
	}

	itemQuery := `
		INSERT INTO purchase_items (invoice_id, product_id, quantity, cost, discount, total)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
	`
	stockQuery := `UPDATE products SET quantity = quantity + $1 WHERE id = $2;`
	for i := range invoice.Items {
		item := &invoice.Items[i]
		item.InvoiceID = invoice.ID
		item.ProductName = products[item.ProductID].Name

		err = tx.QueryRow(ctx, itemQuery,
			item.InvoiceID,
			item.ProductID,
			item.Quantity,
			item.Cost,
			item.Discount,
			item.Total,
		).Scan(&item.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to insert purchase item for invoice %s: %w", invoice.InvoiceNumber, err)
		}

		if _, err := tx.Exec(ctx, stockQuery, item.Quantity, item.ProductID); err != nil {
			return nil, fmt.Errorf("failed to adjust stock for product %d: %w", item.ProductID, err)
		}
	}

	balanceQuery := `
		UPDATE suppliers SET balance = balance + $1 WHERE id = $2
		RETURNING name;
	`
	err = tx.QueryRow(ctx, balanceQuery, invoice.Remaining, invoice.SupplierID).Scan(&invoice.SupplierName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("supplier %d referenced by invoice: %w", invoice.SupplierID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update balance for supplier %d: %w", invoice.SupplierID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit purchase invoice %s: %w", invoice.InvoiceNumber, err)
	}
	return &invoice, nil
}

const purchaseInvoiceColumns = `
	pi.id, pi.supplier_id, COALESCE(s.name, ''), pi.invoice_number, pi.date,
	pi.subtotal, pi.discount_total, pi.tax_total, pi.total, pi.paid,
	pi.remaining, pi.status, pi.created_date`

func scanPurchaseInvoice(row pgx.Row) (*domain.PurchaseInvoice, error) {
	var inv domain.PurchaseInvoice
	err := row.Scan(
		&inv.ID, &inv.SupplierID, &inv.SupplierName, &inv.InvoiceNumber, &inv.Date,
		&inv.Subtotal, &inv.DiscountTotal, &inv.TaxTotal, &inv.Total, &inv.Paid,
		&inv.Remaining, &inv.Status, &inv.CreatedDate,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// FindPurchaseInvoiceByID retrieves a single purchase invoice with items.
func (r *PgxPurchaseRepository) FindPurchaseInvoiceByID(ctx context.Context, invoiceID int64) (*domain.PurchaseInvoice, error) {
	query := `
		SELECT ` + purchaseInvoiceColumns + `
		FROM purchase_invoices pi
		LEFT JOIN suppliers s ON s.id = pi.supplier_id
		WHERE pi.id = $1;
	`
	invoice, err := scanPurchaseInvoice(r.Pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find purchase invoice %d: %w", invoiceID, err)
	}

	itemsByInvoice, err := r.findPurchaseItems(ctx, []int64{invoice.ID})
	if err != nil {
		return nil, err
	}
	invoice.Items = itemsByInvoice[invoice.ID]
	return invoice, nil
}

// ListPurchaseInvoices retrieves all purchase invoices with nested items.
func (r *PgxPurchaseRepository) ListPurchaseInvoices(ctx context.Context) ([]domain.PurchaseInvoice, error) {
	query := `
		SELECT ` + purchaseInvoiceColumns + `
		FROM purchase_invoices pi
		LEFT JOIN suppliers s ON s.id = pi.supplier_id
		ORDER BY pi.created_date DESC, pi.id DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase invoices: %w", err)
	}
	defer rows.Close()

	invoices := []domain.PurchaseInvoice{}
	ids := []int64{}
	for rows.Next() {
		inv, err := scanPurchaseInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase invoice row: %w", err)
		}
		invoices = append(invoices, *inv)
		ids = append(ids, inv.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating purchase invoice rows: %w", err)
	}

	itemsByInvoice, err := r.findPurchaseItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range invoices {
		invoices[i].Items = itemsByInvoice[invoices[i].ID]
	}
	return invoices, nil
}

func (r *PgxPurchaseRepository) findPurchaseItems(ctx context.Context, invoiceIDs []int64) (map[int64][]domain.PurchaseItem, error) {
	items := make(map[int64][]domain.PurchaseItem, len(invoiceIDs))
	if len(invoiceIDs) == 0 {
		return items, nil
	}

	query := `
		SELECT i.id, i.invoice_id, i.product_id, COALESCE(p.name, ''), i.quantity, i.cost, i.discount, i.total
		FROM purchase_items i
		LEFT JOIN products p ON p.id = i.product_id
		WHERE i.invoice_id = ANY($1)
		ORDER BY i.id;
	`
	rows, err := r.Pool.Query(ctx, query, invoiceIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it domain.PurchaseItem
		err := rows.Scan(&it.ID, &it.InvoiceID, &it.ProductID, &it.ProductName, &it.Quantity, &it.Cost, &it.Discount, &it.Total)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase item row: %w", err)
		}
		items[it.InvoiceID] = append(items[it.InvoiceID], it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating purchase item rows: %w", err)
	}
	return items, nil
}

// DeletePurchaseInvoice removes a purchase invoice; items cascade via FK.
// Stock and balance effects of the original posting are not reversed.
func (r *PgxPurchaseRepository) DeletePurchaseInvoice(ctx context.Context, invoiceID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM purchase_invoices WHERE id = $1;`, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to delete purchase invoice %d: %w", invoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
