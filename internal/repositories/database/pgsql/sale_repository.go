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

type PgxSaleRepository struct {
	BaseRepository
}

// newPgxSaleRepository creates a new repository for sale invoices.
func newPgxSaleRepository(pool *pgxpool.Pool) portsrepo.SaleRepository {
	return &PgxSaleRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SaleRepository = (*PgxSaleRepository)(nil)

// CreateSaleInvoice posts a sale atomically: header insert with a number
// derived from the current max invoice ID, item inserts, stock decrements on
// the referenced products, and the remaining amount added to the customer's
// balance. Product and customer rows are locked before mutation so
// concurrent postings cannot lose updates.
func (r *PgxSaleRepository) CreateSaleInvoice(ctx context.Context, invoice domain.SaleInvoice) (*domain.SaleInvoice, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	seq, err := nextInvoiceSeq(ctx, tx, "sale_invoices")
	if err != nil {
		return nil, err
	}
	invoice.InvoiceNumber = domain.FormatInvoiceNumber(domain.SaleKind, invoice.CreatedDate, seq)

	headerQuery := `
		INSERT INTO sale_invoices (customer_id, invoice_number, date, subtotal, discount_total, tax_total, total, paid, remaining, status, created_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id;
	`
	err = tx.QueryRow(ctx, headerQuery,
		invoice.CustomerID,
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
		return nil, fmt.Errorf("failed to insert sale invoice: %w", err)
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
		INSERT INTO sale_items (invoice_id, product_id, quantity, price, discount, total)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
	`
	stockQuery := `UPDATE products SET quantity = quantity - $1 WHERE id = $2;`
	for i := range invoice.Items {
		item := &invoice.Items[i]
		item.InvoiceID = invoice.ID
		item.ProductName = products[item.ProductID].Name

		err = tx.QueryRow(ctx, itemQuery,
			item.InvoiceID,
			item.ProductID,
			item.Quantity,
			item.Price,
			item.Discount,
			item.Total,
		).Scan(&item.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to insert sale item for invoice %s: %w", invoice.InvoiceNumber, err)
		}

		if _, err := tx.Exec(ctx, stockQuery, item.Quantity, item.ProductID); err != nil {
			return nil, fmt.Errorf("failed to adjust stock for product %d: %w", item.ProductID, err)
		}
	}

	balanceQuery := `
		UPDATE customers SET balance = balance + $1 WHERE id = $2
		RETURNING name;
	`
	err = tx.QueryRow(ctx, balanceQuery, invoice.Remaining, invoice.CustomerID).Scan(&invoice.CustomerName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("customer %d referenced by invoice: %w", invoice.CustomerID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update balance for customer %d: %w", invoice.CustomerID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit sale invoice %s: %w", invoice.InvoiceNumber, err)
	}
	return &invoice, nil
}

const saleInvoiceColumns = `
	si.id, si.customer_id, COALESCE(c.name, ''), si.invoice_number, si.date,
	si.subtotal, si.discount_total, si.tax_total, si.total, si.paid,
	si.remaining, si.status, si.created_date`

func scanSaleInvoice(row pgx.Row) (*domain.SaleInvoice, error) {
	var inv domain.SaleInvoice
	err := row.Scan(
		&inv.ID, &inv.CustomerID, &inv.CustomerName, &inv.InvoiceNumber, &inv.Date,
		&inv.Subtotal, &inv.DiscountTotal, &inv.TaxTotal, &inv.Total, &inv.Paid,
		&inv.Remaining, &inv.Status, &inv.CreatedDate,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// FindSaleInvoiceByID retrieves a single sale invoice with items and names.
func (r *PgxSaleRepository) FindSaleInvoiceByID(ctx context.Context, invoiceID int64) (*domain.SaleInvoice, error) {
	query := `
		SELECT ` + saleInvoiceColumns + `
		FROM sale_invoices si
		LEFT JOIN customers c ON c.id = si.customer_id
		WHERE si.id = $1;
	`
	invoice, err := scanSaleInvoice(r.Pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sale invoice %d: %w", invoiceID, err)
	}

	itemsByInvoice, err := r.findSaleItems(ctx, []int64{invoice.ID})
	if err != nil {
		return nil, err
	}
	invoice.Items = itemsByInvoice[invoice.ID]
	return invoice, nil
}

// ListSaleInvoices retrieves all sale invoices with nested items.
func (r *PgxSaleRepository) ListSaleInvoices(ctx context.Context) ([]domain.SaleInvoice, error) {
	return r.listSaleInvoices(ctx, 0)
}

// ListRecentSaleInvoices retrieves the most recently created sale invoices.
func (r *PgxSaleRepository) ListRecentSaleInvoices(ctx context.Context, limit int) ([]domain.SaleInvoice, error) {
	return r.listSaleInvoices(ctx, limit)
}

func (r *PgxSaleRepository) listSaleInvoices(ctx context.Context, limit int) ([]domain.SaleInvoice, error) {
	query := `
		SELECT ` + saleInvoiceColumns + `
		FROM sale_invoices si
		LEFT JOIN customers c ON c.id = si.customer_id
		ORDER BY si.created_date DESC, si.id DESC
	`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sale invoices: %w", err)
	}
	defer rows.Close()

	invoices := []domain.SaleInvoice{}
	ids := []int64{}
	for rows.Next() {
		inv, err := scanSaleInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale invoice row: %w", err)
		}
		invoices = append(invoices, *inv)
		ids = append(ids, inv.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale invoice rows: %w", err)
	}

	itemsByInvoice, err := r.findSaleItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range invoices {
		invoices[i].Items = itemsByInvoice[invoices[i].ID]
	}
	return invoices, nil
}

// findSaleItems loads the items for a set of invoices keyed by invoice ID,
// each enriched with the referenced product's display name.
func (r *PgxSaleRepository) findSaleItems(ctx context.Context, invoiceIDs []int64) (map[int64][]domain.SaleItem, error) {
	items := make(map[int64][]domain.SaleItem, len(invoiceIDs))
	if len(invoiceIDs) == 0 {
		return items, nil
	}

	query := `
		SELECT i.id, i.invoice_id, i.product_id, COALESCE(p.name, ''), i.quantity, i.price, i.discount, i.total
		FROM sale_items i
		LEFT JOIN products p ON p.id = i.product_id
		WHERE i.invoice_id = ANY($1)
		ORDER BY i.id;
	`
	rows, err := r.Pool.Query(ctx, query, invoiceIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query sale items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it domain.SaleItem
		err := rows.Scan(&it.ID, &it.InvoiceID, &it.ProductID, &it.ProductName, &it.Quantity, &it.Price, &it.Discount, &it.Total)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale item row: %w", err)
		}
		items[it.InvoiceID] = append(items[it.InvoiceID], it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale item rows: %w", err)
	}
	return items, nil
}

// DeleteSaleInvoice removes a sale invoice; items cascade via FK. Stock and
// balance effects of the original posting are not reversed.
func (r *PgxSaleRepository) DeleteSaleInvoice(ctx context.Context, invoiceID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM sale_invoices WHERE id = $1;`, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to delete sale invoice %d: %w", invoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
