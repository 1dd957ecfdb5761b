package pgsql

import (
	"context"
	"fmt"

	"github.com/bizbooks/bizbooks_backend/internal/apperrors"
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// lockProductsForUpdate locks the given product rows inside tx and returns
// them keyed by ID. Every requested product must exist; a missing one aborts
// the posting with apperrors.ErrNotFound so the caller rolls back.
func lockProductsForUpdate(ctx context.Context, tx pgx.Tx, productIDs []int64) (map[int64]domain.Product, error) {
	if len(productIDs) == 0 {
		return map[int64]domain.Product{}, nil
	}

	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = ANY($1)
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to lock products for update: %w", err)
	}
	defer rows.Close()

	products := make(map[int64]domain.Product, len(productIDs))
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan locked product row: %w", err)
		}
		products[p.ID] = *p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating locked product rows: %w", err)
	}

	for _, id := range productIDs {
		if _, ok := products[id]; !ok {
			return nil, fmt.Errorf("product %d referenced by invoice: %w", id, apperrors.ErrNotFound)
		}
	}
	return products, nil
}

// nextInvoiceSeq derives the next invoice sequence number for a table from
// its current max row ID. It is a display sequence, not a gap-free counter.
func nextInvoiceSeq(ctx context.Context, tx pgx.Tx, table string) (int64, error) {
	var maxID int64
	query := fmt.Sprintf(`SELECT COALESCE(MAX(id), 0) FROM %s;`, table)
	if err := tx.QueryRow(ctx, query).Scan(&maxID); err != nil {
		return 0, fmt.Errorf("failed to read max invoice id from %s: %w", table, err)
	}
	return maxID + 1, nil
}
