package pgsql

import (
	"context"
	"fmt"
	"time"

	portsrepo "github.com/bizbooks/bizbooks_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type dashboardRepository struct {
	BaseRepository
}

// newDashboardRepository creates a new repository for dashboard aggregates.
func newDashboardRepository(pool *pgxpool.Pool) portsrepo.DashboardRepository {
	return &dashboardRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.DashboardRepository = (*dashboardRepository)(nil)

// SumInvoiceTotals returns the all-time sums of sale and purchase totals.
func (r *dashboardRepository) SumInvoiceTotals(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT
			(SELECT COALESCE(SUM(total), 0) FROM sale_invoices),
			(SELECT COALESCE(SUM(total), 0) FROM purchase_invoices);
	`
	var totalSales, totalPurchases decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query).Scan(&totalSales, &totalPurchases); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to sum invoice totals: %w", err)
	}
	return totalSales, totalPurchases, nil
}

// CountEntities returns the dashboard row counts, including the number of
// products at or below their reorder threshold.
func (r *dashboardRepository) CountEntities(ctx context.Context) (portsrepo.EntityCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM customers),
			(SELECT COUNT(*) FROM suppliers),
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM products WHERE quantity <= min_stock);
	`
	var counts portsrepo.EntityCounts
	err := r.Pool.QueryRow(ctx, query).Scan(&counts.Customers, &counts.Suppliers, &counts.Products, &counts.LowStock)
	if err != nil {
		return portsrepo.EntityCounts{}, fmt.Errorf("failed to count entities: %w", err)
	}
	return counts, nil
}

// SumMonthlyInvoiceTotals sums invoice totals whose business date falls in
// the given calendar month.
func (r *dashboardRepository) SumMonthlyInvoiceTotals(ctx context.Context, year int, month time.Month) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT
			(SELECT COALESCE(SUM(total), 0) FROM sale_invoices
			 WHERE EXTRACT(MONTH FROM date) = $1 AND EXTRACT(YEAR FROM date) = $2),
			(SELECT COALESCE(SUM(total), 0) FROM purchase_invoices
			 WHERE EXTRACT(MONTH FROM date) = $1 AND EXTRACT(YEAR FROM date) = $2);
	`
	var monthlySales, monthlyPurchases decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, int(month), year).Scan(&monthlySales, &monthlyPurchases); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to sum monthly invoice totals: %w", err)
	}
	return monthlySales, monthlyPurchases, nil
}
