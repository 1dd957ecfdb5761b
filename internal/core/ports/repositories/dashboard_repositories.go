package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// EntityCounts carries the dashboard's row-count aggregates.
type EntityCounts struct {
	Customers int64
	Suppliers int64
	Products  int64
	LowStock  int64
}

// DashboardRepository provides read-only aggregate queries over invoices and
// entities. Implementations must not cache; every call reads current rows.
type DashboardRepository interface {
	SumInvoiceTotals(ctx context.Context) (totalSales, totalPurchases decimal.Decimal, err error)
	CountEntities(ctx context.Context) (EntityCounts, error)
	// SumMonthlyInvoiceTotals filters by the invoice's business date, not
	// its creation timestamp.
	SumMonthlyInvoiceTotals(ctx context.Context, year int, month time.Month) (monthlySales, monthlyPurchases decimal.Decimal, err error)
}
