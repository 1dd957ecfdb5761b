package domain

import "github.com/shopspring/decimal"

// DashboardSummary is a point-in-time snapshot over all entities and
// invoices. Every field is recomputed from the store on each call; nothing
// is cached or maintained incrementally.
type DashboardSummary struct {
	TotalSales       decimal.Decimal
	TotalPurchases   decimal.Decimal
	TotalCustomers   int64
	TotalSuppliers   int64
	TotalProducts    int64
	LowStock         int64
	MonthlySales     decimal.Decimal
	MonthlyPurchases decimal.Decimal
	RecentSales      []SaleInvoice
	// Profit is total sales minus total purchases, a gross proxy that
	// ignores per-unit cost vs price.
	Profit decimal.Decimal
}
