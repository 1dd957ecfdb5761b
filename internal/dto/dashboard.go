package dto

import (
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardResponse is the summary snapshot returned by GET /api/dashboard.
type DashboardResponse struct {
	TotalSales       decimal.Decimal       `json:"total_sales"`
	TotalPurchases   decimal.Decimal       `json:"total_purchases"`
	TotalCustomers   int64                 `json:"total_customers"`
	TotalSuppliers   int64                 `json:"total_suppliers"`
	TotalProducts    int64                 `json:"total_products"`
	LowStock         int64                 `json:"low_stock"`
	MonthlySales     decimal.Decimal       `json:"monthly_sales"`
	MonthlyPurchases decimal.Decimal       `json:"monthly_purchases"`
	RecentSales      []SaleInvoiceResponse `json:"recent_sales"`
	Profit           decimal.Decimal       `json:"profit"`
}

// ToDashboardResponse converts a domain.DashboardSummary to its response DTO.
func ToDashboardResponse(s *domain.DashboardSummary) DashboardResponse {
	return DashboardResponse{
		TotalSales:       s.TotalSales,
		TotalPurchases:   s.TotalPurchases,
		TotalCustomers:   s.TotalCustomers,
		TotalSuppliers:   s.TotalSuppliers,
		TotalProducts:    s.TotalProducts,
		LowStock:         s.LowStock,
		MonthlySales:     s.MonthlySales,
		MonthlyPurchases: s.MonthlyPurchases,
		RecentSales:      ToListSaleInvoiceResponse(s.RecentSales),
		Profit:           s.Profit,
	}
}
