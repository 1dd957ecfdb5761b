package services

import (
	"context"
	"time"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	portsrepo "github.com/bizbooks/bizbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
)

// recentSalesLimit bounds the dashboard's recent activity list.
const recentSalesLimit = 10

// dashboardService composes the read-only summary snapshot.
type dashboardService struct {
	BaseService
	dashboardRepo portsrepo.DashboardRepository
	saleRepo      portsrepo.SaleRepository
	now           func() time.Time
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(dashboardRepo portsrepo.DashboardRepository, saleRepo portsrepo.SaleRepository) portssvc.DashboardService {
	return &dashboardService{
		dashboardRepo: dashboardRepo,
		saleRepo:      saleRepo,
		now:           time.Now,
	}
}

var _ portssvc.DashboardService = (*dashboardService)(nil)

// GetSummary recomputes every aggregate from current rows. The monthly
// figures cover the current calendar month by invoice business date.
func (s *dashboardService) GetSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	totalSales, totalPurchases, err := s.dashboardRepo.SumInvoiceTotals(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum invoice totals")
		return nil, err
	}

	counts, err := s.dashboardRepo.CountEntities(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count entities")
		return nil, err
	}

	now := s.now()
	monthlySales, monthlyPurchases, err := s.dashboardRepo.SumMonthlyInvoiceTotals(ctx, now.Year(), now.Month())
	if err != nil {
		s.LogError(ctx, err, "Failed to sum monthly invoice totals")
		return nil, err
	}

	recent, err := s.saleRepo.ListRecentSaleInvoices(ctx, recentSalesLimit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recent sales")
		return nil, err
	}

	return &domain.DashboardSummary{
		TotalSales:       totalSales,
		TotalPurchases:   totalPurchases,
		TotalCustomers:   counts.Customers,
		TotalSuppliers:   counts.Suppliers,
		TotalProducts:    counts.Products,
		LowStock:         counts.LowStock,
		MonthlySales:     monthlySales,
		MonthlyPurchases: monthlyPurchases,
		RecentSales:      recent,
		Profit:           totalSales.Sub(totalPurchases),
	}, nil
}
