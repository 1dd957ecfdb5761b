package services

import (
	portsrepo "github.com/bizbooks/bizbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Customer = NewCustomerService(repos.CustomerRepo)
	container.Supplier = NewSupplierService(repos.SupplierRepo)
	container.Product = NewProductService(repos.ProductRepo)

	// Posting services cross-reference the entity repositories so that a
	// request naming a missing customer, supplier, or product is rejected
	// before the transaction starts.
	container.Sale = NewSaleService(repos.SaleRepo, repos.CustomerRepo, repos.ProductRepo)
	container.Purchase = NewPurchaseService(repos.PurchaseRepo, repos.SupplierRepo, repos.ProductRepo)

	container.Dashboard = NewDashboardService(repos.DashboardRepo, repos.SaleRepo)
	container.Report = NewReportService(repos.SaleRepo, repos.ProductRepo)

	return container
}
