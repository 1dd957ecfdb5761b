package services

// ServiceContainer bundles all service implementations for injection into
// the handler layer.
type ServiceContainer struct {
	Customer  CustomerService
	Supplier  SupplierService
	Product   ProductService
	Sale      SaleService
	Purchase  PurchaseService
	Dashboard DashboardService
	Report    ReportService
}
