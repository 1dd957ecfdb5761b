package repositories

// RepositoryProvider bundles all repository implementations for injection
// into the service layer.
type RepositoryProvider struct {
	CustomerRepo  CustomerRepository
	SupplierRepo  SupplierRepository
	ProductRepo   ProductRepository
	SaleRepo      SaleRepository
	PurchaseRepo  PurchaseRepository
	DashboardRepo DashboardRepository
}
