package pgsql

import (
	portsrepo "github.com/bizbooks/bizbooks_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all pgx repositories over a shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CustomerRepo:  newPgxCustomerRepository(dbPool),
		SupplierRepo:  newPgxSupplierRepository(dbPool),
		ProductRepo:   newPgxProductRepository(dbPool),
		SaleRepo:      newPgxSaleRepository(dbPool),
		PurchaseRepo:  newPgxPurchaseRepository(dbPool),
		DashboardRepo: newDashboardRepository(dbPool),
	}
}
