package handlers_test

import (
	"github.com/bizbooks/bizbooks_backend/internal/dto"
	"github.com/bizbooks/bizbooks_backend/internal/handlers"
	"github.com/bizbooks/bizbooks_backend/internal/platform/config"
	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// testServices bundles one mock per service for router construction.
type testServices struct {
	customer  *MockCustomerService
	supplier  *MockSupplierService
	product   *MockProductService
	sale      *MockSaleService
	purchase  *MockPurchaseService
	dashboard *MockDashboardService
	report    *MockReportService
}

// newTestRouter builds a gin engine with the real route registration wired to
// fresh mocks. Metrics and swagger are disabled so only the API surface is
// exercised.
func newTestRouter() (*gin.Engine, *testServices) {
	gin.SetMode(gin.TestMode)
	_ = dto.RegisterCustomValidators()

	mocks := &testServices{
		customer:  new(MockCustomerService),
		supplier:  new(MockSupplierService),
		product:   new(MockProductService),
		sale:      new(MockSaleService),
		purchase:  new(MockPurchaseService),
		dashboard: new(MockDashboardService),
		report:    new(MockReportService),
	}

	cfg := &config.Config{
		Port:               "8080",
		IsProduction:       true,
		EnableMetrics:      false,
		RateLimit:          "1000-S",
		CORSAllowedOrigins: []string{"*"},
	}

	r := gin.New()
	handlers.RegisterRoutes(r, cfg, &portssvc.ServiceContainer{
		Customer:  mocks.customer,
		Supplier:  mocks.supplier,
		Product:   mocks.product,
		Sale:      mocks.sale,
		Purchase:  mocks.purchase,
		Dashboard: mocks.dashboard,
		Report:    mocks.report,
	})
	return r, mocks
}
