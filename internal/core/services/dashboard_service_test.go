package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	portsrepo "github.com/bizbooks/bizbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
	"github.com/bizbooks/bizbooks_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type DashboardServiceTestSuite struct {
	suite.Suite
	mockDashboardRepo *MockDashboardRepository
	mockSaleRepo      *MockSaleRepository
	service           portssvc.DashboardService
}

func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.mockDashboardRepo = new(MockDashboardRepository)
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.service = services.NewDashboardService(suite.mockDashboardRepo, suite.mockSaleRepo)
}

// --- Test Cases ---

func (suite *DashboardServiceTestSuite) TestGetSummary_Success() {
	ctx := context.Background()
	now := time.Now()

	recent := []domain.SaleInvoice{{ID: 9, InvoiceNumber: "S-20250307-0009"}}

	suite.mockDashboardRepo.On("SumInvoiceTotals", ctx).
		Return(decimal.NewFromInt(1000), decimal.NewFromInt(600), nil).Once()
	suite.mockDashboardRepo.On("CountEntities", ctx).
		Return(portsrepo.EntityCounts{Customers: 3, Suppliers: 2, Products: 4, LowStock: 1}, nil).Once()
	suite.mockDashboardRepo.On("SumMonthlyInvoiceTotals", ctx, now.Year(), now.Month()).
		Return(decimal.NewFromInt(300), decimal.NewFromInt(150), nil).Once()
	suite.mockSaleRepo.On("ListRecentSaleInvoices", ctx, 10).Return(recent, nil).Once()

	summary, err := suite.service.GetSummary(ctx)

	suite.Require().NoError(err)
	suite.Require().NotNil(summary)
	suite.True(summary.TotalSales.Equal(decimal.NewFromInt(1000)))
	suite.True(summary.TotalPurchases.Equal(decimal.NewFromInt(600)))
	suite.Equal(int64(3), summary.TotalCustomers)
	suite.Equal(int64(2), summary.TotalSuppliers)
	suite.Equal(int64(4), summary.TotalProducts)
	suite.Equal(int64(1), summary.LowStock)
	suite.True(summary.MonthlySales.Equal(decimal.NewFromInt(300)))
	suite.True(summary.MonthlyPurchases.Equal(decimal.NewFromInt(150)))
	suite.Equal(recent, summary.RecentSales)
	// profit is always total sales minus total purchases
	suite.True(summary.Profit.Equal(decimal.NewFromInt(400)))

	suite.mockDashboardRepo.AssertExpectations(suite.T())
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *DashboardServiceTestSuite) TestGetSummary_EmptyStore() {
	ctx := context.Background()
	now := time.Now()

	suite.mockDashboardRepo.On("SumInvoiceTotals", ctx).
		Return(decimal.Zero, decimal.Zero, nil).Once()
	suite.mockDashboardRepo.On("CountEntities", ctx).
		Return(portsrepo.EntityCounts{}, nil).Once()
	suite.mockDashboardRepo.On("SumMonthlyInvoiceTotals", ctx, now.Year(), now.Month()).
		Return(decimal.Zero, decimal.Zero, nil).Once()
	suite.mockSaleRepo.On("ListRecentSaleInvoices", ctx, 10).Return([]domain.SaleInvoice{}, nil).Once()

	summary, err := suite.service.GetSummary(ctx)

	suite.Require().NoError(err)
	suite.True(summary.TotalSales.IsZero())
	suite.True(summary.Profit.IsZero())
	suite.Equal(int64(0), summary.TotalCustomers)
	suite.Empty(summary.RecentSales)
}

func (suite *DashboardServiceTestSuite) TestGetSummary_NegativeProfit() {
	ctx := context.Background()
	now := time.Now()

	suite.mockDashboardRepo.On("SumInvoiceTotals", ctx).
		Return(decimal.NewFromInt(100), decimal.NewFromInt(250), nil).Once()
	suite.mockDashboardRepo.On("CountEntities", ctx).
		Return(portsrepo.EntityCounts{}, nil).Once()
	suite.mockDashboardRepo.On("SumMonthlyInvoiceTotals", ctx, now.Year(), now.Month()).
		Return(decimal.Zero, decimal.Zero, nil).Once()
	suite.mockSaleRepo.On("ListRecentSaleInvoices", ctx, 10).Return([]domain.SaleInvoice{}, nil).Once()

	summary, err := suite.service.GetSummary(ctx)

	suite.Require().NoError(err)
	suite.True(summary.Profit.Equal(decimal.NewFromInt(-150)))
}

func (suite *DashboardServiceTestSuite) TestGetSummary_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockDashboardRepo.On("SumInvoiceTotals", ctx).
		Return(decimal.Zero, decimal.Zero, expectedErr).Once()

	summary, err := suite.service.GetSummary(ctx)

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.ErrorIs(err, expectedErr)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "ListRecentSaleInvoices")
}

func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
