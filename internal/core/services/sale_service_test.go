package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/bizbooks/bizbooks_backend/internal/apperrors"
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
	"github.com/bizbooks/bizbooks_backend/internal/core/services"
	"github.com/bizbooks/bizbooks_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type SaleServiceTestSuite struct {
	suite.Suite
	mockSaleRepo     *MockSaleRepository
	mockCustomerRepo *MockCustomerRepository
	mockProductRepo  *MockProductRepository
	service          portssvc.SaleService
}

func (suite *SaleServiceTestSuite) SetupTest() {
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.mockProductRepo = new(MockProductRepository)
	suite.service = services.NewSaleService(suite.mockSaleRepo, suite.mockCustomerRepo, suite.mockProductRepo)
}

// validSaleRequest returns a request whose totals are internally consistent:
// two lines summing to 250, a 10 discount, 5 tax, 100 paid.
func validSaleRequest() dto.CreateSaleInvoiceRequest {
	return dto.CreateSaleInvoiceRequest{
		CustomerID: 1,
		Date:       "2025-03-07",
		Items: []dto.SaleItemRequest{
			{ProductID: 10, Quantity: 2, Price: decimal.NewFromInt(100), Total: decimal.NewFromInt(200)},
			{ProductID: 11, Quantity: 1, Price: decimal.NewFromInt(50), Total: decimal.NewFromInt(50)},
		},
		Subtotal:      decimal.NewFromInt(250),
		DiscountTotal: decimal.NewFromInt(10),
		TaxTotal:      decimal.NewFromInt(5),
		Total:         decimal.NewFromInt(245),
		Paid:          decimal.NewFromInt(100),
		Remaining:     decimal.NewFromInt(145),
	}
}

func saleProducts() map[int64]domain.Product {
	return map[int64]domain.Product{
		10: {ID: 10, Name: "Laptop"},
		11: {ID: 11, Name: "Mouse"},
	}
}

// --- Test Cases ---

func (suite *SaleServiceTestSuite) TestPostSale_Success() {
	ctx := context.Background()
	req := validSaleRequest()

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, int64(1)).Return(&domain.Customer{ID: 1, Name: "Acme"}, nil).Once()
	suite.mockProductRepo.On("FindProductsByIDs", ctx, []int64{10, 11}).Return(saleProducts(), nil).Once()
	suite.mockSaleRepo.On("CreateSaleInvoice", ctx, mock.MatchedBy(func(inv domain.SaleInvoice) bool {
		return inv.CustomerID == 1 &&
			inv.Date.Equal(time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC)) &&
			inv.Status == "partial" &&
			len(inv.Items) == 2 &&
			inv.Items[0].ProductID == 10 && inv.Items[0].Quantity == 2 &&
			inv.Items[1].ProductID == 11 && inv.Items[1].Quantity == 1 &&
			inv.Remaining.Equal(decimal.NewFromInt(145))
	})).Return(&domain.SaleInvoice{ID: 5, InvoiceNumber: "S-20250307-0005", CustomerID: 1}, nil).Once()

	created, err := suite.service.PostSale(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Equal("S-20250307-0005", created.InvoiceNumber)

	suite.mockSaleRepo.AssertExpectations(suite.T())
	suite.mockCustomerRepo.AssertExpectations(suite.T())
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestPostSale_StatusIsPreservedWhenProvided() {
	ctx := context.Background()
	req := validSaleRequest()
	req.Status = "paid"

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, int64(1)).Return(&domain.Customer{ID: 1}, nil).Once()
	suite.mockProductRepo.On("FindProductsByIDs", ctx, []int64{10, 11}).Return(saleProducts(), nil).Once()
	suite.mockSaleRepo.On("CreateSaleInvoice", ctx, mock.MatchedBy(func(inv domain.SaleInvoice) bool {
		return inv.Status == "paid"
	})).Return(&domain.SaleInvoice{ID: 6}, nil).Once()

	_, err := suite.service.PostSale(ctx, req)

	suite.Require().NoError(err)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestPostSale_InvalidDate() {
	ctx := context.Background()
	req := validSaleRequest()
	req.Date = "07/03/2025"

	created, err := suite.service.PostSale(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "CreateSaleInvoice")
}

func (suite *SaleServiceTestSuite) TestPostSale_SubtotalMismatch() {
	ctx := context.Background()
	req := validSaleRequest()
	req.Subtotal = decimal.NewFromInt(999)

	created, err := suite.service.PostSale(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, services.ErrSubtotalMismatch)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "CreateSaleInvoice")
}

func (suite *SaleServiceTestSuite) TestPostSale_TotalMismatch() {
	ctx := context.Background()
	req := validSaleRequest()
	req.Total = decimal.NewFromInt(250)
	req.Remaining = decimal.NewFromInt(150)

	_, err := suite.service.PostSale(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrTotalMismatch)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "CreateSaleInvoice")
}

func (suite *SaleServiceTestSuite) TestPostSale_RemainingMismatch() {
	ctx := context.Background()
	req := validSaleRequest()
	req.Remaining = decimal.NewFromInt(145).Add(decimal.NewFromInt(1))

	_, err := suite.service.PostSale(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrRemainingMismatch)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "CreateSaleInvoice")
}

func (suite *SaleServiceTestSuite) TestPostSale_UnknownCustomer() {
	ctx := context.Background()
	req := validSaleRequest()

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, int64(1)).Return(nil, apperrors.ErrNotFound).Once()

	created, err := suite.service.PostSale(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "CreateSaleInvoice")
}

func (suite *SaleServiceTestSuite) TestPostSale_UnknownProductFailsWholePosting() {
	ctx := context.Background()
	req := validSaleRequest()

	// product 11 does not exist; the posting must be rejected entirely
	suite.mockCustomerRepo.On("FindCustomerByID", ctx, int64(1)).Return(&domain.Customer{ID: 1}, nil).Once()
	suite.mockProductRepo.On("FindProductsByIDs", ctx, []int64{10, 11}).Return(map[int64]domain.Product{
		10: {ID: 10},
	}, nil).Once()

	created, err := suite.service.PostSale(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "CreateSaleInvoice")
}

func (suite *SaleServiceTestSuite) TestPostSale_RepoError() {
	ctx := context.Background()
	req := validSaleRequest()
	expectedErr := assert.AnError

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, int64(1)).Return(&domain.Customer{ID: 1}, nil).Once()
	suite.mockProductRepo.On("FindProductsByIDs", ctx, []int64{10, 11}).Return(saleProducts(), nil).Once()
	suite.mockSaleRepo.On("CreateSaleInvoice", ctx, mock.AnythingOfType("domain.SaleInvoice")).Return(nil, expectedErr).Once()

	created, err := suite.service.PostSale(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, expectedErr)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestGetSaleByID_NotFound() {
	ctx := context.Background()

	suite.mockSaleRepo.On("FindSaleInvoiceByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	invoice, err := suite.service.GetSaleByID(ctx, 99)

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *SaleServiceTestSuite) TestListSales_Success() {
	ctx := context.Background()
	expected := []domain.SaleInvoice{{ID: 1}, {ID: 2}}

	suite.mockSaleRepo.On("ListSaleInvoices", ctx).Return(expected, nil).Once()

	invoices, err := suite.service.ListSales(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, invoices)
}

func (suite *SaleServiceTestSuite) TestDeleteSale_Success() {
	ctx := context.Background()

	suite.mockSaleRepo.On("DeleteSaleInvoice", ctx, int64(3)).Return(nil).Once()

	err := suite.service.DeleteSale(ctx, 3)

	suite.Require().NoError(err)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func TestSaleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SaleServiceTestSuite))
}
