package services_test

import (
	"context"
	"testing"

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
type CustomerServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCustomerRepository
	service  portssvc.CustomerService
}

func (suite *CustomerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCustomerRepository)
	suite.service = services.NewCustomerService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *CustomerServiceTestSuite) TestCreateCustomer_Success() {
	ctx := context.Background()
	req := dto.CreateCustomerRequest{
		Name:    "Acme Trading",
		Phone:   "0501234567",
		Balance: decimal.NewFromInt(100),
	}

	suite.mockRepo.On("SaveCustomer", ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.Name == req.Name && c.Phone == req.Phone &&
			c.Balance.Equal(req.Balance) && c.Status == domain.PartyActive
	})).Return(&domain.Customer{ID: 1, Name: req.Name, Status: domain.PartyActive}, nil).Once()

	customer, err := suite.service.CreateCustomer(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(customer)
	suite.Equal(req.Name, customer.Name)
	suite.Equal(domain.PartyActive, customer.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_SaveError() {
	ctx := context.Background()
	req := dto.CreateCustomerRequest{Name: "Acme Trading"}
	expectedErr := assert.AnError

	suite.mockRepo.On("SaveCustomer", ctx, mock.AnythingOfType("domain.Customer")).Return(nil, expectedErr).Once()

	customer, err := suite.service.CreateCustomer(ctx, req)

	suite.Require().Error(err)
	suite.Nil(customer)
	suite.ErrorIs(err, expectedErr)
}

func (suite *CustomerServiceTestSuite) TestGetCustomerByID_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindCustomerByID", ctx, int64(77)).Return(nil, apperrors.ErrNotFound).Once()

	customer, err := suite.service.GetCustomerByID(ctx, 77)

	suite.Require().Error(err)
	suite.Nil(customer)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CustomerServiceTestSuite) TestUpdateCustomer_Success() {
	ctx := context.Background()
	req := dto.UpdateCustomerRequest{
		Name:   "Acme Renamed",
		Status: "inactive",
	}

	suite.mockRepo.On("UpdateCustomer", ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.ID == 5 && c.Name == "Acme Renamed" && c.Status == domain.PartyInactive
	})).Return(&domain.Customer{ID: 5, Name: "Acme Renamed", Status: domain.PartyInactive}, nil).Once()

	customer, err := suite.service.UpdateCustomer(ctx, 5, req)

	suite.Require().NoError(err)
	suite.Equal(domain.PartyInactive, customer.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestListCustomers_Success() {
	ctx := context.Background()
	expected := []domain.Customer{{ID: 1}, {ID: 2}}

	suite.mockRepo.On("ListCustomers", ctx).Return(expected, nil).Once()

	customers, err := suite.service.ListCustomers(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, customers)
}

func (suite *CustomerServiceTestSuite) TestDeleteCustomer_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("DeleteCustomer", ctx, int64(9)).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteCustomer(ctx, 9)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}
