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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ProductServiceTestSuite struct {
	suite.Suite
	mockRepo *MockProductRepository
	service  portssvc.ProductService
}

func (suite *ProductServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockProductRepository)
	suite.service = services.NewProductService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *ProductServiceTestSuite) TestCreateProduct_AppliesDefaults() {
	ctx := context.Background()
	req := dto.CreateProductRequest{
		Name:  "Laptop",
		Code:  "LAP001",
		Price: decimal.NewFromInt(15000),
		Cost:  decimal.NewFromInt(12000),
	}

	suite.mockRepo.On("SaveProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.Name == "Laptop" && p.Unit == "piece" && p.MinStock == 5
	})).Return(&domain.Product{ID: 1, Name: "Laptop", Unit: "piece", MinStock: 5}, nil).Once()

	created, err := suite.service.CreateProduct(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("piece", created.Unit)
	suite.Equal(int64(5), created.MinStock)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestCreateProduct_KeepsExplicitValues() {
	ctx := context.Background()
	req := dto.CreateProductRequest{
		Name:     "Cable",
		Code:     "CAB001",
		Price:    decimal.NewFromInt(20),
		Cost:     decimal.NewFromInt(10),
		Unit:     "meter",
		MinStock: 50,
	}

	suite.mockRepo.On("SaveProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.Unit == "meter" && p.MinStock == 50
	})).Return(&domain.Product{ID: 2, Unit: "meter", MinStock: 50}, nil).Once()

	_, err := suite.service.CreateProduct(ctx, req)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestCreateProduct_DuplicateCode() {
	ctx := context.Background()
	req := dto.CreateProductRequest{
		Name:  "Laptop",
		Code:  "LAP001",
		Price: decimal.NewFromInt(15000),
		Cost:  decimal.NewFromInt(12000),
	}

	suite.mockRepo.On("SaveProduct", ctx, mock.AnythingOfType("domain.Product")).
		Return(nil, apperrors.ErrDuplicate).Once()

	created, err := suite.service.CreateProduct(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *ProductServiceTestSuite) TestUpdateProduct_OverwritesQuantity() {
	ctx := context.Background()
	req := dto.UpdateProductRequest{
		Name:     "Laptop",
		Code:     "LAP001",
		Price:    decimal.NewFromInt(15000),
		Cost:     decimal.NewFromInt(12000),
		Unit:     "piece",
		Quantity: 42,
	}

	suite.mockRepo.On("UpdateProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.ID == 7 && p.Quantity == 42
	})).Return(&domain.Product{ID: 7, Quantity: 42}, nil).Once()

	updated, err := suite.service.UpdateProduct(ctx, 7, req)

	suite.Require().NoError(err)
	suite.Equal(int64(42), updated.Quantity)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestGetProductByID_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindProductByID", ctx, int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	product, err := suite.service.GetProductByID(ctx, 404)

	suite.Require().Error(err)
	suite.Nil(product)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestProductServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}
