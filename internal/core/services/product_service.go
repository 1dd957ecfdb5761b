package services

import (
	"context"
	"time"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	portsrepo "github.com/bizbooks/bizbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
	"github.com/bizbooks/bizbooks_backend/internal/dto"
)

const defaultUnit = "piece"
const defaultMinStock = 5

// productService provides product CRUD on top of the repository.
type productService struct {
	BaseService
	productRepo portsrepo.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(productRepo portsrepo.ProductRepository) portssvc.ProductService {
	return &productService{productRepo: productRepo}
}

var _ portssvc.ProductService = (*productService)(nil)

// CreateProduct persists a new product record.
func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	product := domain.Product{
		Name:        req.Name,
		Code:        req.Code,
		Price:       req.Price,
		Cost:        req.Cost,
		Unit:        req.Unit,
		Quantity:    req.Quantity,
		MinStock:    req.MinStock,
		Category:    req.Category,
		CreatedDate: time.Now().UTC(),
	}
	if product.Unit == "" {
		product.Unit = defaultUnit
	}
	if product.MinStock == 0 {
		product.MinStock = defaultMinStock
	}

	created, err := s.productRepo.SaveProduct(ctx, product)
	if err != nil {
		s.LogError(ctx, err, "Failed to save product")
		return nil, err
	}
	return created, nil
}

// GetProductByID retrieves a single product.
func (s *productService) GetProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	return s.productRepo.FindProductByID(ctx, productID)
}

// ListProducts retrieves all products.
func (s *productService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.productRepo.ListProducts(ctx)
}

// UpdateProduct overwrites all mutable fields of an existing product,
// including a direct stock quantity overwrite.
func (s *productService) UpdateProduct(ctx context.Context, productID int64, req dto.UpdateProductRequest) (*domain.Product, error) {
	product := domain.Product{
		ID:       productID,
		Name:     req.Name,
		Code:     req.Code,
		Price:    req.Price,
		Cost:     req.Cost,
		Unit:     req.Unit,
		Quantity: req.Quantity,
		MinStock: req.MinStock,
		Category: req.Category,
	}
	if product.Unit == "" {
		product.Unit = defaultUnit
	}

	updated, err := s.productRepo.UpdateProduct(ctx, product)
	if err != nil {
		s.LogError(ctx, err, "Failed to update product")
		return nil, err
	}
	return updated, nil
}

// DeleteProduct removes a product record.
func (s *productService) DeleteProduct(ctx context.Context, productID int64) error {
	return s.productRepo.DeleteProduct(ctx, productID)
}
