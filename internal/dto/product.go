package dto

import (
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest defines the data needed to create a product.
type CreateProductRequest struct {
	Name     string          `json:"name" binding:"required"`
	Code     string          `json:"code"`
	Price    decimal.Decimal `json:"price" binding:"required,dgte0"`
	Cost     decimal.Decimal `json:"cost" binding:"required,dgte0"`
	Unit     string          `json:"unit"`
	Quantity int64           `json:"quantity"`
	MinStock int64           `json:"min_stock"`
	Category string          `json:"category"`
}

// UpdateProductRequest overwrites all mutable product fields.
type UpdateProductRequest struct {
	Name     string          `json:"name" binding:"required"`
	Code     string          `json:"code"`
	Price    decimal.Decimal `json:"price" binding:"required,dgte0"`
	Cost     decimal.Decimal `json:"cost" binding:"required,dgte0"`
	Unit     string          `json:"unit"`
	Quantity int64           `json:"quantity"`
	MinStock int64           `json:"min_stock"`
	Category string          `json:"category"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Code        string          `json:"code"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	Unit        string          `json:"unit"`
	Quantity    int64           `json:"quantity"`
	MinStock    int64           `json:"min_stock"`
	Category    string          `json:"category"`
	CreatedDate string          `json:"created_date"`
}

// ToProductResponse converts a domain.Product to its response DTO.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Code:        p.Code,
		Price:       p.Price,
		Cost:        p.Cost,
		Unit:        p.Unit,
		Quantity:    p.Quantity,
		MinStock:    p.MinStock,
		Category:    p.Category,
		CreatedDate: p.CreatedDate.Format(dateLayout),
	}
}

// ToListProductResponse converts a slice of products to response DTOs.
func ToListProductResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i, p := range products {
		res[i] = ToProductResponse(&p)
	}
	return res
}
