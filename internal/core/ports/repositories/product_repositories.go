package repositories

import (
	"context"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
)

// ProductRepository defines persistence operations for inventory items.
type ProductRepository interface {
	SaveProduct(ctx context.Context, product domain.Product) (*domain.Product, error)
	FindProductByID(ctx context.Context, productID int64) (*domain.Product, error)
	// FindProductsByIDs returns the products keyed by ID. Absent IDs are
	// simply missing from the map; callers decide whether that is an error.
	FindProductsByIDs(ctx context.Context, productIDs []int64) (map[int64]domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, product domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID int64) error
}
