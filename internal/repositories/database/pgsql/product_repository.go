package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/bizbooks/bizbooks_backend/internal/apperrors"
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	portsrepo "github.com/bizbooks/bizbooks_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProductRepository struct {
	BaseRepository
}

// newPgxProductRepository creates a new repository for product data.
func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepository {
	return &PgxProductRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ProductRepository = (*PgxProductRepository)(nil)

const productColumns = `id, name, code, price, cost, unit, quantity, min_stock, category, created_date`

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.Name, &p.Code, &p.Price, &p.Cost, &p.Unit, &p.Quantity, &p.MinStock, &p.Category, &p.CreatedDate)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// SaveProduct inserts a new product. A duplicate product code maps to
// apperrors.ErrDuplicate.
func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) (*domain.Product, error) {
	query := `
		INSERT INTO products (name, code, price, cost, unit, quantity, min_stock, category, created_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + productColumns + `;
	`
	created, err := scanProduct(r.Pool.QueryRow(ctx, query,
		product.Name,
		product.Code,
		product.Price,
		product.Cost,
		product.Unit,
		product.Quantity,
		product.MinStock,
		product.Category,
		product.CreatedDate,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}
	return created, nil
}

// FindProductByID retrieves a product by its ID.
func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1;`
	product, err := scanProduct(r.Pool.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product %d: %w", productID, err)
	}
	return product, nil
}

// FindProductsByIDs retrieves multiple products keyed by ID. IDs without a
// matching row are absent from the result.
func (r *PgxProductRepository) FindProductsByIDs(ctx context.Context, productIDs []int64) (map[int64]domain.Product, error) {
	if len(productIDs) == 0 {
		return map[int64]domain.Product{}, nil
	}
	query := `SELECT ` + productColumns + ` FROM products WHERE id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query products by IDs: %w", err)
	}
	defer rows.Close()

	products := make(map[int64]domain.Product, len(productIDs))
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products[p.ID] = *p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}
	return products, nil
}

// ListProducts retrieves all products ordered by ID.
func (r *PgxProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}
	return products, nil
}

// UpdateProduct overwrites all mutable fields of an existing product.
func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) (*domain.Product, error) {
	query := `
		UPDATE products
		SET name = $2, code = $3, price = $4, cost = $5, unit = $6, quantity = $7, min_stock = $8, category = $9
		WHERE id = $1
		RETURNING ` + productColumns + `;
	`
	updated, err := scanProduct(r.Pool.QueryRow(ctx, query,
		product.ID,
		product.Name,
		product.Code,
		product.Price,
		product.Cost,
		product.Unit,
		product.Quantity,
		product.MinStock,
		product.Category,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to update product %d: %w", product.ID, err)
	}
	return updated, nil
}

// DeleteProduct removes a product by ID.
func (r *PgxProductRepository) DeleteProduct(ctx context.Context, productID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM products WHERE id = $1;`, productID)
	if err != nil {
		return fmt.Errorf("failed to delete product %d: %w", productID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
