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

type PgxCustomerRepository struct {
	BaseRepository
}

// newPgxCustomerRepository creates a new repository for customer data.
func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepository {
	return &PgxCustomerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CustomerRepository = (*PgxCustomerRepository)(nil)

const customerColumns = `id, name, phone, address, balance, status, created_date`

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.Address, &c.Balance, &c.Status, &c.CreatedDate)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// SaveCustomer inserts a new customer and returns it with its assigned ID.
func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error) {
	query := `
		INSERT INTO customers (name, phone, address, balance, status, created_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + customerColumns + `;
	`
	created, err := scanCustomer(r.Pool.QueryRow(ctx, query,
		customer.Name,
		customer.Phone,
		customer.Address,
		customer.Balance,
		customer.Status,
		customer.CreatedDate,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to insert customer: %w", err)
	}
	return created, nil
}

// FindCustomerByID retrieves a customer by its ID.
func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1;`
	customer, err := scanCustomer(r.Pool.QueryRow(ctx, query, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer %d: %w", customerID, err)
	}
	return customer, nil
}

// ListCustomers retrieves all customers ordered by ID.
func (r *PgxCustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY id;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", err)
	}
	return customers, nil
}

// UpdateCustomer overwrites all mutable fields of an existing customer.
func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error) {
	query := `
		UPDATE customers
		SET name = $2, phone = $3, address = $4, balance = $5, status = $6
		WHERE id = $1
		RETURNING ` + customerColumns + `;
	`
	updated, err := scanCustomer(r.Pool.QueryRow(ctx, query,
		customer.ID,
		customer.Name,
		customer.Phone,
		customer.Address,
		customer.Balance,
		customer.Status,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update customer %d: %w", customer.ID, err)
	}
	return updated, nil
}

// DeleteCustomer removes a customer by ID.
func (r *PgxCustomerRepository) DeleteCustomer(ctx context.Context, customerID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM customers WHERE id = $1;`, customerID)
	if err != nil {
		return fmt.Errorf("failed to delete customer %d: %w", customerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
