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

type PgxSupplierRepository struct {
	BaseRepository
}

// newPgxSupplierRepository creates a new repository for supplier data.
func newPgxSupplierRepository(pool *pgxpool.Pool) portsrepo.SupplierRepository {
	return &PgxSupplierRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SupplierRepository = (*PgxSupplierRepository)(nil)

const supplierColumns = `id, name, phone, address, contact_person, balance, status, created_date`

func scanSupplier(row pgx.Row) (*domain.Supplier, error) {
	var s domain.Supplier
	err := row.Scan(&s.ID, &s.Name, &s.Phone, &s.Address, &s.ContactPerson, &s.Balance, &s.Status, &s.CreatedDate)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// SaveSupplier inserts a new supplier and returns it with its assigned ID.
func (r *PgxSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) (*domain.Supplier, error) {
	query := `
		INSERT INTO suppliers (name, phone, address, contact_person, balance, status, created_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + supplierColumns + `;
	`
	created, err := scanSupplier(r.Pool.QueryRow(ctx, query,
		supplier.Name,
		supplier.Phone,
		supplier.Address,
		supplier.ContactPerson,
		supplier.Balance,
		supplier.Status,
		supplier.CreatedDate,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to insert supplier: %w", err)
	}
	return created, nil
}

// FindSupplierByID retrieves a supplier by its ID.
func (r *PgxSupplierRepository) FindSupplierByID(ctx context.Context, supplierID int64) (*domain.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1;`
	supplier, err := scanSupplier(r.Pool.QueryRow(ctx, query, supplierID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find supplier %d: %w", supplierID, err)
	}
	return supplier, nil
}

// ListSuppliers retrieves all suppliers ordered by ID.
func (r *PgxSupplierRepository) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers ORDER BY id;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query suppliers: %w", err)
	}
	defer rows.Close()

	suppliers := []domain.Supplier{}
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan supplier row: %w", err)
		}
		suppliers = append(suppliers, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating supplier rows: %w", err)
	}
	return suppliers, nil
}

// UpdateSupplier overwrites all mutable fields of an existing supplier.
func (r *PgxSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) (*domain.Supplier, error) {
	query := `
		UPDATE suppliers
		SET name = $2, phone = $3, address = $4, contact_person = $5, balance = $6, status = $7
		WHERE id = $1
		RETURNING ` + supplierColumns + `;
	`
	updated, err := scanSupplier(r.Pool.QueryRow(ctx, query,
		supplier.ID,
		supplier.Name,
		supplier.Phone,
		supplier.Address,
		supplier.ContactPerson,
		supplier.Balance,
		supplier.Status,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update supplier %d: %w", supplier.ID, err)
	}
	return updated, nil
}

// DeleteSupplier removes a supplier by ID.
func (r *PgxSupplierRepository) DeleteSupplier(ctx context.Context, supplierID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM suppliers WHERE id = $1;`, supplierID)
	if err != nil {
		return fmt.Errorf("failed to delete supplier %d: %w", supplierID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
