package services

import (
	"context"
	"time"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	portsrepo "github.com/bizbooks/bizbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
	"github.com/bizbooks/bizbooks_backend/internal/dto"
)

// supplierService provides supplier CRUD on top of the repository.
type supplierService struct {
	BaseService
	supplierRepo portsrepo.SupplierRepository
}

// NewSupplierService creates a new SupplierService.
func NewSupplierService(supplierRepo portsrepo.SupplierRepository) portssvc.SupplierService {
	return &supplierService{supplierRepo: supplierRepo}
}

var _ portssvc.SupplierService = (*supplierService)(nil)

// CreateSupplier persists a new supplier record.
func (s *supplierService) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest) (*domain.Supplier, error) {
	supplier := domain.Supplier{
		Name:          req.Name,
		Phone:         req.Phone,
		Address:       req.Address,
		ContactPerson: req.ContactPerson,
		Balance:       req.Balance,
		Status:        partyStatusOrDefault(req.Status),
		CreatedDate:   time.Now().UTC(),
	}

	created, err := s.supplierRepo.SaveSupplier(ctx, supplier)
	if err != nil {
		s.LogError(ctx, err, "Failed to save supplier")
		return nil, err
	}
	return created, nil
}

// GetSupplierByID retrieves a single supplier.
func (s *supplierService) GetSupplierByID(ctx context.Context, supplierID int64) (*domain.Supplier, error) {
	return s.supplierRepo.FindSupplierByID(ctx, supplierID)
}

// ListSuppliers retrieves all suppliers.
func (s *supplierService) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	return s.supplierRepo.ListSuppliers(ctx)
}

// UpdateSupplier overwrites all mutable fields of an existing supplier.
func (s *supplierService) UpdateSupplier(ctx context.Context, supplierID int64, req dto.UpdateSupplierRequest) (*domain.Supplier, error) {
	supplier := domain.Supplier{
		ID:            supplierID,
		Name:          req.Name,
		Phone:         req.Phone,
		Address:       req.Address,
		ContactPerson: req.ContactPerson,
		Balance:       req.Balance,
		Status:        partyStatusOrDefault(req.Status),
	}

	updated, err := s.supplierRepo.UpdateSupplier(ctx, supplier)
	if err != nil {
		s.LogError(ctx, err, "Failed to update supplier")
		return nil, err
	}
	return updated, nil
}

// DeleteSupplier removes a supplier record.
func (s *supplierService) DeleteSupplier(ctx context.Context, supplierID int64) error {
	return s.supplierRepo.DeleteSupplier(ctx, supplierID)
}
