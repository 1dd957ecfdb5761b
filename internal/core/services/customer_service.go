package services

import (
	"context"
	"time"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	portsrepo "github.com/bizbooks/bizbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
	"github.com/bizbooks/bizbooks_backend/internal/dto"
)

// customerService provides customer CRUD on top of the repository.
type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepository
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(customerRepo portsrepo.CustomerRepository) portssvc.CustomerService {
	return &customerService{customerRepo: customerRepo}
}

var _ portssvc.CustomerService = (*customerService)(nil)

func partyStatusOrDefault(status string) domain.PartyStatus {
	if status == "" {
		return domain.PartyActive
	}
	return domain.PartyStatus(status)
}

// CreateCustomer persists a new customer record.
func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	customer := domain.Customer{
		Name:        req.Name,
		Phone:       req.Phone,
		Address:     req.Address,
		Balance:     req.Balance,
		Status:      partyStatusOrDefault(req.Status),
		CreatedDate: time.Now().UTC(),
	}

	created, err := s.customerRepo.SaveCustomer(ctx, customer)
	if err != nil {
		s.LogError(ctx, err, "Failed to save customer")
		return nil, err
	}
	return created, nil
}

// GetCustomerByID retrieves a single customer.
func (s *customerService) GetCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	return s.customerRepo.FindCustomerByID(ctx, customerID)
}

// ListCustomers retrieves all customers.
func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.ListCustomers(ctx)
}

// UpdateCustomer overwrites all mutable fields of an existing customer.
func (s *customerService) UpdateCustomer(ctx context.Context, customerID int64, req dto.UpdateCustomerRequest) (*domain.Customer, error) {
	customer := domain.Customer{
		ID:      customerID,
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
		Balance: req.Balance,
		Status:  partyStatusOrDefault(req.Status),
	}

	updated, err := s.customerRepo.UpdateCustomer(ctx, customer)
	if err != nil {
		s.LogError(ctx, err, "Failed to update customer")
		return nil, err
	}
	return updated, nil
}

// DeleteCustomer removes a customer. Historical invoices referencing it keep
// their rows; only the party record goes away.
func (s *customerService) DeleteCustomer(ctx context.Context, customerID int64) error {
	return s.customerRepo.DeleteCustomer(ctx, customerID)
}
