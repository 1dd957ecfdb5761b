package dto

import (
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSupplierRequest defines the data needed to create a supplier.
type CreateSupplierRequest struct {
	Name          string          `json:"name" binding:"required"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	ContactPerson string          `json:"contact_person"`
	Balance       decimal.Decimal `json:"balance" binding:"omitempty,dgte0"`
	Status        string          `json:"status" binding:"omitempty,oneof=active inactive"`
}

// UpdateSupplierRequest overwrites all mutable supplier fields.
type UpdateSupplierRequest struct {
	Name          string          `json:"name" binding:"required"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	ContactPerson string          `json:"contact_person"`
	Balance       decimal.Decimal `json:"balance" binding:"omitempty,dgte0"`
	Status        string          `json:"status" binding:"omitempty,oneof=active inactive"`
}

// SupplierResponse defines the data returned for a supplier.
type SupplierResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	ContactPerson string          `json:"contact_person"`
	Balance       decimal.Decimal `json:"balance"`
	Status        string          `json:"status"`
	CreatedDate   string          `json:"created_date"`
}

// ToSupplierResponse converts a domain.Supplier to its response DTO.
func ToSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:            s.ID,
		Name:          s.Name,
		Phone:         s.Phone,
		Address:       s.Address,
		ContactPerson: s.ContactPerson,
		Balance:       s.Balance,
		Status:        string(s.Status),
		CreatedDate:   s.CreatedDate.Format(dateLayout),
	}
}

// ToListSupplierResponse converts a slice of suppliers to response DTOs.
func ToListSupplierResponse(suppliers []domain.Supplier) []SupplierResponse {
	res := make([]SupplierResponse, len(suppliers))
	for i, s := range suppliers {
		res[i] = ToSupplierResponse(&s)
	}
	return res
}
