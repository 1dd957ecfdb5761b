package dto

import (
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCustomerRequest defines the data needed to create a customer.
type CreateCustomerRequest struct {
	Name    string          `json:"name" binding:"required"`
	Phone   string          `json:"phone"`
	Address string          `json:"address"`
	Balance decimal.Decimal `json:"balance" binding:"omitempty,dgte0"`
	Status  string          `json:"status" binding:"omitempty,oneof=active inactive"`
}

// UpdateCustomerRequest overwrites all mutable customer fields.
type UpdateCustomerRequest struct {
	Name    string          `json:"name" binding:"required"`
	Phone   string          `json:"phone"`
	Address string          `json:"address"`
	Balance decimal.Decimal `json:"balance" binding:"omitempty,dgte0"`
	Status  string          `json:"status" binding:"omitempty,oneof=active inactive"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Phone       string          `json:"phone"`
	Address     string          `json:"address"`
	Balance     decimal.Decimal `json:"balance"`
	Status      string          `json:"status"`
	CreatedDate string          `json:"created_date"`
}

// ToCustomerResponse converts a domain.Customer to its response DTO.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          c.ID,
		Name:        c.Name,
		Phone:       c.Phone,
		Address:     c.Address,
		Balance:     c.Balance,
		Status:      string(c.Status),
		CreatedDate: c.CreatedDate.Format(dateLayout),
	}
}

// ToListCustomerResponse converts a slice of customers to response DTOs.
func ToListCustomerResponse(customers []domain.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		res[i] = ToCustomerResponse(&c)
	}
	return res
}
