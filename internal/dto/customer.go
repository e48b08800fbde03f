package dto

import (
	"time"

	"github.com/stackforge-labs/webapp_suite/internal/core/domain"
)

// CreateCustomerRequest carries the fields for creating a customer.
// CustomerCode is immutable after creation.
type CreateCustomerRequest struct {
	CustomerCode string `json:"customerCode" binding:"required,max=20"`
	FullName     string `json:"fullName" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
}

// UpdateCustomerRequest carries the mutable customer fields.
type UpdateCustomerRequest struct {
	FullName string                `json:"fullName" binding:"required"`
	Email    string                `json:"email" binding:"required,email"`
	Phone    string                `json:"phone"`
	Address  string                `json:"address"`
	Status   domain.CustomerStatus `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE SUSPENDED"`
}

// ListCustomersParams defines query parameters for listing and searching
// customers.
type ListCustomersParams struct {
	Limit   int    `form:"limit,default=20"`
	Offset  int    `form:"offset,default=0"`
	Status  string `form:"status"`
	Keyword string `form:"keyword"`
}

// CustomerResponse is the outward view of a customer.
type CustomerResponse struct {
	CustomerID   string    `json:"customerID"`
	CustomerCode string    `json:"customerCode"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:   c.CustomerID,
		CustomerCode: c.CustomerCode,
		FullName:     c.FullName,
		Email:        c.Email,
		Phone:        c.Phone,
		Address:      c.Address,
		Status:       string(c.Status),
		CreatedAt:    c.CreatedAt,
	}
}

// ListCustomersResponse wraps a page of customers.
type ListCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
}

func ToListCustomersResponse(customers []domain.Customer) ListCustomersResponse {
	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}
	return ListCustomersResponse{Customers: responses}
}
