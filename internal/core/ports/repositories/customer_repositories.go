package repositories

import (
	"context"

	"github.com/stackforge-labs/webapp_suite/internal/core/domain"
)

// CustomerFilter narrows customer listings.
type CustomerFilter struct {
	Limit   int
	Offset  int
	Status  *domain.CustomerStatus
	Keyword string
}

// CustomerRepository persists customer records.
type CustomerRepository interface {
	SaveCustomer(ctx context.Context, customer domain.Customer) error
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	FindCustomerByCode(ctx context.Context, code string) (*domain.Customer, error)
	FindCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error)
	FindCustomers(ctx context.Context, filter CustomerFilter) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer domain.Customer) error
	DeleteCustomer(ctx context.Context, customerID string) error
}
