package services

import (
	"context"

	"github.com/stackforge-labs/webapp_suite/internal/core/domain"
	portsrepo "github.com/stackforge-labs/webapp_suite/internal/core/ports/repositories"
	"github.com/stackforge-labs/webapp_suite/internal/dto"
)

// CustomerSvcFacade defines the customer registry operations.
type CustomerSvcFacade interface {
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error)
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, filter portsrepo.CustomerFilter) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, customerID string) error
}
