package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stackforge-labs/webapp_suite/internal/apperrors"
	"github.com/stackforge-labs/webapp_suite/internal/core/domain"
	portsrepo "github.com/stackforge-labs/webapp_suite/internal/core/ports/repositories"
	portssvc "github.com/stackforge-labs/webapp_suite/internal/core/ports/services"
	"github.com/stackforge-labs/webapp_suite/internal/dto"
)

type customerService struct {
	customerRepo portsrepo.CustomerRepository
}

// NewCustomerService creates a new customerService.
func NewCustomerService(customerRepo portsrepo.CustomerRepository) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	if _, err := s.customerRepo.FindCustomerByCode(ctx, req.CustomerCode); err == nil {
		return nil, fmt.Errorf("customer code %s is taken: %w", req.CustomerCode, apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check customer code availability: %w", err)
	}
	if _, err := s.customerRepo.FindCustomerByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("email %s is taken: %w", req.Email, apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email availability: %w", err)
	}

	customer := domain.Customer{
		CustomerID:   uuid.NewString(),
		CustomerCode: req.CustomerCode,
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		Status:       domain.CustomerActive,
		CreatedAt:    time.Now(),
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	return s.customerRepo.FindCustomerByID(ctx, customerID)
}

func (s *customerService) ListCustomers(ctx context.Context, filter portsrepo.CustomerFilter) ([]domain.Customer, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, fmt.Errorf("unknown customer status %s: %w", *filter.Status, apperrors.ErrValidation)
	}
	return s.customerRepo.FindCustomers(ctx, filter)
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if req.Email != customer.Email {
		if _, err := s.customerRepo.FindCustomerByEmail(ctx, req.Email); err == nil {
			return nil, fmt.Errorf("email %s is taken: %w", req.Email, apperrors.ErrDuplicate)
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to check email availability: %w", err)
		}
	}

	customer.FullName = req.FullName
	customer.Email = req.Email
	customer.Phone = req.Phone
	customer.Address = req.Address
	if req.Status != "" {
		if !req.Status.IsValid() {
			return nil, fmt.Errorf("unknown customer status %s: %w", req.Status, apperrors.ErrValidation)
		}
		customer.Status = req.Status
	}

	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, customerID string) error {
	return s.customerRepo.DeleteCustomer(ctx, customerID)
}
