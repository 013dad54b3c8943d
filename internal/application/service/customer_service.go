package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/primag/sales-api/internal/domain/entity"
	"github.com/primag/sales-api/internal/domain/enum"
	"github.com/primag/sales-api/internal/domain/repository"
	"github.com/primag/sales-api/pkg/apperror"
	"github.com/primag/sales-api/pkg/pagination"
)

// CustomerService handles customer-related operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	CreatedBy   uuid.UUID
	Name        string
	Email       string
	Phone       string
	Address     string
	City        string
	State       string
	PostalCode  string
	Country     string
	CompanyName string
	GSTIN       string
	PAN         string
	Frequency   *enum.Frequency
}

// CreateCustomer creates a new customer
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	existing, err := s.customerRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Customer with this email already exists")
	}

	customer := &entity.Customer{
		CreatedBy:   input.CreatedBy,
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Address:     input.Address,
		City:        input.City,
		State:       input.State,
		PostalCode:  input.PostalCode,
		Country:     input.Country,
		CompanyName: input.CompanyName,
		GSTIN:       input.GSTIN,
		PAN:         input.PAN,
		IsActive:    true,
	}
	if input.Frequency != nil {
		customer.Frequency = *input.Frequency
	} else {
		customer.Frequency = enum.FrequencyMonthly
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers lists customers with page-based pagination
func (s *CustomerService) ListCustomers(ctx context.Context, params *pagination.PaginationParams, search string, activeOnly bool) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, params, search, activeOnly)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// ListCustomersWithCursor lists customers using cursor-based pagination
func (s *CustomerService) ListCustomersWithCursor(ctx context.Context, params *pagination.CursorParams, search string) (*pagination.CursorPaginatedResult[entity.Customer], error) {
	customers, err := s.customerRepo.ListWithCursor(ctx, params, search)
	if err != nil {
		return nil, err
	}

	hasPrev := params.Cursor != ""

	cursorPag, items := pagination.NewCursorPagination(customers, params.Limit,
		func(c entity.Customer) string { return c.ID.String() },
		func(c entity.Customer) time.Time { return c.CreatedAt },
	)
	cursorPag.HasPrev = hasPrev

	return pagination.NewCursorPaginatedResult(items, cursorPag), nil
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	ID          uuid.UUID
	Name        *string
	Email       *string
	Phone       *string
	Address     *string
	City        *string
	State       *string
	PostalCode  *string
	Country     *string
	CompanyName *string
	GSTIN       *string
	PAN         *string
	Frequency   *enum.Frequency
	IsActive    *bool
}

// UpdateCustomer updates a customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.Email != nil && *input.Email != customer.Email {
		existing, err := s.customerRepo.GetByEmail(ctx, *input.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != customer.ID {
			return nil, apperror.NewConflictError("Customer with this email already exists")
		}
		customer.Email = *input.Email
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Phone != nil {
		customer.Phone = *input.Phone
	}
	if input.Address != nil {
		customer.Address = *input.Address
	}
	if input.City != nil {
		customer.City = *input.City
	}
	if input.State != nil {
		customer.State = *input.State
	}
	if input.PostalCode != nil {
		customer.PostalCode = *input.PostalCode
	}
	if input.Country != nil {
		customer.Country = *input.Country
	}
	if input.CompanyName != nil {
		customer.CompanyName = *input.CompanyName
	}
	if input.GSTIN != nil {
		customer.GSTIN = *input.GSTIN
	}
	if input.PAN != nil {
		customer.PAN = *input.PAN
	}
	if input.Frequency != nil {
		customer.Frequency = *input.Frequency
	}
	if input.IsActive != nil {
		customer.IsActive = *input.IsActive
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// DeleteCustomer soft-deletes a customer and returns the deleted
// record so callers can audit what was removed.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if err := s.customerRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return customer, nil
}
