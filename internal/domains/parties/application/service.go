// Package application exposes customer and employee use cases as thin
// layers over the generic CRUD service.
package application

import (
	"context"

	"github.com/edwingd18/Prueba-motorcycles/internal/domains/parties/domain"
	"github.com/edwingd18/Prueba-motorcycles/internal/shared/crud"
)

// CustomerService manages dealership customers.
type CustomerService struct {
	crud *crud.Service[domain.Customer, *domain.Customer]
}

// NewCustomerService creates the customer service over the given repository.
func NewCustomerService(repo crud.Repository[domain.Customer, *domain.Customer], opts ...crud.Option[domain.Customer, *domain.Customer]) *CustomerService {
	base := []crud.Option[domain.Customer, *domain.Customer]{
		crud.WithValidator(func(c *domain.Customer) error { return c.Validate() }),
	}
	return &CustomerService{crud: crud.NewService(repo, append(base, opts...)...)}
}

// Create persists a new customer, defaulting the status to active.
func (s *CustomerService) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if customer != nil {
		customer.ApplyDefaults()
	}
	return s.crud.Create(ctx, customer)
}

func (s *CustomerService) List(ctx context.Context) ([]*domain.Customer, error) {
	return s.crud.List(ctx)
}

func (s *CustomerService) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.crud.GetByID(ctx, id)
}

// Update overwrites the stored customer with the incoming payload.
func (s *CustomerService) Update(ctx context.Context, id int64, incoming *domain.Customer) (*domain.Customer, error) {
	if incoming != nil {
		incoming.ApplyDefaults()
	}
	return s.crud.Update(ctx, id, incoming)
}

func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	return s.crud.Delete(ctx, id)
}

// EmployeeService manages dealership employees.
type EmployeeService struct {
	crud *crud.Service[domain.Employee, *domain.Employee]
}

// NewEmployeeService creates the employee service over the given repository.
func NewEmployeeService(repo crud.Repository[domain.Employee, *domain.Employee], opts ...crud.Option[domain.Employee, *domain.Employee]) *EmployeeService {
	base := []crud.Option[domain.Employee, *domain.Employee]{
		crud.WithValidator(func(e *domain.Employee) error { return e.Validate() }),
	}
	return &EmployeeService{crud: crud.NewService(repo, append(base, opts...)...)}
}

// Create persists a new employee, defaulting the status to active.
func (s *EmployeeService) Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	if employee != nil {
		employee.ApplyDefaults()
	}
	return s.crud.Create(ctx, employee)
}

func (s *EmployeeService) List(ctx context.Context) ([]*domain.Employee, error) {
	return s.crud.List(ctx)
}

func (s *EmployeeService) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.crud.GetByID(ctx, id)
}

// Update overwrites the stored employee with the incoming payload.
func (s *EmployeeService) Update(ctx context.Context, id int64, incoming *domain.Employee) (*domain.Employee, error) {
	if incoming != nil {
		incoming.ApplyDefaults()
	}
	return s.crud.Update(ctx, id, incoming)
}

func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	return s.crud.Delete(ctx, id)
}
