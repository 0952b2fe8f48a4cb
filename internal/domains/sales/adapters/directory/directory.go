// Package directory bridges the catalog and parties contexts into the
// read-model ports the sales context consumes.
package directory

import (
	"context"
	"errors"

	catalogapp "github.com/edwingd18/Prueba-motorcycles/internal/domains/catalog/application"
	partiesapp "github.com/edwingd18/Prueba-motorcycles/internal/domains/parties/application"
	"github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/ports"
	"github.com/edwingd18/Prueba-motorcycles/internal/shared/crud"
)

// Catalog implements ports.MotorcycleCatalog on the catalog service.
type Catalog struct {
	motorcycles *catalogapp.Service
}

// NewCatalog wraps the catalog service.
func NewCatalog(motorcycles *catalogapp.Service) *Catalog {
	return &Catalog{motorcycles: motorcycles}
}

func (c *Catalog) MotorcycleByID(ctx context.Context, id int64) (*ports.MotorcycleRef, error) {
	m, err := c.motorcycles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, crud.ErrNotFound) {
			return nil, ports.ErrMotorcycleNotFound
		}
		return nil, err
	}
	return &ports.MotorcycleRef{
		ID:    m.ID,
		Code:  m.Code,
		Name:  m.Name,
		Brand: m.Brand,
		Model: m.Model,
		Type:  string(m.Type),
		Price: m.Price,
	}, nil
}

// Parties implements ports.PartyDirectory on the customer and employee
// services.
type Parties struct {
	customers *partiesapp.CustomerService
	employees *partiesapp.EmployeeService
}

// NewParties wraps the customer and employee services.
func NewParties(customers *partiesapp.CustomerService, employees *partiesapp.EmployeeService) *Parties {
	return &Parties{customers: customers, employees: employees}
}

func (p *Parties) CustomerByID(ctx context.Context, id int64) (*ports.CustomerRef, error) {
	c, err := p.customers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, crud.ErrNotFound) {
			return nil, ports.ErrCustomerNotFound
		}
		return nil, err
	}
	return &ports.CustomerRef{ID: c.ID, FirstName: c.FirstName, LastName: c.LastName, Email: c.Email}, nil
}

func (p *Parties) EmployeeByID(ctx context.Context, id int64) (*ports.EmployeeRef, error) {
	e, err := p.employees.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, crud.ErrNotFound) {
			return nil, ports.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &ports.EmployeeRef{ID: e.ID, FirstName: e.FirstName, LastName: e.LastName, Email: e.Email, JobTitle: e.JobTitle}, nil
}

var (
	_ ports.MotorcycleCatalog = (*Catalog)(nil)
	_ ports.PartyDirectory    = (*Parties)(nil)
)
