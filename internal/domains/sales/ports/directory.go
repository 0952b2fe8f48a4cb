package ports

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrMotorcycleNotFound = errors.New("motorcycle not found")
)

// CustomerRef is the sales-side read model of a customer.
type CustomerRef struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
}

// EmployeeRef is the sales-side read model of an employee.
type EmployeeRef struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	JobTitle  string
}

// MotorcycleRef is the sales-side read model of a catalog motorcycle.
type MotorcycleRef struct {
	ID    int64
	Code  string
	Name  string
	Brand string
	Model string
	Type  string
	Price decimal.Decimal
}

// PartyDirectory resolves the customer and employee a sale references.
type PartyDirectory interface {
	CustomerByID(ctx context.Context, id int64) (*CustomerRef, error)
	EmployeeByID(ctx context.Context, id int64) (*EmployeeRef, error)
}

// MotorcycleCatalog resolves the motorcycles referenced by line items.
type MotorcycleCatalog interface {
	MotorcycleByID(ctx context.Context, id int64) (*MotorcycleRef, error)
}
