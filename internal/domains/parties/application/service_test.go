package application

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edwingd18/Prueba-motorcycles/internal/domains/parties/domain"
	"github.com/edwingd18/Prueba-motorcycles/internal/shared/crud"
)

func newCustomerService() *CustomerService {
	return NewCustomerService(crud.NewMemoryRepository[domain.Customer]())
}

func newEmployeeService() *EmployeeService {
	return NewEmployeeService(crud.NewMemoryRepository[domain.Employee]())
}

func validCustomer() *domain.Customer {
	return &domain.Customer{
		FirstName:      "Laura",
		LastName:       "Gomez",
		Email:          "laura.gomez@example.com",
		Phone:          "3001234567",
		DocumentNumber: "CC-100200300",
		DocumentType:   domain.DocumentCedula,
	}
}

func validEmployee() *domain.Employee {
	return &domain.Employee{
		FirstName: "Carlos",
		LastName:  "Ruiz",
		Email:     "carlos.ruiz@example.com",
		JobTitle:  "Sales Advisor",
	}
}

func TestCreateCustomerDefaultsStatus(t *testing.T) {
	svc := newCustomerService()

	created, err := svc.Create(context.Background(), validCustomer())
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, domain.CustomerActive, created.Status)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, "Laura Gomez", created.FullName())
}

func TestCreateCustomerKeepsExplicitStatus(t *testing.T) {
	svc := newCustomerService()
	customer := validCustomer()
	customer.Status = domain.CustomerBlocked

	created, err := svc.Create(context.Background(), customer)
	require.NoError(t, err)
	assert.Equal(t, domain.CustomerBlocked, created.Status)
}

func TestCreateCustomerValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Customer)
		wantErr error
	}{
		{"missing first name", func(c *domain.Customer) { c.FirstName = "" }, domain.ErrEmptyFirstName},
		{"missing last name", func(c *domain.Customer) { c.LastName = "" }, domain.ErrEmptyLastName},
		{"malformed email", func(c *domain.Customer) { c.Email = "not-an-email" }, domain.ErrInvalidEmail},
		{"missing phone", func(c *domain.Customer) { c.Phone = "" }, domain.ErrEmptyPhone},
		{"unknown document type", func(c *domain.Customer) { c.DocumentType = "RUT" }, domain.ErrInvalidDocumentType},
		{"unknown status", func(c *domain.Customer) { c.Status = "SUSPENDED" }, domain.ErrInvalidStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newCustomerService()
			customer := validCustomer()
			tt.mutate(customer)

			_, err := svc.Create(context.Background(), customer)
			assert.ErrorIs(t, err, crud.ErrInvalidInput)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUpdateCustomerOverwrites(t *testing.T) {
	svc := newCustomerService()
	created, err := svc.Create(context.Background(), validCustomer())
	require.NoError(t, err)

	incoming := validCustomer()
	incoming.Email = "laura@example.com"
	incoming.City = "Medellin"
	incoming.Status = domain.CustomerInactive
	updated, err := svc.Update(context.Background(), created.ID, incoming)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "laura@example.com", updated.Email)
	assert.Equal(t, "Medellin", updated.City)
	assert.Equal(t, domain.CustomerInactive, updated.Status)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateCustomerUnknown(t *testing.T) {
	svc := newCustomerService()

	_, err := svc.Update(context.Background(), 42, validCustomer())
	assert.ErrorIs(t, err, crud.ErrNotFound)
}

func TestDeleteCustomer(t *testing.T) {
	svc := newCustomerService()
	created, err := svc.Create(context.Background(), validCustomer())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	_, err = svc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, crud.ErrNotFound)
}

func TestCreateEmployeeDefaultsStatus(t *testing.T) {
	svc := newEmployeeService()

	created, err := svc.Create(context.Background(), validEmployee())
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, domain.EmployeeActive, created.Status)
	assert.False(t, created.Salary.Valid)
}

func TestCreateEmployeeValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Employee)
		wantErr error
	}{
		{"missing job title", func(e *domain.Employee) { e.JobTitle = "" }, domain.ErrEmptyJobTitle},
		{"malformed email", func(e *domain.Employee) { e.Email = "nope" }, domain.ErrInvalidEmail},
		{
			"negative salary",
			func(e *domain.Employee) {
				e.Salary = decimal.NewNullDecimal(decimal.RequireFromString("-1"))
			},
			domain.ErrNegativeSalary,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newEmployeeService()
			employee := validEmployee()
			tt.mutate(employee)

			_, err := svc.Create(context.Background(), employee)
			assert.ErrorIs(t, err, crud.ErrInvalidInput)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUpdateEmployeeOverwrites(t *testing.T) {
	svc := newEmployeeService()
	created, err := svc.Create(context.Background(), validEmployee())
	require.NoError(t, err)

	incoming := validEmployee()
	incoming.JobTitle = "Sales Manager"
	incoming.Salary = decimal.NewNullDecimal(decimal.RequireFromString("4200.00"))
	updated, err := svc.Update(context.Background(), created.ID, incoming)
	require.NoError(t, err)

	assert.Equal(t, "Sales Manager", updated.JobTitle)
	require.True(t, updated.Salary.Valid)
	assert.True(t, updated.Salary.Decimal.Equal(decimal.RequireFromString("4200.00")))
}
