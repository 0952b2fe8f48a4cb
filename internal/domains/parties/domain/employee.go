package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/edwingd18/Prueba-motorcycles/internal/shared/crud"
)

// EmployeeStatus enumerates the lifecycle states of an employee.
type EmployeeStatus string

const (
	EmployeeActive     EmployeeStatus = "ACTIVE"
	EmployeeInactive   EmployeeStatus = "INACTIVE"
	EmployeeTerminated EmployeeStatus = "TERMINATED"
)

// Valid reports whether the status is empty or one of the known values.
func (s EmployeeStatus) Valid() bool {
	switch s {
	case "", EmployeeActive, EmployeeInactive, EmployeeTerminated:
		return true
	}
	return false
}

var (
	ErrEmptyJobTitle  = errors.New("job title is required")
	ErrNegativeSalary = errors.New("salary must not be negative")
)

// Employee is a dealership employee. The struct doubles as the persistence
// record and the transport payload.
type Employee struct {
	ID              int64                `gorm:"primaryKey;column:id" json:"id"`
	FirstName       string               `gorm:"column:first_name;not null" json:"firstName"`
	LastName        string               `gorm:"column:last_name;not null" json:"lastName"`
	Email           string               `gorm:"column:email;uniqueIndex;not null" json:"email"`
	Phone           string               `gorm:"column:phone" json:"phone,omitempty"`
	DocumentNumber  string               `gorm:"column:document_number;uniqueIndex" json:"documentNumber,omitempty"`
	DocumentType    DocumentType         `gorm:"column:document_type;type:varchar(32)" json:"documentType,omitempty"`
	Address         string               `gorm:"column:address" json:"address,omitempty"`
	City            string               `gorm:"column:city" json:"city,omitempty"`
	State           string               `gorm:"column:state" json:"state,omitempty"`
	ZipCode         string               `gorm:"column:zip_code" json:"zipCode,omitempty"`
	Country         string               `gorm:"column:country" json:"country,omitempty"`
	JobTitle        string               `gorm:"column:job_title;not null" json:"jobTitle"`
	Salary          decimal.NullDecimal  `gorm:"column:salary;type:decimal(12,2)" json:"salary"`
	HireDate        *time.Time           `gorm:"column:hire_date" json:"hireDate,omitempty"`
	TerminationDate *time.Time           `gorm:"column:termination_date" json:"terminationDate,omitempty"`
	Status          EmployeeStatus       `gorm:"column:status;type:varchar(32)" json:"status"`
	Notes           string               `gorm:"column:notes" json:"notes,omitempty"`
	crud.Timestamps
}

func (Employee) TableName() string { return "employees" }

func (e *Employee) PrimaryKey() int64      { return e.ID }
func (e *Employee) SetPrimaryKey(id int64) { e.ID = id }

// FullName joins first and last name for display.
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// ApplyDefaults fills fields the caller may omit. New employees are active.
func (e *Employee) ApplyDefaults() {
	if e.Status == "" {
		e.Status = EmployeeActive
	}
}

// Validate checks the employee invariants.
func (e *Employee) Validate() error {
	if e.FirstName == "" {
		return ErrEmptyFirstName
	}
	if e.LastName == "" {
		return ErrEmptyLastName
	}
	if !strings.Contains(e.Email, "@") {
		return ErrInvalidEmail
	}
	if e.JobTitle == "" {
		return ErrEmptyJobTitle
	}
	if e.Salary.Valid && e.Salary.Decimal.IsNegative() {
		return ErrNegativeSalary
	}
	if !e.DocumentType.Valid() {
		return ErrInvalidDocumentType
	}
	if !e.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}
