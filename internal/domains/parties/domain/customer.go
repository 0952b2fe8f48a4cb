package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/edwingd18/Prueba-motorcycles/internal/shared/crud"
)

// CustomerStatus enumerates the lifecycle states of a customer account.
type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "ACTIVE"
	CustomerInactive CustomerStatus = "INACTIVE"
	CustomerBlocked  CustomerStatus = "BLOCKED"
)

// Valid reports whether the status is empty or one of the known values.
func (s CustomerStatus) Valid() bool {
	switch s {
	case "", CustomerActive, CustomerInactive, CustomerBlocked:
		return true
	}
	return false
}

var (
	ErrEmptyFirstName      = errors.New("first name is required")
	ErrEmptyLastName       = errors.New("last name is required")
	ErrInvalidEmail        = errors.New("a valid email is required")
	ErrEmptyPhone          = errors.New("phone is required")
	ErrInvalidDocumentType = errors.New("unknown document type")
	ErrInvalidStatus       = errors.New("unknown status")
)

// Customer is a dealership customer. The struct doubles as the persistence
// record and the transport payload.
type Customer struct {
	ID             int64          `gorm:"primaryKey;column:id" json:"id"`
	FirstName      string         `gorm:"column:first_name;not null" json:"firstName"`
	LastName       string         `gorm:"column:last_name;not null" json:"lastName"`
	Email          string         `gorm:"column:email;uniqueIndex;not null" json:"email"`
	Phone          string         `gorm:"column:phone;not null" json:"phone"`
	DocumentNumber string         `gorm:"column:document_number;uniqueIndex" json:"documentNumber,omitempty"`
	DocumentType   DocumentType   `gorm:"column:document_type;type:varchar(32)" json:"documentType,omitempty"`
	Address        string         `gorm:"column:address" json:"address,omitempty"`
	City           string         `gorm:"column:city" json:"city,omitempty"`
	State          string         `gorm:"column:state" json:"state,omitempty"`
	ZipCode        string         `gorm:"column:zip_code" json:"zipCode,omitempty"`
	Country        string         `gorm:"column:country" json:"country,omitempty"`
	BirthDate      *time.Time     `gorm:"column:birth_date" json:"birthDate,omitempty"`
	Status         CustomerStatus `gorm:"column:status;type:varchar(32)" json:"status"`
	Notes          string         `gorm:"column:notes" json:"notes,omitempty"`
	crud.Timestamps
}

func (Customer) TableName() string { return "customers" }

func (c *Customer) PrimaryKey() int64      { return c.ID }
func (c *Customer) SetPrimaryKey(id int64) { c.ID = id }

// FullName joins first and last name for display.
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// ApplyDefaults fills fields the caller may omit. New customers are active.
func (c *Customer) ApplyDefaults() {
	if c.Status == "" {
		c.Status = CustomerActive
	}
}

// Validate checks the customer invariants.
func (c *Customer) Validate() error {
	if c.FirstName == "" {
		return ErrEmptyFirstName
	}
	if c.LastName == "" {
		return ErrEmptyLastName
	}
	if !strings.Contains(c.Email, "@") {
		return ErrInvalidEmail
	}
	if c.Phone == "" {
		return ErrEmptyPhone
	}
	if !c.DocumentType.Valid() {
		return ErrInvalidDocumentType
	}
	if !c.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}
