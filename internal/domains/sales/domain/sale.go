// Package domain holds the sale aggregate: the sale header and the line
// items it owns. Line items never outlive their sale.
package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod enumerates how a sale was paid.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "CASH"
	PaymentCreditCard   PaymentMethod = "CREDIT_CARD"
	PaymentDebitCard    PaymentMethod = "DEBIT_CARD"
	PaymentBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentFinancing    PaymentMethod = "FINANCING"
)

// Valid reports whether the payment method is empty or one of the known values.
func (p PaymentMethod) Valid() bool {
	switch p {
	case "", PaymentCash, PaymentCreditCard, PaymentDebitCard, PaymentBankTransfer, PaymentFinancing:
		return true
	}
	return false
}

var (
	ErrEmptySaleNumber   = errors.New("sale number is required")
	ErrEmptyStatus       = errors.New("status is required")
	ErrInvalidCustomer   = errors.New("customer id must be greater than zero")
	ErrInvalidEmployee   = errors.New("employee id must be greater than zero")
	ErrInvalidMotorcycle = errors.New("motorcycle id must be greater than zero")
	ErrInvalidQuantity   = errors.New("quantity must be greater than zero")
	ErrNegativePrice     = errors.New("unit price must not be negative")
	ErrNegativeDiscount  = errors.New("discount must not be negative")
	ErrInvalidPayment    = errors.New("unknown payment method")
)

// Sale is the aggregate root. Total is supplied by the caller and stored
// verbatim, it is not derived from the line subtotals.
type Sale struct {
	ID            int64
	SaleNumber    string
	CustomerID    int64
	EmployeeID    int64
	SaleDate      time.Time
	Status        string
	Total         decimal.Decimal
	PaymentMethod PaymentMethod
	Details       []DetailSale
}

// DetailSale is a line item owned by exactly one sale. It references the
// sold motorcycle by identifier only.
type DetailSale struct {
	ID           int64
	SaleID       int64
	MotorcycleID int64
	Quantity     int32
	UnitPrice    decimal.NullDecimal
	Discount     decimal.Decimal
	Subtotal     decimal.NullDecimal
	Notes        string
}

// ComputeSubtotal derives a line subtotal as unit price times quantity minus
// discount.
func ComputeSubtotal(unitPrice decimal.Decimal, quantity int32, discount decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt32(quantity)).Sub(discount)
}

// RecalculateSubtotal refreshes the stored subtotal from price, quantity,
// and discount. When the unit price is absent or the quantity is zero the
// subtotal is left untouched.
func (d *DetailSale) RecalculateSubtotal() {
	if !d.UnitPrice.Valid || d.Quantity == 0 {
		return
	}
	d.Subtotal = decimal.NewNullDecimal(ComputeSubtotal(d.UnitPrice.Decimal, d.Quantity, d.Discount))
}

// SubtotalMissing reports whether the subtotal is absent or zero. Callers
// treat a zero subtotal the same as a missing one and recompute it.
func (d *DetailSale) SubtotalMissing() bool {
	return !d.Subtotal.Valid || d.Subtotal.Decimal.IsZero()
}

// BindTo assigns the line to its owning sale.
func (d *DetailSale) BindTo(saleID int64) {
	d.SaleID = saleID
}

// Validate checks the line item invariants.
func (d *DetailSale) Validate() error {
	if d.MotorcycleID <= 0 {
		return ErrInvalidMotorcycle
	}
	if d.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if d.UnitPrice.Valid && d.UnitPrice.Decimal.IsNegative() {
		return ErrNegativePrice
	}
	if d.Discount.IsNegative() {
		return ErrNegativeDiscount
	}
	return nil
}

// Validate checks the aggregate invariants, including every owned line.
func (s *Sale) Validate() error {
	if s.SaleNumber == "" {
		return ErrEmptySaleNumber
	}
	if s.Status == "" {
		return ErrEmptyStatus
	}
	if s.CustomerID <= 0 {
		return ErrInvalidCustomer
	}
	if s.EmployeeID <= 0 {
		return ErrInvalidEmployee
	}
	if !s.PaymentMethod.Valid() {
		return ErrInvalidPayment
	}
	for i := range s.Details {
		if err := s.Details[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// BindDetails assigns every line to this sale and fills in subtotals that
// are absent or zero.
func (s *Sale) BindDetails() {
	for i := range s.Details {
		s.Details[i].BindTo(s.ID)
		if s.Details[i].SubtotalMissing() {
			s.Details[i].RecalculateSubtotal()
		}
	}
}
