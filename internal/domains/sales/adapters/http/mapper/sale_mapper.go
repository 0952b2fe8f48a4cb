// Package mapper converts between the sale transport payloads and the
// domain aggregate.
package mapper

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/domain"
	"github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/ports"
)

// Sale is the wire representation of a sale. Details distinguishes an
// absent line set (nil, keep stored lines on update) from an empty one
// (replace with nothing).
type Sale struct {
	ID            int64           `json:"id"`
	SaleNumber    string          `json:"saleNumber"`
	CustomerID    int64           `json:"customerId"`
	EmployeeID    int64           `json:"employeeId"`
	SaleDate      *time.Time      `json:"saleDate,omitempty"`
	Status        string          `json:"status"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	Details       *[]DetailSale   `json:"details,omitempty"`
}

// DetailSale is the wire representation of a line item. Motorcycle is only
// populated on the resolved details view.
type DetailSale struct {
	ID           int64            `json:"id"`
	SaleID       int64            `json:"saleId"`
	MotorcycleID int64            `json:"motorcycleId"`
	Quantity     int32            `json:"quantity"`
	UnitPrice    *decimal.Decimal `json:"unitPrice,omitempty"`
	Discount     *decimal.Decimal `json:"discount,omitempty"`
	Subtotal     *decimal.Decimal `json:"subtotal,omitempty"`
	Notes        string           `json:"notes,omitempty"`
	Motorcycle   *Motorcycle      `json:"motorcycle,omitempty"`
}

// Motorcycle is the reduced catalog shape embedded in resolved line items.
type Motorcycle struct {
	ID    int64           `json:"id"`
	Code  string          `json:"code"`
	Name  string          `json:"name"`
	Brand string          `json:"brand"`
	Model string          `json:"model,omitempty"`
	Type  string          `json:"type,omitempty"`
	Price decimal.Decimal `json:"price"`
}

// ToDomain converts the payload into the aggregate plus the optional line
// set used by update.
func ToDomain(payload *Sale) (*domain.Sale, *[]domain.DetailSale) {
	sale := &domain.Sale{
		ID:            payload.ID,
		SaleNumber:    payload.SaleNumber,
		CustomerID:    payload.CustomerID,
		EmployeeID:    payload.EmployeeID,
		Status:        payload.Status,
		Total:         payload.Total,
		PaymentMethod: domain.PaymentMethod(payload.PaymentMethod),
	}
	if payload.SaleDate != nil {
		sale.SaleDate = *payload.SaleDate
	}
	if payload.Details == nil {
		return sale, nil
	}
	lines := make([]domain.DetailSale, 0, len(*payload.Details))
	for i := range *payload.Details {
		lines = append(lines, *ToDetailDomain(&(*payload.Details)[i]))
	}
	sale.Details = lines
	return sale, &lines
}

// ToDetailDomain converts a line item payload.
func ToDetailDomain(payload *DetailSale) *domain.DetailSale {
	line := &domain.DetailSale{
		ID:           payload.ID,
		SaleID:       payload.SaleID,
		MotorcycleID: payload.MotorcycleID,
		Quantity:     payload.Quantity,
		Notes:        payload.Notes,
	}
	if payload.UnitPrice != nil {
		line.UnitPrice = decimal.NewNullDecimal(*payload.UnitPrice)
	}
	if payload.Discount != nil {
		line.Discount = *payload.Discount
	}
	if payload.Subtotal != nil {
		line.Subtotal = decimal.NewNullDecimal(*payload.Subtotal)
	}
	return line
}

// FromDomain converts the aggregate into its wire shape, line items included.
func FromDomain(sale *domain.Sale) Sale {
	payload := Sale{
		ID:            sale.ID,
		SaleNumber:    sale.SaleNumber,
		CustomerID:    sale.CustomerID,
		EmployeeID:    sale.EmployeeID,
		Status:        sale.Status,
		Total:         sale.Total,
		PaymentMethod: string(sale.PaymentMethod),
	}
	if !sale.SaleDate.IsZero() {
		date := sale.SaleDate
		payload.SaleDate = &date
	}
	lines := make([]DetailSale, 0, len(sale.Details))
	for i := range sale.Details {
		lines = append(lines, FromDetailDomain(&sale.Details[i]))
	}
	payload.Details = &lines
	return payload
}

// FromDetailDomain converts a line item into its wire shape.
func FromDetailDomain(line *domain.DetailSale) DetailSale {
	payload := DetailSale{
		ID:           line.ID,
		SaleID:       line.SaleID,
		MotorcycleID: line.MotorcycleID,
		Quantity:     line.Quantity,
		Notes:        line.Notes,
	}
	if line.UnitPrice.Valid {
		price := line.UnitPrice.Decimal
		payload.UnitPrice = &price
	}
	discount := line.Discount
	payload.Discount = &discount
	if line.Subtotal.Valid {
		subtotal := line.Subtotal.Decimal
		payload.Subtotal = &subtotal
	}
	return payload
}

// FromDetailsView renders a sale with each line's motorcycle attached.
func FromDetailsView(view *ports.SaleDetailsView) Sale {
	payload := FromDomain(view.Sale)
	if payload.Details == nil {
		return payload
	}
	for i := range *payload.Details {
		line := &(*payload.Details)[i]
		ref, ok := view.Motorcycles[line.MotorcycleID]
		if !ok {
			continue
		}
		line.Motorcycle = &Motorcycle{
			ID:    ref.ID,
			Code:  ref.Code,
			Name:  ref.Name,
			Brand: ref.Brand,
			Model: ref.Model,
			Type:  ref.Type,
			Price: ref.Price,
		}
	}
	return payload
}
