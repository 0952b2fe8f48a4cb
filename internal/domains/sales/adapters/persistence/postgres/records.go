package postgres

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/domain"
)

type saleRecord struct {
	ID            int64              `gorm:"primaryKey;column:id"`
	SaleNumber    string             `gorm:"column:sale_number;uniqueIndex;not null"`
	CustomerID    int64              `gorm:"column:customer_id;not null;index"`
	EmployeeID    int64              `gorm:"column:employee_id;not null;index"`
	SaleDate      time.Time          `gorm:"column:sale_date;not null"`
	Status        string             `gorm:"column:status;not null"`
	Total         decimal.Decimal    `gorm:"column:total;type:decimal(12,2);not null"`
	PaymentMethod string             `gorm:"column:payment_method;type:varchar(32)"`
	Details       []detailSaleRecord `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE"`
}

func (saleRecord) TableName() string { return "sales" }

type detailSaleRecord struct {
	ID           int64               `gorm:"primaryKey;column:id"`
	SaleID       int64               `gorm:"column:sale_id;not null;index"`
	MotorcycleID int64               `gorm:"column:motorcycle_id;not null;index"`
	Quantity     int32               `gorm:"column:quantity;not null"`
	UnitPrice    decimal.NullDecimal `gorm:"column:unit_price;type:decimal(12,2)"`
	Discount     decimal.Decimal     `gorm:"column:discount;type:decimal(12,2);not null"`
	Subtotal     decimal.NullDecimal `gorm:"column:subtotal;type:decimal(12,2)"`
	Notes        string              `gorm:"column:notes"`
}

func (detailSaleRecord) TableName() string { return "detail_sales" }

// BeforeSave keeps the stored subtotal consistent with price, quantity, and
// discount on every insert and update.
func (d *detailSaleRecord) BeforeSave(*gorm.DB) error {
	if d.UnitPrice.Valid && d.Quantity != 0 {
		d.Subtotal = decimal.NewNullDecimal(
			domain.ComputeSubtotal(d.UnitPrice.Decimal, d.Quantity, d.Discount))
	}
	return nil
}

func toRecord(sale *domain.Sale) saleRecord {
	record := saleRecord{
		ID:            sale.ID,
		SaleNumber:    sale.SaleNumber,
		CustomerID:    sale.CustomerID,
		EmployeeID:    sale.EmployeeID,
		SaleDate:      sale.SaleDate,
		Status:        sale.Status,
		Total:         sale.Total,
		PaymentMethod: string(sale.PaymentMethod),
	}
	record.Details = make([]detailSaleRecord, 0, len(sale.Details))
	for i := range sale.Details {
		record.Details = append(record.Details, toDetailRecord(&sale.Details[i]))
	}
	return record
}

func toDetailRecord(detail *domain.DetailSale) detailSaleRecord {
	return detailSaleRecord{
		ID:           detail.ID,
		SaleID:       detail.SaleID,
		MotorcycleID: detail.MotorcycleID,
		Quantity:     detail.Quantity,
		UnitPrice:    detail.UnitPrice,
		Discount:     detail.Discount,
		Subtotal:     detail.Subtotal,
		Notes:        detail.Notes,
	}
}

func toDomain(record *saleRecord) *domain.Sale {
	sale := &domain.Sale{
		ID:            record.ID,
		SaleNumber:    record.SaleNumber,
		CustomerID:    record.CustomerID,
		EmployeeID:    record.EmployeeID,
		SaleDate:      record.SaleDate,
		Status:        record.Status,
		Total:         record.Total,
		PaymentMethod: domain.PaymentMethod(record.PaymentMethod),
	}
	sale.Details = make([]domain.DetailSale, 0, len(record.Details))
	for i := range record.Details {
		sale.Details = append(sale.Details, *toDetailDomain(&record.Details[i]))
	}
	return sale
}

func toDetailDomain(record *detailSaleRecord) *domain.DetailSale {
	return &domain.DetailSale{
		ID:           record.ID,
		SaleID:       record.SaleID,
		MotorcycleID: record.MotorcycleID,
		Quantity:     record.Quantity,
		UnitPrice:    record.UnitPrice,
		Discount:     record.Discount,
		Subtotal:     record.Subtotal,
		Notes:        record.Notes,
	}
}
