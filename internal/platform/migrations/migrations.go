package migrations

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Run applies the dealership schema. Intended to replace adapter-level
// automigrate so the full table set, cross-context foreign keys included,
// exists before any repository touches it.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&customerSchema{},
		&employeeSchema{},
		&motorcycleSchema{},
		&saleSchema{},
		&detailSaleSchema{},
	)
}

// Customer schema mirrors the parties domain record.
type customerSchema struct {
	ID             int64      `gorm:"primaryKey;column:id"`
	FirstName      string     `gorm:"column:first_name;not null"`
	LastName       string     `gorm:"column:last_name;not null"`
	Email          string     `gorm:"column:email;uniqueIndex;not null"`
	Phone          string     `gorm:"column:phone;not null"`
	DocumentNumber string     `gorm:"column:document_number;uniqueIndex"`
	DocumentType   string     `gorm:"column:document_type;type:varchar(32)"`
	Address        string     `gorm:"column:address"`
	City           string     `gorm:"column:city"`
	State          string     `gorm:"column:state"`
	ZipCode        string     `gorm:"column:zip_code"`
	Country        string     `gorm:"column:country"`
	BirthDate      *time.Time `gorm:"column:birth_date"`
	Status         string     `gorm:"column:status;type:varchar(32)"`
	Notes          string     `gorm:"column:notes"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at"`
}

func (customerSchema) TableName() string { return "customers" }

// Employee schema mirrors the parties domain record.
type employeeSchema struct {
	ID              int64               `gorm:"primaryKey;column:id"`
	FirstName       string              `gorm:"column:first_name;not null"`
	LastName        string              `gorm:"column:last_name;not null"`
	Email           string              `gorm:"column:email;uniqueIndex;not null"`
	Phone           string              `gorm:"column:phone"`
	DocumentNumber  string              `gorm:"column:document_number;uniqueIndex"`
	DocumentType    string              `gorm:"column:document_type;type:varchar(32)"`
	Address         string              `gorm:"column:address"`
	City            string              `gorm:"column:city"`
	State           string              `gorm:"column:state"`
	ZipCode         string              `gorm:"column:zip_code"`
	Country         string              `gorm:"column:country"`
	JobTitle        string              `gorm:"column:job_title;not null"`
	Salary          decimal.NullDecimal `gorm:"column:salary;type:decimal(12,2)"`
	HireDate        *time.Time          `gorm:"column:hire_date"`
	TerminationDate *time.Time          `gorm:"column:termination_date"`
	Status          string              `gorm:"column:status;type:varchar(32)"`
	Notes           string              `gorm:"column:notes"`
	CreatedAt       time.Time           `gorm:"column:created_at"`
	UpdatedAt       time.Time           `gorm:"column:updated_at"`
}

func (employeeSchema) TableName() string { return "employees" }

// Motorcycle schema mirrors the catalog domain record.
type motorcycleSchema struct {
	ID          int64           `gorm:"primaryKey;column:id"`
	Code        string          `gorm:"column:code;uniqueIndex;not null"`
	Name        string          `gorm:"column:name;not null"`
	Description string          `gorm:"column:description"`
	Brand       string          `gorm:"column:brand;not null"`
	Price       decimal.Decimal `gorm:"column:price;type:decimal(12,2);not null"`
	Type        string          `gorm:"column:type;type:varchar(32)"`
	Model       string          `gorm:"column:model"`
	Year        int             `gorm:"column:year"`
	Color       string          `gorm:"column:color"`
	Stock       int             `gorm:"column:stock"`
	Available   *bool           `gorm:"column:available"`
	CreatedAt   time.Time       `gorm:"column:created_at"`
	UpdatedAt   time.Time       `gorm:"column:updated_at"`
}

func (motorcycleSchema) TableName() string { return "motorcycles" }

// Sale schema mirrors the sales Postgres adapter, with foreign keys into the
// parties tables.
type saleSchema struct {
	ID            int64              `gorm:"primaryKey;column:id"`
	SaleNumber    string             `gorm:"column:sale_number;uniqueIndex;not null"`
	CustomerID    int64              `gorm:"column:customer_id;not null;index"`
	EmployeeID    int64              `gorm:"column:employee_id;not null;index"`
	SaleDate      time.Time          `gorm:"column:sale_date;not null"`
	Status        string             `gorm:"column:status;not null"`
	Total         decimal.Decimal    `gorm:"column:total;type:decimal(12,2);not null"`
	PaymentMethod string             `gorm:"column:payment_method;type:varchar(32)"`
	Customer      *customerSchema    `gorm:"foreignKey:CustomerID"`
	Employee      *employeeSchema    `gorm:"foreignKey:EmployeeID"`
	Details       []detailSaleSchema `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE"`
}

func (saleSchema) TableName() string { return "sales" }

// Detail sale schema mirrors the sales Postgres adapter, with a foreign key
// into the catalog table.
type detailSaleSchema struct {
	ID           int64               `gorm:"primaryKey;column:id"`
	SaleID       int64               `gorm:"column:sale_id;not null;index"`
	MotorcycleID int64               `gorm:"column:motorcycle_id;not null;index"`
	Quantity     int32               `gorm:"column:quantity;not null"`
	UnitPrice    decimal.NullDecimal `gorm:"column:unit_price;type:decimal(12,2)"`
	Discount     decimal.Decimal     `gorm:"column:discount;type:decimal(12,2);not null"`
	Subtotal     decimal.NullDecimal `gorm:"column:subtotal;type:decimal(12,2)"`
	Notes        string              `gorm:"column:notes"`
	Motorcycle   *motorcycleSchema   `gorm:"foreignKey:MotorcycleID"`
}

func (detailSaleSchema) TableName() string { return "detail_sales" }
