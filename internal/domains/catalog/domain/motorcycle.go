// Package domain defines the motorcycle catalog entry.
package domain

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/edwingd18/Prueba-motorcycles/internal/shared/crud"
)

// MotorcycleType enumerates the catalog categories.
type MotorcycleType string

const (
	TypeSport    MotorcycleType = "SPORT"
	TypeCruiser  MotorcycleType = "CRUISER"
	TypeTouring  MotorcycleType = "TOURING"
	TypeStandard MotorcycleType = "STANDARD"
	TypeDirtBike MotorcycleType = "DIRT_BIKE"
	TypeScooter  MotorcycleType = "SCOOTER"
	TypeElectric MotorcycleType = "ELECTRIC"
)

// Valid reports whether the type is empty or one of the known categories.
func (t MotorcycleType) Valid() bool {
	switch t {
	case "", TypeSport, TypeCruiser, TypeTouring, TypeStandard, TypeDirtBike, TypeScooter, TypeElectric:
		return true
	}
	return false
}

var (
	ErrEmptyCode     = errors.New("code is required")
	ErrEmptyName     = errors.New("name is required")
	ErrEmptyBrand    = errors.New("brand is required")
	ErrNegativePrice = errors.New("price must not be negative")
	ErrNegativeStock = errors.New("stock must not be negative")
	ErrInvalidType   = errors.New("unknown motorcycle type")
)

// Motorcycle is a catalog entry. The struct doubles as the persistence
// record and the transport payload.
type Motorcycle struct {
	ID          int64           `gorm:"primaryKey;column:id" json:"id"`
	Code        string          `gorm:"column:code;uniqueIndex;not null" json:"code"`
	Name        string          `gorm:"column:name;not null" json:"name"`
	Description string          `gorm:"column:description" json:"description,omitempty"`
	Brand       string          `gorm:"column:brand;not null" json:"brand"`
	Price       decimal.Decimal `gorm:"column:price;type:decimal(12,2);not null" json:"price"`
	Type        MotorcycleType  `gorm:"column:type;type:varchar(32)" json:"type,omitempty"`
	Model       string          `gorm:"column:model" json:"model,omitempty"`
	Year        int             `gorm:"column:year" json:"year,omitempty"`
	Color       string          `gorm:"column:color" json:"color,omitempty"`
	Stock       int             `gorm:"column:stock" json:"stock"`
	Available   *bool           `gorm:"column:available" json:"available"`
	crud.Timestamps
}

func (Motorcycle) TableName() string { return "motorcycles" }

func (m *Motorcycle) PrimaryKey() int64      { return m.ID }
func (m *Motorcycle) SetPrimaryKey(id int64) { m.ID = id }

// ApplyDefaults fills fields the caller may omit. A motorcycle is available
// unless stated otherwise.
func (m *Motorcycle) ApplyDefaults() {
	if m.Available == nil {
		available := true
		m.Available = &available
	}
}

// Validate checks the catalog invariants.
func (m *Motorcycle) Validate() error {
	if m.Code == "" {
		return ErrEmptyCode
	}
	if m.Name == "" {
		return ErrEmptyName
	}
	if m.Brand == "" {
		return ErrEmptyBrand
	}
	if m.Price.IsNegative() {
		return ErrNegativePrice
	}
	if m.Stock < 0 {
		return ErrNegativeStock
	}
	if !m.Type.Valid() {
		return ErrInvalidType
	}
	return nil
}
