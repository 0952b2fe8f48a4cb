// Package postgres persists the sale aggregate in a relational database
// through GORM. Header and line items live in two tables joined by sale_id.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/domain"
	"github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/ports"
)

// Repository implements ports.Repository on GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates the repository and ensures both tables exist.
func NewRepository(db *gorm.DB) (*Repository, error) {
	if db == nil {
		return nil, fmt.Errorf("gorm DB is nil")
	}
	if err := db.AutoMigrate(&saleRecord{}, &detailSaleRecord{}); err != nil {
		return nil, fmt.Errorf("auto-migrating sale schema: %w", err)
	}
	return &Repository{db: db}, nil
}

// Create inserts the sale header and its line items in one transaction.
// Client-supplied line identities are discarded.
func (r *Repository) Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	record := toRecord(sale)
	for i := range record.Details {
		record.Details[i].ID = 0
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&record).Error
	})
	if err != nil {
		return nil, fmt.Errorf("creating sale: %w", err)
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID loads a sale with its line items materialized.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Sale, error) {
	var record saleRecord
	err := r.db.WithContext(ctx).
		Preload("Details", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, fmt.Errorf("loading sale: %w", err)
	}
	return toDomain(&record), nil
}

// List returns every sale with line items, ordered by identifier.
func (r *Repository) List(ctx context.Context) ([]*domain.Sale, error) {
	var records []saleRecord
	err := r.db.WithContext(ctx).
		Preload("Details", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Order("id").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("listing sales: %w", err)
	}
	out := make([]*domain.Sale, 0, len(records))
	for i := range records {
		out = append(out, toDomain(&records[i]))
	}
	return out, nil
}

// Update writes the sale header and, when requested, replaces the stored
// line set with sale.Details. Both commit in the same transaction.
func (r *Repository) Update(ctx context.Context, sale *domain.Sale, replaceDetails bool) (*domain.Sale, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		header := toRecord(sale)
		result := tx.Model(&saleRecord{}).
			Where("id = ?", sale.ID).
			Select("sale_number", "customer_id", "employee_id", "sale_date", "status", "total", "payment_method").
			Updates(&header)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ports.ErrNotFound
		}
		if !replaceDetails {
			return nil
		}
		if err := tx.Where("sale_id = ?", sale.ID).Delete(&detailSaleRecord{}).Error; err != nil {
			return err
		}
		for i := range sale.Details {
			line := toDetailRecord(&sale.Details[i])
			line.ID = 0
			line.SaleID = sale.ID
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, fmt.Errorf("updating sale: %w", err)
	}
	return r.GetByID(ctx, sale.ID)
}

// Delete removes the sale and every line item it owns.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sale_id = ?", id).Delete(&detailSaleRecord{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&saleRecord{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ports.ErrNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return ports.ErrNotFound
		}
		return fmt.Errorf("deleting sale: %w", err)
	}
	return nil
}

// SaveDetail inserts or fully overwrites a single line item. The subtotal
// is recomputed by the persist hook.
func (r *Repository) SaveDetail(ctx context.Context, detail *domain.DetailSale) (*domain.DetailSale, error) {
	record := toDetailRecord(detail)
	tx := r.db.WithContext(ctx)
	var err error
	if record.ID == 0 {
		err = tx.Create(&record).Error
	} else {
		err = tx.Save(&record).Error
	}
	if err != nil {
		return nil, fmt.Errorf("saving detail sale: %w", err)
	}
	return r.DetailByID(ctx, record.ID)
}

// DetailByID loads a single line item.
func (r *Repository) DetailByID(ctx context.Context, id int64) (*domain.DetailSale, error) {
	var record detailSaleRecord
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrDetailNotFound
		}
		return nil, fmt.Errorf("loading detail sale: %w", err)
	}
	return toDetailDomain(&record), nil
}

// ListDetails returns every line item across all sales.
func (r *Repository) ListDetails(ctx context.Context) ([]*domain.DetailSale, error) {
	var records []detailSaleRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("listing detail sales: %w", err)
	}
	out := make([]*domain.DetailSale, 0, len(records))
	for i := range records {
		out = append(out, toDetailDomain(&records[i]))
	}
	return out, nil
}

// DeleteDetail removes a single line item.
func (r *Repository) DeleteDetail(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&detailSaleRecord{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting detail sale: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ports.ErrDetailNotFound
	}
	return nil
}
