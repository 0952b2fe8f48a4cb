package crud

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// GormRepository is a Repository backed by a relational database through GORM.
type GormRepository[T any, PT Record[T]] struct {
	db *gorm.DB
}

// NewGormRepository creates a repository for T and ensures its schema exists.
func NewGormRepository[T any, PT Record[T]](db *gorm.DB) (*GormRepository[T, PT], error) {
	if db == nil {
		return nil, fmt.Errorf("gorm DB is nil")
	}
	var model T
	if err := db.AutoMigrate(&model); err != nil {
		return nil, fmt.Errorf("auto-migrating schema: %w", err)
	}
	return &GormRepository[T, PT]{db: db}, nil
}

// Save inserts the entity when it has no identifier yet, otherwise writes the
// full record.
func (r *GormRepository[T, PT]) Save(ctx context.Context, entity PT) (PT, error) {
	if entity == nil {
		return nil, fmt.Errorf("entity is nil")
	}
	tx := r.db.WithContext(ctx)
	var err error
	if entity.PrimaryKey() == 0 {
		err = tx.Create(entity).Error
	} else {
		err = tx.Save(entity).Error
	}
	if err != nil {
		return nil, fmt.Errorf("saving record: %w", err)
	}
	return r.GetByID(ctx, entity.PrimaryKey())
}

// GetByID loads a single record, translating a missing row to ErrNotFound.
func (r *GormRepository[T, PT]) GetByID(ctx context.Context, id int64) (PT, error) {
	var record T
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading record: %w", err)
	}
	return PT(&record), nil
}

// List returns every record ordered by identifier.
func (r *GormRepository[T, PT]) List(ctx context.Context) ([]PT, error) {
	var records []T
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	out := make([]PT, 0, len(records))
	for i := range records {
		out = append(out, PT(&records[i]))
	}
	return out, nil
}

// Delete removes a record, translating a missing row to ErrNotFound.
func (r *GormRepository[T, PT]) Delete(ctx context.Context, id int64) error {
	var model T
	result := r.db.WithContext(ctx).Delete(&model, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
