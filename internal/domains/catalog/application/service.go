// Package application exposes the motorcycle catalog use cases as a thin
// layer over the generic CRUD service.
package application

import (
	"context"

	"github.com/edwingd18/Prueba-motorcycles/internal/domains/catalog/domain"
	"github.com/edwingd18/Prueba-motorcycles/internal/shared/crud"
)

// Service manages the motorcycle catalog.
type Service struct {
	crud *crud.Service[domain.Motorcycle, *domain.Motorcycle]
}

// NewService creates the catalog service over the given repository.
func NewService(repo crud.Repository[domain.Motorcycle, *domain.Motorcycle], opts ...crud.Option[domain.Motorcycle, *domain.Motorcycle]) *Service {
	base := []crud.Option[domain.Motorcycle, *domain.Motorcycle]{
		crud.WithValidator(func(m *domain.Motorcycle) error { return m.Validate() }),
	}
	return &Service{crud: crud.NewService(repo, append(base, opts...)...)}
}

// Create persists a new catalog entry, defaulting availability to true.
func (s *Service) Create(ctx context.Context, motorcycle *domain.Motorcycle) (*domain.Motorcycle, error) {
	if motorcycle != nil {
		motorcycle.ApplyDefaults()
	}
	return s.crud.Create(ctx, motorcycle)
}

// List returns every catalog entry.
func (s *Service) List(ctx context.Context) ([]*domain.Motorcycle, error) {
	return s.crud.List(ctx)
}

// GetByID loads a single catalog entry.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Motorcycle, error) {
	return s.crud.GetByID(ctx, id)
}

// Update overwrites the stored entry with the incoming payload.
func (s *Service) Update(ctx context.Context, id int64, incoming *domain.Motorcycle) (*domain.Motorcycle, error) {
	if incoming != nil {
		incoming.ApplyDefaults()
	}
	return s.crud.Update(ctx, id, incoming)
}

// Delete removes a catalog entry.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.crud.Delete(ctx, id)
}
