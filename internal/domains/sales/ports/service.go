package ports

import (
	"context"

	"github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/domain"
)

// SaleDetailsView is a sale with each line's motorcycle resolved from the
// catalog, keyed by motorcycle identifier.
type SaleDetailsView struct {
	Sale        *domain.Sale
	Motorcycles map[int64]*MotorcycleRef
}

// Service exposes the sale aggregate operations plus direct access to line
// items as a standalone resource.
type Service interface {
	Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error)
	List(ctx context.Context) ([]*domain.Sale, error)
	GetByID(ctx context.Context, id int64) (*domain.Sale, error)
	GetWithDetails(ctx context.Context, id int64) (*SaleDetailsView, error)
	// Update overwrites the sale header. A nil details slice keeps the
	// stored line set, a non-nil one (empty included) replaces it.
	Update(ctx context.Context, id int64, incoming *domain.Sale, details *[]domain.DetailSale) (*domain.Sale, error)
	Delete(ctx context.Context, id int64) error

	CreateDetail(ctx context.Context, detail *domain.DetailSale) (*domain.DetailSale, error)
	ListDetails(ctx context.Context) ([]*domain.DetailSale, error)
	DetailByID(ctx context.Context, id int64) (*domain.DetailSale, error)
	UpdateDetail(ctx context.Context, id int64, incoming *domain.DetailSale) (*domain.DetailSale, error)
	DeleteDetail(ctx context.Context, id int64) error
}
