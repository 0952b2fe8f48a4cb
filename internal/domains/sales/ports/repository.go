// Package ports defines the boundary interfaces of the sales context.
package ports

import (
	"context"
	"errors"

	"github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/domain"
)

var (
	// ErrNotFound indicates the sale does not exist.
	ErrNotFound = errors.New("sale not found")
	// ErrDetailNotFound indicates the line item does not exist.
	ErrDetailNotFound = errors.New("detail sale not found")
)

// Repository persists the sale aggregate. Every mutating call executes as a
// single atomic unit of work. Reads always materialize the owned line items.
type Repository interface {
	Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error)
	GetByID(ctx context.Context, id int64) (*domain.Sale, error)
	List(ctx context.Context) ([]*domain.Sale, error)
	// Update writes the sale header. When replaceDetails is set the stored
	// line set is discarded and replaced by sale.Details, all with fresh
	// identities, in the same transaction.
	Update(ctx context.Context, sale *domain.Sale, replaceDetails bool) (*domain.Sale, error)
	// Delete removes the sale and every line item it owns.
	Delete(ctx context.Context, id int64) error

	SaveDetail(ctx context.Context, detail *domain.DetailSale) (*domain.DetailSale, error)
	DetailByID(ctx context.Context, id int64) (*domain.DetailSale, error)
	ListDetails(ctx context.Context) ([]*domain.DetailSale, error)
	DeleteDetail(ctx context.Context, id int64) error
}
