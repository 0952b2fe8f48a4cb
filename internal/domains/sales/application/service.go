// Package application implements the sale use cases over the repository and
// directory ports.
package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/domain"
	"github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/ports"
)

// Service orchestrates sale and line item operations.
type Service struct {
	repo    ports.Repository
	parties ports.PartyDirectory
	catalog ports.MotorcycleCatalog
	now     func() time.Time
}

// Option configures the Service.
type Option func(*Service)

// WithClock overrides the timestamp source.
func WithClock(fn func() time.Time) Option {
	return func(s *Service) { s.now = fn }
}

// NewService wires the sale use cases.
func NewService(repo ports.Repository, parties ports.PartyDirectory, catalog ports.MotorcycleCatalog, opts ...Option) *Service {
	s := &Service{repo: repo, parties: parties, catalog: catalog, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates the aggregate, checks the referenced customer and
// employee exist, binds the line items, and persists everything atomically.
func (s *Service) Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	if sale == nil {
		return nil, fmt.Errorf("%w: sale is nil", ErrInvalidInput)
	}
	if sale.SaleDate.IsZero() {
		sale.SaleDate = s.now().UTC()
	}
	if err := sale.Validate(); err != nil {
		return nil, mapError(err)
	}
	if err := s.checkParties(ctx, sale); err != nil {
		return nil, mapError(err)
	}
	sale.BindDetails()
	return s.repo.Create(ctx, sale)
}

// List returns every sale with its line items.
func (s *Service) List(ctx context.Context) ([]*domain.Sale, error) {
	return s.repo.List(ctx)
}

// GetByID loads a sale with its line items.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Sale, error) {
	return s.repo.GetByID(ctx, id)
}

// GetWithDetails loads a sale and resolves the motorcycle behind each line.
func (s *Service) GetWithDetails(ctx context.Context, id int64) (*ports.SaleDetailsView, error) {
	sale, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := &ports.SaleDetailsView{
		Sale:        sale,
		Motorcycles: make(map[int64]*ports.MotorcycleRef, len(sale.Details)),
	}
	for i := range sale.Details {
		motorcycleID := sale.Details[i].MotorcycleID
		if _, seen := view.Motorcycles[motorcycleID]; seen {
			continue
		}
		ref, err := s.catalog.MotorcycleByID(ctx, motorcycleID)
		if err != nil {
			if errors.Is(err, ports.ErrMotorcycleNotFound) {
				// the catalog entry was removed after the sale; the line stays unresolved
				continue
			}
			return nil, fmt.Errorf("resolving motorcycle %d: %w", motorcycleID, err)
		}
		view.Motorcycles[motorcycleID] = ref
	}
	return view, nil
}

// Update overwrites every header field of the stored sale with the incoming
// payload. A nil details slice keeps the stored line set untouched. A
// non-nil slice, empty included, replaces it: every stored line is removed
// and the given ones are inserted under fresh identities, bound to the sale,
// with missing subtotals computed. Header write and line replacement commit
// together or not at all.
func (s *Service) Update(ctx context.Context, id int64, incoming *domain.Sale, details *[]domain.DetailSale) (*domain.Sale, error) {
	if incoming == nil {
		return nil, fmt.Errorf("%w: sale is nil", ErrInvalidInput)
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.SaleNumber = incoming.SaleNumber
	existing.CustomerID = incoming.CustomerID
	existing.EmployeeID = incoming.EmployeeID
	existing.SaleDate = incoming.SaleDate
	existing.Status = incoming.Status
	existing.Total = incoming.Total
	existing.PaymentMethod = incoming.PaymentMethod

	replace := details != nil
	if replace {
		lines := make([]domain.DetailSale, len(*details))
		copy(lines, *details)
		for i := range lines {
			// any client-supplied identity is discarded
			lines[i].ID = 0
			lines[i].BindTo(existing.ID)
			if lines[i].SubtotalMissing() {
				lines[i].RecalculateSubtotal()
			}
		}
		existing.Details = lines
	}

	if err := existing.Validate(); err != nil {
		return nil, mapError(err)
	}
	return s.repo.Update(ctx, existing, replace)
}

// Delete removes the sale together with every line item it owns.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// CreateDetail persists a line item addressed outside its aggregate. The
// referenced sale and motorcycle must exist.
func (s *Service) CreateDetail(ctx context.Context, detail *domain.DetailSale) (*domain.DetailSale, error) {
	if detail == nil {
		return nil, fmt.Errorf("%w: detail is nil", ErrInvalidInput)
	}
	if err := detail.Validate(); err != nil {
		return nil, mapError(err)
	}
	if _, err := s.repo.GetByID(ctx, detail.SaleID); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, fmt.Errorf("%w: sale %d does not exist", ErrInvalidInput, detail.SaleID)
		}
		return nil, err
	}
	if _, err := s.catalog.MotorcycleByID(ctx, detail.MotorcycleID); err != nil {
		return nil, mapError(err)
	}
	detail.ID = 0
	return s.repo.SaveDetail(ctx, detail)
}

// ListDetails returns every line item across all sales.
func (s *Service) ListDetails(ctx context.Context) ([]*domain.DetailSale, error) {
	return s.repo.ListDetails(ctx)
}

// DetailByID loads a single line item.
func (s *Service) DetailByID(ctx context.Context, id int64) (*domain.DetailSale, error) {
	return s.repo.DetailByID(ctx, id)
}

// UpdateDetail overwrites every field of the stored line item and persists
// it, recomputing the subtotal from the new price, quantity, and discount.
func (s *Service) UpdateDetail(ctx context.Context, id int64, incoming *domain.DetailSale) (*domain.DetailSale, error) {
	if incoming == nil {
		return nil, fmt.Errorf("%w: detail is nil", ErrInvalidInput)
	}
	existing, err := s.repo.DetailByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := incoming.Validate(); err != nil {
		return nil, mapError(err)
	}

	existing.SaleID = incoming.SaleID
	existing.MotorcycleID = incoming.MotorcycleID
	existing.Quantity = incoming.Quantity
	existing.UnitPrice = incoming.UnitPrice
	existing.Discount = incoming.Discount
	existing.Subtotal = incoming.Subtotal
	existing.Notes = incoming.Notes
	return s.repo.SaveDetail(ctx, existing)
}

// DeleteDetail removes a single line item.
func (s *Service) DeleteDetail(ctx context.Context, id int64) error {
	return s.repo.DeleteDetail(ctx, id)
}

func (s *Service) checkParties(ctx context.Context, sale *domain.Sale) error {
	if _, err := s.parties.CustomerByID(ctx, sale.CustomerID); err != nil {
		return err
	}
	if _, err := s.parties.EmployeeByID(ctx, sale.EmployeeID); err != nil {
		return err
	}
	return nil
}
