// Package memory provides an in-memory sale repository used when no
// database is configured and as a test double.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/domain"
	"github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/ports"
)

// Repository stores sale headers and line items separately, mirroring the
// two relational tables.
type Repository struct {
	mu           sync.RWMutex
	sales        map[int64]domain.Sale
	details      map[int64]domain.DetailSale
	nextSaleID   int64
	nextDetailID int64
}

// NewRepository creates an empty in-memory sale repository.
func NewRepository() *Repository {
	return &Repository{
		sales:   make(map[int64]domain.Sale),
		details: make(map[int64]domain.DetailSale),
	}
}

func (r *Repository) Create(_ context.Context, sale *domain.Sale) (*domain.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	header := *sale
	header.Details = nil
	if header.ID == 0 {
		r.nextSaleID++
		header.ID = r.nextSaleID
	} else if header.ID > r.nextSaleID {
		r.nextSaleID = header.ID
	}
	r.sales[header.ID] = header

	for i := range sale.Details {
		line := sale.Details[i]
		line.ID = 0
		r.insertDetailLocked(header.ID, line)
	}
	return r.assembleLocked(header.ID), nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.sales[id]; !ok {
		return nil, ports.ErrNotFound
	}
	return r.assembleLocked(id), nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]int64, 0, len(r.sales))
	for id := range r.sales {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*domain.Sale, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.assembleLocked(id))
	}
	return out, nil
}

func (r *Repository) Update(_ context.Context, sale *domain.Sale, replaceDetails bool) (*domain.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sales[sale.ID]; !ok {
		return nil, ports.ErrNotFound
	}

	header := *sale
	header.Details = nil
	r.sales[sale.ID] = header

	if replaceDetails {
		for id, line := range r.details {
			if line.SaleID == sale.ID {
				delete(r.details, id)
			}
		}
		for i := range sale.Details {
			line := sale.Details[i]
			line.ID = 0
			r.insertDetailLocked(sale.ID, line)
		}
	}
	return r.assembleLocked(sale.ID), nil
}

func (r *Repository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sales[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.sales, id)
	for detailID, line := range r.details {
		if line.SaleID == id {
			delete(r.details, detailID)
		}
	}
	return nil
}

func (r *Repository) SaveDetail(_ context.Context, detail *domain.DetailSale) (*domain.DetailSale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	line := *detail
	line.RecalculateSubtotal()
	if line.ID == 0 {
		r.nextDetailID++
		line.ID = r.nextDetailID
	} else if line.ID > r.nextDetailID {
		r.nextDetailID = line.ID
	}
	r.details[line.ID] = line

	out := line
	return &out, nil
}

func (r *Repository) DetailByID(_ context.Context, id int64) (*domain.DetailSale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	line, ok := r.details[id]
	if !ok {
		return nil, ports.ErrDetailNotFound
	}
	out := line
	return &out, nil
}

func (r *Repository) ListDetails(_ context.Context) ([]*domain.DetailSale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]int64, 0, len(r.details))
	for id := range r.details {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*domain.DetailSale, 0, len(ids))
	for _, id := range ids {
		line := r.details[id]
		clone := line
		out = append(out, &clone)
	}
	return out, nil
}

func (r *Repository) DeleteDetail(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.details[id]; !ok {
		return ports.ErrDetailNotFound
	}
	delete(r.details, id)
	return nil
}

// insertDetailLocked stores a line under a fresh identity, bound to saleID,
// with the subtotal recomputed as on any persist.
func (r *Repository) insertDetailLocked(saleID int64, line domain.DetailSale) {
	line.SaleID = saleID
	line.RecalculateSubtotal()
	r.nextDetailID++
	line.ID = r.nextDetailID
	r.details[line.ID] = line
}

// assembleLocked clones the header and attaches its lines ordered by id.
func (r *Repository) assembleLocked(id int64) *domain.Sale {
	sale := r.sales[id]
	lines := make([]domain.DetailSale, 0)
	for _, line := range r.details {
		if line.SaleID == id {
			lines = append(lines, line)
		}
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].ID < lines[j].ID })
	sale.Details = lines
	return &sale
}
