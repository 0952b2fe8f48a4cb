package crud

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepository is an in-memory Repository used when no database is
// configured and as a test double.
type MemoryRepository[T any, PT Record[T]] struct {
	mu      sync.RWMutex
	records map[int64]T
	nextID  int64
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository[T any, PT Record[T]]() *MemoryRepository[T, PT] {
	return &MemoryRepository[T, PT]{records: make(map[int64]T)}
}

func (r *MemoryRepository[T, PT]) Save(_ context.Context, entity PT) (PT, error) {
	clone := *entity
	stored := PT(&clone)

	r.mu.Lock()
	defer r.mu.Unlock()
	if stored.PrimaryKey() == 0 {
		r.nextID++
		stored.SetPrimaryKey(r.nextID)
	} else if stored.PrimaryKey() > r.nextID {
		r.nextID = stored.PrimaryKey()
	}
	r.records[stored.PrimaryKey()] = clone

	out := clone
	return PT(&out), nil
}

func (r *MemoryRepository[T, PT]) GetByID(_ context.Context, id int64) (PT, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := record
	return PT(&out), nil
}

func (r *MemoryRepository[T, PT]) List(_ context.Context) ([]PT, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]int64, 0, len(r.records))
	for id := range r.records {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]PT, 0, len(ids))
	for _, id := range ids {
		record := r.records[id]
		clone := record
		out = append(out, PT(&clone))
	}
	return out, nil
}

func (r *MemoryRepository[T, PT]) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return ErrNotFound
	}
	delete(r.records, id)
	return nil
}
