package crud

import "context"

// Repository persists entities of a single type.
type Repository[T any, PT Record[T]] interface {
	Save(ctx context.Context, entity PT) (PT, error)
	GetByID(ctx context.Context, id int64) (PT, error)
	List(ctx context.Context) ([]PT, error)
	Delete(ctx context.Context, id int64) error
}
