package crud

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidInput wraps validation failures so transport adapters can map
// them to a 400 response.
var ErrInvalidInput = errors.New("invalid input")

// Service implements create, read, update, and delete semantics over a
// Repository. Updates overwrite every mutable field of the stored record
// with the incoming payload.
type Service[T any, PT Record[T]] struct {
	repo     Repository[T, PT]
	validate func(PT) error
	now      func() time.Time
}

// Option configures a Service.
type Option[T any, PT Record[T]] func(*Service[T, PT])

// WithValidator installs a validation hook run before create and update.
func WithValidator[T any, PT Record[T]](fn func(PT) error) Option[T, PT] {
	return func(s *Service[T, PT]) { s.validate = fn }
}

// WithClock overrides the timestamp source.
func WithClock[T any, PT Record[T]](fn func() time.Time) Option[T, PT] {
	return func(s *Service[T, PT]) { s.now = fn }
}

// NewService creates a Service over the given repository.
func NewService[T any, PT Record[T]](repo Repository[T, PT], opts ...Option[T, PT]) *Service[T, PT] {
	s := &Service[T, PT]{repo: repo, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates, stamps, and persists a new entity.
func (s *Service[T, PT]) Create(ctx context.Context, entity PT) (PT, error) {
	if entity == nil {
		return nil, fmt.Errorf("%w: entity is nil", ErrInvalidInput)
	}
	if err := s.runValidation(entity); err != nil {
		return nil, err
	}
	entity.Stamp(s.now().UTC())
	return s.repo.Save(ctx, entity)
}

// GetByID loads a single entity.
func (s *Service[T, PT]) GetByID(ctx context.Context, id int64) (PT, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns every stored entity.
func (s *Service[T, PT]) List(ctx context.Context) ([]PT, error) {
	return s.repo.List(ctx)
}

// Update overwrites the stored entity with the incoming payload. The
// identifier and creation timestamp are preserved, the update timestamp is
// refreshed. Returns ErrNotFound when no entity exists under id.
func (s *Service[T, PT]) Update(ctx context.Context, id int64, incoming PT) (PT, error) {
	if incoming == nil {
		return nil, fmt.Errorf("%w: entity is nil", ErrInvalidInput)
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.runValidation(incoming); err != nil {
		return nil, err
	}
	incoming.SetPrimaryKey(id)
	incoming.SetCreationTime(existing.CreationTime())
	incoming.Touch(s.now().UTC())
	return s.repo.Save(ctx, incoming)
}

// Delete removes the entity under id, returning ErrNotFound when absent.
func (s *Service[T, PT]) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service[T, PT]) runValidation(entity PT) error {
	if s.validate == nil {
		return nil
	}
	if err := s.validate(entity); err != nil {
		if errors.Is(err, ErrInvalidInput) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}
