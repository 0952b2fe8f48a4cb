// Package crud provides the generic repository and service used by the
// catalog and parties bounded contexts. The four near-identical CRUD
// modules of the dealership collapse into one implementation parameterized
// by entity type.
package crud

import (
	"errors"
	"time"
)

// ErrNotFound indicates the requested identifier has no corresponding record.
var ErrNotFound = errors.New("record not found")

// Entity is implemented by persistable records with a generated surrogate key
// and persistence timestamps.
type Entity interface {
	PrimaryKey() int64
	SetPrimaryKey(id int64)
	Stamp(now time.Time)
	Touch(now time.Time)
	CreationTime() time.Time
	SetCreationTime(t time.Time)
}

// Record constrains a type parameter to a pointer to T implementing Entity.
type Record[T any] interface {
	Entity
	*T
}

// Timestamps carries the persistence timestamps shared by all entities.
// Embed it to satisfy the timestamp half of Entity.
type Timestamps struct {
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

// Stamp initializes both timestamps on first persist.
func (t *Timestamps) Stamp(now time.Time) {
	t.CreatedAt = now
	t.UpdatedAt = now
}

// Touch refreshes the update timestamp.
func (t *Timestamps) Touch(now time.Time) {
	t.UpdatedAt = now
}

// CreationTime returns when the record was first persisted.
func (t *Timestamps) CreationTime() time.Time { return t.CreatedAt }

// SetCreationTime overrides the creation timestamp (used to carry it across
// full-record overwrites).
func (t *Timestamps) SetCreationTime(at time.Time) { t.CreatedAt = at }
