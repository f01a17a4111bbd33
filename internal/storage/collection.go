package storage

import (
	"github.com/grow-cli/grow/internal/model"
)

// Collection is a binding specialized to an ordered sequence of domain
// records, newest first, with id-addressed operations layered on top.
//
// Update and Remove with an unknown id are silent no-ops: the sequence is
// unchanged and no write is issued.
type Collection[T model.Record] struct {
	*Binding[[]T]
}

// NewCollection creates a collection bound to key with an empty default
// sequence.
func NewCollection[T model.Record](db *DB, key string) *Collection[T] {
	return &Collection[T]{Binding: NewBinding(db, key, []T{})}
}

// Records returns the current in-memory sequence.
func (c *Collection[T]) Records() []T {
	return c.Current()
}

// Find returns the record with the given id, if present.
func (c *Collection[T]) Find(id string) (T, bool) {
	for _, rec := range c.Current() {
		if rec.GetID() == id {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// Add prepends rec to the sequence and persists it.
func (c *Collection[T]) Add(rec T) error {
	current := c.Current()
	next := make([]T, 0, len(current)+1)
	next = append(next, rec)
	next = append(next, current...)
	return c.Save(next)
}

// Update replaces the record whose id matches with rec and persists the
// sequence. Unknown id is a no-op.
func (c *Collection[T]) Update(id string, rec T) error {
	current := c.Current()
	for i, existing := range current {
		if existing.GetID() == id {
			next := make([]T, len(current))
			copy(next, current)
			next[i] = rec
			return c.Save(next)
		}
	}
	return nil
}

// Remove filters out the record whose id matches and persists the
// sequence. Unknown id is a no-op.
func (c *Collection[T]) Remove(id string) error {
	current := c.Current()
	for i, existing := range current {
		if existing.GetID() == id {
			next := make([]T, 0, len(current)-1)
			next = append(next, current[:i]...)
			next = append(next, current[i+1:]...)
			return c.Save(next)
		}
	}
	return nil
}

// Len returns the number of records in the sequence.
func (c *Collection[T]) Len() int {
	return len(c.Current())
}
