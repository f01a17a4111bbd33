package storage

import (
	"encoding/json"

	"github.com/grow-cli/grow/internal/logging"
)

// Binding keeps a typed in-memory copy of a single store key in sync with
// the durable store.
//
// Until Load is called (or when the key is absent or holds malformed JSON)
// the current value is the default, so callers always have something to
// render. Save updates the in-memory value optimistically: a failed write
// is reported to the caller, but the in-memory value still reflects the
// attempted value. There is deliberately no rollback.
type Binding[T any] struct {
	db    *DB
	key   string
	def   T
	value T
}

// NewBinding creates a binding for key with the given default value.
func NewBinding[T any](db *DB, key string, def T) *Binding[T] {
	return &Binding[T]{
		db:    db,
		key:   key,
		def:   def,
		value: def,
	}
}

// Key returns the store key this binding is bound to.
func (b *Binding[T]) Key() string {
	return b.key
}

// Current returns the in-memory value.
func (b *Binding[T]) Current() T {
	return b.value
}

// Load fetches the stored value and adopts it as current. An absent key
// keeps the default. Malformed stored JSON also keeps the default; it is
// logged, not an error. Only a store read failure is returned.
func (b *Binding[T]) Load() error {
	data, err := b.db.GetBytes(b.key)
	if err != nil {
		if IsErrKeyNotFound(err) {
			return nil
		}
		return err
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		logging.With("key", b.key).Warn("malformed stored value, keeping default", "error", err)
		return nil
	}

	b.value = v
	return nil
}

// Save serializes v, adopts it as the in-memory value, and writes it to
// the store. A write failure is returned but the in-memory value already
// reflects v.
func (b *Binding[T]) Save(v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	b.value = v
	return b.db.SetBytes(b.key, data)
}

// Reset restores the in-memory value to the default without touching the
// store.
func (b *Binding[T]) Reset() {
	b.value = b.def
}
