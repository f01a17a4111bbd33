package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settings struct {
	Theme string `json:"theme"`
	Count int    `json:"count"`
}

func TestBindingDefaultBeforeLoad(t *testing.T) {
	db := setupTestDB(t)

	b := NewBinding(db, "settings", settings{Theme: "light"})
	assert.Equal(t, settings{Theme: "light"}, b.Current())
}

func TestBindingLoadAbsentKeepsDefault(t *testing.T) {
	db := setupTestDB(t)

	b := NewBinding(db, "settings", settings{Theme: "light"})
	require.NoError(t, b.Load())
	assert.Equal(t, settings{Theme: "light"}, b.Current())
}

func TestBindingLoadAdoptsStoredValue(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.SetBytes("settings", []byte(`{"theme":"dark","count":3}`)))

	b := NewBinding(db, "settings", settings{Theme: "light"})
	require.NoError(t, b.Load())
	assert.Equal(t, settings{Theme: "dark", Count: 3}, b.Current())
}

func TestBindingLoadMalformedKeepsDefault(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.SetBytes("settings", []byte(`{not json`)))

	b := NewBinding(db, "settings", settings{Theme: "light"})
	// Malformed stored JSON is treated as absence, not an error.
	require.NoError(t, b.Load())
	assert.Equal(t, settings{Theme: "light"}, b.Current())
}

func TestBindingSavePersistsAndUpdates(t *testing.T) {
	db := setupTestDB(t)

	b := NewBinding(db, "settings", settings{})
	require.NoError(t, b.Save(settings{Theme: "dark", Count: 1}))
	assert.Equal(t, settings{Theme: "dark", Count: 1}, b.Current())

	// A fresh binding over the same key sees the persisted value.
	b2 := NewBinding(db, "settings", settings{})
	require.NoError(t, b2.Load())
	assert.Equal(t, settings{Theme: "dark", Count: 1}, b2.Current())
}

func TestBindingSaveAfterCloseKeepsInMemoryValue(t *testing.T) {
	db, err := Open(Options{InMemory: true})
	require.NoError(t, err)

	b := NewBinding(db, "settings", settings{Theme: "light"})
	require.NoError(t, db.Close())

	// The write fails, but the in-memory value still reflects the
	// attempted save. No rollback.
	err = b.Save(settings{Theme: "dark"})
	assert.Error(t, err)
	assert.Equal(t, settings{Theme: "dark"}, b.Current())
}

func TestBindingReset(t *testing.T) {
	db := setupTestDB(t)

	b := NewBinding(db, "settings", settings{Theme: "light"})
	require.NoError(t, b.Save(settings{Theme: "dark"}))

	b.Reset()
	assert.Equal(t, settings{Theme: "light"}, b.Current())
}

func TestBindingsAreIndependent(t *testing.T) {
	db := setupTestDB(t)

	a := NewBinding(db, "a", settings{})
	other := NewBinding(db, "b", settings{})

	require.NoError(t, a.Save(settings{Theme: "dark"}))
	require.NoError(t, other.Load())
	assert.Equal(t, settings{}, other.Current())
}
