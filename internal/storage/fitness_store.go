package storage

import (
	"github.com/grow-cli/grow/internal/model"
)

// FitnessStore holds the fitness log collection.
type FitnessStore struct {
	*Collection[model.FitnessLog]
}

// NewFitnessStore creates the fitness store.
func NewFitnessStore(db *DB) *FitnessStore {
	return &FitnessStore{Collection: NewCollection[model.FitnessLog](db, model.KeyFitnessLogs)}
}
