package storage

import (
	"github.com/grow-cli/grow/internal/model"
)

// CodingStore holds the coding log collection.
type CodingStore struct {
	*Collection[model.CodingLog]
}

// NewCodingStore creates the coding store.
func NewCodingStore(db *DB) *CodingStore {
	return &CodingStore{Collection: NewCollection[model.CodingLog](db, model.KeyCodingLogs)}
}
