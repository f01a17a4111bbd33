// Package export produces the bulk export document: a snapshot of every
// key currently in the durable store.
package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/grow-cli/grow/internal/errors"
	"github.com/grow-cli/grow/internal/storage"
)

// DefaultFilename is the export file name when none is given.
const DefaultFilename = "grow-export.json"

// Pair is one exported key and its raw stored value. It serializes as a
// two-element JSON array, with null for an absent value.
type Pair struct {
	Key   string
	Value *string
}

// MarshalJSON encodes the pair as ["key", "value"] or ["key", null].
func (p Pair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{p.Key, p.Value})
}

// UnmarshalJSON decodes a ["key", value] tuple.
func (p *Pair) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}
	if len(tuple) != 2 {
		return fmt.Errorf("export pair must have 2 elements, got %d", len(tuple))
	}
	if err := json.Unmarshal(tuple[0], &p.Key); err != nil {
		return err
	}
	return json.Unmarshal(tuple[1], &p.Value)
}

// Snapshot reads every key in the store and returns one pair per key.
// It captures whatever is persisted at call time, not a cross-key
// transaction.
func Snapshot(db *storage.DB) ([]Pair, error) {
	keys, err := db.ListKeys()
	if err != nil {
		return nil, errors.NewSystemErrorWithOp("export", "could not list store keys", err)
	}

	kvs, err := db.GetMany(keys)
	if err != nil {
		return nil, errors.NewSystemErrorWithOp("export", "could not read store values", err)
	}

	pairs := make([]Pair, len(kvs))
	for i, kv := range kvs {
		pairs[i] = Pair{Key: kv.Key, Value: kv.Value}
	}
	return pairs, nil
}

// Document serializes the snapshot as a pretty-printed JSON array of
// [key, value] pairs.
func Document(db *storage.DB) ([]byte, error) {
	pairs, err := Snapshot(db)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(pairs, "", "  ")
}

// WriteFile writes the export document to path (DefaultFilename when
// empty) and returns the path written.
func WriteFile(db *storage.DB, path string) (string, error) {
	doc, err := Document(db)
	if err != nil {
		return "", err
	}

	if path == "" {
		path = DefaultFilename
	}
	if err := os.WriteFile(path, doc, 0600); err != nil {
		return "", errors.NewSystemErrorWithOp("export", "could not write export file", err)
	}
	return path, nil
}
