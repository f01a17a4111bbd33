package storage

import (
	"time"

	"github.com/grow-cli/grow/internal/model"
)

// JournalStore holds the journal entry collection.
type JournalStore struct {
	*Collection[model.JournalEntry]
}

// NewJournalStore creates the journal store.
func NewJournalStore(db *DB) *JournalStore {
	return &JournalStore{Collection: NewCollection[model.JournalEntry](db, model.KeyJournalEntries)}
}

// Today returns the entry whose timestamp falls on the same local calendar
// day as now, if one exists.
func (s *JournalStore) Today(now time.Time) (model.JournalEntry, bool) {
	for _, e := range s.Records() {
		t, err := e.Time()
		if err != nil {
			continue
		}
		if sameDay(t, now) {
			return e, true
		}
	}
	return model.JournalEntry{}, false
}

// SaveToday upserts today's entry. If an entry already exists on now's
// calendar day it is replaced in place, keeping its id and original
// timestamp; otherwise entry is prepended as a new record. The entry as
// persisted is returned.
//
// One-entry-per-day is enforced only here, on the write path; the store
// itself carries no uniqueness constraint.
func (s *JournalStore) SaveToday(entry model.JournalEntry, now time.Time) (model.JournalEntry, error) {
	if existing, ok := s.Today(now); ok {
		entry.ID = existing.ID
		entry.Timestamp = existing.Timestamp
		return entry, s.Update(existing.ID, entry)
	}
	return entry, s.Add(entry)
}

// sameDay reports whether a and b fall on the same local calendar date.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
