// Package model defines the domain records for Grow.
//
// All records serialize to the same JSON shapes the store has always held,
// one JSON array per collection key.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Record is the interface that all domain records implement.
type Record interface {
	// GetID returns the unique id of this record.
	GetID() string
	// Time returns the creation instant parsed from the record timestamp.
	Time() (time.Time, error)
}

// Collection keys in the durable store.
const (
	KeyTasks          = "tasks"
	KeyFitnessLogs    = "fitnessLogs"
	KeyCodingLogs     = "codingLogs"
	KeyJournalEntries = "journalEntries"
)

// NewID returns a fresh collision-resistant record id.
func NewID() string {
	return uuid.NewString()
}

// Now returns the current instant formatted as a record timestamp.
func Now() string {
	return time.Now().Format(time.RFC3339Nano)
}

// ParseTimestamp parses a record timestamp (RFC 3339, fractional seconds
// allowed).
func ParseTimestamp(ts string) (time.Time, error) {
	return time.Parse(time.RFC3339, ts)
}
