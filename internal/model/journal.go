package model

import "time"

// Moods.
const (
	MoodHappy   = "happy"
	MoodNeutral = "neutral"
	MoodSad     = "sad"
)

// Moods lists the valid moods in display order.
var Moods = []string{MoodHappy, MoodNeutral, MoodSad}

// ValidMood returns true if m is a known mood.
func ValidMood(m string) bool {
	return m == MoodHappy || m == MoodNeutral || m == MoodSad
}

// MaxGratefulItems is the maximum number of gratitude items per entry.
const MaxGratefulItems = 3

// JournalEntry represents one day's journal entry. The write path keeps at
// most one entry per calendar day.
type JournalEntry struct {
	ID           string   `json:"id"`
	WhatHappened string   `json:"whatHappened"`
	GratefulFor  []string `json:"gratefulFor"`
	Mood         string   `json:"mood"`
	Timestamp    string   `json:"timestamp"`
}

// GetID returns the unique id of this entry.
func (j JournalEntry) GetID() string {
	return j.ID
}

// Time returns the creation instant of this entry.
func (j JournalEntry) Time() (time.Time, error) {
	return ParseTimestamp(j.Timestamp)
}

// NewJournalEntry creates a journal entry with a fresh id and timestamp.
func NewJournalEntry(whatHappened string, gratefulFor []string, mood string) JournalEntry {
	return JournalEntry{
		ID:           NewID(),
		WhatHappened: whatHappened,
		GratefulFor:  gratefulFor,
		Mood:         mood,
		Timestamp:    Now(),
	}
}
