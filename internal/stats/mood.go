package stats

import (
	"github.com/grow-cli/grow/internal/model"
)

// moodWindow is the number of trailing stored entries mood counts cover.
const moodWindow = 7

// MoodCounts counts each mood among the last 7 entries of the sequence in
// store order. The window is positional, not a time range.
func MoodCounts(entries []model.JournalEntry) map[string]int {
	if len(entries) > moodWindow {
		entries = entries[len(entries)-moodWindow:]
	}

	counts := make(map[string]int)
	for _, e := range entries {
		counts[e.Mood]++
	}
	return counts
}
