package model

import "time"

// LeetCode problem difficulties.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// Difficulties lists the valid problem difficulties.
var Difficulties = []string{DifficultyEasy, DifficultyMedium, DifficultyHard}

// ValidDifficulty returns true if d is a known difficulty.
func ValidDifficulty(d string) bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

// LeetCodeProblem is the optional problem sub-record of a coding log.
type LeetCodeProblem struct {
	Title      string `json:"title"`
	Difficulty string `json:"difficulty"`
	Link       string `json:"link"`
	Notes      string `json:"notes"`
}

// CodingLog represents one day's coding study note, optionally tied to a
// LeetCode problem.
type CodingLog struct {
	ID              string           `json:"id"`
	Learned         string           `json:"learned"`
	LeetCodeProblem *LeetCodeProblem `json:"leetcodeProblem,omitempty"`
	Timestamp       string           `json:"timestamp"`
}

// GetID returns the unique id of this log.
func (c CodingLog) GetID() string {
	return c.ID
}

// Time returns the creation instant of this log.
func (c CodingLog) Time() (time.Time, error) {
	return ParseTimestamp(c.Timestamp)
}

// NewCodingLog creates a coding log with a fresh id and timestamp.
// problem may be nil.
func NewCodingLog(learned string, problem *LeetCodeProblem) CodingLog {
	return CodingLog{
		ID:              NewID(),
		Learned:         learned,
		LeetCodeProblem: problem,
		Timestamp:       Now(),
	}
}
