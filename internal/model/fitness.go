package model

import "time"

// Known exercise types. The type field also accepts free-form strings for
// custom exercises.
const (
	ExercisePushups  = "pushups"
	ExerciseSquats   = "squats"
	ExercisePullups  = "pullups"
	ExerciseCrunches = "crunches"
	ExerciseRunning  = "running"
)

// ExerciseTypes lists the built-in exercise types in display order.
var ExerciseTypes = []string{
	ExercisePushups,
	ExerciseSquats,
	ExercisePullups,
	ExerciseCrunches,
	ExerciseRunning,
}

// FitnessLog represents one logged workout set or run.
// Running logs carry a distance in kilometers (and optionally a pace);
// every other type carries a rep count.
type FitnessLog struct {
	ID        string   `json:"id"`
	Type      string   `json:"type"`
	Reps      *int     `json:"reps,omitempty"`
	Distance  *float64 `json:"distance,omitempty"`
	Pace      string   `json:"pace,omitempty"`
	Timestamp string   `json:"timestamp"`
}

// GetID returns the unique id of this log.
func (f FitnessLog) GetID() string {
	return f.ID
}

// Time returns the creation instant of this log.
func (f FitnessLog) Time() (time.Time, error) {
	return ParseTimestamp(f.Timestamp)
}

// Amount returns the logged quantity: reps for set exercises, kilometers
// for running. Returns 0 if neither is populated.
func (f FitnessLog) Amount() float64 {
	if f.Reps != nil {
		return float64(*f.Reps)
	}
	if f.Distance != nil {
		return *f.Distance
	}
	return 0
}

// Unit returns the display unit for this log's amount.
func (f FitnessLog) Unit() string {
	if f.Type == ExerciseRunning {
		return "km"
	}
	return "reps"
}

// NewRepsLog creates a rep-count log with a fresh id and timestamp.
func NewRepsLog(exerciseType string, reps int) FitnessLog {
	return FitnessLog{
		ID:        NewID(),
		Type:      exerciseType,
		Reps:      &reps,
		Timestamp: Now(),
	}
}

// NewRunLog creates a running log with a fresh id and timestamp.
func NewRunLog(distance float64, pace string) FitnessLog {
	return FitnessLog{
		ID:        NewID(),
		Type:      ExerciseRunning,
		Distance:  &distance,
		Pace:      pace,
		Timestamp: Now(),
	}
}
