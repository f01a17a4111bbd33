package model

import "time"

// DueDateLayout is the calendar-date format used for task due dates.
const DueDateLayout = "2006-01-02"

// Task represents a to-do item.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	DueDate     string `json:"dueDate,omitempty"`
	Timestamp   string `json:"timestamp"`
}

// GetID returns the unique id of this task.
func (t Task) GetID() string {
	return t.ID
}

// Time returns the creation instant of this task.
func (t Task) Time() (time.Time, error) {
	return ParseTimestamp(t.Timestamp)
}

// Due returns the parsed due date, or false if none is set.
func (t Task) Due() (time.Time, bool) {
	if t.DueDate == "" {
		return time.Time{}, false
	}
	d, err := time.ParseInLocation(DueDateLayout, t.DueDate, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// Overdue returns true if the task is pending and its due date has passed.
func (t Task) Overdue(now time.Time) bool {
	if t.Completed {
		return false
	}
	due, ok := t.Due()
	if !ok {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return due.Before(today)
}

// NewTask creates a new pending task with a fresh id and timestamp.
func NewTask(title, description, dueDate string) Task {
	return Task{
		ID:          NewID(),
		Title:       title,
		Description: description,
		Completed:   false,
		DueDate:     dueDate,
		Timestamp:   Now(),
	}
}
