// Package validate provides form-boundary validation for the Grow CLI.
// Invalid input is rejected here with a user-facing message before any
// store mutation is attempted.
package validate

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/grow-cli/grow/internal/errors"
	"github.com/grow-cli/grow/internal/model"
)

const (
	// MaxTitleLength is the maximum length for a task title.
	MaxTitleLength = 128
	// MaxTextLength is the maximum length for free-text fields.
	MaxTextLength = 4096
)

// TaskTitle validates a task title.
func TaskTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errors.NewUserError("Task title cannot be empty", "Provide a title").
			WithErr(errors.ErrTitleRequired)
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return errors.NewUserErrorWithField("title", title,
			"Task title too long",
			"Titles must be 128 characters or fewer")
	}
	return nil
}

// DueDate validates a task due date string.
func DueDate(date string) error {
	if date == "" {
		return nil // optional
	}
	if _, err := time.Parse(model.DueDateLayout, date); err != nil {
		return errors.NewUserErrorWithField("due", date,
			"Invalid due date",
			"Use YYYY-MM-DD or a phrase like 'tomorrow'").
			WithErr(errors.ErrInvalidDate)
	}
	return nil
}

// FreeText validates a required free-text field such as a journal body or
// a coding-log note.
func FreeText(field, text string) error {
	if strings.TrimSpace(text) == "" {
		return errors.NewUserErrorWithField(field, text,
			"Text cannot be empty",
			"Write something first").
			WithErr(errors.ErrTextRequired)
	}
	if utf8.RuneCountInString(text) > MaxTextLength {
		return errors.NewUserErrorWithField(field, text,
			"Text too long",
			"Entries must be 4096 characters or fewer")
	}
	return nil
}

// ExerciseType validates an exercise type. Free-form custom types are
// allowed; only an empty type is rejected.
func ExerciseType(exerciseType string) error {
	if strings.TrimSpace(exerciseType) == "" {
		return errors.NewUserError("Exercise type cannot be empty",
			"Use one of: "+strings.Join(model.ExerciseTypes, ", ")+", or a custom name").
			WithErr(errors.ErrInvalidExercise)
	}
	return nil
}

// Reps validates a rep count for a non-running exercise.
func Reps(reps int) error {
	if reps < 0 {
		return errors.NewUserError("Reps must not be negative", "Log a non-negative count").
			WithErr(errors.ErrNegativeAmount)
	}
	return nil
}

// Distance validates a running distance in kilometers.
func Distance(distance float64) error {
	if distance < 0 {
		return errors.NewUserError("Distance must not be negative", "Log a non-negative distance").
			WithErr(errors.ErrNegativeAmount)
	}
	return nil
}

// Difficulty validates a LeetCode problem difficulty.
func Difficulty(difficulty string) error {
	if !model.ValidDifficulty(difficulty) {
		return errors.NewUserErrorWithField("difficulty", difficulty,
			"Invalid difficulty",
			"Use Easy, Medium, or Hard").
			WithErr(errors.ErrInvalidDifficulty)
	}
	return nil
}

// Mood validates a journal mood.
func Mood(mood string) error {
	if !model.ValidMood(mood) {
		return errors.NewUserErrorWithField("mood", mood,
			"Invalid mood",
			"Use happy, neutral, or sad").
			WithErr(errors.ErrInvalidMood)
	}
	return nil
}

// GratefulFor normalizes a gratitude list: blanks are dropped, whitespace
// is trimmed, and at most three items are kept.
func GratefulFor(items []string) ([]string, error) {
	out := make([]string, 0, model.MaxGratefulItems)
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if len(out) == model.MaxGratefulItems {
			return nil, errors.NewUserError("Too many gratitude items",
				"List at most three things")
		}
		out = append(out, item)
	}
	return out, nil
}
