package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/grow-cli/grow/internal/errors"
	"github.com/grow-cli/grow/internal/model"
)

// resolveID matches an id or unique id prefix against records. It returns
// the full id, or "" when nothing matches. An ambiguous prefix is a user
// error.
func resolveID[T model.Record](records []T, prefix string) (string, error) {
	if prefix == "" {
		return "", errors.NewUserError("Record id is required", "Pass an id or unique id prefix")
	}

	var matches []string
	for _, rec := range records {
		id := rec.GetID()
		if id == prefix {
			return id, nil
		}
		if strings.HasPrefix(id, prefix) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", nil
	case 1:
		return matches[0], nil
	default:
		return "", errors.NewUserErrorWithField("id", prefix,
			"Ambiguous id prefix",
			fmt.Sprintf("%d records match, use more characters", len(matches)))
	}
}

// shortID returns the display form of a record id.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// formatWhen renders a record timestamp as a short local date, or the raw
// string when it does not parse.
func formatWhen(rec model.Record) string {
	t, err := rec.Time()
	if err != nil {
		return "?"
	}
	return t.Local().Format("Jan 2 15:04")
}

// formatAmount renders a quantity without a trailing .0 for whole numbers.
func formatAmount(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}

// todayLabel renders now as the heading used by the summary views.
func todayLabel(now time.Time) string {
	return now.Format("Monday, January 2")
}
