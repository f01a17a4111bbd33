// Package parser turns human date input into normalized calendar dates.
package parser

import (
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/grow-cli/grow/internal/errors"
	"github.com/grow-cli/grow/internal/model"
)

// Date parses input as a calendar date and returns it normalized to
// YYYY-MM-DD. Exact YYYY-MM-DD input is accepted as-is; anything else is
// handed to the natural language parser ("tomorrow", "next friday",
// "jan 5").
func Date(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", errors.NewUserError("Date cannot be empty", "Provide a date").
			WithErr(errors.ErrInvalidDate)
	}

	if t, err := time.ParseInLocation(model.DueDateLayout, input, time.Local); err == nil {
		return t.Format(model.DueDateLayout), nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: time.Now(),
	}
	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return "", errors.NewUserErrorWithField("date", input,
			"Could not understand date",
			"Use YYYY-MM-DD or a phrase like 'tomorrow'").
			WithErr(errors.ErrInvalidDate)
	}

	return result.Time.Format(model.DueDateLayout), nil
}
