package stats

import (
	"sort"
	"time"

	"github.com/grow-cli/grow/internal/logging"
	"github.com/grow-cli/grow/internal/model"
)

// KindTotal aggregates one exercise kind over the weekly window.
type KindTotal struct {
	Total float64 // summed reps, or kilometers for running
	Count int     // number of logs
	Unit  string  // "reps" or "km"
}

// WeeklyTotals sums each exercise kind over the trailing 7-day window:
// inclusive of now, exclusive at exactly 7 days prior. Logs with
// unparseable timestamps are skipped.
func WeeklyTotals(logs []model.FitnessLog, now time.Time) map[string]KindTotal {
	cutoff := now.AddDate(0, 0, -7)

	totals := make(map[string]KindTotal)
	for _, log := range logs {
		t, err := log.Time()
		if err != nil {
			logging.With("id", log.ID).Warn("skipping fitness log with bad timestamp", "error", err)
			continue
		}
		if !t.After(cutoff) {
			continue
		}

		agg := totals[log.Type]
		agg.Total += log.Amount()
		agg.Count++
		agg.Unit = log.Unit()
		totals[log.Type] = agg
	}
	return totals
}

// Kinds returns the exercise kinds present in totals, built-in kinds
// first in their display order, then any custom kinds alphabetically.
func Kinds(totals map[string]KindTotal) []string {
	var kinds []string
	seen := make(map[string]bool)
	for _, k := range model.ExerciseTypes {
		if _, ok := totals[k]; ok {
			kinds = append(kinds, k)
			seen[k] = true
		}
	}

	var custom []string
	for k := range totals {
		if !seen[k] {
			custom = append(custom, k)
		}
	}
	sort.Strings(custom)
	return append(kinds, custom...)
}
