package stats

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grow-cli/grow/internal/model"
)

// stamped is a minimal Dated record for the generic computations.
type stamped struct {
	TS string
}

func (s stamped) Time() (time.Time, error) {
	return time.Parse(time.RFC3339, s.TS)
}

func daysAgo(n int) string {
	return time.Now().AddDate(0, 0, -n).Format(time.RFC3339Nano)
}

// =============================================================================
// Streak Tests
// =============================================================================

func TestStreakEmpty(t *testing.T) {
	assert.Equal(t, 0, Streak([]stamped{}, time.Now()))
}

func TestStreakGapAtDayTwo(t *testing.T) {
	// Today, yesterday, then a gap at day 2: streak is 2.
	items := []stamped{
		{TS: daysAgo(0)},
		{TS: daysAgo(1)},
		{TS: daysAgo(3)},
	}
	assert.Equal(t, 2, Streak(items, time.Now()))
}

func TestStreakNothingToday(t *testing.T) {
	items := []stamped{
		{TS: daysAgo(1)},
		{TS: daysAgo(2)},
	}
	assert.Equal(t, 0, Streak(items, time.Now()))
}

func TestStreakSameDayCountsOnce(t *testing.T) {
	items := []stamped{
		{TS: daysAgo(0)},
		{TS: daysAgo(0)},
		{TS: daysAgo(0)},
		{TS: daysAgo(1)},
	}
	assert.Equal(t, 2, Streak(items, time.Now()))
}

func TestStreakUnsortedInput(t *testing.T) {
	items := []stamped{
		{TS: daysAgo(2)},
		{TS: daysAgo(0)},
		{TS: daysAgo(1)},
	}
	assert.Equal(t, 3, Streak(items, time.Now()))
}

func TestStreakIgnoresFutureRecords(t *testing.T) {
	// A record dated after now must never count as today.
	future := []stamped{{TS: daysAgo(-1)}}
	assert.Equal(t, 0, Streak(future, time.Now()))

	withToday := []stamped{
		{TS: daysAgo(-1)},
		{TS: daysAgo(0)},
	}
	assert.Equal(t, 1, Streak(withToday, time.Now()))
}

func TestStreakSkipsBadTimestamps(t *testing.T) {
	items := []stamped{
		{TS: daysAgo(0)},
		{TS: "not a timestamp"},
	}
	assert.Equal(t, 1, Streak(items, time.Now()))
}

// =============================================================================
// Same-Day Tests
// =============================================================================

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 1, 1, 23, 59, 59, 0, time.Local)
	b := time.Date(2024, 1, 2, 0, 0, 1, 0, time.Local)
	c := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)

	assert.False(t, SameDay(a, b))
	assert.True(t, SameDay(a, c))
}

func TestFilterDay(t *testing.T) {
	ref := time.Date(2024, 1, 2, 12, 0, 0, 0, time.Local)
	items := []stamped{
		{TS: time.Date(2024, 1, 1, 23, 59, 59, 0, time.Local).Format(time.RFC3339)},
		{TS: time.Date(2024, 1, 2, 0, 0, 1, 0, time.Local).Format(time.RFC3339)},
		{TS: time.Date(2024, 1, 2, 18, 30, 0, 0, time.Local).Format(time.RFC3339)},
		{TS: "garbage"},
	}

	got := FilterDay(items, ref)
	require.Len(t, got, 2)
	assert.Equal(t, items[1], got[0])
	assert.Equal(t, items[2], got[1])
}

// =============================================================================
// Weekly Aggregate Tests
// =============================================================================

func repsLogAgo(exerciseType string, reps, daysOld int) model.FitnessLog {
	log := model.NewRepsLog(exerciseType, reps)
	log.Timestamp = daysAgo(daysOld)
	return log
}

func TestWeeklyTotals(t *testing.T) {
	logs := []model.FitnessLog{
		repsLogAgo(model.ExercisePushups, 10, 0),
		repsLogAgo(model.ExercisePushups, 20, 3),
		repsLogAgo(model.ExercisePushups, 30, 6),
		repsLogAgo(model.ExercisePushups, 99, 8), // outside the window
	}

	totals := WeeklyTotals(logs, time.Now())
	agg := totals[model.ExercisePushups]
	assert.Equal(t, 60.0, agg.Total)
	assert.Equal(t, 3, agg.Count)
	assert.Equal(t, "reps", agg.Unit)
}

func TestWeeklyTotalsExactBoundaryExcluded(t *testing.T) {
	now := time.Now()
	log := model.NewRepsLog(model.ExerciseSquats, 15)
	log.Timestamp = now.AddDate(0, 0, -7).Format(time.RFC3339Nano)

	totals := WeeklyTotals([]model.FitnessLog{log}, now)
	assert.Empty(t, totals)
}

func TestWeeklyTotalsRunning(t *testing.T) {
	run := model.NewRunLog(5.5, "5:30/km")
	run2 := model.NewRunLog(4.5, "")

	totals := WeeklyTotals([]model.FitnessLog{run, run2}, time.Now())
	agg := totals[model.ExerciseRunning]
	assert.Equal(t, 10.0, agg.Total)
	assert.Equal(t, 2, agg.Count)
	assert.Equal(t, "km", agg.Unit)
}

func TestWeeklyTotalsSkipsBadTimestamps(t *testing.T) {
	log := model.NewRepsLog(model.ExercisePullups, 5)
	log.Timestamp = "garbage"

	totals := WeeklyTotals([]model.FitnessLog{log}, time.Now())
	assert.Empty(t, totals)
}

func TestKindsOrder(t *testing.T) {
	totals := map[string]KindTotal{
		"zumba":               {Count: 1},
		model.ExerciseRunning: {Count: 1},
		model.ExercisePushups: {Count: 1},
		"aerobics":            {Count: 1},
	}

	// Built-in kinds first in display order, then custom alphabetically.
	assert.Equal(t,
		[]string{model.ExercisePushups, model.ExerciseRunning, "aerobics", "zumba"},
		Kinds(totals))
}

// =============================================================================
// Mood Frequency Tests
// =============================================================================

func entryWithMood(mood string) model.JournalEntry {
	return model.NewJournalEntry("entry", nil, mood)
}

func TestMoodCountsSmallSequence(t *testing.T) {
	entries := []model.JournalEntry{
		entryWithMood(model.MoodHappy),
		entryWithMood(model.MoodHappy),
		entryWithMood(model.MoodSad),
	}

	counts := MoodCounts(entries)
	assert.Equal(t, 2, counts[model.MoodHappy])
	assert.Equal(t, 1, counts[model.MoodSad])
	assert.Equal(t, 0, counts[model.MoodNeutral])
}

func TestMoodCountsPositionalWindow(t *testing.T) {
	// Ten entries, newest first: three happy then seven sad. The window is
	// the last seven elements in store order, so the three newest happy
	// entries fall outside it.
	var entries []model.JournalEntry
	for i := 0; i < 3; i++ {
		entries = append(entries, entryWithMood(model.MoodHappy))
	}
	for i := 0; i < 7; i++ {
		entries = append(entries, entryWithMood(model.MoodSad))
	}

	counts := MoodCounts(entries)
	assert.Equal(t, 0, counts[model.MoodHappy])
	assert.Equal(t, 7, counts[model.MoodSad])
}

// =============================================================================
// Date Grouping Tests
// =============================================================================

func TestGroupByDayBucketsAndOrder(t *testing.T) {
	items := []stamped{
		{TS: daysAgo(1)},
		{TS: daysAgo(0)},
		{TS: daysAgo(0)},
	}

	buckets := GroupByDay(items)
	require.Len(t, buckets, 2)
	assert.Equal(t, time.Now().Format(DateLayout), buckets[0].Date)
	assert.Len(t, buckets[0].Records, 2)
	assert.Len(t, buckets[1].Records, 1)
	assert.Greater(t, buckets[0].Date, buckets[1].Date)
}

func TestGroupByDayCapsAtThirty(t *testing.T) {
	var items []stamped
	for i := 0; i < 31; i++ {
		items = append(items, stamped{TS: daysAgo(i)})
	}

	buckets := GroupByDay(items)
	require.Len(t, buckets, 30)
	assert.Equal(t, time.Now().Format(DateLayout), buckets[0].Date)
	for i := 1; i < len(buckets); i++ {
		assert.Greater(t, buckets[i-1].Date, buckets[i].Date,
			fmt.Sprintf("buckets %d and %d out of order", i-1, i))
	}
}

func TestGroupByDayDropsBadTimestamps(t *testing.T) {
	items := []stamped{
		{TS: daysAgo(0)},
		{TS: "garbage"},
	}

	buckets := GroupByDay(items)
	require.Len(t, buckets, 1)
	assert.Len(t, buckets[0].Records, 1)
}
