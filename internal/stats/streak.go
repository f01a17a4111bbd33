package stats

import "time"

// Streak returns the number of consecutive calendar days ending at now
// that have at least one record. A day with multiple records counts once;
// the streak stops at the first day with no record. A record dated now
// itself is day zero, so a streak of 1 means "logged today only".
func Streak[T Dated](items []T, now time.Time) int {
	if len(items) == 0 {
		return 0
	}

	days := make(map[int]bool, len(items))
	for _, item := range items {
		t, err := item.Time()
		if err != nil {
			continue
		}
		if off := dayOffset(t, now); off >= 0 {
			days[off] = true
		}
	}

	streak := 0
	for days[streak] {
		streak++
	}
	return streak
}
