// Package stats computes derived views over domain record sequences:
// day streaks, same-day filters, weekly aggregates, mood frequencies, and
// calendar-date grouping.
//
// Everything here is a pure function of the records and a reference
// instant; it is safe to recompute on every render.
package stats

import "time"

// Dated is the capability stats functions need from a record: its creation
// instant, which may fail to parse for records persisted with a malformed
// timestamp.
type Dated interface {
	Time() (time.Time, error)
}

// SameDay reports whether a and b fall on the same local calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// FilterDay returns the records whose timestamp falls on the same local
// calendar date as ref, in input order. Records with unparseable
// timestamps are skipped.
func FilterDay[T Dated](items []T, ref time.Time) []T {
	var out []T
	for _, item := range items {
		t, err := item.Time()
		if err != nil {
			continue
		}
		if SameDay(t.Local(), ref) {
			out = append(out, item)
		}
	}
	return out
}

// midnight truncates t to local midnight.
func midnight(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// dayOffset returns the number of whole calendar days between t's date and
// ref's date, negative when t's date is after ref's. Rounding absorbs
// DST-shortened and -lengthened days.
func dayOffset(t, ref time.Time) int {
	diff := midnight(ref).Sub(midnight(t))
	return int(diff.Round(24*time.Hour) / (24 * time.Hour))
}
