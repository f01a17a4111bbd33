package stats

import (
	"sort"

	"github.com/grow-cli/grow/internal/logging"
)

// maxBuckets caps the calendar view to the most recent dates.
const maxBuckets = 30

// DateLayout is the bucket key format: a local calendar date.
const DateLayout = "2006-01-02"

// Bucket holds all records sharing one local calendar date.
type Bucket[T Dated] struct {
	Date    string `json:"date"`    // YYYY-MM-DD
	Records []T    `json:"records"` // input order
}

// GroupByDay partitions records by local calendar date, newest date first,
// capped to the 30 most recent buckets. Records with unparseable
// timestamps are dropped and logged.
func GroupByDay[T Dated](items []T) []Bucket[T] {
	byDate := make(map[string][]T)
	for _, item := range items {
		t, err := item.Time()
		if err != nil {
			logging.Logger().Warn("dropping record with bad timestamp from grouping", "error", err)
			continue
		}
		date := t.Local().Format(DateLayout)
		byDate[date] = append(byDate[date], item)
	}

	buckets := make([]Bucket[T], 0, len(byDate))
	for date, records := range byDate {
		buckets = append(buckets, Bucket[T]{Date: date, Records: records})
	}

	// Date-only strings sort chronologically as strings.
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Date > buckets[j].Date
	})

	if len(buckets) > maxBuckets {
		buckets = buckets[:maxBuckets]
	}
	return buckets
}
