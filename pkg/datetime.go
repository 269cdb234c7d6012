package pkg

import "time"

// TruncateToDay returns midnight of t's calendar day in t's location.
// time.Truncate cuts on absolute UTC intervals and lands on the previous
// day in zones ahead of UTC.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
