package stats

import "time"

// Session is one stored pomodoro session.
type Session struct {
	ID              string
	Task            string
	DurationMinutes int
	CompletedAt     time.Time
}

// Totals aggregates sessions over a period.
type Totals struct {
	Sessions int
	Minutes  int
}

// TaskTotals aggregates a period's sessions for one task label. Sessions
// recorded without a task carry an empty label.
type TaskTotals struct {
	Task     string
	Sessions int
	Minutes  int
}

// StartOfDay returns midnight of t's day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the Monday of t's week.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
