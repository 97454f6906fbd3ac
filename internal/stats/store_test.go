package stats

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/josephwaugh312/VibeFlo-sub006/internal/core/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "stats.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func addAt(t *testing.T, store *Store, task string, minutes int, completedAt time.Time) {
	t.Helper()
	record := model.SessionRecord{
		DurationMinutes: minutes,
		Task:            task,
		CompletedAt:     completedAt,
	}
	if err := store.AddSession(record); err != nil {
		t.Fatalf("AddSession: %v", err)
	}
}

func TestTotalsBetween(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

	addAt(t, store, "writing", 25, base)
	addAt(t, store, "writing", 25, base.Add(time.Hour))
	addAt(t, store, "", 50, base.Add(2*time.Hour))
	addAt(t, store, "stale", 25, base.AddDate(0, 0, -2))

	totals, err := store.TotalsBetween(StartOfDay(base), StartOfDay(base).AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("TotalsBetween: %v", err)
	}
	if totals.Sessions != 3 {
		t.Errorf("sessions = %d, want 3", totals.Sessions)
	}
	if totals.Minutes != 100 {
		t.Errorf("minutes = %d, want 100", totals.Minutes)
	}
}

func TestTotalsBetweenEmpty(t *testing.T) {
	store := newTestStore(t)

	totals, err := store.TotalsBetween(time.Now().Add(-time.Hour), time.Now())
	if err != nil {
		t.Fatalf("TotalsBetween: %v", err)
	}
	if totals.Sessions != 0 || totals.Minutes != 0 {
		t.Fatalf("totals = %+v, want zero", totals)
	}
}

func TestTaskTotalsBetweenOrdersBusiestFirst(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

	addAt(t, store, "reading", 25, base)
	addAt(t, store, "writing", 25, base.Add(time.Minute))
	addAt(t, store, "writing", 25, base.Add(2*time.Minute))

	totals, err := store.TaskTotalsBetween(base.Add(-time.Hour), base.Add(time.Hour))
	if err != nil {
		t.Fatalf("TaskTotalsBetween: %v", err)
	}
	if len(totals) != 2 {
		t.Fatalf("len = %d, want 2", len(totals))
	}
	if totals[0].Task != "writing" || totals[0].Sessions != 2 || totals[0].Minutes != 50 {
		t.Errorf("first = %+v, want writing x2", totals[0])
	}
	if totals[1].Task != "reading" || totals[1].Sessions != 1 {
		t.Errorf("second = %+v, want reading x1", totals[1])
	}
}

func TestRecentSessionsNewestFirst(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

	addAt(t, store, "first", 25, base)
	addAt(t, store, "second", 25, base.Add(time.Hour))
	addAt(t, store, "third", 25, base.Add(2*time.Hour))

	sessions, err := store.RecentSessions(2)
	if err != nil {
		t.Fatalf("RecentSessions: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("len = %d, want 2", len(sessions))
	}
	if sessions[0].Task != "third" || sessions[1].Task != "second" {
		t.Errorf("order = %q, %q", sessions[0].Task, sessions[1].Task)
	}
	if sessions[0].ID == "" || sessions[0].ID == sessions[1].ID {
		t.Error("sessions missing distinct ids")
	}
}

func TestAddSessionFillsMissingCompletionTime(t *testing.T) {
	store := newTestStore(t)

	addAt(t, store, "", 25, time.Time{})

	sessions, err := store.RecentSessions(1)
	if err != nil {
		t.Fatalf("RecentSessions: %v", err)
	}
	if len(sessions) != 1 || sessions[0].CompletedAt.IsZero() {
		t.Fatalf("zero completion time was stored: %+v", sessions)
	}
}

func TestStartOfDay(t *testing.T) {
	noon := time.Date(2025, time.March, 10, 12, 34, 56, 0, time.UTC)

	got := StartOfDay(noon)
	want := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("StartOfDay = %v, want %v", got, want)
	}
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			"wednesday",
			time.Date(2025, time.March, 12, 15, 0, 0, 0, time.UTC),
			time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			"monday stays",
			time.Date(2025, time.March, 10, 1, 0, 0, 0, time.UTC),
			time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			"sunday rolls back",
			time.Date(2025, time.March, 16, 23, 0, 0, 0, time.UTC),
			time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StartOfWeek(tt.in); !got.Equal(tt.want) {
				t.Errorf("StartOfWeek(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
