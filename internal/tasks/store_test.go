package tasks

import (
	"errors"
	"testing"
)

func TestListEmptyWhenFileMissing(t *testing.T) {
	store := NewStore(t.TempDir())

	all, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("len = %d, want 0", len(all))
	}
}

func TestAddAndList(t *testing.T) {
	store := NewStore(t.TempDir())

	added, err := store.Add("  write draft  ")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if added.Text != "write draft" {
		t.Errorf("text = %q, want trimmed", added.Text)
	}
	if added.ID == "" || added.CreatedAt.IsZero() {
		t.Errorf("task missing id or timestamp: %+v", added)
	}

	if _, err := store.Add("review PR"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	all, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("len = %d, want 2", len(all))
	}
	if all[0].Text != "write draft" || all[1].Text != "review PR" {
		t.Errorf("order = %q, %q", all[0].Text, all[1].Text)
	}
}

func TestAddRejectsBlankText(t *testing.T) {
	store := NewStore(t.TempDir())

	if _, err := store.Add("   "); err == nil {
		t.Fatal("blank task accepted")
	}
}

func TestCompleteMarksDone(t *testing.T) {
	store := NewStore(t.TempDir())
	added, _ := store.Add("write draft")

	if err := store.Complete(added.ID); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	all, _ := store.List()
	if !all[0].Done || all[0].CompletedAt == nil {
		t.Fatalf("task not completed: %+v", all[0])
	}

	pending, err := store.Pending()
	if err != nil {
		t.Fatalf("Pending: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("completed task still pending")
	}
}

func TestCompleteUnknownID(t *testing.T) {
	store := NewStore(t.TempDir())

	if err := store.Complete("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestRemove(t *testing.T) {
	store := NewStore(t.TempDir())
	first, _ := store.Add("first")
	store.Add("second")

	if err := store.Remove(first.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	all, _ := store.List()
	if len(all) != 1 || all[0].Text != "second" {
		t.Fatalf("remaining = %+v", all)
	}

	if err := store.Remove(first.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second remove err = %v, want ErrNotFound", err)
	}
}

func TestIncrementPomodoros(t *testing.T) {
	store := NewStore(t.TempDir())
	store.Add("write draft")

	if err := store.IncrementPomodoros("write draft"); err != nil {
		t.Fatalf("IncrementPomodoros: %v", err)
	}
	if err := store.IncrementPomodoros("write draft"); err != nil {
		t.Fatalf("IncrementPomodoros: %v", err)
	}

	all, _ := store.List()
	if all[0].Pomodoros != 2 {
		t.Fatalf("pomodoros = %d, want 2", all[0].Pomodoros)
	}
}

func TestIncrementPomodorosUnknownLabelIsNoOp(t *testing.T) {
	store := NewStore(t.TempDir())
	store.Add("write draft")

	if err := store.IncrementPomodoros("ad-hoc focus"); err != nil {
		t.Fatalf("IncrementPomodoros: %v", err)
	}
	if err := store.IncrementPomodoros(""); err != nil {
		t.Fatalf("IncrementPomodoros: %v", err)
	}

	all, _ := store.List()
	if all[0].Pomodoros != 0 {
		t.Fatalf("counter moved for unknown label: %d", all[0].Pomodoros)
	}
}

func TestIncrementSkipsDoneTasks(t *testing.T) {
	store := NewStore(t.TempDir())
	done, _ := store.Add("write draft")
	store.Complete(done.ID)
	store.Add("write draft")

	if err := store.IncrementPomodoros("write draft"); err != nil {
		t.Fatalf("IncrementPomodoros: %v", err)
	}

	all, _ := store.List()
	if all[0].Pomodoros != 0 {
		t.Errorf("done task incremented")
	}
	if all[1].Pomodoros != 1 {
		t.Errorf("open task not incremented: %+v", all[1])
	}
}

func TestPersistsAcrossStores(t *testing.T) {
	dir := t.TempDir()

	first := NewStore(dir)
	first.Add("carry over")

	second := NewStore(dir)
	all, err := second.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 1 || all[0].Text != "carry over" {
		t.Fatalf("tasks did not persist: %+v", all)
	}
}
