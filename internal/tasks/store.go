// Package tasks stores the lightweight task list that pomodoro sessions can
// be bound to.
package tasks

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const tasksFileName = "tasks.json"

// ErrNotFound indicates the referenced task does not exist.
var ErrNotFound = errors.New("task not found")

// Task is one entry in the task list. Pomodoros counts the sessions
// completed while the task was bound to the timer.
type Task struct {
	ID          string     `json:"id"`
	Text        string     `json:"text"`
	Done        bool       `json:"done"`
	Pomodoros   int        `json:"pomodoros"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Store is a JSON-file backed task list. All operations read, modify and
// write the whole file under a lock.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a Store persisting to tasks.json inside dir.
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, tasksFileName)}
}

// List returns all tasks, oldest first.
func (store *Store) List() ([]Task, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.loadLocked()
}

// Pending returns the tasks not yet marked done, oldest first.
func (store *Store) Pending() ([]Task, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	all, err := store.loadLocked()
	if err != nil {
		return nil, err
	}

	var pending []Task
	for _, task := range all {
		if !task.Done {
			pending = append(pending, task)
		}
	}
	return pending, nil
}

// Add appends a new task. Blank text is rejected.
func (store *Store) Add(text string) (Task, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Task{}, errors.New("task text is empty")
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	all, err := store.loadLocked()
	if err != nil {
		return Task{}, err
	}

	task := Task{
		ID:        uuid.New().String(),
		Text:      trimmed,
		CreatedAt: time.Now(),
	}
	all = append(all, task)

	if err := store.saveLocked(all); err != nil {
		return Task{}, err
	}
	return task, nil
}

// Complete marks the task done and stamps its completion time.
func (store *Store) Complete(id string) error {
	return store.update(id, func(task *Task) {
		if task.Done {
			return
		}
		task.Done = true
		now := time.Now()
		task.CompletedAt = &now
	})
}

// Remove deletes the task.
func (store *Store) Remove(id string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	all, err := store.loadLocked()
	if err != nil {
		return err
	}

	kept := all[:0]
	for _, task := range all {
		if task.ID != id {
			kept = append(kept, task)
		}
	}
	if len(kept) == len(all) {
		return ErrNotFound
	}

	return store.saveLocked(kept)
}

// IncrementPomodoros bumps the session counter on the first open task whose
// text matches the label. Sessions bound to no known task are not an error.
func (store *Store) IncrementPomodoros(label string) error {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return nil
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	all, err := store.loadLocked()
	if err != nil {
		return err
	}

	for i := range all {
		if !all[i].Done && all[i].Text == trimmed {
			all[i].Pomodoros++
			return store.saveLocked(all)
		}
	}
	return nil
}

func (store *Store) update(id string, apply func(task *Task)) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	all, err := store.loadLocked()
	if err != nil {
		return err
	}

	for i := range all {
		if all[i].ID == id {
			apply(&all[i])
			return store.saveLocked(all)
		}
	}
	return ErrNotFound
}

func (store *Store) loadLocked() ([]Task, error) {
	data, err := os.ReadFile(store.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read tasks file: %w", err)
	}

	var all []Task
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("unmarshal tasks: %w", err)
	}
	return all, nil
}

func (store *Store) saveLocked(all []Task) error {
	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	if err := os.WriteFile(store.path, data, 0o644); err != nil {
		return fmt.Errorf("write tasks file: %w", err)
	}
	return nil
}
