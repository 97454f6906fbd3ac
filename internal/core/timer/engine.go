// Package timer implements the pomodoro engine: a state machine over
// pomodoro, short-break and long-break countdowns, advanced by one-second
// ticks from a single external scheduler.
package timer

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/josephwaugh312/VibeFlo-sub006/internal/core/model"
)

// Reporter receives a record for every naturally completed pomodoro.
type Reporter interface {
	AddSession(record model.SessionRecord) error
}

// Notifier posts a user-facing notification when a countdown ends.
type Notifier interface {
	Notify(title, body string) error
}

// Options contains the engine's collaborators. Either may be nil.
type Options struct {
	Reporter Reporter
	Notifier Notifier
}

// Engine is the state machine that owns the countdown. All changes go
// through its methods and reads return snapshots. Exactly one scheduler is
// expected to call Tick once per second; while the engine is not running,
// ticks are no-ops, so a tick delivered after a logical stop can never move
// the clock.
type Engine struct {
	mu        sync.Mutex
	config    model.TimerConfig
	staged    *model.TimerConfig
	mode      Mode
	remaining int
	running   bool
	completed int
	task      string
	reporter  Reporter
	notifier  Notifier
	events    []chan Event
	now       func() time.Time
}

// New creates an Engine initialized to a stopped pomodoro.
func New(config model.TimerConfig, options Options) *Engine {
	engine := &Engine{
		reporter: options.Reporter,
		notifier: options.Notifier,
		now:      time.Now,
	}
	engine.Initialize(config)
	return engine
}

// Initialize resets the engine to a pristine stopped pomodoro under the
// given configuration. The completed count and any bound task are cleared,
// and previously staged settings are discarded.
func (engine *Engine) Initialize(config model.TimerConfig) {
	engine.mu.Lock()
	engine.config = config.Normalized()
	engine.staged = nil
	engine.mode = ModePomodoro
	engine.remaining = DurationSeconds(engine.config, ModePomodoro)
	engine.running = false
	engine.completed = 0
	engine.task = ""
	engine.emitLocked(Event{Type: EventModeChange, State: engine.stateLocked(), At: engine.now()})
	engine.mu.Unlock()
}

// UpdateConfig stages a new settings snapshot. Staged settings take effect
// at the next Initialize, Reset or SwitchMode, never mid-countdown, so the
// remaining time always belongs to the duration it was loaded from.
func (engine *Engine) UpdateConfig(config model.TimerConfig) {
	normalized := config.Normalized()
	engine.mu.Lock()
	engine.staged = &normalized
	engine.mu.Unlock()
}

// Config returns the active settings snapshot.
func (engine *Engine) Config() model.TimerConfig {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.config
}

// Start begins or resumes the countdown. No-op while already running.
func (engine *Engine) Start() {
	engine.mu.Lock()
	if engine.running {
		engine.mu.Unlock()
		return
	}
	engine.running = true
	engine.emitLocked(Event{Type: EventRunState, State: engine.stateLocked(), At: engine.now()})
	engine.mu.Unlock()
}

// Pause freezes the countdown, preserving the remaining time exactly.
func (engine *Engine) Pause() {
	engine.mu.Lock()
	if !engine.running {
		engine.mu.Unlock()
		return
	}
	engine.running = false
	engine.emitLocked(Event{Type: EventRunState, State: engine.stateLocked(), At: engine.now()})
	engine.mu.Unlock()
}

// Reset stops the countdown and restores the current mode's full duration.
// The completed count is preserved. Reset is a settings boundary: staged
// settings are promoted before the duration is loaded.
func (engine *Engine) Reset() {
	engine.mu.Lock()
	engine.promoteStagedLocked()
	engine.running = false
	engine.remaining = DurationSeconds(engine.config, engine.mode)
	engine.emitLocked(Event{Type: EventRunState, State: engine.stateLocked(), At: engine.now()})
	engine.mu.Unlock()
}

// SwitchMode stops the countdown and loads the target mode's full duration.
// Unknown modes are ignored. SwitchMode is a settings boundary like Reset.
func (engine *Engine) SwitchMode(target Mode) {
	switch target {
	case ModePomodoro, ModeShortBreak, ModeLongBreak:
	default:
		return
	}

	engine.mu.Lock()
	engine.promoteStagedLocked()
	engine.mode = target
	engine.remaining = DurationSeconds(engine.config, target)
	engine.running = false
	engine.emitLocked(Event{Type: EventModeChange, State: engine.stateLocked(), At: engine.now()})
	engine.mu.Unlock()
}

// Skip abandons the current countdown and moves to the mode the policy
// would pick at its natural end, without crediting a pomodoro, reporting a
// session or notifying. Auto-start settings still apply to the new mode.
func (engine *Engine) Skip() {
	engine.mu.Lock()
	engine.transitionLocked(false)
	engine.mu.Unlock()
}

// SetTask binds a task label to the running or future session. Whitespace
// is trimmed and a blank label clears the binding. Changing the task never
// affects timing.
func (engine *Engine) SetTask(text string) {
	trimmed := strings.TrimSpace(text)

	engine.mu.Lock()
	if engine.task == trimmed {
		engine.mu.Unlock()
		return
	}
	engine.task = trimmed
	engine.emitLocked(Event{Type: EventTaskChange, State: engine.stateLocked(), At: engine.now()})
	engine.mu.Unlock()
}

// Tick advances a running countdown by one second and runs completion
// handling when it reaches zero. Ticks while stopped are no-ops.
func (engine *Engine) Tick() {
	engine.mu.Lock()
	defer engine.mu.Unlock()

	if !engine.running {
		return
	}
	if engine.remaining > 0 {
		engine.remaining--
	}
	if engine.remaining > 0 {
		engine.emitLocked(Event{Type: EventProgress, State: engine.stateLocked(), At: engine.now()})
		return
	}
	engine.completeLocked()
}

// State returns a snapshot of the timer.
func (engine *Engine) State() State {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.stateLocked()
}

// Subscribe registers a new observer channel. Events are dropped rather
// than block the engine when an observer falls behind.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.mu.Lock()
	engine.events = append(engine.events, ch)
	engine.mu.Unlock()
	return ch
}

// Close closes all observer channels. The engine must not be used after.
func (engine *Engine) Close() {
	engine.mu.Lock()
	events := engine.events
	engine.events = nil
	engine.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// completeLocked handles a countdown that naturally reached zero: credit
// and report a finished pomodoro, then transition. Collaborator failures
// surface as events and never block the transition.
func (engine *Engine) completeLocked() {
	if engine.mode == ModePomodoro {
		engine.completed++
		if engine.reporter != nil {
			record := model.SessionRecord{
				DurationMinutes: engine.config.PomodoroMinutes,
				Task:            engine.task,
				CompletedAt:     engine.now(),
			}
			if err := engine.reporter.AddSession(record); err != nil {
				engine.emitLocked(Event{Type: EventReportError, State: engine.stateLocked(), Message: err.Error(), At: engine.now()})
			} else {
				engine.emitLocked(Event{Type: EventSessionLogged, State: engine.stateLocked(), At: engine.now()})
			}
		}
	}
	engine.transitionLocked(true)
}

// transitionLocked moves to the policy's next mode, loads its duration and
// applies the auto-start setting. Natural transitions may notify, skips
// stay silent.
func (engine *Engine) transitionLocked(natural bool) {
	next := NextMode(engine.mode, engine.completed, engine.config)
	engine.mode = next
	engine.remaining = DurationSeconds(engine.config, next)
	if next == ModePomodoro {
		engine.running = engine.config.AutoStartPomodoros
	} else {
		engine.running = engine.config.AutoStartBreaks
	}

	if natural && engine.config.NotificationsEnabled && engine.notifier != nil {
		title, body := notificationText(next, engine.config)
		if err := engine.notifier.Notify(title, body); err != nil {
			engine.emitLocked(Event{Type: EventNotifyError, State: engine.stateLocked(), Message: err.Error(), At: engine.now()})
		}
	}

	engine.emitLocked(Event{Type: EventModeChange, State: engine.stateLocked(), At: engine.now()})
}

func (engine *Engine) promoteStagedLocked() {
	if engine.staged != nil {
		engine.config = *engine.staged
		engine.staged = nil
	}
}

func (engine *Engine) stateLocked() State {
	return State{
		Mode:               engine.mode,
		RemainingSeconds:   engine.remaining,
		Running:            engine.running,
		CompletedPomodoros: engine.completed,
		Task:               engine.task,
	}
}

func (engine *Engine) emitLocked(event Event) {
	for _, ch := range engine.events {
		select {
		case ch <- event:
		default:
		}
	}
}

func notificationText(next Mode, config model.TimerConfig) (string, string) {
	switch next {
	case ModeShortBreak:
		return "Pomodoro complete", fmt.Sprintf("Nice work. Take a %d minute break.", config.ShortBreakMinutes)
	case ModeLongBreak:
		return "Long break earned", fmt.Sprintf("Great run. Rest for %d minutes.", config.LongBreakMinutes)
	default:
		return "Break over", fmt.Sprintf("Time for %d minutes of focus.", config.PomodoroMinutes)
	}
}
