package timer

import "time"

// Mode identifies what the current countdown is for.
type Mode string

const (
	ModePomodoro   Mode = "pomodoro"
	ModeShortBreak Mode = "short_break"
	ModeLongBreak  Mode = "long_break"
)

// Label returns the mode name used on user-facing surfaces.
func (mode Mode) Label() string {
	switch mode {
	case ModeShortBreak:
		return "Short Break"
	case ModeLongBreak:
		return "Long Break"
	default:
		return "Pomodoro"
	}
}

// IsBreak reports whether the mode is one of the two break kinds.
func (mode Mode) IsBreak() bool {
	return mode == ModeShortBreak || mode == ModeLongBreak
}

// EventType defines the type of engine event.
type EventType string

const (
	EventModeChange    EventType = "mode_change"
	EventProgress      EventType = "progress"
	EventRunState      EventType = "run_state"
	EventTaskChange    EventType = "task_change"
	EventSessionLogged EventType = "session_logged"
	EventReportError   EventType = "report_error"
	EventNotifyError   EventType = "notify_error"
)

// State is a point-in-time snapshot of the engine.
type State struct {
	Mode               Mode
	RemainingSeconds   int
	Running            bool
	CompletedPomodoros int
	Task               string
}

// Clock renders the snapshot's remaining time as MM:SS.
func (state State) Clock() string {
	return FormatClock(state.RemainingSeconds)
}

// Event represents an engine update for observers.
type Event struct {
	Type    EventType
	State   State
	Message string
	At      time.Time
}
