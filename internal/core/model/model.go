package model

import "time"

// Stock timer values, also used as fallbacks for invalid configuration.
const (
	DefaultPomodoroMinutes         = 25
	DefaultShortBreakMinutes       = 5
	DefaultLongBreakMinutes        = 15
	DefaultPomodorosUntilLongBreak = 4
)

// TimerConfig contains runtime settings for the timer engine. The engine
// treats a TimerConfig as an immutable snapshot.
type TimerConfig struct {
	PomodoroMinutes         int
	ShortBreakMinutes       int
	LongBreakMinutes        int
	PomodorosUntilLongBreak int

	AutoStartBreaks      bool
	AutoStartPomodoros   bool
	NotificationsEnabled bool
}

// DefaultTimerConfig returns the stock 25/5/15 configuration.
func DefaultTimerConfig() TimerConfig {
	return TimerConfig{
		PomodoroMinutes:         DefaultPomodoroMinutes,
		ShortBreakMinutes:       DefaultShortBreakMinutes,
		LongBreakMinutes:        DefaultLongBreakMinutes,
		PomodorosUntilLongBreak: DefaultPomodorosUntilLongBreak,
		NotificationsEnabled:    true,
	}
}

// Normalized returns a copy with non-positive durations and counts replaced
// by the defaults.
func (config TimerConfig) Normalized() TimerConfig {
	if config.PomodoroMinutes <= 0 {
		config.PomodoroMinutes = DefaultPomodoroMinutes
	}
	if config.ShortBreakMinutes <= 0 {
		config.ShortBreakMinutes = DefaultShortBreakMinutes
	}
	if config.LongBreakMinutes <= 0 {
		config.LongBreakMinutes = DefaultLongBreakMinutes
	}
	if config.PomodorosUntilLongBreak < 1 {
		config.PomodorosUntilLongBreak = DefaultPomodorosUntilLongBreak
	}
	return config
}

// SessionRecord describes one naturally completed pomodoro. The engine
// builds the record at the moment of completion and hands it to the stats
// reporter without retaining it.
type SessionRecord struct {
	DurationMinutes int
	Task            string
	CompletedAt     time.Time
}
