package timer

import "github.com/josephwaugh312/VibeFlo-sub006/internal/core/model"

// NextMode computes the mode that follows current once its countdown ends.
// Breaks always return to a pomodoro. After a pomodoro the break is long
// exactly when the completed count is a positive multiple of
// PomodorosUntilLongBreak, so a setting of 1 makes every break a long one.
func NextMode(current Mode, completedPomodoros int, config model.TimerConfig) Mode {
	if current != ModePomodoro {
		return ModePomodoro
	}
	until := config.PomodorosUntilLongBreak
	if until < 1 {
		until = model.DefaultPomodorosUntilLongBreak
	}
	if completedPomodoros > 0 && completedPomodoros%until == 0 {
		return ModeLongBreak
	}
	return ModeShortBreak
}

// DurationSeconds returns the configured full countdown for a mode.
func DurationSeconds(config model.TimerConfig, mode Mode) int {
	switch mode {
	case ModeShortBreak:
		return config.ShortBreakMinutes * 60
	case ModeLongBreak:
		return config.LongBreakMinutes * 60
	default:
		return config.PomodoroMinutes * 60
	}
}
