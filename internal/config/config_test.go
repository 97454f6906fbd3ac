package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	settings, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if settings != Default() {
		t.Fatalf("settings = %+v, want defaults", settings)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	settings := Default()
	settings.PomodoroMinutes = 50
	settings.ShortBreakMinutes = 10
	settings.AutoStartBreaks = true
	settings.NotificationsEnabled = false
	settings.PauseOnIdle = true
	settings.IdleAfterMinutes = 3

	if err := Save(dir, settings); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded != settings {
		t.Fatalf("loaded = %+v, want %+v", loaded, settings)
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "VibeFlo")

	if err := Save(dir, Default()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, settingsFileName)); err != nil {
		t.Fatalf("settings file missing: %v", err)
	}
}

func TestLoadIgnoresInvalidDurations(t *testing.T) {
	dir := t.TempDir()
	raw := "pomodoro_minutes: -5\nshort_break_minutes: 0\npomodoros_until_long_break: -1\n"
	if err := os.WriteFile(filepath.Join(dir, settingsFileName), []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	settings, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	defaults := Default()
	if settings.PomodoroMinutes != defaults.PomodoroMinutes {
		t.Errorf("pomodoro = %d, want default %d", settings.PomodoroMinutes, defaults.PomodoroMinutes)
	}
	if settings.ShortBreakMinutes != defaults.ShortBreakMinutes {
		t.Errorf("short break = %d, want default %d", settings.ShortBreakMinutes, defaults.ShortBreakMinutes)
	}
	if settings.PomodorosUntilLongBreak != defaults.PomodorosUntilLongBreak {
		t.Errorf("cadence = %d, want default %d", settings.PomodorosUntilLongBreak, defaults.PomodorosUntilLongBreak)
	}
}

func TestLoadKeepsDefaultsForOmittedKeys(t *testing.T) {
	dir := t.TempDir()
	raw := "pomodoro_minutes: 30\n"
	if err := os.WriteFile(filepath.Join(dir, settingsFileName), []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	settings, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if settings.PomodoroMinutes != 30 {
		t.Errorf("pomodoro = %d, want 30", settings.PomodoroMinutes)
	}
	if !settings.NotificationsEnabled || !settings.ShowBreakWindow {
		t.Errorf("omitted keys lost their defaults: %+v", settings)
	}
}

func TestLoadMalformedYAMLFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, settingsFileName), []byte("{not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}

	settings, err := Load(dir)
	if err == nil {
		t.Fatal("Load accepted malformed yaml")
	}
	if settings != Default() {
		t.Fatalf("settings = %+v, want defaults", settings)
	}
}

func TestTimerConfigConversion(t *testing.T) {
	settings := Default()
	settings.PomodoroMinutes = 45
	settings.AutoStartPomodoros = true

	converted := settings.TimerConfig()
	if converted.PomodoroMinutes != 45 {
		t.Errorf("pomodoro = %d, want 45", converted.PomodoroMinutes)
	}
	if !converted.AutoStartPomodoros {
		t.Error("auto-start flag lost in conversion")
	}
	if !converted.NotificationsEnabled {
		t.Error("notifications flag lost in conversion")
	}
}
