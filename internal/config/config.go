// Package config reads and writes VibeFlo's user settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/josephwaugh312/VibeFlo-sub006/internal/core/model"
)

const settingsFileName = "settings.yaml"

// Config holds VibeFlo's user settings.
type Config struct {
	PomodoroMinutes         int
	ShortBreakMinutes       int
	LongBreakMinutes        int
	PomodorosUntilLongBreak int

	AutoStartBreaks      bool
	AutoStartPomodoros   bool
	NotificationsEnabled bool
	ShowBreakWindow      bool

	PauseOnIdle      bool
	IdleAfterMinutes int

	LaunchAtLogin bool
}

type fileSettings struct {
	PomodoroMinutes         int  `yaml:"pomodoro_minutes"`
	ShortBreakMinutes       int  `yaml:"short_break_minutes"`
	LongBreakMinutes        int  `yaml:"long_break_minutes"`
	PomodorosUntilLongBreak int  `yaml:"pomodoros_until_long_break"`
	AutoStartBreaks         bool `yaml:"auto_start_breaks"`
	AutoStartPomodoros      bool `yaml:"auto_start_pomodoros"`
	NotificationsEnabled    bool `yaml:"notifications_enabled"`
	ShowBreakWindow         bool `yaml:"show_break_window"`
	PauseOnIdle             bool `yaml:"pause_on_idle"`
	IdleAfterMinutes        int  `yaml:"idle_after_minutes"`
	LaunchAtLogin           bool `yaml:"launch_at_login"`
}

// Default returns the stock settings.
func Default() Config {
	return Config{
		PomodoroMinutes:         model.DefaultPomodoroMinutes,
		ShortBreakMinutes:       model.DefaultShortBreakMinutes,
		LongBreakMinutes:        model.DefaultLongBreakMinutes,
		PomodorosUntilLongBreak: model.DefaultPomodorosUntilLongBreak,
		NotificationsEnabled:    true,
		ShowBreakWindow:         true,
		IdleAfterMinutes:        10,
	}
}

// Dir returns the per-user configuration directory for appName.
func Dir(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName), nil
}

// Load reads settings.yaml from dir. A missing file yields the defaults,
// and non-positive durations in the file are ignored in favor of the
// defaults.
func Load(dir string) (Config, error) {
	settings := Default()

	rawData, err := os.ReadFile(filepath.Join(dir, settingsFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	fileData := fileSettingsFrom(settings)
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyFileSettings(&settings, fileData)
	return settings, nil
}

// Save writes settings.yaml into dir, creating the directory if needed.
func Save(dir string, settings Config) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	serialized, err := yaml.Marshal(fileSettingsFrom(settings))
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, settingsFileName), serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

// TimerConfig converts the settings to the engine's snapshot.
func (config Config) TimerConfig() model.TimerConfig {
	return model.TimerConfig{
		PomodoroMinutes:         config.PomodoroMinutes,
		ShortBreakMinutes:       config.ShortBreakMinutes,
		LongBreakMinutes:        config.LongBreakMinutes,
		PomodorosUntilLongBreak: config.PomodorosUntilLongBreak,
		AutoStartBreaks:         config.AutoStartBreaks,
		AutoStartPomodoros:      config.AutoStartPomodoros,
		NotificationsEnabled:    config.NotificationsEnabled,
	}
}

func fileSettingsFrom(settings Config) fileSettings {
	return fileSettings{
		PomodoroMinutes:         settings.PomodoroMinutes,
		ShortBreakMinutes:       settings.ShortBreakMinutes,
		LongBreakMinutes:        settings.LongBreakMinutes,
		PomodorosUntilLongBreak: settings.PomodorosUntilLongBreak,
		AutoStartBreaks:         settings.AutoStartBreaks,
		AutoStartPomodoros:      settings.AutoStartPomodoros,
		NotificationsEnabled:    settings.NotificationsEnabled,
		ShowBreakWindow:         settings.ShowBreakWindow,
		PauseOnIdle:             settings.PauseOnIdle,
		IdleAfterMinutes:        settings.IdleAfterMinutes,
		LaunchAtLogin:           settings.LaunchAtLogin,
	}
}

// applyFileSettings copies file values over the defaults. Durations and
// counts must be positive to take effect; fileData starts from the current
// defaults, and keys the file omits keep them.
func applyFileSettings(settings *Config, fileData fileSettings) {
	if fileData.PomodoroMinutes > 0 {
		settings.PomodoroMinutes = fileData.PomodoroMinutes
	}
	if fileData.ShortBreakMinutes > 0 {
		settings.ShortBreakMinutes = fileData.ShortBreakMinutes
	}
	if fileData.LongBreakMinutes > 0 {
		settings.LongBreakMinutes = fileData.LongBreakMinutes
	}
	if fileData.PomodorosUntilLongBreak > 0 {
		settings.PomodorosUntilLongBreak = fileData.PomodorosUntilLongBreak
	}
	if fileData.IdleAfterMinutes > 0 {
		settings.IdleAfterMinutes = fileData.IdleAfterMinutes
	}

	settings.AutoStartBreaks = fileData.AutoStartBreaks
	settings.AutoStartPomodoros = fileData.AutoStartPomodoros
	settings.NotificationsEnabled = fileData.NotificationsEnabled
	settings.ShowBreakWindow = fileData.ShowBreakWindow
	settings.PauseOnIdle = fileData.PauseOnIdle
	settings.LaunchAtLogin = fileData.LaunchAtLogin
}
