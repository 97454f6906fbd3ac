// Package app wires the timer engine to the desktop tray frontend.
package app

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/josephwaugh312/VibeFlo-sub006/internal/config"
	"github.com/josephwaugh312/VibeFlo-sub006/internal/core/timer"
	"github.com/josephwaugh312/VibeFlo-sub006/internal/notify"
	"github.com/josephwaugh312/VibeFlo-sub006/internal/platform"
	"github.com/josephwaugh312/VibeFlo-sub006/internal/stats"
	"github.com/josephwaugh312/VibeFlo-sub006/internal/tasks"
	"github.com/josephwaugh312/VibeFlo-sub006/internal/ui/breakscreen"
	"github.com/josephwaugh312/VibeFlo-sub006/internal/ui/preferences"
	"github.com/josephwaugh312/VibeFlo-sub006/internal/ui/tray"
	"github.com/josephwaugh312/VibeFlo-sub006/resources"
)

// AppName is the user-visible application name.
const AppName = "VibeFlo"

// StatsFileName is the sqlite database file inside the config directory.
const StatsFileName = "stats.db"

// Options tunes the tray application.
type Options struct {
	// Verbose logs every engine event to stderr.
	Verbose bool
}

// Run starts the system tray application and blocks until the user quits.
func Run(options Options) error {
	lock, err := platform.AcquireInstanceLock(AppName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			return fmt.Errorf("%s is already running", AppName)
		}
		return fmt.Errorf("acquire instance lock: %w", err)
	}
	defer func() {
		_ = lock.Release()
	}()

	dir, err := config.Dir(AppName)
	if err != nil {
		return fmt.Errorf("locate config dir: %w", err)
	}
	settings, err := config.Load(dir)
	if err != nil {
		log.Printf("settings: %v (using defaults)", err)
	}

	store, err := stats.NewStore(filepath.Join(dir, StatsFileName))
	if err != nil {
		return fmt.Errorf("open stats store: %w", err)
	}
	defer func() {
		_ = store.Close()
	}()

	taskStore := tasks.NewStore(dir)

	fyneApp := fyneapp.NewWithID("com.vibeflo.desktop")
	fyneApp.SetIcon(resources.MustIcon("logo.svg"))
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		return fmt.Errorf("system tray unsupported on this platform")
	}

	trayWindow := fyneApp.NewWindow(AppName)
	trayWindow.SetContent(widget.NewLabel(AppName + " is running in the system tray."))
	trayWindow.SetCloseIntercept(trayWindow.Hide)
	trayWindow.Hide()
	desktopApp.SetSystemTrayWindow(trayWindow)

	notifier := notify.NewDesktop(fyneApp)
	if err := notifier.RequestPermission(); err != nil {
		log.Printf("notification permission: %v", err)
	}

	engine := timer.New(settings.TimerConfig(), timer.Options{
		Reporter: store,
		Notifier: notifier,
	})

	driver := timer.NewDriver(engine, timer.DriverOptions{
		OnIdlePause: func(idle time.Duration) {
			_ = notifier.Notify("Timer paused", fmt.Sprintf("You were away for %d minutes.", int(idle.Minutes())))
		},
		OnIdleError: func(err error) {
			log.Printf("idle probe: %v", err)
		},
	})
	applyIdlePolicy(driver, settings)

	breakWindow := breakscreen.New(fyneApp, func() {
		engine.Skip()
	})

	var trayManager *tray.Manager

	prefsWindow := preferences.New(fyneApp, settings, func(updated config.Config) {
		previous := settings
		settings = updated
		if err := config.Save(dir, settings); err != nil {
			log.Printf("save settings: %v", err)
		}
		engine.UpdateConfig(settings.TimerConfig())
		if !engine.State().Running {
			engine.Reset()
		}
		applyIdlePolicy(driver, settings)
		if settings.LaunchAtLogin != previous.LaunchAtLogin {
			applyAutostart(settings.LaunchAtLogin)
		}
	})

	trayManager = tray.New(desktopApp, tray.Callbacks{
		OnToggleRun: func() {
			if engine.State().Running {
				engine.Pause()
			} else {
				engine.Start()
			}
		},
		OnReset: engine.Reset,
		OnSkip:  engine.Skip,
		OnSwitchMode: func(mode timer.Mode) {
			engine.SwitchMode(mode)
		},
		OnSelectTask: func(label string) {
			engine.SetTask(label)
		},
		OnPreferences: func() {
			prefsWindow.UpdateSettings(settings)
			prefsWindow.Show()
		},
		OnQuit: func() {
			driver.Stop()
			fyneApp.Quit()
		},
	})

	refreshTrayTasks := func(current string) {
		trayManager.SetTasks(taskLabels(taskStore), current)
	}

	activeIcon := resources.MustIcon("tray-active.svg")
	pausedIcon := resources.MustIcon("tray-paused.svg")
	trayIconFor := func(running bool) fyne.Resource {
		if running {
			return activeIcon
		}
		return pausedIcon
	}

	events := engine.Subscribe(8)
	go func() {
		for event := range events {
			event := event
			if options.Verbose {
				log.Printf("event %s: mode=%s remaining=%d running=%t",
					event.Type, event.State.Mode, event.State.RemainingSeconds, event.State.Running)
			}
			switch event.Type {
			case timer.EventModeChange:
				fyne.Do(func() {
					trayManager.Update(event.State)
					desktopApp.SetSystemTrayIcon(trayIconFor(event.State.Running))
					if settings.ShowBreakWindow && event.State.Mode.IsBreak() {
						breakWindow.Show(event.State)
					} else {
						breakWindow.Hide()
					}
				})
			case timer.EventProgress:
				fyne.Do(func() {
					trayManager.Update(event.State)
					if breakWindow.Visible() && event.State.Mode.IsBreak() {
						breakWindow.SetRemaining(event.State.RemainingSeconds)
					}
				})
			case timer.EventRunState:
				fyne.Do(func() {
					trayManager.Update(event.State)
					desktopApp.SetSystemTrayIcon(trayIconFor(event.State.Running))
				})
			case timer.EventTaskChange:
				fyne.Do(func() {
					trayManager.Update(event.State)
				})
			case timer.EventSessionLogged:
				if event.State.Task != "" {
					if err := taskStore.IncrementPomodoros(event.State.Task); err != nil {
						log.Printf("task pomodoro count: %v", err)
					}
				}
				sessions := todaySessions(store)
				fyne.Do(func() {
					trayManager.SetToday(sessions)
					refreshTrayTasks(event.State.Task)
				})
			case timer.EventReportError:
				log.Printf("record session: %s", event.Message)
			case timer.EventNotifyError:
				log.Printf("notification: %s", event.Message)
			}
		}
	}()

	desktopApp.SetSystemTrayIcon(trayIconFor(false))
	trayManager.Update(engine.State())
	trayManager.SetToday(todaySessions(store))
	refreshTrayTasks("")

	driver.Start()
	fyneApp.Run()

	driver.Stop()
	engine.Close()
	return nil
}

// applyIdlePolicy enables or disables idle pausing on the driver from the
// current settings.
func applyIdlePolicy(driver *timer.Driver, settings config.Config) {
	if settings.PauseOnIdle {
		driver.SetIdlePolicy(platform.NewIdleProvider(), time.Duration(settings.IdleAfterMinutes)*time.Minute)
		return
	}
	driver.SetIdlePolicy(nil, 0)
}

func applyAutostart(enabled bool) {
	service := platform.NewService()
	if !enabled {
		if err := service.DisableAutostart(AppName); err != nil {
			log.Printf("disable autostart: %v", err)
		}
		return
	}
	execPath, err := os.Executable()
	if err != nil {
		log.Printf("autostart: %v", err)
		return
	}
	if err := service.EnableAutostart(AppName, execPath); err != nil {
		log.Printf("enable autostart: %v", err)
	}
}

func taskLabels(store *tasks.Store) []string {
	pending, err := store.Pending()
	if err != nil {
		log.Printf("load tasks: %v", err)
		return nil
	}
	labels := make([]string, 0, len(pending))
	for _, task := range pending {
		labels = append(labels, task.Text)
	}
	return labels
}

func todaySessions(store *stats.Store) int {
	start := stats.StartOfDay(time.Now())
	totals, err := store.TotalsBetween(start, start.AddDate(0, 0, 1))
	if err != nil {
		log.Printf("stats: %v", err)
		return 0
	}
	return totals.Sessions
}
