package timer

import (
	"errors"
	"sync"
	"time"
)

// ErrIdleUnsupported indicates idle detection is not available on this system.
var ErrIdleUnsupported = errors.New("idle detection unsupported")

// IdleChecker reports the duration of user inactivity.
type IdleChecker interface {
	IdleDuration() (time.Duration, error)
}

// DriverOptions contains runtime options for a Driver.
type DriverOptions struct {
	TickInterval      time.Duration
	IdleCheckInterval time.Duration

	// OnIdlePause runs after the driver pauses the engine for an idle user.
	OnIdlePause func(idle time.Duration)
	// OnIdleError receives idle probe failures.
	OnIdleError func(err error)
}

// Driver owns the process's single recurring tick source. It calls
// Engine.Tick once per interval; pausing the engine leaves the ticker
// running and turns the ticks into no-ops. A Driver is single-use: once
// stopped it cannot be started again.
type Driver struct {
	engine  *Engine
	options DriverOptions
	stopCh  chan struct{}

	mu            sync.Mutex
	started       bool
	stopped       bool
	idleChecker   IdleChecker
	idleAfter     time.Duration
	lastIdleCheck time.Time
}

// NewDriver creates a Driver for the engine.
func NewDriver(engine *Engine, options DriverOptions) *Driver {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.IdleCheckInterval <= 0 {
		options.IdleCheckInterval = 5 * time.Second
	}
	return &Driver{
		engine:  engine,
		options: options,
		stopCh:  make(chan struct{}),
	}
}

// SetIdlePolicy enables pausing the engine once the user has been inactive
// for the given duration. A nil checker or non-positive duration disables
// the policy. Safe to call while the driver runs.
func (driver *Driver) SetIdlePolicy(checker IdleChecker, after time.Duration) {
	driver.mu.Lock()
	defer driver.mu.Unlock()
	if checker == nil || after <= 0 {
		driver.idleChecker = nil
		driver.idleAfter = 0
		return
	}
	driver.idleChecker = checker
	driver.idleAfter = after
}

// Start launches the ticking loop. Subsequent calls are no-ops.
func (driver *Driver) Start() {
	driver.mu.Lock()
	if driver.started || driver.stopped {
		driver.mu.Unlock()
		return
	}
	driver.started = true
	driver.mu.Unlock()

	go driver.run()
}

// Stop terminates the ticking loop. The engine itself is left untouched.
func (driver *Driver) Stop() {
	driver.mu.Lock()
	if !driver.started || driver.stopped {
		driver.mu.Unlock()
		return
	}
	driver.stopped = true
	driver.mu.Unlock()

	close(driver.stopCh)
}

func (driver *Driver) run() {
	ticker := time.NewTicker(driver.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-driver.stopCh:
			return
		case tickTime := <-ticker.C:
			driver.checkIdle(tickTime)
			driver.engine.Tick()
		}
	}
}

func (driver *Driver) checkIdle(now time.Time) {
	driver.mu.Lock()
	checker := driver.idleChecker
	after := driver.idleAfter
	due := driver.lastIdleCheck.IsZero() || now.Sub(driver.lastIdleCheck) >= driver.options.IdleCheckInterval
	if checker != nil && due {
		driver.lastIdleCheck = now
	}
	driver.mu.Unlock()

	if checker == nil || after <= 0 || !due {
		return
	}
	if !driver.engine.State().Running {
		return
	}

	idle, err := checker.IdleDuration()
	if err != nil {
		if errors.Is(err, ErrIdleUnsupported) {
			driver.SetIdlePolicy(nil, 0)
		}
		if driver.options.OnIdleError != nil {
			driver.options.OnIdleError(err)
		}
		return
	}
	if idle >= after {
		driver.engine.Pause()
		if driver.options.OnIdlePause != nil {
			driver.options.OnIdlePause(idle)
		}
	}
}
