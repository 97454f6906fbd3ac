package timer

import (
	"testing"
	"time"
)

type fakeIdleChecker struct {
	idle time.Duration
	err  error
}

func (checker *fakeIdleChecker) IdleDuration() (time.Duration, error) {
	return checker.idle, checker.err
}

func waitFor(t *testing.T, timeout time.Duration, condition func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestDriverTicksRunningEngine(t *testing.T) {
	engine := New(testConfig(), Options{})
	engine.Start()
	driver := NewDriver(engine, DriverOptions{TickInterval: 5 * time.Millisecond})

	driver.Start()
	defer driver.Stop()

	waitFor(t, 2*time.Second, func() bool {
		return engine.State().RemainingSeconds < 25*60
	})
}

func TestDriverStopHaltsTicking(t *testing.T) {
	engine := New(testConfig(), Options{})
	engine.Start()
	driver := NewDriver(engine, DriverOptions{TickInterval: 5 * time.Millisecond})
	driver.Start()

	waitFor(t, 2*time.Second, func() bool {
		return engine.State().RemainingSeconds < 25*60
	})
	driver.Stop()

	time.Sleep(30 * time.Millisecond)
	before := engine.State().RemainingSeconds
	time.Sleep(50 * time.Millisecond)
	if after := engine.State().RemainingSeconds; after != before {
		t.Fatalf("engine still ticking after Stop: %d -> %d", before, after)
	}
}

func TestDriverPausesIdleUser(t *testing.T) {
	engine := New(testConfig(), Options{})
	engine.Start()

	paused := make(chan time.Duration, 1)
	driver := NewDriver(engine, DriverOptions{
		TickInterval:      5 * time.Millisecond,
		IdleCheckInterval: time.Millisecond,
		OnIdlePause: func(idle time.Duration) {
			select {
			case paused <- idle:
			default:
			}
		},
	})
	driver.SetIdlePolicy(&fakeIdleChecker{idle: 10 * time.Minute}, 5*time.Minute)

	driver.Start()
	defer driver.Stop()

	select {
	case idle := <-paused:
		if idle != 10*time.Minute {
			t.Fatalf("idle = %v, want 10m", idle)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("idle user never paused")
	}
	if engine.State().Running {
		t.Fatal("engine still running after idle pause")
	}
}

func TestDriverDisablesIdleWhenUnsupported(t *testing.T) {
	engine := New(testConfig(), Options{})
	engine.Start()

	errors := make(chan error, 1)
	driver := NewDriver(engine, DriverOptions{
		TickInterval:      5 * time.Millisecond,
		IdleCheckInterval: time.Millisecond,
		OnIdleError: func(err error) {
			select {
			case errors <- err:
			default:
			}
		},
	})
	driver.SetIdlePolicy(&fakeIdleChecker{err: ErrIdleUnsupported}, 5*time.Minute)

	driver.Start()
	defer driver.Stop()

	select {
	case <-errors:
	case <-time.After(2 * time.Second):
		t.Fatal("unsupported probe never surfaced")
	}
	if !engine.State().Running {
		t.Fatal("unsupported idle probe paused the engine")
	}
}

func TestDriverActiveUserKeepsRunning(t *testing.T) {
	engine := New(testConfig(), Options{})
	engine.Start()

	driver := NewDriver(engine, DriverOptions{
		TickInterval:      5 * time.Millisecond,
		IdleCheckInterval: time.Millisecond,
	})
	driver.SetIdlePolicy(&fakeIdleChecker{idle: time.Second}, 5*time.Minute)

	driver.Start()
	defer driver.Stop()

	time.Sleep(60 * time.Millisecond)
	if !engine.State().Running {
		t.Fatal("active user was paused")
	}
}
