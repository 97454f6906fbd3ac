package platform

import (
	"errors"
	"testing"
)

func TestInstanceLockExcludesSecondInstance(t *testing.T) {
	first, err := AcquireInstanceLock("vibeflo-test")
	if err != nil {
		t.Fatalf("AcquireInstanceLock: %v", err)
	}
	defer func() { _ = first.Release() }()

	if _, err := AcquireInstanceLock("vibeflo-test"); !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("second acquire err = %v, want ErrAlreadyRunning", err)
	}
}

func TestInstanceLockReleaseAllowsReacquire(t *testing.T) {
	first, err := AcquireInstanceLock("vibeflo-test")
	if err != nil {
		t.Fatalf("AcquireInstanceLock: %v", err)
	}
	if err := first.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}

	second, err := AcquireInstanceLock("vibeflo-test")
	if err != nil {
		t.Fatalf("reacquire after release: %v", err)
	}
	_ = second.Release()
}

func TestSanitizedAppName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"VibeFlo", "vibeflo"},
		{"  My Timer  ", "my-timer"},
		{"", "vibeflo"},
	}

	for _, tt := range tests {
		if got := sanitizedAppName(tt.in); got != tt.want {
			t.Errorf("sanitizedAppName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
