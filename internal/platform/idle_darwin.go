package platform

import (
	"time"

	"github.com/josephwaugh312/VibeFlo-sub006/internal/core/timer"
)

type idleProvider struct{}

func newIdleProvider() IdleProvider {
	return &idleProvider{}
}

func (provider *idleProvider) IdleDuration() (time.Duration, error) {
	return 0, timer.ErrIdleUnsupported
}
