package platform

import "time"

// IdleProvider returns the duration since last user input.
type IdleProvider interface {
	IdleDuration() (time.Duration, error)
}

// NewIdleProvider returns a platform-specific idle provider. Platforms
// without a usable input source return a provider whose probes fail with
// timer.ErrIdleUnsupported.
func NewIdleProvider() IdleProvider {
	return newIdleProvider()
}
