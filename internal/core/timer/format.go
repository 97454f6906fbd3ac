package timer

import "fmt"

// FormatClock renders a second count as a zero-padded MM:SS clock.
// Negative input is clamped to zero.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
