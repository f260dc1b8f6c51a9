package timeutil

import (
	"fmt"
	"time"
)

// FormatClock renders a duration as MM:SS. Negative values clamp to
// 00:00, matching how callers treat non-positive remaining time.
func FormatClock(value time.Duration) string {
	if value < 0 {
		value = 0
	}
	seconds := int(value.Seconds())
	minutes := seconds / 60
	seconds = seconds % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// FormatExtraRest renders an elapsed rest duration, adding an hour
// component once rest exceeds an hour.
func FormatExtraRest(elapsed time.Duration) string {
	if elapsed < 0 {
		elapsed = 0
	}
	total := int(elapsed.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	if hours > 0 {
		return fmt.Sprintf("+%dh %02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("+%02d:%02d", minutes, seconds)
}
