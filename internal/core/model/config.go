package model

import "time"

// Work modes selectable by the user, in minutes.
const (
	PomodoroModeMinutes = 25
	StandardModeMinutes = 45

	DefaultWorkDurationMinutes = StandardModeMinutes
	BreakDurationMinutes       = 5
)

// AvailableWorkModes lists the allowed work durations in minutes.
var AvailableWorkModes = []int{PomodoroModeMinutes, StandardModeMinutes}

// TimerConfig contains runtime settings for the TimeKeeper state machine.
type TimerConfig struct {
	WorkDuration  time.Duration
	BreakDuration time.Duration
}

// DefaultTimerConfig returns the standard work/break schedule.
func DefaultTimerConfig() TimerConfig {
	return TimerConfig{
		WorkDuration:  DefaultWorkDurationMinutes * time.Minute,
		BreakDuration: BreakDurationMinutes * time.Minute,
	}
}

// IsAllowedWorkMode reports whether minutes is one of the selectable modes.
func IsAllowedWorkMode(minutes int) bool {
	for _, mode := range AvailableWorkModes {
		if mode == minutes {
			return true
		}
	}
	return false
}
