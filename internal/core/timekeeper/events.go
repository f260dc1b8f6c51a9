package timekeeper

import "time"

// State represents the current TimeKeeper phase.
type State string

const (
	StateIdle  State = "idle"
	StateWork  State = "work"
	StateBreak State = "break"
)

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventWorkStarted  EventType = "work_started"
	EventBreakStarted EventType = "break_started"
	EventBreakEnded   EventType = "break_ended"
	EventProgress     EventType = "progress"
)

// Event represents a TimeKeeper update for observers.
type Event struct {
	Type      EventType
	State     State
	Remaining time.Duration
	ExtraRest time.Duration
	At        time.Time
}
