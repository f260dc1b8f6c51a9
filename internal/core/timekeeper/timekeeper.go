package timekeeper

import (
	"sync"
	"time"

	"takebreak/internal/core/model"
)

// Config contains runtime options for TimeKeeper.
type Config struct {
	// Now supplies timestamps for ticks and remaining-time queries.
	// Defaults to time.Now.
	Now func() time.Time
}

// TimeKeeper is a state machine that tracks work and break phases.
//
// At most one of workEnd / breakEnd is set at any time. Both zero means
// the idle phase, which covers "never started" and "resting after a
// break" alike; the latter is marked by extraRestStart. TimeKeeper does
// no scheduling of its own: transitions happen only inside Tick, driven
// by the caller's ticker.
type TimeKeeper struct {
	mu             sync.Mutex
	config         model.TimerConfig
	now            func() time.Time
	workEnd        time.Time
	breakEnd       time.Time
	extraRestStart time.Time
	blocking       bool
	events         []chan Event
	closed         bool
}

// New creates a TimeKeeper with the provided configuration.
func New(config model.TimerConfig, options Config) *TimeKeeper {
	if config.WorkDuration <= 0 {
		config.WorkDuration = model.DefaultTimerConfig().WorkDuration
	}
	if config.BreakDuration <= 0 {
		config.BreakDuration = model.DefaultTimerConfig().BreakDuration
	}
	clock := options.Now
	if clock == nil {
		clock = time.Now
	}
	return &TimeKeeper{
		config: config,
		now:    clock,
	}
}

// Subscribe registers a new observer channel.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	keeper.events = append(keeper.events, ch)
	keeper.mu.Unlock()
	return ch
}

// Close shuts down all observer channels.
func (keeper *TimeKeeper) Close() {
	keeper.mu.Lock()
	if keeper.closed {
		keeper.mu.Unlock()
		return
	}
	keeper.closed = true
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// StartWork begins a work session of the given duration. The request is
// rejected while a break is active; callers are expected to consult
// CanStartWork first, but this check is the authoritative one.
func (keeper *TimeKeeper) StartWork(duration time.Duration) bool {
	keeper.mu.Lock()
	if !keeper.breakEnd.IsZero() {
		keeper.mu.Unlock()
		return false
	}
	if duration <= 0 {
		duration = keeper.config.WorkDuration
	}
	now := keeper.now()
	keeper.workEnd = now.Add(duration)
	keeper.extraRestStart = time.Time{}
	keeper.mu.Unlock()

	keeper.emit(Event{
		Type:      EventWorkStarted,
		State:     StateWork,
		Remaining: duration,
		At:        now,
	})
	return true
}

// SetWorkDuration updates the configured work duration. The change
// applies to the next work session; a running session keeps its end time.
func (keeper *TimeKeeper) SetWorkDuration(duration time.Duration) {
	if duration <= 0 {
		return
	}
	keeper.mu.Lock()
	keeper.config.WorkDuration = duration
	keeper.mu.Unlock()
}

// Tick advances the state machine to the current time, performing the
// work-to-break and break-to-idle transitions when their end times have
// passed, and emits progress for whichever phase is active.
func (keeper *TimeKeeper) Tick() {
	keeper.mu.Lock()
	now := keeper.now()

	if !keeper.workEnd.IsZero() && !now.Before(keeper.workEnd) {
		keeper.workEnd = time.Time{}
		keeper.breakEnd = now.Add(keeper.config.BreakDuration)
		keeper.blocking = true
		keeper.emitLocked(Event{
			Type:      EventBreakStarted,
			State:     StateBreak,
			Remaining: keeper.config.BreakDuration,
			At:        now,
		})
		keeper.mu.Unlock()
		return
	}

	if !keeper.breakEnd.IsZero() && !now.Before(keeper.breakEnd) {
		keeper.breakEnd = time.Time{}
		keeper.blocking = false
		keeper.extraRestStart = now
		keeper.emitLocked(Event{
			Type:  EventBreakEnded,
			State: StateIdle,
			At:    now,
		})
		keeper.mu.Unlock()
		return
	}

	switch {
	case !keeper.workEnd.IsZero():
		keeper.emitLocked(Event{
			Type:      EventProgress,
			State:     StateWork,
			Remaining: keeper.workEnd.Sub(now),
			At:        now,
		})
	case !keeper.breakEnd.IsZero():
		keeper.emitLocked(Event{
			Type:      EventProgress,
			State:     StateBreak,
			Remaining: keeper.breakEnd.Sub(now),
			At:        now,
		})
	case !keeper.extraRestStart.IsZero():
		keeper.emitLocked(Event{
			Type:      EventProgress,
			State:     StateIdle,
			ExtraRest: now.Sub(keeper.extraRestStart),
			At:        now,
		})
	}
	keeper.mu.Unlock()
}

// State returns the current phase.
func (keeper *TimeKeeper) State() State {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	switch {
	case !keeper.workEnd.IsZero():
		return StateWork
	case !keeper.breakEnd.IsZero():
		return StateBreak
	default:
		return StateIdle
	}
}

// IsWorkActive reports whether a work session is running.
func (keeper *TimeKeeper) IsWorkActive() bool {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return !keeper.workEnd.IsZero()
}

// IsBreakActive reports whether a break is running.
func (keeper *TimeKeeper) IsBreakActive() bool {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return !keeper.breakEnd.IsZero()
}

// IsWorkExpired reports whether the work session has reached its end
// time but the transition tick has not run yet.
func (keeper *TimeKeeper) IsWorkExpired() bool {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.workEnd.IsZero() {
		return false
	}
	return !keeper.now().Before(keeper.workEnd)
}

// IsBreakExpired reports whether the break has reached its end time but
// the transition tick has not run yet.
func (keeper *TimeKeeper) IsBreakExpired() bool {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.breakEnd.IsZero() {
		return false
	}
	return !keeper.now().Before(keeper.breakEnd)
}

// WorkRemaining returns the time left in the work session. The result
// may be non-positive between expiry and the transition tick; callers
// must treat non-positive as expired.
func (keeper *TimeKeeper) WorkRemaining() (time.Duration, bool) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.workEnd.IsZero() {
		return 0, false
	}
	return keeper.workEnd.Sub(keeper.now()), true
}

// BreakRemaining returns the time left in the break.
func (keeper *TimeKeeper) BreakRemaining() (time.Duration, bool) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.breakEnd.IsZero() {
		return 0, false
	}
	return keeper.breakEnd.Sub(keeper.now()), true
}

// ExtraRestElapsed returns how long the voluntary rest after the last
// break has lasted. It is informational only and never blocks anything.
func (keeper *TimeKeeper) ExtraRestElapsed() (time.Duration, bool) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.extraRestStart.IsZero() {
		return 0, false
	}
	return keeper.now().Sub(keeper.extraRestStart), true
}

func (keeper *TimeKeeper) emit(event Event) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.emitLocked(event)
}

func (keeper *TimeKeeper) emitLocked(event Event) {
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
}
