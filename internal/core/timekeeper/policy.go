package timekeeper

// Policy answers whether user actions are permitted in the current
// phase. All checks are side-effect-free reads; the caller is expected
// to consult them both when rendering menus and again at the point of
// action, since phase can change between render and click.
type Policy struct {
	keeper *TimeKeeper
}

// NewPolicy creates a policy bound to the given keeper.
func NewPolicy(keeper *TimeKeeper) *Policy {
	return &Policy{keeper: keeper}
}

// CanQuit reports whether quitting the application is allowed. Quitting
// during a break would void the unskippable-break guarantee.
func (policy *Policy) CanQuit() bool {
	return !policy.keeper.IsBreakActive()
}

// CanDismissOverlay reports whether the overlay may be closed or
// escaped. It mirrors the blocking flag set for the break phase.
func (policy *Policy) CanDismissOverlay() bool {
	policy.keeper.mu.Lock()
	defer policy.keeper.mu.Unlock()
	return !policy.keeper.blocking
}

// CanStartWork reports whether a work-start keypress should be
// accepted. It guards the window between break expiry detection and the
// UI transition that follows.
func (policy *Policy) CanStartWork() bool {
	return !policy.keeper.IsBreakActive()
}
