// internal/status/tracker.go
package status

// Tracker owns the last emitted Observation for one unit.
// It is not safe for concurrent use; the unit's single-flight runner serializes access.
type Tracker struct {
	layout Layout
	prev   Observation
	seen   bool
}

// NewTracker creates a tracker with no previous state.
func NewTracker(l Layout) *Tracker {
	return &Tracker{layout: l}
}

// Layout returns the layout the tracker renders with.
func (t *Tracker) Layout() Layout {
	return t.layout
}

// ShouldEmit reports whether cur differs from the stored state.
// Always true before the first commit.
func (t *Tracker) ShouldEmit(cur Observation) bool {
	if !t.seen {
		return true
	}
	return cur.PlayerCount != t.prev.PlayerCount || cur.ActiveTier != t.prev.ActiveTier
}

// Commit replaces the stored state with cur.
func (t *Tracker) Commit(cur Observation) {
	t.prev = cur
	t.seen = true
}

// Previous returns the stored state, if any.
func (t *Tracker) Previous() (Observation, bool) {
	return t.prev, t.seen
}

// Evaluate diffs, renders and commits in one step.
// On false nothing is rendered and the stored state is untouched.
func (t *Tracker) Evaluate(cur Observation) (Rendered, bool) {
	if !t.ShouldEmit(cur) {
		return Rendered{}, false
	}
	r := Render(t.layout, cur)
	t.Commit(cur)
	return r, true
}
