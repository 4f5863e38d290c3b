// Package input turns sampled button levels into click events.
package input

// Edge detects a down→up transition of a single mouse button.
//
// Update must be called once per frame with the sampled level.
type Edge struct {
	Down    bool
	Pending bool
}

// Update records the current level and reports whether a release happened
// since the button was last seen down.
func (e *Edge) Update(down bool) (released bool) {
	e.Down = down
	if down {
		e.Pending = true
		return false
	}
	if e.Pending {
		e.Pending = false
		return true
	}
	return false
}
