// Package animation provides the time source used by scroll simulations.
package animation

import "time"

// Clock provides time for scroll and animation stepping. The default
// implementation uses system time; tests inject a fake clock via SetClock
// to control timing deterministically.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

var active Clock = systemClock{}

// SetClock replaces the animation clock and returns a function that
// restores the clock it replaced. Typical use in tests:
//
//	restore := animation.SetClock(fake)
//	defer restore()
func SetClock(c Clock) (restore func()) {
	prev := active
	active = c
	return func() { active = prev }
}

// Now returns the current time from the active clock.
func Now() time.Time { return active.Now() }
