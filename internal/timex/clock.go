package timex

import "time"

// Clock reports the current time. Services read time only through a Clock
// so that quota and retraction checks can be tested deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock in the local time zone.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns T. Advance moves it forward.
type FixedClock struct {
	T time.Time
}

func (c *FixedClock) Now() time.Time { return c.T }

// Advance moves the clock by d.
func (c *FixedClock) Advance(d time.Duration) { c.T = c.T.Add(d) }

// SameDay reports whether a and b fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}
