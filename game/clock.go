package game

import "time"

// Clock maps wall-clock time to frame deltas
type Clock struct {
	TargetTPS int
	// MaxDelta caps a single frame so a stall does not launch the puck through a wall
	MaxDelta float64

	last time.Time
}

// NewClock creates a clock for the given update rate
func NewClock(targetTPS int) *Clock {
	return &Clock{TargetTPS: targetTPS, MaxDelta: 0.1}
}

// FixedDelta returns the nominal frame duration
func (c *Clock) FixedDelta() float64 {
	if c.TargetTPS <= 0 {
		return 0
	}
	return 1.0 / float64(c.TargetTPS)
}

// Tick returns the seconds elapsed since the previous tick, clamped to MaxDelta.
// The first tick returns FixedDelta.
func (c *Clock) Tick(now time.Time) float64 {
	if c.last.IsZero() {
		c.last = now
		return c.FixedDelta()
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt < 0 {
		return 0
	}
	if dt > c.MaxDelta {
		dt = c.MaxDelta
	}
	return dt
}
