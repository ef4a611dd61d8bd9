package core

import "time"

// Default clock parameters.
const (
	DefaultTickRate = 60
	DefaultMaxDelta = 100 * time.Millisecond
)

// Clock converts wall-clock time into a whole number of fixed logic ticks.
// It accumulates elapsed time and releases one tick per tick duration, so
// simulation speed is independent of the display refresh rate. A long stall
// (tab switch, suspended terminal) is clamped to maxDelta to avoid a
// spiral of catch-up ticks.
type Clock struct {
	tick     time.Duration
	maxDelta time.Duration
	acc      time.Duration
	last     time.Time
	primed   bool
}

// NewClock creates a clock running tickRate logic ticks per second.
// Non-positive arguments fall back to 60 Hz and 100ms.
func NewClock(tickRate int, maxDelta time.Duration) *Clock {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	if maxDelta <= 0 {
		maxDelta = DefaultMaxDelta
	}
	return &Clock{
		tick:     time.Second / time.Duration(tickRate),
		maxDelta: maxDelta,
	}
}

// TickDuration returns the fixed logic step.
func (c *Clock) TickDuration() time.Duration {
	return c.tick
}

// Advance records a frame at now and returns how many logic ticks are due.
// The first call only primes the clock and returns 0.
func (c *Clock) Advance(now time.Time) int {
	if !c.primed {
		c.Reset(now)
		return 0
	}

	delta := now.Sub(c.last)
	c.last = now
	if delta < 0 {
		delta = 0
	}
	if delta > c.maxDelta {
		delta = c.maxDelta
	}

	c.acc += delta
	ticks := 0
	for c.acc >= c.tick {
		c.acc -= c.tick
		ticks++
	}
	return ticks
}

// Alpha returns the leftover fraction of a tick in [0,1), useful for
// interpolating between the last two simulated states.
func (c *Clock) Alpha() float64 {
	return float64(c.acc) / float64(c.tick)
}

// Reset re-primes the clock at now and drops any accumulated time.
func (c *Clock) Reset(now time.Time) {
	c.last = now
	c.acc = 0
	c.primed = true
}
