package core

import (
	"testing"
	"time"
)

func TestClockFirstAdvancePrimes(t *testing.T) {
	c := NewClock(60, 100*time.Millisecond)
	t0 := time.Unix(1000, 0)

	if n := c.Advance(t0); n != 0 {
		t.Errorf("first Advance() = %d, expected 0", n)
	}
	if n := c.Advance(t0.Add(50 * time.Millisecond)); n != 3 {
		t.Errorf("Advance(+50ms) = %d, expected 3", n)
	}
}

func TestClockIndependentOfFrameRate(t *testing.T) {
	tests := []struct {
		name  string
		frame time.Duration
	}{
		{"144hz", time.Second / 144},
		{"60hz", time.Second / 60},
		{"30hz", time.Second / 30},
		{"10ms", 10 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewClock(60, 100*time.Millisecond)
			now := time.Unix(0, 0)
			c.Advance(now)

			total := 0
			end := now.Add(time.Second)
			for now.Before(end) {
				now = now.Add(tc.frame)
				if now.After(end) {
					now = end
				}
				total += c.Advance(now)
			}
			if total < 59 || total > 60 {
				t.Errorf("ticks over one second = %d, expected 60", total)
			}
		})
	}
}

func TestClockClampsLongStall(t *testing.T) {
	c := NewClock(60, 100*time.Millisecond)
	t0 := time.Unix(0, 0)
	c.Advance(t0)

	// A 5 second stall must not produce 300 catch-up ticks
	n := c.Advance(t0.Add(5 * time.Second))
	if n != 6 {
		t.Errorf("Advance after stall = %d, expected 6 (100ms worth)", n)
	}
}

func TestClockBackwardsTime(t *testing.T) {
	c := NewClock(60, 0)
	t0 := time.Unix(10, 0)
	c.Advance(t0)
	if n := c.Advance(t0.Add(-time.Second)); n != 0 {
		t.Errorf("Advance backwards = %d, expected 0", n)
	}
}

func TestClockAlphaAndReset(t *testing.T) {
	c := NewClock(60, 0)
	t0 := time.Unix(0, 0)
	c.Advance(t0)
	c.Advance(t0.Add(c.TickDuration() / 2))

	if a := c.Alpha(); a < 0.49 || a > 0.51 {
		t.Errorf("Alpha() = %f, expected ~0.5", a)
	}

	c.Reset(t0.Add(time.Hour))
	if c.Alpha() != 0 {
		t.Errorf("Alpha() after Reset = %f, expected 0", c.Alpha())
	}
	if n := c.Advance(t0.Add(time.Hour)); n != 0 {
		t.Errorf("Advance at reset time = %d, expected 0", n)
	}
}

func TestClockDefaults(t *testing.T) {
	c := NewClock(0, 0)
	if c.TickDuration() != time.Second/60 {
		t.Errorf("TickDuration() = %v, expected 1/60s", c.TickDuration())
	}
}
