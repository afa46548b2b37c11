package ui

import "time"

// Clock paces a loop to a target frame rate by sleeping off whatever is
// left of the frame since the previous Tick.
type Clock struct {
	last  time.Time
	now   func() time.Time
	sleep func(time.Duration)
}

func NewClock() *Clock {
	return &Clock{now: time.Now, sleep: time.Sleep}
}

// Tick blocks until 1/fps has passed since the previous call and returns
// the time elapsed between the two calls. The first call never waits.
func (c *Clock) Tick(fps int) time.Duration {
	now := c.now()
	if c.last.IsZero() || fps <= 0 {
		c.last = now
		return 0
	}

	frame := time.Second / time.Duration(fps)
	if wait := frame - now.Sub(c.last); wait > 0 {
		c.sleep(wait)
		now = now.Add(wait)
	}

	elapsed := now.Sub(c.last)
	c.last = now
	return elapsed
}
