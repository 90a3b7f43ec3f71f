package corridor

import "time"

// Clock measures elapsed wall-clock time since it was started.
type Clock struct {
	start time.Time
	now   func() time.Time
}

// NewClock starts a clock on the system wall clock.
func NewClock() *Clock {
	return NewClockWithSource(time.Now)
}

// NewClockWithSource starts a clock that reads time from now.
func NewClockWithSource(now func() time.Time) *Clock {
	return &Clock{start: now(), now: now}
}

// ElapsedMs returns whole milliseconds since the clock started.
func (c *Clock) ElapsedMs() int64 {
	return c.now().Sub(c.start).Milliseconds()
}
