package core

import "time"

// processStart anchors every event timestamp to one monotonic origin.
var processStart = time.Now()

// Timestamp returns milliseconds elapsed since process start, read from the
// monotonic clock. Wall clock adjustments never move it backwards.
func Timestamp() int64 {
	return time.Since(processStart).Milliseconds()
}

type Clock struct {
	startTime time.Time
	elapsed   float64
}

func NewClock() *Clock {
	return &Clock{}
}

// Updates the provided clock. Should be called just before checking elapsed time.
// Has no effect on non-started clocks.
func (c *Clock) Update() {
	if !c.startTime.IsZero() {
		c.elapsed = time.Since(c.startTime).Seconds()
	}
}

// Starts the provided clock. Resets elapsed time.
func (c *Clock) Start() {
	c.startTime = time.Now()
	c.elapsed = 0
}

// Stops the provided clock. Does not reset elapsed time.
func (c *Clock) Stop() {
	c.startTime = time.Time{}
}

// Elapsed reports seconds since Start as of the last Update.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}
