package time

import (
	"sync"
	"time"
)

// TextLayout is the layout used to render the current time in reports.
const TextLayout = "Mon Jan _2 15:04:05 2006"

// Clock is the source of 'now' for the recorder.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct {
}

// Now returns the current wall clock time.
func (c SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a clock that only moves when told to.
// It is mostly useful for tests that depend on elapsed time.
type ManualClock struct {
	lock *sync.Mutex
	now  time.Time
}

// NewManualClock creates a new manual clock starting at the given time.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{
		lock: new(sync.Mutex),
		now:  start,
	}
}

// Now returns the time the clock currently points at.
func (c *ManualClock) Now() time.Time {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.now
}

// Add moves the clock forward by the given duration.
func (c *ManualClock) Add(d time.Duration) time.Time {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

// Set points the clock to the given time.
func (c *ManualClock) Set(t time.Time) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.now = t
}

// Text renders a time instance as human readable text.
type Text func(t time.Time) string

// WhatTimeIsIt renders the given time in local time as human readable text.
var WhatTimeIsIt Text = func(t time.Time) string {
	return t.Local().Format(TextLayout)
}

// Since returns the seconds elapsed between from and to.
// NOTE : a negative duration is clamped to 0, e.g. when the clock was set backwards.
func Since(from, to time.Time) float64 {
	d := to.Sub(from)
	if d < 0 {
		return 0
	}
	return d.Seconds()
}
