package time

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManualClock(t *testing.T) {
	start := time.Date(2021, 3, 4, 10, 0, 0, 0, time.UTC)
	clock := NewManualClock(start)

	assert.Equal(t, start, clock.Now())

	next := clock.Add(2500 * time.Millisecond)
	assert.Equal(t, start.Add(2500*time.Millisecond), next)
	assert.Equal(t, next, clock.Now())

	clock.Set(start)
	assert.Equal(t, start, clock.Now())
}

func TestSince(t *testing.T) {

	start := time.Date(2021, 3, 4, 10, 0, 0, 0, time.UTC)

	type test struct {
		to      time.Time
		seconds float64
	}

	tests := map[string]test{
		"same-instant": {
			to:      start,
			seconds: 0,
		},
		"forward": {
			to:      start.Add(1500 * time.Millisecond),
			seconds: 1.5,
		},
		"backwards": {
			to:      start.Add(-1 * time.Second),
			seconds: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.seconds, Since(start, tt.to))
		})
	}
}

func TestWhatTimeIsIt(t *testing.T) {
	now := time.Date(2021, 3, 4, 10, 5, 6, 0, time.Local)
	assert.Equal(t, "Thu Mar  4 10:05:06 2021", WhatTimeIsIt(now))
}

func TestSystemClock(t *testing.T) {
	before := time.Now()
	now := SystemClock{}.Now()
	assert.False(t, now.Before(before))
}
