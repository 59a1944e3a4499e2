package buffer

import (
	"gonum.org/v1/gonum/stat"
)

// Series is an ordered sequence of values collected under one name.
// Values are kept in collection order and never removed.
type Series struct {
	values []float64
	stats  *Stats
}

// NewSeries creates a new empty series.
func NewSeries() *Series {
	return &Series{
		values: make([]float64, 0),
		stats:  NewStats(),
	}
}

// Push appends a value to the series.
func (s *Series) Push(v float64) {
	s.values = append(s.values, v)
	s.stats.Push(v)
}

// Len returns the number of values in the series.
func (s *Series) Len() int {
	return len(s.values)
}

// Avg returns the running mean of all values, 0 for an empty series.
func (s *Series) Avg() float64 {
	return s.stats.Avg()
}

// Last returns the mean of the last n values.
// If the series holds fewer than n values, all of them are used.
func (s *Series) Last(n int) float64 {
	if len(s.values) == 0 || n <= 0 {
		return 0
	}
	from := len(s.values) - n
	if from < 0 {
		from = 0
	}
	return stat.Mean(s.values[from:], nil)
}

// Values returns a copy of the collected values.
func (s *Series) Values() []float64 {
	vv := make([]float64, len(s.values))
	copy(vv, s.values)
	return vv
}
