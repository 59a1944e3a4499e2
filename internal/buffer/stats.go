package buffer

// Stats keeps the running mean of a sequence of numbers.
// None of the values pushed are retained.
type Stats struct {
	count int
	mean  float64
}

// NewStats creates a new Stats.
func NewStats() *Stats {
	return &Stats{}
}

// Push adds another element to the set.
func (s *Stats) Push(v float64) {
	s.count++
	s.mean += (v - s.mean) / float64(s.count)
}

// Count returns the number of elements.
func (s Stats) Count() int {
	return s.count
}

// Avg returns the average value of the set, 0 if the set is empty.
func (s Stats) Avg() float64 {
	return s.mean
}
