package series

import (
	"fmt"
	"sort"
	"strings"

	seriestime "github.com/drakos74/free-coin-series/internal/time"
)

// LastN is the size of the recent window in the report.
const LastN = 10

// Names returns the series names in lexicographic order.
func (r *Recorder) Names() []string {
	names := make([]string, 0, len(r.series))
	for name := range r.series {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Format renders the current state of the recorder.
// It has no side effects, see Report for the snapshot.
func (r *Recorder) Format() string {
	now := r.clock.Now()

	lines := []string{""}
	if r.title != "" {
		lines = append(lines, r.title)
	}
	lines = append(lines, fmt.Sprintf("Collected %.3f sec ending %s",
		seriestime.Since(r.startedAt, now),
		r.text(now)))
	lines = append(lines, fmt.Sprintf("Max Rate %.2f/sec", r.rate(now)))
	lines = append(lines, fmt.Sprintf("%32s%12s%14s", "Name", "Avg.", "Last 10"))

	for _, name := range r.Names() {
		s := r.series[name]
		lines = append(lines, fmt.Sprintf("%32s:      %.4f      %.4f",
			Shorten(name, MaxNameLen),
			s.Avg(),
			s.Last(LastN)))
	}

	if len(r.order) > 0 {
		lines = append(lines, "Predictions:")
	}
	for _, name := range r.order {
		acc := r.predictions[name]
		lines = append(lines, fmt.Sprintf("%32s:\t%.2f%% (%d/%d)",
			Shorten(name, MaxNameLen),
			acc.Percent(),
			acc.Correct,
			acc.Total))
	}

	lines = append(lines, "\n")
	return strings.Join(lines, "\n")
}
