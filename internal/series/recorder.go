package series

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/drakos74/free-coin-series/internal/buffer"
	"github.com/drakos74/free-coin-series/internal/storage"
	"github.com/drakos74/free-coin-series/internal/storage/file"
	seriestime "github.com/drakos74/free-coin-series/internal/time"
	"github.com/drakos74/go-ex-machina/xmath"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"
)

// Observer receives every value the recorder collects.
type Observer interface {
	Value(name string, v float64)
	Prediction(name string, correct, total int)
}

// Accuracy is the cumulative outcome of a prediction series.
type Accuracy struct {
	Correct int
	Total   int
}

// Percent returns the share of correct predictions in the range [0,100].
// A series without any predictions has 0 accuracy.
func (a Accuracy) Percent() float64 {
	if a.Total == 0 {
		return 0
	}
	return 100 * float64(a.Correct) / float64(a.Total)
}

// Recorder collects named series of values and prediction outcomes
// and renders them into a periodic progress report.
// A recorder is meant to be owned by a single goroutine.
type Recorder struct {
	id       string
	title    string
	interval time.Duration

	clock    seriestime.Clock
	text     seriestime.Text
	out      io.Writer
	snapshot storage.Snapshot
	unwrap   []Unwrapper
	observer Observer

	startedAt     time.Time
	lastPrintedAt time.Time

	series      map[string]*buffer.Series
	predictions map[string]*Accuracy
	// order keeps the insertion order of the prediction series.
	order []string
}

// New creates a new recorder.
func New(opts ...Option) *Recorder {
	cfg := DefaultConfig()
	r := &Recorder{
		id:          uuid.New().String(),
		interval:    cfg.Interval,
		clock:       seriestime.SystemClock{},
		text:        seriestime.WhatTimeIsIt,
		out:         os.Stdout,
		snapshot:    file.NewSnapshot(cfg.SnapshotPath),
		unwrap:      DefaultUnwrappers(),
		series:      make(map[string]*buffer.Series),
		predictions: make(map[string]*Accuracy),
		order:       make([]string, 0),
	}
	for _, opt := range opts {
		opt(r)
	}
	now := r.clock.Now()
	r.startedAt = now
	r.lastPrintedAt = now
	log.Debug().
		Str("run", r.id).
		Str("title", r.title).
		Msg("init recorder")
	return r
}

// Collect appends the value to the named series.
// The first value ever collected marks the start of the measurement.
func (r *Recorder) Collect(name string, value interface{}) {
	if len(r.series) == 0 {
		r.startedAt = r.clock.Now()
	}
	s, ok := r.series[name]
	if !ok {
		s = buffer.NewSeries()
		r.series[name] = s
	}
	v := ToScalar(value, r.unwrap...)
	s.Push(v)
	if r.observer != nil {
		r.observer.Value(name, v)
	}
}

// CollectPrediction compares the predicted class of each example with the ground truth one.
// The class of an example is the index of its highest score.
func (r *Recorder) CollectPrediction(name string, predicted, truth xmath.Matrix) {
	acc, ok := r.predictions[name]
	if !ok {
		acc = &Accuracy{}
		r.predictions[name] = acc
		r.order = append(r.order, name)
	}
	var correct int
	for i := 0; i < len(truth) && i < len(predicted); i++ {
		p := argMax(predicted[i])
		if p >= 0 && p == argMax(truth[i]) {
			correct++
		}
	}
	acc.Correct += correct
	acc.Total += len(truth)
	if r.observer != nil {
		r.observer.Prediction(name, correct, len(truth))
	}
}

// CollectPredictionRows is CollectPrediction for plain slices.
func (r *Recorder) CollectPredictionRows(name string, predicted, truth [][]float64) {
	r.CollectPrediction(name, toMatrix(predicted), toMatrix(truth))
}

// Rate returns the length of the longest series per second since the start.
func (r *Recorder) Rate() float64 {
	return r.rate(r.clock.Now())
}

func (r *Recorder) rate(now time.Time) float64 {
	if len(r.series) == 0 {
		return 0
	}
	elapsed := seriestime.Since(r.startedAt, now)
	if elapsed == 0 {
		return 0
	}
	var longest int
	for _, s := range r.series {
		if s.Len() > longest {
			longest = s.Len()
		}
	}
	return float64(longest) / elapsed
}

// Report renders the report and saves it as the latest snapshot.
func (r *Recorder) Report() (string, error) {
	text := r.Format()
	if err := r.snapshot.Save(text); err != nil {
		return text, fmt.Errorf("could not save report snapshot: %w", err)
	}
	return text, nil
}

// Save writes the current report to the snapshot.
func (r *Recorder) Save() error {
	_, err := r.Report()
	return err
}

// String renders the report, same as Report.
func (r *Recorder) String() string {
	text, err := r.Report()
	if err != nil {
		log.Error().Err(err).Str("run", r.id).Msg("could not save report")
	}
	return text
}

// PrintEvery writes the report to the output if more than the given interval passed since the last time.
// It returns true if the report was written.
func (r *Recorder) PrintEvery(interval time.Duration) (bool, error) {
	if r.clock.Now().Sub(r.lastPrintedAt) <= interval {
		return false, nil
	}
	text, err := r.Report()
	if err != nil {
		return false, err
	}
	if _, err := fmt.Fprintln(r.out, text); err != nil {
		return false, fmt.Errorf("could not print report: %w", err)
	}
	r.lastPrintedAt = r.clock.Now()
	log.Debug().
		Str("run", r.id).
		Time("at", r.lastPrintedAt).
		Msg("printed report")
	return true, nil
}

// Print is PrintEvery with the configured interval.
func (r *Recorder) Print() (bool, error) {
	return r.PrintEvery(r.interval)
}

// Title returns the report title.
func (r *Recorder) Title() string {
	return r.title
}

// StartedAt returns the start of the measurement.
func (r *Recorder) StartedAt() time.Time {
	return r.startedAt
}

// LastPrintedAt returns the time of the last throttled report.
func (r *Recorder) LastPrintedAt() time.Time {
	return r.lastPrintedAt
}

// Values returns the values collected for the named series.
func (r *Recorder) Values(name string) []float64 {
	s, ok := r.series[name]
	if !ok {
		return nil
	}
	return s.Values()
}

// Accuracy returns the counters of the named prediction series.
func (r *Recorder) Accuracy(name string) (Accuracy, bool) {
	acc, ok := r.predictions[name]
	if !ok {
		return Accuracy{}, false
	}
	return *acc, true
}

func argMax(v []float64) int {
	if len(v) == 0 {
		return -1
	}
	return floats.MaxIdx(v)
}

func toMatrix(rows [][]float64) xmath.Matrix {
	m := xmath.Mat(len(rows))
	for i, row := range rows {
		m[i] = xmath.Vector(row)
	}
	return m
}
