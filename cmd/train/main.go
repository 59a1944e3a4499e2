package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/drakos74/free-coin-series/internal/metrics"
	"github.com/drakos74/free-coin-series/internal/series"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"
)

var CLI struct {
	Title    string        `short:"t" help:"Title of the progress report" default:"softmax"`
	Steps    int           `short:"s" help:"Number of training steps" default:"2000"`
	Batch    int           `short:"b" help:"Batch size" default:"64"`
	Rate     float64       `help:"Learning rate" default:"0.1"`
	Seed     int64         `help:"Random seed" default:"1"`
	Interval time.Duration `short:"i" help:"Minimum time between two reports" default:"4s"`
	Snapshot string        `help:"File holding the last report, empty to disable" default:".last_summary.log"`
	Delay    time.Duration `help:"Pause after each step" default:"5ms"`
	Verbose  bool          `short:"v" help:"Enable debug logging"`
}

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {
	kong.Parse(&CLI,
		kong.Name("train"),
		kong.Description("Train a toy softmax classifier and report the progress."))

	if CLI.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := run(); err != nil {
		log.Error().Err(err).Msg("training failed")
		os.Exit(1)
	}
}

func run() error {
	if CLI.Steps <= 0 || CLI.Batch <= 0 {
		return fmt.Errorf("steps and batch must be positive: %d %d", CLI.Steps, CLI.Batch)
	}

	registry := prometheus.NewRegistry()
	observer, err := metrics.NewObserver("train", registry)
	if err != nil {
		return fmt.Errorf("could not init metrics: %w", err)
	}

	recorder := series.New(
		series.FromConfig(series.Config{
			Title:        CLI.Title,
			Interval:     CLI.Interval,
			SnapshotPath: CLI.Snapshot,
		}),
		series.WithObserver(observer),
	)

	rnd := rand.New(rand.NewSource(CLI.Seed))
	model := newSoftmax(3, 2, CLI.Rate, rnd)

	log.Info().
		Int("steps", CLI.Steps).
		Int("batch", CLI.Batch).
		Str("snapshot", CLI.Snapshot).
		Msg("start training")

	for step := 1; step <= CLI.Steps; step++ {
		x, y := batch(CLI.Batch, rnd)
		loss, p := model.step(x, y)

		recorder.Collect("loss", loss)
		recorder.Collect("weights/norm", mat.Norm(model.w, 2))
		recorder.CollectPrediction("train", toMatrix(p), toMatrix(y))

		if _, err := recorder.Print(); err != nil {
			return fmt.Errorf("could not report step %d: %w", step, err)
		}
		time.Sleep(CLI.Delay)
	}

	// evaluation on a fresh batch
	x, y := batch(10*CLI.Batch, rnd)
	recorder.CollectPrediction("eval", toMatrix(model.predict(x)), toMatrix(y))

	report, err := recorder.Report()
	if err != nil {
		log.Warn().Err(err).Str("path", CLI.Snapshot).Msg("could not save snapshot")
	}
	fmt.Println(report)
	return logMetrics(registry)
}

// logMetrics logs the totals the observer mirrored into the registry.
func logMetrics(registry prometheus.Gatherer) error {
	families, err := registry.Gather()
	if err != nil {
		return fmt.Errorf("could not gather metrics: %w", err)
	}
	for _, family := range families {
		for _, m := range family.GetMetric() {
			var series string
			for _, label := range m.GetLabel() {
				if label.GetName() == "series" {
					series = label.GetValue()
				}
			}
			var value float64
			switch {
			case m.GetCounter() != nil:
				value = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				value = m.GetGauge().GetValue()
			}
			log.Info().
				Str("metric", family.GetName()).
				Str("series", series).
				Float64("value", value).
				Msg("metrics")
		}
	}
	return nil
}
