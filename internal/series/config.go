package series

import (
	"io"
	"time"

	"github.com/drakos74/free-coin-series/internal/storage"
	"github.com/drakos74/free-coin-series/internal/storage/file"
	seriestime "github.com/drakos74/free-coin-series/internal/time"
)

// DefaultInterval is the minimum time between two throttled reports.
const DefaultInterval = 4 * time.Second

// Config is the static configuration of a recorder.
type Config struct {
	Title string
	// Interval is the throttle interval used by Print.
	Interval time.Duration
	// SnapshotPath is the file the last report is written to.
	// An empty path disables the snapshot.
	SnapshotPath string
}

// DefaultConfig returns the configuration a plain New() recorder uses.
func DefaultConfig() Config {
	return Config{
		Interval:     DefaultInterval,
		SnapshotPath: storage.SnapshotFile,
	}
}

// Option customises the recorder on creation.
type Option func(r *Recorder)

// FromConfig applies all the fields of the given config.
func FromConfig(cfg Config) Option {
	return func(r *Recorder) {
		r.title = cfg.Title
		if cfg.Interval > 0 {
			r.interval = cfg.Interval
		}
		if cfg.SnapshotPath == "" {
			r.snapshot = storage.NewVoidSnapshot()
		} else {
			r.snapshot = file.NewSnapshot(cfg.SnapshotPath)
		}
	}
}

// WithTitle sets the title line of the report.
func WithTitle(title string) Option {
	return func(r *Recorder) {
		r.title = title
	}
}

// WithClock sets the time source.
func WithClock(clock seriestime.Clock) Option {
	return func(r *Recorder) {
		r.clock = clock
	}
}

// WithTimeText sets the renderer for the report timestamp.
func WithTimeText(text seriestime.Text) Option {
	return func(r *Recorder) {
		r.text = text
	}
}

// WithWriter sets the output of the throttled reports.
func WithWriter(w io.Writer) Option {
	return func(r *Recorder) {
		r.out = w
	}
}

// WithSnapshot sets the sink for the last rendered report.
func WithSnapshot(snapshot storage.Snapshot) Option {
	return func(r *Recorder) {
		r.snapshot = snapshot
	}
}

// WithUnwrap registers additional unwrap adapters for Collect.
// They are tried after the default ones.
func WithUnwrap(unwrap ...Unwrapper) Option {
	return func(r *Recorder) {
		r.unwrap = append(r.unwrap, unwrap...)
	}
}

// WithObserver mirrors every collection to the given observer.
func WithObserver(observer Observer) Option {
	return func(r *Recorder) {
		r.observer = observer
	}
}
