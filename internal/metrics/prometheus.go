package metrics

import "github.com/prometheus/client_golang/prometheus"

const (
	seriesLabel = "series"
)

// Prometheus holds the collectors mirroring a recorder.
type Prometheus struct {
	Last       *prometheus.GaugeVec
	Samples    *prometheus.CounterVec
	Correct    *prometheus.CounterVec
	Prediction *prometheus.CounterVec
}

// NewPrometheusMetrics creates the collectors under the given namespace.
func NewPrometheusMetrics(namespace string) Prometheus {
	return Prometheus{
		Last: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "series_last",
				Help:      "last value collected for the series",
			}, []string{seriesLabel}),
		Samples: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "series_samples_total",
				Help:      "number of values collected for the series",
			}, []string{seriesLabel}),
		Correct: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "prediction_correct_total",
				Help:      "number of correct predictions",
			}, []string{seriesLabel}),
		Prediction: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "prediction_total",
				Help:      "number of predictions",
			}, []string{seriesLabel}),
	}
}

func (p Prometheus) collectors() []prometheus.Collector {
	return []prometheus.Collector{p.Last, p.Samples, p.Correct, p.Prediction}
}
