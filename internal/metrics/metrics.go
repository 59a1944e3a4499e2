package metrics

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Observer mirrors the recorder values into prometheus collectors.
// It does not expose them; the caller owns the registry.
type Observer struct {
	mutex      *sync.RWMutex
	prometheus Prometheus
}

// NewObserver creates an observer and registers its collectors to the given registerer.
func NewObserver(namespace string, reg prometheus.Registerer) (*Observer, error) {
	p := NewPrometheusMetrics(namespace)
	if reg != nil {
		for _, c := range p.collectors() {
			if err := reg.Register(c); err != nil {
				return nil, fmt.Errorf("could not register collector for '%s': %w", namespace, err)
			}
		}
	}
	return &Observer{
		mutex:      new(sync.RWMutex),
		prometheus: p,
	}, nil
}

// Value records a collected value for the series.
func (o *Observer) Value(name string, v float64) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.prometheus.Last.WithLabelValues(name).Set(v)
	o.prometheus.Samples.WithLabelValues(name).Inc()
}

// Prediction records the outcome of a prediction batch for the series.
func (o *Observer) Prediction(name string, correct, total int) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.prometheus.Correct.WithLabelValues(name).Add(float64(correct))
	o.prometheus.Prediction.WithLabelValues(name).Add(float64(total))
}
