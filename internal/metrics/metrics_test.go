package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserver_Value(t *testing.T) {
	reg := prometheus.NewRegistry()
	o, err := NewObserver("train", reg)
	require.NoError(t, err)

	o.Value("loss", 0.5)
	o.Value("loss", 1.5)
	o.Value("lr", 0.01)

	assert.Equal(t, 1.5, testutil.ToFloat64(o.prometheus.Last.WithLabelValues("loss")))
	assert.Equal(t, 2.0, testutil.ToFloat64(o.prometheus.Samples.WithLabelValues("loss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(o.prometheus.Samples.WithLabelValues("lr")))
}

func TestObserver_Prediction(t *testing.T) {
	reg := prometheus.NewRegistry()
	o, err := NewObserver("train", reg)
	require.NoError(t, err)

	o.Prediction("acc", 2, 2)
	o.Prediction("acc", 1, 3)

	assert.Equal(t, 3.0, testutil.ToFloat64(o.prometheus.Correct.WithLabelValues("acc")))
	assert.Equal(t, 5.0, testutil.ToFloat64(o.prometheus.Prediction.WithLabelValues("acc")))
}

func TestObserver_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewObserver("train", reg)
	require.NoError(t, err)

	_, err = NewObserver("train", reg)
	assert.Error(t, err)
}

func TestObserver_NoRegistry(t *testing.T) {
	o, err := NewObserver("train", nil)
	require.NoError(t, err)
	o.Value("loss", 1)
	assert.Equal(t, 1.0, testutil.ToFloat64(o.prometheus.Last.WithLabelValues("loss")))
}
