// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xmetrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestTakeSnapshot(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		pr      = prometheus.NewRegistry()
		gauge   = prometheus.NewGauge(prometheus.GaugeOpts{Name: "pending"})
		counter = prometheus.NewCounterVec(prometheus.CounterOpts{Name: "fired"}, []string{"room"})
		summary = prometheus.NewSummary(prometheus.SummaryOpts{Name: "latency"})
	)

	pr.MustRegister(gauge, counter, summary)
	gauge.Set(1.0)
	counter.WithLabelValues("general").Add(2.0)
	counter.WithLabelValues("travel").Add(3.0)
	summary.Observe(0.5)

	s, err := TakeSnapshot(pr)
	require.NoError(err)
	assert.Equal(Snapshot{"pending": 1.0, "fired": 5.0}, s)
}

func TestTakeSnapshotError(t *testing.T) {
	expected := errors.New("expected")
	s, err := TakeSnapshot(prometheus.GathererFunc(func() ([]*dto.MetricFamily, error) {
		return nil, expected
	}))

	assert.Nil(t, s)
	assert.ErrorIs(t, err, expected)
}

func TestSnapshotMarshalLogObject(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		enc     = zapcore.NewMapObjectEncoder()
	)

	require.NoError(Snapshot{"b": 2.0, "a": 1.0}.MarshalLogObject(enc))
	assert.Equal(map[string]interface{}{"a": 1.0, "b": 2.0}, enc.Fields)
}
