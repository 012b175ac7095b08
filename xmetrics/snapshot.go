// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xmetrics

import (
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"go.uber.org/zap/zapcore"
)

// Snapshot holds the gathered value of each counter or gauge family, keyed by fully qualified name.
// Families with more than one series are summed.
type Snapshot map[string]float64

// TakeSnapshot gathers the current values from g.
func TakeSnapshot(g prometheus.Gatherer) (Snapshot, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}

	s := make(Snapshot, len(families))
	for _, mf := range families {
		var total float64
		switch mf.GetType() {
		case dto.MetricType_COUNTER:
			for _, m := range mf.GetMetric() {
				total += m.GetCounter().GetValue()
			}

		case dto.MetricType_GAUGE:
			for _, m := range mf.GetMetric() {
				total += m.GetGauge().GetValue()
			}

		default:
			continue
		}

		s[mf.GetName()] = total
	}

	return s, nil
}

// MarshalLogObject allows a Snapshot to be logged with zap.Object.  Keys are written in sorted order.
func (s Snapshot) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}

	sort.Strings(names)
	for _, name := range names {
		enc.AddFloat64(name, s[name])
	}

	return nil
}
