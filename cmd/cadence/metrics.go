// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/go-kit/kit/metrics"
	"github.com/xmidt-org/cadence/xmetrics"
	"go.uber.org/zap"
)

// Names for our metrics
const (
	TickCount                  = "counter_tick_count"
	DroppedTickCount           = "counter_dropped_tick_count"
	NotificationFiredCount     = "notification_fired_count"
	NotificationCancelledCount = "notification_cancelled_count"
)

// Metrics returns the counters this application preregisters
func Metrics() []xmetrics.Metric {
	return []xmetrics.Metric{
		{
			Name: TickCount,
			Help: "The number of ticks that ran the counter's action",
		},
		{
			Name: DroppedTickCount,
			Help: "The number of ticks discarded after a stop or an interval change",
		},
		{
			Name: NotificationFiredCount,
			Help: "The number of welcome notifications delivered",
		},
		{
			Name: NotificationCancelledCount,
			Help: "The number of welcome notifications cancelled before delivery",
		},
	}
}

// Measures is the set of go-kit counters handed to the components
type Measures struct {
	Ticks        metrics.Counter
	DroppedTicks metrics.Counter
	Fired        metrics.Counter
	Cancelled    metrics.Counter
}

// NewMeasures realizes the application's metrics from a registry
func NewMeasures(r xmetrics.Registry) Measures {
	return Measures{
		Ticks:        r.NewCounter(TickCount),
		DroppedTicks: r.NewCounter(DroppedTickCount),
		Fired:        r.NewCounter(NotificationFiredCount),
		Cancelled:    r.NewCounter(NotificationCancelledCount),
	}
}

func provideRegistry(c Config) (xmetrics.Registry, error) {
	o := c.Metrics
	o.Metrics = append(Metrics(), o.Metrics...)
	return xmetrics.NewRegistry(&o)
}

// logSnapshot writes the current value of every metric in r
func logSnapshot(logger *zap.Logger, r xmetrics.Registry) {
	s, err := xmetrics.TakeSnapshot(r)
	if err != nil {
		logger.Error("unable to gather metrics", zap.Error(err))
		return
	}

	logger.Info("metrics", zap.Object("values", s))
}
