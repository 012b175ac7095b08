// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package ticker

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	"github.com/xmidt-org/cadence/clock"
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
)

// Option represents a configuration option for a Ticker
type Option func(*Ticker)

// WithClock sets the clock used to create the underlying platform tickers.  If nil,
// clock.System() is used.
func WithClock(c clock.Interface) Option {
	return func(t *Ticker) {
		t.clock = clock.OrSystem(c)
	}
}

// WithLogger sets the zap logger for this Ticker.  If nil, sallust.Default() is used.
func WithLogger(l *zap.Logger) Option {
	return func(t *Ticker) {
		if l == nil {
			t.logger = sallust.Default()
		} else {
			t.logger = l
		}
	}
}

// WithTickCounter sets the counter incremented each time an action is invoked.
func WithTickCounter(c metrics.Counter) Option {
	return func(t *Ticker) {
		if c != nil {
			t.ticks = c
		} else {
			t.ticks = discard.NewCounter()
		}
	}
}

// WithDroppedCounter sets the counter incremented each time a tick is discarded, either because
// it was queued by a timer that SetInterval replaced or because it arrived after Stop.
func WithDroppedCounter(c metrics.Counter) Option {
	return func(t *Ticker) {
		if c != nil {
			t.dropped = c
		} else {
			t.dropped = discard.NewCounter()
		}
	}
}
