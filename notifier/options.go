// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package notifier

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	"github.com/xmidt-org/cadence/clock"
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
)

// config holds the non-generic configuration shared by every Notifier
type config struct {
	clock     clock.Interface
	logger    *zap.Logger
	fired     metrics.Counter
	cancelled metrics.Counter
}

// Option represents a configuration option for a Notifier
type Option func(*config)

// WithClock sets the clock used to schedule delayed callbacks.  If nil, clock.System() is used.
func WithClock(c clock.Interface) Option {
	return func(cfg *config) {
		cfg.clock = clock.OrSystem(c)
	}
}

// WithLogger sets the zap logger.  If nil, sallust.Default() is used.
func WithLogger(l *zap.Logger) Option {
	return func(cfg *config) {
		if l == nil {
			cfg.logger = sallust.Default()
		} else {
			cfg.logger = l
		}
	}
}

// WithFiredCounter sets the counter incremented each time a callback fires.
func WithFiredCounter(c metrics.Counter) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.fired = c
		} else {
			cfg.fired = discard.NewCounter()
		}
	}
}

// WithCancelledCounter sets the counter incremented each time a pending callback is cancelled.
func WithCancelledCounter(c metrics.Counter) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.cancelled = c
		} else {
			cfg.cancelled = discard.NewCounter()
		}
	}
}

func newConfig(options []Option) config {
	cfg := config{
		clock:     clock.System(),
		logger:    sallust.Default(),
		fired:     discard.NewCounter(),
		cancelled: discard.NewCounter(),
	}

	for _, o := range options {
		o(&cfg)
	}

	return cfg
}
