// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package counter

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	"github.com/xmidt-org/cadence/clock"
	"github.com/xmidt-org/cadence/ticker"
	"github.com/xmidt-org/cadence/xerrors"
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
)

const (
	DefaultDelay     = time.Second
	DefaultIncrement = 1
)

// Observer receives the new count after every tick
type Observer func(int)

// Option represents a configuration option for a Counter
type Option func(*Counter)

// WithClock sets the clock that drives the counter.  If nil, clock.System() is used.
func WithClock(c clock.Interface) Option {
	return func(cn *Counter) {
		cn.clock = clock.OrSystem(c)
	}
}

// WithLogger sets the zap logger.  If nil, sallust.Default() is used.
func WithLogger(l *zap.Logger) Option {
	return func(cn *Counter) {
		if l == nil {
			cn.logger = sallust.Default()
		} else {
			cn.logger = l
		}
	}
}

// WithDelay sets the initial delay between increments.  Nonpositive values select DefaultDelay.
func WithDelay(d time.Duration) Option {
	return func(cn *Counter) {
		if d > 0 {
			cn.delay = d
		} else {
			cn.delay = DefaultDelay
		}
	}
}

// WithIncrement sets the initial amount added on each tick.  Negative values select DefaultIncrement.
func WithIncrement(n int) Option {
	return func(cn *Counter) {
		if n >= 0 {
			cn.increment = n
		} else {
			cn.increment = DefaultIncrement
		}
	}
}

// WithObserver sets a callback invoked on the tick goroutine with each new count.
func WithObserver(o Observer) Option {
	return func(cn *Counter) {
		cn.observer = o
	}
}

// WithTickCounter sets the metric counting ticks of the underlying Ticker.
func WithTickCounter(c metrics.Counter) Option {
	return func(cn *Counter) {
		if c != nil {
			cn.ticks = c
		} else {
			cn.ticks = discard.NewCounter()
		}
	}
}

// WithDroppedCounter sets the metric counting ticks the underlying Ticker discarded.
func WithDroppedCounter(c metrics.Counter) Option {
	return func(cn *Counter) {
		if c != nil {
			cn.dropped = c
		} else {
			cn.dropped = discard.NewCounter()
		}
	}
}

// Counter adds an increment to a running count once per delay.
//
// Changing the increment swaps the tick action for a closure over the new amount and never
// restarts the timer, so rapid changes cannot starve the counter.  Changing the delay restarts
// the timer with the new period.
type Counter struct {
	clock    clock.Interface
	logger   *zap.Logger
	observer Observer
	ticks    metrics.Counter
	dropped  metrics.Counter
	ticker   *ticker.Ticker

	lock      sync.Mutex
	count     int
	increment int
	delay     time.Duration
}

// New creates and starts a Counter.
func New(options ...Option) (*Counter, error) {
	cn := &Counter{
		clock:     clock.System(),
		logger:    sallust.Default(),
		ticks:     discard.NewCounter(),
		dropped:   discard.NewCounter(),
		increment: DefaultIncrement,
		delay:     DefaultDelay,
	}

	for _, o := range options {
		o(cn)
	}

	t, err := ticker.Start(
		cn.delay,
		cn.step(cn.increment),
		ticker.WithClock(cn.clock),
		ticker.WithLogger(cn.logger),
		ticker.WithTickCounter(cn.ticks),
		ticker.WithDroppedCounter(cn.dropped),
	)

	if err != nil {
		return nil, err
	}

	cn.ticker = t
	return cn, nil
}

// step produces the tick action for a fixed increment.  Each call to SetIncrement installs a
// fresh step, so the amount a tick adds is always the one most recently set.
func (cn *Counter) step(increment int) ticker.Action {
	return func() {
		cn.lock.Lock()
		cn.count += increment
		count := cn.count
		cn.lock.Unlock()

		if cn.observer != nil {
			cn.observer(count)
		}
	}
}

// Count returns the current count
func (cn *Counter) Count() int {
	cn.lock.Lock()
	defer cn.lock.Unlock()
	return cn.count
}

// Reset sets the count back to zero without touching the timer.
func (cn *Counter) Reset() {
	cn.lock.Lock()
	cn.count = 0
	cn.lock.Unlock()
}

// Increment returns the amount added on each tick
func (cn *Counter) Increment() int {
	cn.lock.Lock()
	defer cn.lock.Unlock()
	return cn.increment
}

// SetIncrement changes the amount added on each subsequent tick.  Negative amounts return an error
// wrapping xerrors.ErrInvalidParameter.
func (cn *Counter) SetIncrement(n int) error {
	if n < 0 {
		return xerrors.InvalidParameter("increment", n)
	}

	cn.lock.Lock()
	cn.increment = n
	cn.ticker.SetAction(cn.step(n))
	cn.lock.Unlock()

	cn.logger.Debug("increment changed", zap.Int("increment", n))
	return nil
}

// Delay returns the time between ticks
func (cn *Counter) Delay() time.Duration {
	cn.lock.Lock()
	defer cn.lock.Unlock()
	return cn.delay
}

// SetDelay changes the time between ticks, restarting the timer.  Nonpositive delays return an
// error wrapping xerrors.ErrInvalidParameter.
func (cn *Counter) SetDelay(d time.Duration) error {
	cn.lock.Lock()
	defer cn.lock.Unlock()

	if err := cn.ticker.SetInterval(d); err != nil {
		return err
	}

	cn.delay = d
	return nil
}

// Stop halts this Counter.  This method is idempotent.
func (cn *Counter) Stop() {
	cn.ticker.Stop()
}

// Stopped returns a channel closed once the counter's tick goroutine has exited.
func (cn *Counter) Stopped() <-chan struct{} {
	return cn.ticker.Stopped()
}

// FormatDelay renders a delay for display: whole and fractional seconds with one decimal place
// at or above one second, milliseconds below.
func FormatDelay(d time.Duration) string {
	if d >= time.Second {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}

	return fmt.Sprintf("%dms", d.Milliseconds())
}
