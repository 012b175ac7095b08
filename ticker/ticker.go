// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package ticker

import (
	"sync"
	"time"

	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	"github.com/segmentio/ksuid"
	"github.com/xmidt-org/cadence/clock"
	"github.com/xmidt-org/cadence/xerrors"
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
)

// Action is the work performed on each tick.  Actions run on the Ticker's dispatch goroutine
// and should return promptly, as the next tick is not dispatched until the current one returns.
type Action func()

func noop() {}

func orNoop(a Action) Action {
	if a != nil {
		return a
	}

	return noop
}

// Ticker invokes its current Action once per interval until stopped.
//
// A single goroutine dispatches every tick, so actions for the same Ticker never overlap.
// Each underlying clock.Ticker is tagged with a generation.  SetInterval and Stop bump or
// close that generation under the lock, which causes any tick already queued by a replaced
// or stopped clock.Ticker to be dropped rather than dispatched.  Dropped ticks are counted.
type Ticker struct {
	id      string
	clock   clock.Interface
	logger  *zap.Logger
	ticks   metrics.Counter
	dropped metrics.Counter

	lock       sync.Mutex
	action     Action
	interval   time.Duration
	source     clock.Ticker
	generation uint64
	stopped    bool

	reset chan struct{}
	stop  chan struct{}
	done  chan struct{}
}

// Start begins invoking action every interval.  The interval must be positive, or an error wrapping
// xerrors.ErrInvalidParameter is returned.  A nil action is legal and simply does nothing on each tick.
func Start(interval time.Duration, action Action, options ...Option) (*Ticker, error) {
	if err := xerrors.PositiveDuration("interval", interval); err != nil {
		return nil, err
	}

	t := &Ticker{
		id:       ksuid.New().String(),
		clock:    clock.System(),
		logger:   sallust.Default(),
		ticks:    discard.NewCounter(),
		dropped:  discard.NewCounter(),
		action:   orNoop(action),
		interval: interval,
		reset:    make(chan struct{}, 1),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}

	for _, o := range options {
		o(t)
	}

	t.logger = t.logger.With(zap.String(IDKey(), t.id))
	t.source = t.clock.NewTicker(interval)

	t.logger.Debug("ticker started", zap.Duration(IntervalKey(), interval))
	go t.run(t.source, t.generation)
	return t, nil
}

// ID returns the unique identifier of this Ticker, which is also attached to its log entries.
func (t *Ticker) ID() string {
	return t.id
}

// Interval returns the current period of this Ticker.
func (t *Ticker) Interval() time.Duration {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.interval
}

// SetAction replaces the action invoked by subsequent ticks.  The underlying timer is not
// restarted.  A nil action is treated as a no-op.
//
// A tick that had already read the previous action when this method was called may still be
// about to invoke it.  Every tick that reads the action after this method returns gets the new one.
func (t *Ticker) SetAction(action Action) {
	t.lock.Lock()
	t.action = orNoop(action)
	t.lock.Unlock()
}

// SetInterval stops the current underlying timer and starts a new one with the given period.
// The schedule restarts at the time of this call.  A nonpositive interval returns an error wrapping
// xerrors.ErrInvalidParameter and leaves the Ticker unchanged.  Calling this method on a stopped
// Ticker does nothing.
func (t *Ticker) SetInterval(interval time.Duration) error {
	if err := xerrors.PositiveDuration("interval", interval); err != nil {
		return err
	}

	t.lock.Lock()
	defer t.lock.Unlock()
	if t.stopped {
		return nil
	}

	t.source.Stop()
	t.source = t.clock.NewTicker(interval)
	t.interval = interval
	t.generation++

	select {
	case t.reset <- struct{}{}:
	default:
		// the dispatch goroutine has yet to consume an earlier reset, and will pick up this source when it does
	}

	t.logger.Debug("ticker interval changed", zap.Duration(IntervalKey(), interval))
	return nil
}

// Stop halts this Ticker.  This method is idempotent.  Once it returns, no tick is dispatched,
// even if the platform already queued one.  A tick that was already dispatched may be about to
// start or still running its action, as Stop does not wait for it; use Stopped for that.
func (t *Ticker) Stop() {
	t.lock.Lock()
	defer t.lock.Unlock()
	if t.stopped {
		return
	}

	t.stopped = true
	t.source.Stop()
	close(t.stop)
	t.logger.Debug("ticker stopped")
}

// Stopped returns a channel that is closed once the dispatch goroutine has exited after Stop.
func (t *Ticker) Stopped() <-chan struct{} {
	return t.done
}

func (t *Ticker) run(source clock.Ticker, generation uint64) {
	defer close(t.done)

	for {
		select {
		case <-source.C():
			t.dispatch(generation)

		case <-t.reset:
			t.drain(source)
			t.lock.Lock()
			source, generation = t.source, t.generation
			t.lock.Unlock()

		case <-t.stop:
			t.drain(source)
			return
		}
	}
}

// drain discards a tick that a replaced or stopped source queued before it was stopped
func (t *Ticker) drain(source clock.Ticker) {
	select {
	case <-source.C():
		t.dropped.Add(1.0)
	default:
	}
}

// dispatch is the trampoline registered with the platform timer.  It reads the current action
// at fire time rather than capturing it when the timer was created.  The action runs after the
// lock is released so that it may call back into this Ticker.
func (t *Ticker) dispatch(generation uint64) {
	t.lock.Lock()
	if t.stopped || t.generation != generation {
		t.lock.Unlock()
		t.dropped.Add(1.0)
		return
	}

	action := t.action
	t.lock.Unlock()

	t.ticks.Add(1.0)
	action()
}
