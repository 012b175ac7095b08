// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package notifier

import (
	"sync"
	"time"

	"github.com/go-kit/kit/metrics"
	"github.com/segmentio/ksuid"
	"github.com/xmidt-org/cadence/clock"
	"go.uber.org/zap"
)

// OnFire is the callback invoked when a Subscription's delay elapses.  It receives the
// subscription's key and the payload current at fire time.
type OnFire[K comparable, P any] func(K, P)

type state int

const (
	statePending state = iota
	stateFired
	stateCancelled
)

// Subscription is a single pending delayed callback.  The key is fixed for the life of the
// Subscription, while the payload may be updated any number of times before it fires.
type Subscription[K comparable, P any] struct {
	id        string
	key       K
	delay     time.Duration
	logger    *zap.Logger
	fired     metrics.Counter
	cancelled metrics.Counter
	timer     clock.Timer

	lock    sync.Mutex
	payload P
	onFire  OnFire[K, P]
	state   state

	cancel chan struct{}
	done   chan struct{}
}

func newSubscription[K comparable, P any](cfg config, key K, payload P, delay time.Duration, onFire OnFire[K, P]) *Subscription[K, P] {
	s := &Subscription[K, P]{
		id:        ksuid.New().String(),
		key:       key,
		delay:     delay,
		fired:     cfg.fired,
		cancelled: cfg.cancelled,
		payload:   payload,
		onFire:    onFire,
		state:     statePending,
		cancel:    make(chan struct{}),
		done:      make(chan struct{}),
	}

	s.logger = cfg.logger.With(
		zap.String(SubscriptionIDKey(), s.id),
		zap.Any(KeyKey(), key),
		zap.Duration(DelayKey(), delay),
	)

	s.timer = cfg.clock.NewTimer(delay)
	s.logger.Debug("subscription scheduled")
	go s.run()
	return s
}

// ID returns the unique identifier of this Subscription.
func (s *Subscription[K, P]) ID() string {
	return s.id
}

// Key returns the identity this Subscription was scheduled against.
func (s *Subscription[K, P]) Key() K {
	return s.key
}

// Delay returns the delay this Subscription was scheduled with.
func (s *Subscription[K, P]) Delay() time.Duration {
	return s.delay
}

// Payload returns the value that will be delivered if this Subscription fires now.
func (s *Subscription[K, P]) Payload() P {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.payload
}

// Pending tests if this Subscription has neither fired nor been cancelled.
func (s *Subscription[K, P]) Pending() bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.state == statePending
}

// UpdatePayload changes the value delivered when this Subscription fires.  The timer is not
// rescheduled.  Updating a Subscription that already fired or was cancelled has no visible effect.
func (s *Subscription[K, P]) UpdatePayload(payload P) {
	s.lock.Lock()
	s.payload = payload
	s.lock.Unlock()
}

// Unsubscribe cancels this Subscription.  This method is idempotent.  A Subscription that is still
// pending when this method is called never fires, even if the platform timer has already expired.
// One that already fired may be about to invoke, or still be invoking, its callback; use Done to
// wait for that.
func (s *Subscription[K, P]) Unsubscribe() {
	s.lock.Lock()
	defer s.lock.Unlock()

	previous := s.state
	if previous == stateCancelled {
		return
	}

	s.state = stateCancelled
	if previous == statePending {
		s.timer.Stop()
		close(s.cancel)
		s.cancelled.Add(1.0)
		s.logger.Debug("subscription cancelled")
	}
}

// Done returns a channel that is closed once this Subscription's goroutine has exited, either
// after the callback returned or after cancellation.
func (s *Subscription[K, P]) Done() <-chan struct{} {
	return s.done
}

// live tests if this Subscription can still be reused for the same key, i.e. it was not cancelled.
func (s *Subscription[K, P]) live() bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.state != stateCancelled
}

func (s *Subscription[K, P]) update(payload P, onFire OnFire[K, P]) {
	s.lock.Lock()
	s.payload = payload
	s.onFire = onFire
	s.lock.Unlock()
}

func (s *Subscription[K, P]) run() {
	defer close(s.done)

	select {
	case <-s.timer.C():
		s.fire()
	case <-s.cancel:
	}
}

// fire reads the payload and callback at fire time, never the values captured at scheduling.
func (s *Subscription[K, P]) fire() {
	s.lock.Lock()
	if s.state != statePending {
		s.lock.Unlock()
		return
	}

	s.state = stateFired
	payload, onFire := s.payload, s.onFire
	s.lock.Unlock()

	s.fired.Add(1.0)
	s.logger.Debug("subscription fired")
	onFire(s.key, payload)
}
