// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package notifier

import (
	"sync"
	"time"

	"github.com/xmidt-org/cadence/xerrors"
)

// Notifier owns at most one live Subscription at a time.  K is the identity that triggers
// rescheduling; P is the payload read at fire time.
type Notifier[K comparable, P any] struct {
	config

	lock    sync.Mutex
	current *Subscription[K, P]
}

// New constructs a Notifier with zero or more options.
func New[K comparable, P any](options ...Option) *Notifier[K, P] {
	return &Notifier[K, P]{
		config: newConfig(options),
	}
}

// Subscribe schedules onFire to run after delay.
//
// If the current Subscription has not been cancelled and has the same key, its payload and callback
// are replaced and it is returned as is, without rescheduling.  Otherwise the current Subscription
// is cancelled and a new one is scheduled against key.
//
// A same-key Subscription that has already fired is not cancelled, so subscribing again with that
// key schedules nothing and the new callback never runs.  Check Pending on the returned Subscription,
// or Unsubscribe first to schedule the same key again.
//
// The delay must be positive and onFire must be non-nil, or an error wrapping xerrors.ErrInvalidParameter
// is returned.
func (n *Notifier[K, P]) Subscribe(key K, payload P, delay time.Duration, onFire OnFire[K, P]) (*Subscription[K, P], error) {
	if err := xerrors.PositiveDuration("delay", delay); err != nil {
		return nil, err
	}

	if onFire == nil {
		return nil, xerrors.InvalidParameter("onFire", nil)
	}

	n.lock.Lock()
	defer n.lock.Unlock()

	if n.current != nil {
		if n.current.key == key && n.current.live() {
			n.current.update(payload, onFire)
			return n.current, nil
		}

		n.current.Unsubscribe()
	}

	n.current = newSubscription(n.config, key, payload, delay, onFire)
	return n.current, nil
}

// Current returns the most recent Subscription, which may have fired or been cancelled.  This
// method returns nil if Subscribe has never succeeded.
func (n *Notifier[K, P]) Current() *Subscription[K, P] {
	n.lock.Lock()
	defer n.lock.Unlock()
	return n.current
}

// UpdatePayload updates the payload of the current Subscription, if any.  This method returns
// true if there was a pending Subscription to update.
func (n *Notifier[K, P]) UpdatePayload(payload P) bool {
	n.lock.Lock()
	defer n.lock.Unlock()

	if n.current == nil || !n.current.Pending() {
		return false
	}

	n.current.UpdatePayload(payload)
	return true
}

// Unsubscribe cancels the current Subscription, if any.  This method is idempotent.
func (n *Notifier[K, P]) Unsubscribe() {
	n.lock.Lock()
	defer n.lock.Unlock()

	if n.current != nil {
		n.current.Unsubscribe()
	}
}
