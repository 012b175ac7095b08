// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package notifier schedules one-shot delayed callbacks tied to an identity key.

A Notifier holds at most one live Subscription.  Subscribing with a different key cancels
the pending callback and schedules a new one; subscribing with the same key leaves the timer
alone.  The payload delivered to the callback is whatever value the subscription holds when
the timer fires, so UpdatePayload never reschedules and never produces stale data.
*/
package notifier
