// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package notifier

var (
	subscriptionIDKey string = "subscriptionID"
	keyKey            string = "key"
	delayKey          string = "delay"
)

// SubscriptionIDKey returns the contextual logging key for a Subscription's unique identifier
func SubscriptionIDKey() string {
	return subscriptionIDKey
}

// KeyKey returns the contextual logging key for the identity a Subscription is keyed by
func KeyKey() string {
	return keyKey
}

// DelayKey returns the contextual logging key for a Subscription's delay
func DelayKey() string {
	return delayKey
}
