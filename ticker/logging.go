// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package ticker

var (
	idKey       string = "tickerID"
	intervalKey string = "interval"
)

// IDKey returns the contextual logging key for a Ticker's unique identifier
func IDKey() string {
	return idKey
}

// IntervalKey returns the contextual logging key for a Ticker's period
func IntervalKey() string {
	return intervalKey
}
