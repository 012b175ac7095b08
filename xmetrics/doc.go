// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package xmetrics ties a Prometheus registry to go-kit metrics.  Components in this module accept
go-kit metrics.Counter options, and a Registry hands out counters backed by Prometheus collectors
it owns.  Snapshot gathers the current counter values, which is handy for logging at shutdown.
*/
package xmetrics
