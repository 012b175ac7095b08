// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package counter implements a periodically incrementing counter whose increment and delay
// can be adjusted while it runs.
package counter
