// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package logging builds the zap loggers used by cadence applications from configuration.
Library packages never build loggers themselves; they accept a *zap.Logger option and fall back
to sallust.Default().
*/
package logging
