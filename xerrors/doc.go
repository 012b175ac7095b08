// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package xerrors defines the error taxonomy shared by cadence components.  Every error is
returned synchronously from the call that broke a contract and wraps one of the sentinels
here, so callers test with errors.Is.
*/
package xerrors
