// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package clock abstracts the platform timer primitives, scheduling one-shot and periodic
events, behind small interfaces.  Production code uses System(); tests use the fakes
and mocks in clocktest.
*/
package clock
