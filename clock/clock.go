// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Interface is the set of platform timer primitives used by cadence components.  It mirrors
// the subset of the time package that schedules work, so that tests can substitute a fake.
type Interface interface {
	Now() time.Time
	Sleep(time.Duration)
	NewTicker(time.Duration) Ticker
	NewTimer(time.Duration) Timer
}

// Ticker is a periodic event source.  Stop releases the underlying platform resource
// and is safe to call more than once.  Stop does not close C.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Timer is a one-shot event source with the same Reset and Stop semantics as time.Timer.
type Timer interface {
	C() <-chan time.Time
	Reset(time.Duration) bool
	Stop() bool
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

func (systemClock) NewTicker(d time.Duration) Ticker {
	t := time.NewTicker(d)
	return systemTicker{c: t.C, stop: t.Stop}
}

func (systemClock) NewTimer(d time.Duration) Timer {
	t := time.NewTimer(d)
	return systemTimer{c: t.C, reset: t.Reset, stop: t.Stop}
}

type systemTicker struct {
	c    <-chan time.Time
	stop func()
}

func (st systemTicker) C() <-chan time.Time { return st.c }
func (st systemTicker) Stop() { st.stop() }

type systemTimer struct {
	c     <-chan time.Time
	reset func(time.Duration) bool
	stop  func() bool
}

func (st systemTimer) C() <-chan time.Time { return st.c }
func (st systemTimer) Reset(d time.Duration) bool { return st.reset(d) }
func (st systemTimer) Stop() bool { return st.stop() }

// System returns a clock backed by the time package
func System() Interface {
	return systemClock{}
}

// OrSystem returns c, or System() if c is nil.  Component options use this to
// fall back to wall-clock time.
func OrSystem(c Interface) Interface {
	if c != nil {
		return c
	}

	return System()
}
