// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package clocktest

import (
	"time"

	"github.com/xmidt-org/cadence/clock"
	"github.com/xmidt-org/chronon"
)

// Kind identifies the sort of time source a Fake created.
type Kind int

const (
	KindTicker Kind = iota
	KindTimer
)

// Created describes a ticker or timer produced by a Fake.
type Created struct {
	Kind     Kind
	Duration time.Duration
	At       time.Time
}

// Fake is a clock.Interface whose time only moves when Add is called.  Each ticker or
// timer it creates is reported on Created(), which lets tests wait until a background
// goroutine has scheduled itself before advancing time.
type Fake struct {
	fc      *chronon.FakeClock
	created chan Created
}

var _ clock.Interface = (*Fake)(nil)

// NewFake produces a Fake whose current time is start.
func NewFake(start time.Time) *Fake {
	return &Fake{
		fc:      chronon.NewFakeClock(start),
		created: make(chan Created, 100),
	}
}

func (f *Fake) Now() time.Time {
	return f.fc.Now()
}

// Sleep blocks until some other goroutine advances this clock past d.
func (f *Fake) Sleep(d time.Duration) {
	<-f.NewTimer(d).C()
}

// Add moves this clock forward, firing any tickers and timers that come due.
func (f *Fake) Add(d time.Duration) {
	f.fc.Add(d)
}

func (f *Fake) NewTicker(d time.Duration) clock.Ticker {
	t := f.fc.NewTicker(d)
	f.notify(KindTicker, d)
	return fakeTicker{
		c:    t.C(),
		stop: t.Stop,
	}
}

func (f *Fake) NewTimer(d time.Duration) clock.Timer {
	t := f.fc.NewTimer(d)
	f.notify(KindTimer, d)
	return fakeTimer{
		c:     t.C(),
		reset: t.Reset,
		stop:  t.Stop,
	}
}

// Created returns the channel on which every new ticker and timer is reported.
func (f *Fake) Created() <-chan Created {
	return f.created
}

// WaitCreated waits for the next ticker or timer to be created, using wall-clock time for the timeout.
func (f *Fake) WaitCreated(timeout time.Duration) (Created, bool) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case c := <-f.created:
		return c, true
	case <-timer.C:
		return Created{}, false
	}
}

func (f *Fake) notify(k Kind, d time.Duration) {
	select {
	case f.created <- Created{Kind: k, Duration: d, At: f.fc.Now()}:
	default:
	}
}

type fakeTicker struct {
	c    <-chan time.Time
	stop func()
}

func (ft fakeTicker) C() <-chan time.Time { return ft.c }
func (ft fakeTicker) Stop() { ft.stop() }

type fakeTimer struct {
	c     <-chan time.Time
	reset func(time.Duration) bool
	stop  func() bool
}

func (ft fakeTimer) C() <-chan time.Time { return ft.c }
func (ft fakeTimer) Reset(d time.Duration) bool { return ft.reset(d) }
func (ft fakeTimer) Stop() bool { return ft.stop() }
