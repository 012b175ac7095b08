// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package clocktest

import (
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/xmidt-org/cadence/clock"
)

var (
	_ clock.Interface = (*Mock)(nil)
	_ clock.Ticker    = (*MockTicker)(nil)
	_ clock.Timer     = (*MockTimer)(nil)
)

// Mock is a stretchr mock for clock.Interface.  Use it when a test cares about which platform
// tickers and timers a component creates and stops, rather than about the passage of time.
type Mock struct {
	mock.Mock
}

func (m *Mock) Now() time.Time {
	return m.Called().Get(0).(time.Time)
}

func (m *Mock) Sleep(d time.Duration) {
	m.Called(d)
}

func (m *Mock) NewTicker(d time.Duration) clock.Ticker {
	return m.Called(d).Get(0).(clock.Ticker)
}

func (m *Mock) NewTimer(d time.Duration) clock.Timer {
	return m.Called(d).Get(0).(clock.Timer)
}

// ExpectNewTicker sets an expectation that a ticker with period d will be created, returning t.
func (m *Mock) ExpectNewTicker(d time.Duration, t clock.Ticker) *mock.Call {
	return m.On("NewTicker", d).Return(t)
}

// ExpectNewTimer sets an expectation that a timer with delay d will be created, returning t.
func (m *Mock) ExpectNewTimer(d time.Duration, t clock.Timer) *mock.Call {
	return m.On("NewTimer", d).Return(t)
}

// MockTicker is a stretchr mock for clock.Ticker.  Its channel is fixed at construction and,
// like a time.Ticker's, holds one pending tick.
type MockTicker struct {
	mock.Mock
	c chan time.Time
}

// NewMockTicker creates a MockTicker whose C method returns a channel that the test
// may send ticks on.
func NewMockTicker() *MockTicker {
	return &MockTicker{c: make(chan time.Time, 1)}
}

func (m *MockTicker) C() <-chan time.Time {
	return m.c
}

// Tick queues a tick, blocking only while an earlier tick is still pending.
func (m *MockTicker) Tick(t time.Time) {
	m.c <- t
}

func (m *MockTicker) Stop() {
	m.Called()
}

// ExpectStop sets an expectation that Stop will be called.
func (m *MockTicker) ExpectStop() *mock.Call {
	return m.On("Stop")
}

// MockTimer is a stretchr mock for clock.Timer.  Its channel is fixed at construction.
type MockTimer struct {
	mock.Mock
	c chan time.Time
}

// NewMockTimer creates a MockTimer whose C method returns an unbuffered channel that
// the test may fire on.
func NewMockTimer() *MockTimer {
	return &MockTimer{c: make(chan time.Time)}
}

func (m *MockTimer) C() <-chan time.Time {
	return m.c
}

// Fire sends on the timer's channel, blocking until the timer's owner receives it.
func (m *MockTimer) Fire(t time.Time) {
	m.c <- t
}

func (m *MockTimer) Reset(d time.Duration) bool {
	return m.Called(d).Bool(0)
}

func (m *MockTimer) Stop() bool {
	return m.Called().Bool(0)
}

// ExpectStop sets an expectation that Stop will be called, returning r.
func (m *MockTimer) ExpectStop(r bool) *mock.Call {
	return m.On("Stop").Return(r)
}
