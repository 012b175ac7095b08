// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package connection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/cadence/clock/clocktest"
	"github.com/xmidt-org/cadence/xerrors"
	"go.uber.org/zap/zaptest"
)

var epoch = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

func newTestConnection(t *testing.T) (*Connection, *clocktest.Fake) {
	fake := clocktest.NewFake(epoch)
	cn := New("https://localhost:1234", "general", WithClock(fake), WithLogger(zaptest.NewLogger(t)))
	t.Cleanup(cn.Disconnect)
	return cn, fake
}

func expectSignal(t *testing.T, signal <-chan struct{}) {
	select {
	case <-signal:
	case <-time.After(5 * time.Second):
		require.Fail(t, "the connected handler did not run")
	}
}

func expectNoSignal(t *testing.T, signal <-chan struct{}) {
	select {
	case <-signal:
		assert.Fail(t, "the connected handler ran unexpectedly")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestNew(t *testing.T) {
	var (
		assert = assert.New(t)
		cn     = New("https://localhost:1234", "travel", WithClock(nil), WithLogger(nil), WithConnectDelay(0))
	)

	assert.Equal("https://localhost:1234", cn.ServerURL())
	assert.Equal("travel", cn.RoomID())
	assert.Equal(DefaultConnectDelay, cn.delay)
	assert.NotNil(cn.clock)
	assert.NotNil(cn.logger)

	cn = New("https://localhost:1234", "travel", WithConnectDelay(time.Second))
	assert.Equal(time.Second, cn.delay)
}

func TestOn(t *testing.T) {
	t.Run("UnsupportedEvent", func(t *testing.T) {
		cn, _ := newTestConnection(t)
		assert.ErrorIs(t, cn.On("disconnected", func() {}), xerrors.ErrInvalidUsage)
	})

	t.Run("NilHandler", func(t *testing.T) {
		cn, _ := newTestConnection(t)
		assert.ErrorIs(t, cn.On(Connected, nil), xerrors.ErrInvalidUsage)
	})

	t.Run("Twice", func(t *testing.T) {
		cn, _ := newTestConnection(t)
		require.NoError(t, cn.On(Connected, func() {}))
		assert.ErrorIs(t, cn.On(Connected, func() {}), xerrors.ErrInvalidUsage)

		// the duplicate check comes first, even for an unsupported event
		err := cn.On("disconnected", func() {})
		assert.ErrorIs(t, err, xerrors.ErrInvalidUsage)
		assert.Contains(t, err.Error(), "twice")
	})
}

func TestConnect(t *testing.T) {
	var (
		require  = require.New(t)
		signal   = make(chan struct{}, 5)
		cn, fake = newTestConnection(t)
	)

	require.NoError(cn.On(Connected, func() { signal <- struct{}{} }))
	cn.Connect()
	_, ok := fake.WaitCreated(5 * time.Second)
	require.True(ok)

	cn.Connect()
	_, again := fake.WaitCreated(20 * time.Millisecond)
	require.False(again, "a pending connect must not be restarted")

	fake.Add(50 * time.Millisecond)
	expectNoSignal(t, signal)

	fake.Add(50 * time.Millisecond)
	expectSignal(t, signal)

	fake.Add(time.Second)
	expectNoSignal(t, signal)
}

func TestConnectWithoutHandler(t *testing.T) {
	var (
		require  = require.New(t)
		cn, fake = newTestConnection(t)
	)

	cn.Connect()
	_, ok := fake.WaitCreated(5 * time.Second)
	require.True(ok)

	// nothing to invoke, but nothing should break either
	fake.Add(DefaultConnectDelay)
}

func TestDisconnect(t *testing.T) {
	var (
		require  = require.New(t)
		signal   = make(chan struct{}, 5)
		cn, fake = newTestConnection(t)
	)

	require.NoError(cn.On(Connected, func() { signal <- struct{}{} }))
	cn.Connect()
	_, ok := fake.WaitCreated(5 * time.Second)
	require.True(ok)

	fake.Add(50 * time.Millisecond)
	cn.Disconnect()
	cn.Disconnect()

	fake.Add(time.Second)
	expectNoSignal(t, signal)

	// reconnecting after a disconnect starts a fresh attempt
	cn.Connect()
	_, ok = fake.WaitCreated(5 * time.Second)
	require.True(ok)

	fake.Add(DefaultConnectDelay)
	expectSignal(t, signal)
}

func TestConnectPlatformTimer(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		c     = new(clocktest.Mock)
		timer = clocktest.NewMockTimer()
		cn    = New("https://localhost:1234", "general", WithClock(c), WithLogger(zaptest.NewLogger(t)), WithConnectDelay(time.Second))

		connected = make(chan struct{}, 1)
	)

	c.ExpectNewTimer(time.Second, timer).Once()
	require.NoError(cn.On(Connected, func() { connected <- struct{}{} }))

	cn.Connect()
	cn.Connect()
	timer.Fire(epoch)
	expectSignal(t, connected)

	// the attempt completed, so there is nothing left to stop
	cn.Disconnect()
	c.AssertExpectations(t)
	timer.AssertExpectations(t)
	assert.Empty(connected)
}
