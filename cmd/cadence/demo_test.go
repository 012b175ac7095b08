// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/cadence/chatroom"
	"github.com/xmidt-org/cadence/clock/clocktest"
	"github.com/xmidt-org/cadence/counter"
	"github.com/xmidt-org/cadence/logging"
	"go.uber.org/zap/zaptest"
)

var epoch = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

const demoDuration = 4 * time.Second

// newTestDemo builds a demo whose script runs on its own fake clock.  The counter and the room get
// separate fake clocks that are never advanced, so the only timers created on the returned clock
// are the script's.
func newTestDemo(t *testing.T) (*demo, *clocktest.Fake, <-chan struct{}) {
	logger := zaptest.NewLogger(t)

	cn, err := counter.New(
		counter.WithClock(clocktest.NewFake(epoch)),
		counter.WithLogger(logger),
	)

	require.NoError(t, err)
	t.Cleanup(cn.Stop)

	r := chatroom.New(
		chatroom.ListenerFunc(func(chatroom.Notification) {}),
		chatroom.WithClock(clocktest.NewFake(epoch)),
		chatroom.WithLogger(logger),
	)

	t.Cleanup(r.Leave)

	var (
		fake     = clocktest.NewFake(epoch)
		shutdown = make(chan struct{})
		d        = newDemo(fake, cn, r, []string{"general", "travel", "music"}, demoDuration, func() { close(shutdown) })
	)

	t.Cleanup(d.halt)
	return d, fake, shutdown
}

// step advances the script to its next quarter mark
func step(t *testing.T, fake *clocktest.Fake) {
	created, ok := fake.WaitCreated(5 * time.Second)
	require.True(t, ok, "the script did not schedule its next step")
	require.Equal(t, clocktest.KindTimer, created.Kind)
	require.Equal(t, demoDuration/4, created.Duration)
	fake.Add(created.Duration)
}

func TestDemoScript(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		d, fake, shutdown = newTestDemo(t)
		logger            = zaptest.NewLogger(t).Named("demo")
	)

	require.NoError(d.start(logging.WithLogger(context.Background(), logger)))
	assert.Same(logger, d.logger)
	assert.Equal("general", d.room.RoomID())

	step(t, fake)
	require.Eventually(func() bool { return d.room.RoomID() == "travel" }, 5*time.Second, 10*time.Millisecond)

	step(t, fake)
	require.Eventually(func() bool { return d.room.Theme() == chatroom.Dark }, 5*time.Second, 10*time.Millisecond)
	assert.Equal(2, d.counter.Increment())

	step(t, fake)
	require.Eventually(func() bool { return d.room.RoomID() == "music" }, 5*time.Second, 10*time.Millisecond)
	assert.Equal(counter.DefaultDelay/2, d.counter.Delay())

	step(t, fake)
	select {
	case <-shutdown:
	case <-time.After(5 * time.Second):
		assert.Fail("the demo did not shut down")
	}

	d.halt()
	d.halt()
}

func TestDemoHalt(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		d, fake, shutdown = newTestDemo(t)
	)

	require.NoError(d.start(logging.WithLogger(context.Background(), zaptest.NewLogger(t))))
	_, ok := fake.WaitCreated(5 * time.Second)
	require.True(ok)

	d.halt()
	fake.Add(demoDuration)

	assert.Equal("general", d.room.RoomID())
	select {
	case <-shutdown:
		assert.Fail("a halted demo should not shut down")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestDemoHaltNotStarted(t *testing.T) {
	d, _, _ := newTestDemo(t)
	d.halt()
	d.halt()
}
