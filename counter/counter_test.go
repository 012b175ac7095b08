// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package counter

import (
	"testing"
	"time"

	"github.com/go-kit/kit/metrics/generic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/cadence/clock/clocktest"
	"github.com/xmidt-org/cadence/xerrors"
	"go.uber.org/zap/zaptest"
)

var epoch = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

func newTestCounter(t *testing.T, extra ...Option) (*Counter, *clocktest.Fake, <-chan int) {
	var (
		fake   = clocktest.NewFake(epoch)
		counts = make(chan int, 10)
	)

	cn, err := New(append(
		[]Option{
			WithClock(fake),
			WithLogger(zaptest.NewLogger(t)),
			WithObserver(func(c int) { counts <- c }),
		},
		extra...,
	)...)

	require.NoError(t, err)
	require.NotNil(t, cn)
	t.Cleanup(cn.Stop)

	_, ok := fake.WaitCreated(5 * time.Second)
	require.True(t, ok)
	return cn, fake, counts
}

func expectCount(t *testing.T, counts <-chan int) int {
	select {
	case c := <-counts:
		return c
	case <-time.After(5 * time.Second):
		require.Fail(t, "the counter did not tick")
		return -1
	}
}

func expectNoCount(t *testing.T, counts <-chan int) {
	select {
	case c := <-counts:
		assert.Fail(t, "unexpected tick", "count: %d", c)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestNewDefaults(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		cn, err = New(WithClock(nil), WithLogger(nil), WithDelay(0), WithIncrement(-1), WithTickCounter(nil), WithDroppedCounter(nil))
	)

	require.NoError(err)
	defer cn.Stop()

	assert.Equal(DefaultDelay, cn.Delay())
	assert.Equal(DefaultIncrement, cn.Increment())
	assert.Equal(0, cn.Count())
}

func TestCounterIncrementChange(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		ticks   = generic.NewCounter("ticks")

		cn, fake, counts = newTestCounter(t, WithTickCounter(ticks))
	)

	for expected := 1; expected <= 3; expected++ {
		fake.Add(time.Second)
		assert.Equal(expected, expectCount(t, counts))
	}

	// rapid changes between ticks never restart the timer
	for _, n := range []int{2, 3, 4, 5} {
		require.NoError(cn.SetIncrement(n))
	}

	_, restarted := fake.WaitCreated(20 * time.Millisecond)
	assert.False(restarted)
	assert.Equal(5, cn.Increment())

	fake.Add(time.Second)
	assert.Equal(8, expectCount(t, counts))

	fake.Add(time.Second)
	assert.Equal(13, expectCount(t, counts))
	assert.Equal(13, cn.Count())
	assert.Equal(5.0, ticks.Value())

	require.NoError(cn.SetIncrement(0))
	fake.Add(time.Second)
	assert.Equal(13, expectCount(t, counts))
}

func TestCounterSetIncrementInvalid(t *testing.T) {
	var (
		assert   = assert.New(t)
		cn, _, _ = newTestCounter(t, WithIncrement(2))
	)

	assert.ErrorIs(cn.SetIncrement(-1), xerrors.ErrInvalidParameter)
	assert.Equal(2, cn.Increment())
}

func TestCounterSetDelay(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		cn, fake, counts = newTestCounter(t, WithDelay(100*time.Millisecond))
	)

	assert.Equal(100*time.Millisecond, cn.Delay())
	require.NoError(cn.SetDelay(300 * time.Millisecond))
	assert.Equal(300*time.Millisecond, cn.Delay())

	created, ok := fake.WaitCreated(5 * time.Second)
	require.True(ok)
	assert.Equal(300*time.Millisecond, created.Duration)

	fake.Add(200 * time.Millisecond)
	expectNoCount(t, counts)

	fake.Add(100 * time.Millisecond)
	assert.Equal(1, expectCount(t, counts))

	assert.ErrorIs(cn.SetDelay(0), xerrors.ErrInvalidParameter)
	assert.Equal(300*time.Millisecond, cn.Delay())
}

func TestCounterReset(t *testing.T) {
	var (
		assert = assert.New(t)

		cn, fake, counts = newTestCounter(t, WithIncrement(4))
	)

	fake.Add(time.Second)
	assert.Equal(4, expectCount(t, counts))

	cn.Reset()
	assert.Equal(0, cn.Count())

	fake.Add(time.Second)
	assert.Equal(4, expectCount(t, counts))
}

func TestCounterStop(t *testing.T) {
	var (
		assert = assert.New(t)

		cn, fake, counts = newTestCounter(t)
	)

	cn.Stop()
	cn.Stop()

	select {
	case <-cn.Stopped():
	case <-time.After(5 * time.Second):
		assert.Fail("the counter did not stop")
	}

	fake.Add(time.Minute)
	expectNoCount(t, counts)
	assert.Equal(0, cn.Count())
}

func TestFormatDelay(t *testing.T) {
	testData := []struct {
		delay    time.Duration
		expected string
	}{
		{100 * time.Millisecond, "100ms"},
		{900 * time.Millisecond, "900ms"},
		{time.Second, "1.0s"},
		{1500 * time.Millisecond, "1.5s"},
		{12 * time.Second, "12.0s"},
	}

	for _, record := range testData {
		assert.Equal(t, record.expected, FormatDelay(record.delay))
	}
}
