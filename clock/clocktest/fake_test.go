// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package clocktest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

func TestFakeTicker(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		fake    = NewFake(epoch)
		ticker  = fake.NewTicker(time.Second)
	)

	defer ticker.Stop()

	created, ok := fake.WaitCreated(time.Second)
	require.True(ok)
	assert.Equal(KindTicker, created.Kind)
	assert.Equal(time.Second, created.Duration)
	assert.Equal(epoch, created.At)

	fake.Add(time.Second)
	select {
	case <-ticker.C():
	case <-time.After(5 * time.Second):
		require.Fail("The fake ticker did not fire")
	}

	assert.Equal(epoch.Add(time.Second), fake.Now())
}

func TestFakeTimer(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		fake    = NewFake(epoch)
		timer   = fake.NewTimer(2 * time.Second)
	)

	created, ok := fake.WaitCreated(time.Second)
	require.True(ok)
	assert.Equal(KindTimer, created.Kind)

	fake.Add(time.Second)
	select {
	case <-timer.C():
		assert.Fail("The fake timer fired early")
	default:
	}

	fake.Add(time.Second)
	select {
	case <-timer.C():
	case <-time.After(5 * time.Second):
		require.Fail("The fake timer did not fire")
	}
}

func TestFakeWaitCreatedTimeout(t *testing.T) {
	var (
		assert = assert.New(t)
		fake   = NewFake(epoch)
	)

	_, ok := fake.WaitCreated(10 * time.Millisecond)
	assert.False(ok)
}
