// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"sync"
	"time"

	"github.com/xmidt-org/cadence/chatroom"
	"github.com/xmidt-org/cadence/clock"
	"github.com/xmidt-org/cadence/counter"
	"github.com/xmidt-org/cadence/logging"
	"go.uber.org/zap"
)

// demo walks the counter and the room through a fixed script spread evenly over its duration.
// The first quarter sits in the first room.  At each later quarter mark one adjustment is made:
// the room changes, then the theme and the increment change, then the delay is halved and the
// room changes again.  When the duration is up, shutdown is called.
type demo struct {
	logger   *zap.Logger
	clock    clock.Interface
	counter  *counter.Counter
	room     *chatroom.Room
	rooms    []string
	duration time.Duration
	shutdown func()

	next     int
	haltOnce sync.Once
	started  bool
	stop     chan struct{}
	stopped  chan struct{}
}

func newDemo(c clock.Interface, cn *counter.Counter, r *chatroom.Room, rooms []string, duration time.Duration, shutdown func()) *demo {
	return &demo{
		clock:    clock.OrSystem(c),
		counter:  cn,
		room:     r,
		rooms:    rooms,
		duration: duration,
		shutdown: shutdown,
		stop:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
}

// start joins the first room and runs the script in the background.  The script logs with
// the logger carried by ctx.
func (d *demo) start(ctx context.Context) error {
	d.logger = logging.GetLogger(ctx)
	if err := d.room.Join(d.rooms[0]); err != nil {
		return err
	}

	d.started = true
	go d.run()
	return nil
}

// halt stops the script and waits for it to exit.  It is safe to call more than once.
func (d *demo) halt() {
	d.haltOnce.Do(func() {
		close(d.stop)
		if d.started {
			<-d.stopped
		}
	})
}

func (d *demo) run() {
	defer close(d.stopped)

	script := []func(){d.switchRoom, d.switchTheme, d.speedUp}
	wait := d.duration / time.Duration(len(script)+1)
	for _, step := range script {
		if !d.sleep(wait) {
			return
		}

		step()
	}

	if d.sleep(wait) {
		d.logger.Info("demo complete", zap.Int("count", d.counter.Count()))
		d.shutdown()
	}
}

func (d *demo) sleep(wait time.Duration) bool {
	t := d.clock.NewTimer(wait)
	select {
	case <-t.C():
		return true
	case <-d.stop:
		t.Stop()
		return false
	}
}

func (d *demo) switchRoom() {
	d.next = (d.next + 1) % len(d.rooms)
	if err := d.room.Join(d.rooms[d.next]); err != nil {
		d.logger.Error("unable to switch rooms", zap.Error(err))
	}
}

func (d *demo) switchTheme() {
	theme := chatroom.Dark
	if d.room.Theme() == chatroom.Dark {
		theme = chatroom.Light
	}

	d.room.SetTheme(theme)
	if err := d.counter.SetIncrement(d.counter.Increment() + 1); err != nil {
		d.logger.Error("unable to change the increment", zap.Error(err))
	}

	d.logger.Info(
		"switched theme",
		zap.String("theme", string(theme)),
		zap.Int("increment", d.counter.Increment()),
		zap.Int("count", d.counter.Count()),
	)
}

func (d *demo) speedUp() {
	if err := d.counter.SetDelay(d.counter.Delay() / 2); err != nil {
		d.logger.Error("unable to change the delay", zap.Error(err))
	}

	d.logger.Info(
		"changed delay",
		zap.String("delay", counter.FormatDelay(d.counter.Delay())),
		zap.Int("count", d.counter.Count()),
	)

	d.switchRoom()
}
