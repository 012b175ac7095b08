// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package chatroom

import (
	"sync"
	"time"

	"github.com/go-kit/kit/metrics"
	"github.com/xmidt-org/cadence/clock"
	"github.com/xmidt-org/cadence/connection"
	"github.com/xmidt-org/cadence/notifier"
	"github.com/xmidt-org/cadence/xerrors"
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
)

const (
	DefaultServerURL         = "https://localhost:1234"
	DefaultNotificationDelay = 2 * time.Second
)

// Option represents a configuration option for a Room
type Option func(*Room)

// WithClock sets the clock used for connection latency and notification delays.  If nil, clock.System() is used.
func WithClock(c clock.Interface) Option {
	return func(r *Room) {
		r.clock = clock.OrSystem(c)
	}
}

// WithLogger sets the zap logger.  If nil, sallust.Default() is used.
func WithLogger(l *zap.Logger) Option {
	return func(r *Room) {
		if l == nil {
			r.logger = sallust.Default()
		} else {
			r.logger = l
		}
	}
}

// WithServerURL sets the simulated chat server.  If empty, DefaultServerURL is used.
func WithServerURL(u string) Option {
	return func(r *Room) {
		if len(u) > 0 {
			r.serverURL = u
		} else {
			r.serverURL = DefaultServerURL
		}
	}
}

// WithNotificationDelay sets the time between a connection being established and its welcome
// notification.  Nonpositive values select DefaultNotificationDelay.
func WithNotificationDelay(d time.Duration) Option {
	return func(r *Room) {
		if d > 0 {
			r.delay = d
		} else {
			r.delay = DefaultNotificationDelay
		}
	}
}

// WithConnectDelay sets the simulated connection latency.  Nonpositive values select connection.DefaultConnectDelay.
func WithConnectDelay(d time.Duration) Option {
	return func(r *Room) {
		r.connectDelay = d
	}
}

// WithTheme sets the initial theme.  If empty, Light is used.
func WithTheme(t Theme) Option {
	return func(r *Room) {
		if len(t) > 0 {
			r.theme = t
		} else {
			r.theme = Light
		}
	}
}

// WithFiredCounter sets the metric counting delivered notifications.
func WithFiredCounter(c metrics.Counter) Option {
	return func(r *Room) {
		r.notifierOptions = append(r.notifierOptions, notifier.WithFiredCounter(c))
	}
}

// WithCancelledCounter sets the metric counting notifications cancelled by a room change or Leave.
func WithCancelledCounter(c metrics.Counter) Option {
	return func(r *Room) {
		r.notifierOptions = append(r.notifierOptions, notifier.WithCancelledCounter(c))
	}
}

// Room is a chat room session.  Joining a room opens a simulated connection, and once that
// connection is established a welcome Notification is delivered after a delay.  The room id is the
// identity of the pending notification: switching rooms cancels it.  The theme is only its payload:
// switching themes changes how the pending notification is rendered without delaying it.
type Room struct {
	serverURL       string
	clock           clock.Interface
	logger          *zap.Logger
	delay           time.Duration
	connectDelay    time.Duration
	listener        Listener
	notifierOptions []notifier.Option
	notifier        *notifier.Notifier[string, Theme]

	lock   sync.Mutex
	roomID string
	theme  Theme
	conn   *connection.Connection
}

// New creates a Room that has not yet joined anything.  The listener is required, and this
// function panics if it is nil.
func New(listener Listener, options ...Option) *Room {
	if listener == nil {
		panic("A listener is required to receive notifications")
	}

	r := &Room{
		serverURL: DefaultServerURL,
		clock:     clock.System(),
		logger:    sallust.Default(),
		delay:     DefaultNotificationDelay,
		listener:  listener,
		theme:     Light,
	}

	for _, o := range options {
		o(r)
	}

	r.notifier = notifier.New[string, Theme](
		append(
			[]notifier.Option{notifier.WithClock(r.clock), notifier.WithLogger(r.logger)},
			r.notifierOptions...,
		)...,
	)

	return r
}

// RoomID returns the currently joined room, or the empty string if no room is joined.
func (r *Room) RoomID() string {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.roomID
}

// Theme returns the current theme
func (r *Room) Theme() Theme {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.theme
}

// Join switches to the given room.  Joining the current room does nothing.  Otherwise the current
// connection is dropped, any pending notification is cancelled, and a new connection is opened.
// An empty roomID returns an error wrapping xerrors.ErrInvalidParameter.
func (r *Room) Join(roomID string) error {
	if len(roomID) == 0 {
		return xerrors.InvalidParameter("roomID", roomID)
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	if r.conn != nil && r.roomID == roomID {
		return nil
	}

	r.leave()

	conn := connection.New(
		r.serverURL,
		roomID,
		connection.WithClock(r.clock),
		connection.WithLogger(r.logger),
		connection.WithConnectDelay(r.connectDelay),
	)

	if err := conn.On(connection.Connected, func() { r.connected(conn, roomID) }); err != nil {
		return err
	}

	r.roomID = roomID
	r.conn = conn
	r.logger.Info("joining room", zap.String("roomID", roomID))
	conn.Connect()
	return nil
}

// SetTheme changes the theme used by any pending and future notification.
func (r *Room) SetTheme(theme Theme) {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.theme = theme
	r.notifier.UpdatePayload(theme)
}

// Leave drops the current connection and cancels any pending notification.  This method is idempotent.
func (r *Room) Leave() {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.leave()
	r.roomID = ""
}

func (r *Room) leave() {
	if r.conn != nil {
		r.conn.Disconnect()
		r.conn = nil
		r.logger.Info("left room", zap.String("roomID", r.roomID))
	}

	r.notifier.Unsubscribe()
}

// connected is the Connected handler of conn.  Handlers for connections that have since been
// replaced are ignored.
func (r *Room) connected(conn *connection.Connection, roomID string) {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.conn != conn {
		return
	}

	if _, err := r.notifier.Subscribe(roomID, r.theme, r.delay, r.deliver); err != nil {
		r.logger.Error("unable to schedule notification", zap.String("roomID", roomID), zap.Error(err))
	}
}

func (r *Room) deliver(roomID string, theme Theme) {
	n := Notification{
		RoomID:  roomID,
		Theme:   theme,
		Message: welcome(roomID),
		At:      r.clock.Now(),
	}

	r.logger.Info("delivering notification", zap.String("roomID", roomID), zap.String("theme", string(theme)))
	r.listener.Notify(n)
}
