// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package connection

import (
	"sync"
	"time"

	"github.com/xmidt-org/cadence/clock"
	"github.com/xmidt-org/cadence/xerrors"
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
)

const (
	// Connected is the only event a Connection supports
	Connected = "connected"

	// DefaultConnectDelay is the simulated time it takes a Connection to be established
	DefaultConnectDelay = 100 * time.Millisecond
)

// Option represents a configuration option for a Connection
type Option func(*Connection)

// WithClock sets the clock used to simulate connection latency.  If nil, clock.System() is used.
func WithClock(c clock.Interface) Option {
	return func(cn *Connection) {
		cn.clock = clock.OrSystem(c)
	}
}

// WithLogger sets the zap logger.  If nil, sallust.Default() is used.
func WithLogger(l *zap.Logger) Option {
	return func(cn *Connection) {
		if l == nil {
			cn.logger = sallust.Default()
		} else {
			cn.logger = l
		}
	}
}

// WithConnectDelay sets the simulated latency of Connect.  Nonpositive values select DefaultConnectDelay.
func WithConnectDelay(d time.Duration) Option {
	return func(cn *Connection) {
		if d > 0 {
			cn.delay = d
		} else {
			cn.delay = DefaultConnectDelay
		}
	}
}

// Connection is a simulated connection to a chat server.  Nothing goes over the network:
// Connect merely waits for the configured delay and then raises the Connected event.
type Connection struct {
	serverURL string
	roomID    string
	clock     clock.Interface
	logger    *zap.Logger
	delay     time.Duration

	lock       sync.Mutex
	handler    func()
	timer      clock.Timer
	cancel     chan struct{}
	generation uint64
}

// New creates a disconnected Connection to the given room on the given server.
func New(serverURL, roomID string, options ...Option) *Connection {
	cn := &Connection{
		serverURL: serverURL,
		roomID:    roomID,
		clock:     clock.System(),
		logger:    sallust.Default(),
		delay:     DefaultConnectDelay,
	}

	for _, o := range options {
		o(cn)
	}

	cn.logger = cn.logger.With(zap.String("serverURL", serverURL), zap.String("roomID", roomID))
	return cn
}

// ServerURL returns the server this Connection targets
func (cn *Connection) ServerURL() string {
	return cn.serverURL
}

// RoomID returns the room this Connection targets
func (cn *Connection) RoomID() string {
	return cn.roomID
}

// On registers the handler for an event.  Only the Connected event is supported, and only one
// handler may ever be registered.  Any other use returns an error wrapping xerrors.ErrInvalidUsage.
func (cn *Connection) On(event string, handler func()) error {
	cn.lock.Lock()
	defer cn.lock.Unlock()

	switch {
	case cn.handler != nil:
		return xerrors.InvalidUsage("cannot add the handler twice")
	case event != Connected:
		return xerrors.InvalidUsage("only the %q event is supported, not %q", Connected, event)
	case handler == nil:
		return xerrors.InvalidUsage("a %q handler is required", Connected)
	}

	cn.handler = handler
	return nil
}

// Connect begins connecting.  The Connected handler, if any, runs once the connect delay elapses.
// Calling Connect while a connection attempt is already pending does nothing.
func (cn *Connection) Connect() {
	cn.lock.Lock()
	defer cn.lock.Unlock()

	if cn.timer != nil {
		return
	}

	cn.generation++
	cn.timer = cn.clock.NewTimer(cn.delay)
	cn.cancel = make(chan struct{})
	cn.logger.Debug("connecting")
	go cn.await(cn.timer, cn.cancel, cn.generation)
}

// Disconnect cancels any pending connection attempt.  This method is idempotent.  Once it returns,
// the Connected handler will not run for any earlier Connect.
func (cn *Connection) Disconnect() {
	cn.lock.Lock()
	defer cn.lock.Unlock()

	if cn.timer != nil {
		cn.timer.Stop()
		close(cn.cancel)
		cn.timer = nil
		cn.cancel = nil
		cn.generation++
		cn.logger.Debug("disconnected")
	}
}

func (cn *Connection) await(timer clock.Timer, cancel <-chan struct{}, generation uint64) {
	select {
	case <-timer.C():
		cn.connected(generation)
	case <-cancel:
	}
}

func (cn *Connection) connected(generation uint64) {
	cn.lock.Lock()
	if cn.generation != generation {
		cn.lock.Unlock()
		return
	}

	cn.timer = nil
	cn.cancel = nil
	handler := cn.handler
	cn.lock.Unlock()

	cn.logger.Debug("connected")
	if handler != nil {
		handler()
	}
}
