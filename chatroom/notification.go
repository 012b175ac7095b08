// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package chatroom

import (
	"strings"
	"time"

	"github.com/xmidt-org/cadence/xerrors"
)

// Theme is the display theme a Notification is rendered with
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// ParseTheme converts a case-insensitive string into a Theme.  Unrecognized values
// return an error wrapping xerrors.ErrInvalidParameter.
func ParseTheme(v string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(v))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	default:
		return "", xerrors.InvalidParameter("theme", v)
	}
}

// Notification is the welcome message delivered some time after a room's connection is established.
type Notification struct {
	RoomID  string
	Theme   Theme
	Message string
	At      time.Time
}

// Listener receives Notifications
type Listener interface {
	Notify(Notification)
}

// ListenerFunc is a function type that implements Listener
type ListenerFunc func(Notification)

func (lf ListenerFunc) Notify(n Notification) {
	lf(n)
}

// Listeners is a slice type that dispatches to each of its elements in order.
type Listeners []Listener

func (ls Listeners) Notify(n Notification) {
	for _, l := range ls {
		l.Notify(n)
	}
}

func welcome(roomID string) string {
	return "Welcome to " + roomID
}
