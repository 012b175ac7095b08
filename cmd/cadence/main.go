// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/xmidt-org/cadence/chatroom"
	"github.com/xmidt-org/cadence/clock"
	"github.com/xmidt-org/cadence/counter"
	"github.com/xmidt-org/cadence/logging"
	"github.com/xmidt-org/cadence/xmetrics"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func provideLogger(c Config) (*zap.Logger, error) {
	return logging.New(&c.Log)
}

func provideCounter(lc fx.Lifecycle, c Config, logger *zap.Logger, m Measures) (*counter.Counter, error) {
	cn, err := counter.New(
		counter.WithLogger(logger.Named("counter")),
		counter.WithDelay(c.Interval),
		counter.WithIncrement(c.Increment),
		counter.WithObserver(func(count int) {
			logger.Debug("tick", zap.Int("count", count))
		}),
		counter.WithTickCounter(m.Ticks),
		counter.WithDroppedCounter(m.DroppedTicks),
	)

	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			cn.Stop()
			return nil
		},
	})

	return cn, nil
}

func provideRoom(lc fx.Lifecycle, c Config, logger *zap.Logger, m Measures) (*chatroom.Room, error) {
	theme, err := chatroom.ParseTheme(c.Theme)
	if err != nil {
		return nil, err
	}

	r := chatroom.New(
		chatroom.ListenerFunc(func(n chatroom.Notification) {
			logger.Info(
				n.Message,
				zap.String("roomID", n.RoomID),
				zap.String("theme", string(n.Theme)),
				zap.Time("at", n.At),
			)
		}),
		chatroom.WithLogger(logger.Named("chatroom")),
		chatroom.WithServerURL(c.ServerURL),
		chatroom.WithNotificationDelay(c.NotificationDelay),
		chatroom.WithConnectDelay(c.ConnectDelay),
		chatroom.WithTheme(theme),
		chatroom.WithFiredCounter(m.Fired),
		chatroom.WithCancelledCounter(m.Cancelled),
	)

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			r.Leave()
			return nil
		},
	})

	return r, nil
}

// DemoIn is the set of components the demo script drives
type DemoIn struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Config     Config
	Logger     *zap.Logger
	Registry   xmetrics.Registry
	Counter    *counter.Counter
	Room       *chatroom.Room
	Clock      clock.Interface `optional:"true"`
}

func invokeDemo(in DemoIn) {
	d := newDemo(
		in.Clock,
		in.Counter,
		in.Room,
		in.Config.Rooms,
		in.Config.Duration,
		func() {
			if err := in.Shutdowner.Shutdown(); err != nil {
				in.Logger.Error("unable to shut down", zap.Error(err))
			}
		},
	)

	in.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return d.start(logging.WithLogger(ctx, in.Logger.Named("demo")))
		},
		OnStop: func(context.Context) error {
			d.halt()
			logSnapshot(in.Logger, in.Registry)
			return nil
		},
	})
}

func appOptions(c Config) fx.Option {
	return fx.Options(
		fx.Supply(c),
		fx.Provide(
			provideLogger,
			provideRegistry,
			NewMeasures,
			provideCounter,
			provideRoom,
		),
		fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l.Named("fx")}
		}),
		fx.Invoke(invokeDemo),
	)
}

func cadence(arguments []string) int {
	v, err := newViper(newFlagSet(), arguments)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to configure: %s\n", err)
		return 1
	}

	c, err := NewConfig(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %s\n", err)
		return 1
	}

	app := fx.New(appOptions(c))
	if err := app.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Unable to start: %s\n", err)
		return 1
	}

	app.Run()
	return 0
}

func main() {
	os.Exit(cadence(os.Args[1:]))
}
