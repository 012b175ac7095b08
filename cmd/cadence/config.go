// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/xmidt-org/cadence/chatroom"
	"github.com/xmidt-org/cadence/counter"
	"github.com/xmidt-org/cadence/logging"
	"github.com/xmidt-org/cadence/xerrors"
	"github.com/xmidt-org/cadence/xmetrics"
	"github.com/xmidt-org/cadence/xviper"
)

const (
	applicationName = "cadence"

	DefaultServerURL         = "https://localhost:1234"
	DefaultNotificationDelay = 2 * time.Second
	DefaultConnectDelay      = 100 * time.Millisecond
	DefaultDuration          = 10 * time.Second
	DefaultLogLevel          = "info"
)

// DefaultRooms are the rooms visited when none are configured
var DefaultRooms = []string{"general", "travel", "music"}

// Config is the complete configuration for the cadence demo
type Config struct {
	Interval          time.Duration
	Increment         int
	Rooms             []string
	Theme             string
	ServerURL         string
	NotificationDelay time.Duration
	ConnectDelay      time.Duration
	Duration          time.Duration

	Log     logging.Options
	Metrics xmetrics.Options
}

// validate checks the values that the components themselves cannot check until they are running
func (c *Config) validate() error {
	if len(c.Rooms) == 0 {
		return xerrors.InvalidParameter("rooms", c.Rooms)
	}

	for _, room := range c.Rooms {
		if len(room) == 0 {
			return xerrors.InvalidParameter("rooms", c.Rooms)
		}
	}

	if c.Increment < 0 {
		return xerrors.InvalidParameter("increment", c.Increment)
	}

	durations := []struct {
		name  string
		value time.Duration
	}{
		{"interval", c.Interval},
		{"notificationDelay", c.NotificationDelay},
		{"connectDelay", c.ConnectDelay},
		{"duration", c.Duration},
	}

	for _, d := range durations {
		if err := xerrors.PositiveDuration(d.name, d.value); err != nil {
			return err
		}
	}

	_, err := chatroom.ParseTheme(c.Theme)
	return err
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(applicationName, pflag.ContinueOnError)
	fs.StringP(xviper.DefaultFileFlag, "f", "", "the configuration file to use.  Overrides the search path.")
	fs.Duration("interval", counter.DefaultDelay, "the counter's tick interval")
	fs.Int("increment", counter.DefaultIncrement, "the amount added to the counter on each tick")
	fs.StringSlice("rooms", DefaultRooms, "the chat rooms to visit, in order")
	fs.String("theme", string(chatroom.Light), "the initial theme, light or dark")
	fs.String("serverURL", DefaultServerURL, "the simulated chat server")
	fs.Duration("notificationDelay", DefaultNotificationDelay, "the delay between connecting and the welcome notification")
	fs.Duration("connectDelay", DefaultConnectDelay, "the simulated connection latency")
	fs.Duration("duration", DefaultDuration, "how long the demo runs before shutting down")
	fs.String("logLevel", DefaultLogLevel, "the log level: error, warn, info, or debug")
	return fs
}

func defaults() xviper.Defaults {
	return xviper.Defaults{
		"interval":          counter.DefaultDelay,
		"increment":         counter.DefaultIncrement,
		"rooms":             DefaultRooms,
		"theme":             string(chatroom.Light),
		"serverURL":         DefaultServerURL,
		"notificationDelay": DefaultNotificationDelay,
		"connectDelay":      DefaultConnectDelay,
		"duration":          DefaultDuration,
		"log.level":         DefaultLogLevel,
		"log.file":          logging.StdoutFile,
		"log.json":          false,
		"log.development":   false,
		"metrics.namespace": xmetrics.DefaultNamespace,
		"metrics.subsystem": "",
		"metrics.pedantic":  false,
	}
}

// newViper builds the Viper instance for the given command line, layering flags over the
// environment over the optional configuration file over defaults.
func newViper(fs *pflag.FlagSet, arguments []string) (*viper.Viper, error) {
	if err := fs.Parse(arguments); err != nil {
		return nil, err
	}

	configFile, _ := fs.GetString(xviper.DefaultFileFlag)
	return xviper.New(
		xviper.ApplyDefaults(defaults()),
		xviper.StdOptions(applicationName, fs),
		xviper.BindPFlag(fs, "log.level", "logLevel"),
		xviper.BindConfigFile(fs, xviper.DefaultFileFlag),
		xviper.ReadInConfig(len(configFile) > 0),
	)
}

// NewConfig unmarshals and validates the demo configuration
func NewConfig(v *viper.Viper) (Config, error) {
	var c Config
	if err := xviper.Unmarshal(v, &c); err != nil {
		return Config{}, err
	}

	if err := c.validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}
