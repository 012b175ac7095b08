// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xviper

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reflectTypeOf(v interface{}) reflect.Type {
	return reflect.TypeOf(v)
}

func TestConfigureNil(t *testing.T) {
	v, err := Configure(nil, AutomaticEnv)
	assert.Nil(t, v)
	assert.NoError(t, err)
}

func TestConfigureError(t *testing.T) {
	var (
		assert   = assert.New(t)
		expected = errors.New("expected")
		called   bool
	)

	v, err := New(
		func(*viper.Viper) error { return expected },
		func(*viper.Viper) error { called = true; return nil },
	)

	assert.Nil(v)
	assert.Equal(expected, err)
	assert.False(called)
}

func TestApplyDefaults(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
	)

	v, err := New(ApplyDefaults(Defaults{"room": "general", "increment": 1}))
	require.NoError(err)
	assert.Equal("general", v.GetString("room"))
	assert.Equal(1, v.GetInt("increment"))
}

func TestStdOptions(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		fs      = pflag.NewFlagSet("cadence", pflag.ContinueOnError)
	)

	fs.String("room", "general", "")
	fs.Int("increment", 1, "")
	require.NoError(fs.Parse([]string{"--room", "travel"}))
	t.Setenv("CADENCE_LOG_LEVEL", "debug")

	v, err := New(StdOptions("cadence", fs), ReadInConfig(false))
	require.NoError(err)
	assert.Equal("travel", v.GetString("room"))
	assert.Equal(1, v.GetInt("increment"))
	assert.Equal("debug", v.GetString("log.level"))
}

func TestBindPFlag(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		fs      = pflag.NewFlagSet("cadence", pflag.ContinueOnError)
	)

	fs.String("log-level", "info", "")
	require.NoError(fs.Parse([]string{"--log-level", "warn"}))

	v, err := New(BindPFlag(fs, "log.level", "log-level"))
	require.NoError(err)
	assert.Equal("warn", v.GetString("log.level"))

	_, err = New(BindPFlag(fs, "log.json", "log-json"))
	assert.Error(err)
}

func TestBindConfigFile(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		fs      = pflag.NewFlagSet("cadence", pflag.ContinueOnError)
		file    = filepath.Join(t.TempDir(), "cadence.yaml")
	)

	require.NoError(os.WriteFile(file, []byte("room: music\ninterval: 300\n"), 0600))
	fs.String(DefaultFileFlag, "", "")
	require.NoError(fs.Parse([]string{"--file", file}))

	v, err := New(BindConfigFile(fs, DefaultFileFlag), ReadInConfig(true))
	require.NoError(err)
	assert.Equal("music", v.GetString("room"))
	assert.Equal(300, v.GetInt("interval"))
}

func TestReadInConfigMissing(t *testing.T) {
	var (
		assert  = assert.New(t)
		options = []Option{AddConfigPaths(t.TempDir()), SetConfigName("nosuchconfig")}
	)

	_, err := New(append(options, ReadInConfig(false))...)
	assert.NoError(err)

	_, err = New(append(options, ReadInConfig(true))...)
	assert.Error(err)
}
