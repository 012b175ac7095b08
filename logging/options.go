// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	StdoutFile = "stdout"
)

// Options stores the configuration of a zap Logger.  Lumberjack is used for rolling files.
type Options struct {
	// File is the system file path for the log file.  If unset or set to "stdout", this will log to os.Stdout.
	// Otherwise, a lumberjack.Logger is created
	File string `json:"file"`

	// MaxSize is the lumberjack MaxSize
	MaxSize int `json:"maxsize"`

	// MaxAge is the lumberjack MaxAge
	MaxAge int `json:"maxage"`

	// MaxBackups is the lumberjack MaxBackups
	MaxBackups int `json:"maxbackups"`

	// JSON is a flag indicating whether JSON logging output is used.  The default is false,
	// meaning that console output is used.
	JSON bool `json:"json"`

	// Development puts the logger in zap's development mode, which adds stack traces to warnings
	// and panics on DPanic.
	Development bool `json:"development"`

	// Level is the error level to output: ERROR, INFO, WARN, or DEBUG.  Any unrecognized string,
	// including the empty string, is equivalent to passing ERROR.
	Level string `json:"level"`
}

func (o *Options) output() string {
	if o != nil && len(o.File) > 0 {
		return o.File
	}

	return StdoutFile
}

// rollingFile returns the lumberjack.Logger that writes to File, or nil when logging to stdout
func (o *Options) rollingFile() *lumberjack.Logger {
	if o == nil || len(o.File) == 0 || o.File == StdoutFile {
		return nil
	}

	return &lumberjack.Logger{
		Filename:   o.File,
		MaxSize:    o.MaxSize,
		MaxAge:     o.MaxAge,
		MaxBackups: o.MaxBackups,
	}
}

func (o *Options) encoding() string {
	if o != nil && o.JSON {
		return "json"
	}

	return "console"
}

func (o *Options) development() bool {
	if o != nil {
		return o.Development
	}

	return false
}

func (o *Options) level() zapcore.Level {
	var v string
	if o != nil {
		v = o.Level
	}

	switch strings.ToUpper(v) {
	case "DEBUG":
		return zapcore.DebugLevel

	case "INFO":
		return zapcore.InfoLevel

	case "WARN":
		return zapcore.WarnLevel

	default:
		return zapcore.ErrorLevel
	}
}

// Config produces the zap configuration described by these options.  The options object can be nil,
// in which case the configuration logs errors to stdout in console format.
func (o *Options) Config() zap.Config {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if o.encoding() == "console" {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	return zap.Config{
		Level:            zap.NewAtomicLevelAt(o.level()),
		Development:      o.development(),
		Encoding:         o.encoding(),
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{o.output()},
		ErrorOutputPaths: []string{"stderr"},
	}
}

// New creates a zap Logger from a set of options.  The options object can be nil.
// A File other than stdout is written through lumberjack, which rolls it over
// according to MaxSize, MaxAge, and MaxBackups.
func New(o *Options) (*zap.Logger, error) {
	c := o.Config()
	file := o.rollingFile()
	if file == nil {
		return c.Build()
	}

	encoder := zapcore.NewConsoleEncoder(c.EncoderConfig)
	if c.Encoding == "json" {
		encoder = zapcore.NewJSONEncoder(c.EncoderConfig)
	}

	options := []zap.Option{
		zap.ErrorOutput(zapcore.Lock(os.Stderr)),
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	}

	if c.Development {
		options = append(options, zap.Development(), zap.AddStacktrace(zapcore.WarnLevel))
	}

	return zap.New(
		zapcore.NewCore(encoder, zapcore.AddSync(file), c.Level),
		options...,
	), nil
}
