// SPDX-License-Identifier: MIT

// Package logging builds the zap loggers used by the server, the store and the CLI.
// Library packages (geometry, matrix, indoor, builder, jsonio) never log.
package logging

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Output formats accepted by New.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// ErrFormat indicates an unknown log format.
var ErrFormat = errors.New("logging: unknown format")

// New returns a logger at the given level ("debug", "info", "warn", "error").
// FormatJSON starts from zap's production preset, FormatConsole from the development one.
func New(level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("New: level %q: %w", level, err)
	}

	var cfg zap.Config
	switch format {
	case FormatJSON, "":
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "ts"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	case FormatConsole:
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("New: %q: %w", format, ErrFormat)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return cfg.Build()
}

// Must is New that panics on error; intended for main packages.
func Must(level, format string) *zap.Logger {
	l, err := New(level, format)
	if err != nil {
		panic(err)
	}

	return l
}
