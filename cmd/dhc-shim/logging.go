// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

//go:build windows

package main

import (
	"context"
	"log/slog"
)

var logger *slog.Logger

// currentLogger returns the shim's process-wide logger, falling back to
// slog's default if dhc_init hasn't run yet (defensive: dhc_log is part
// of the public ABI and a misbehaving host could call it early).
func currentLogger() *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// slogLevel maps the C-ABI LogLevel enum onto slog's levels, the same way
// logging.ParseLevel maps the dhc.toml string form.
func slogLevel(level LogLevel) slog.Level {
	switch level {
	case LogLevelTrace, LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError, LogLevelFatal:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

var backgroundCtx = context.Background()
