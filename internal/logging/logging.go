// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package logging builds the process-wide slog.Logger dhc uses everywhere
// (ambient stack: the teacher, gazed-vu, calls slog directly rather than a
// third-party logging façade — see vu_windows.go's slog.Error calls — and
// we follow that here). It also owns dhc.log truncation and, when enabled,
// duplicating records to an allocated console.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// LogFileName is the plain-text log file written in the working directory.
const LogFileName = "dhc.log"

// ParseLevel maps a §6 log_level string to a slog.Level. Unknown strings
// fall back to Info.
func ParseLevel(level string) slog.Level {
	switch level {
	case "trace", "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error", "fatal":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Init truncates LogFileName and builds a logger writing to it at the
// given threshold. When console is true, the same records are also
// written to consoleWriter through one text handler, so the console gets
// the same text format as the file, not a separate compact format.
func Init(level string, console bool, consoleWriter io.Writer) (*slog.Logger, func() error, error) {
	file, err := os.Create(LogFileName) // O_TRUNC by default via os.Create
	if err != nil {
		return nil, nil, err
	}

	threshold := ParseLevel(level)
	var writer io.Writer = file
	if console && consoleWriter != nil {
		writer = io.MultiWriter(file, consoleWriter)
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{Level: threshold})
	logger := slog.New(handler)
	return logger, file.Close, nil
}

// Fatal logs msg at error level and terminates the process, matching the
// C-ABI log() operation's "Fatal must terminate the process" contract.
func Fatal(logger *slog.Logger, msg string, args ...any) {
	logger.Error(msg, args...)
	os.Exit(1)
}
