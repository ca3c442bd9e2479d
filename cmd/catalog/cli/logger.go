// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewCommandLogger creates a structured logger for CLI command operations.
// When stderr is a terminal, uses slog.TextHandler for human-readable output.
// When stderr is piped or redirected, uses slog.JSONHandler for
// machine-parseable output.
//
// The default level is Warn so that normal runs print nothing; --verbose
// passes slog.LevelDebug to see every remote call and resolution step.
func NewCommandLogger(level slog.Level) *slog.Logger {
	return newLogger(os.Stderr, level, term.IsTerminal(int(os.Stderr.Fd())))
}

func newLogger(writer io.Writer, level slog.Level, terminal bool) *slog.Logger {
	var handler slog.Handler
	options := &slog.HandlerOptions{Level: level}
	if terminal {
		handler = slog.NewTextHandler(writer, options)
	} else {
		handler = slog.NewJSONHandler(writer, options)
	}
	return slog.New(handler)
}
