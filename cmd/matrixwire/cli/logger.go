// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewLogger creates the diagnostic logger for a command, writing to
// stderr. format is "text", "json", or "auto": text when stderr is a
// terminal and JSON when it is piped or redirected. level is a slog
// level name such as "info" or "debug".
func NewLogger(level, format string) (*slog.Logger, error) {
	isTerminal := term.IsTerminal(int(os.Stderr.Fd()))
	return newLogger(os.Stderr, isTerminal, level, format)
}

func newLogger(w io.Writer, isTerminal bool, level, format string) (*slog.Logger, error) {
	var minimum slog.Level
	if err := minimum.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	options := &slog.HandlerOptions{Level: minimum}

	switch format {
	case "auto", "":
		if isTerminal {
			return slog.New(slog.NewTextHandler(w, options)), nil
		}
		return slog.New(slog.NewJSONHandler(w, options)), nil
	case "text":
		return slog.New(slog.NewTextHandler(w, options)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, options)), nil
	}
	return nil, fmt.Errorf("log format must be auto, text, or json, got %q", format)
}
