// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package xlog configures structured logging for the simulator.
//
package xlog

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Component identifies a subsystem for log filtering.
//
type Component string

// Simulator components.
//
const (
	ComponentCircuit Component = "circuit"
	ComponentFIFO    Component = "fifo"
	ComponentScript  Component = "script"
)

// Format specifies the output format for logging.
//
type Format int

// Log formats.
//
const (
	FormatText Format = iota
	FormatJSON
)

var (
	level = new(slog.LevelVar)

	mu     sync.RWMutex
	logger *slog.Logger
)

func init() {
	level.Set(slog.LevelWarn)
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// SetLevel sets the minimum log level.
//
func SetLevel(l slog.Level) {
	level.Set(l)
}

// ParseLevel parses a level name (debug, info, warn, error).
//
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, errors.Wrapf(err, "log level %q", s)
	}
	return l, nil
}

// ParseFormat parses a format name (text or json).
//
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	}
	return 0, errors.Errorf("unknown log format %q", s)
}

// Setup replaces the default logger with one writing to w in the given format.
//
func Setup(w io.Writer, f Format) {
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	switch f {
	case FormatJSON:
		h = slog.NewJSONHandler(w, opts)
	default:
		h = slog.NewTextHandler(w, opts)
	}
	mu.Lock()
	logger = slog.New(h)
	mu.Unlock()
}

// For returns the default logger tagged with the given component.
//
func For(c Component) *slog.Logger {
	mu.RLock()
	l := logger
	mu.RUnlock()
	return l.With("component", string(c))
}
