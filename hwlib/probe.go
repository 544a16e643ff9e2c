// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"log/slog"

	"github.com/db47h/fifosim"
	"github.com/db47h/fifosim/fifo"
	"github.com/db47h/fifosim/internal/xlog"
)

type probe struct {
	f    *fifo.FIFO
	fn   func(tick uint64, o fifo.Outputs)
	o    fifo.Outputs
	tick uint64
}

func (p *probe) Update() { p.o = p.f.Outputs() }

func (p *probe) Commit() {
	p.fn(p.tick, p.o)
	p.tick++
}

// Probe returns an output probe for f. On tick n, fn is called with the
// outputs of f as they were at the start of the tick, that is after n
// commits.
//
func Probe(f *fifo.FIFO, fn func(tick uint64, o fifo.Outputs)) fifosim.Component {
	return &probe{f: f, fn: fn}
}

// A Mon logs the outputs of a FIFO at every tick.
//
type Mon struct {
	name string
	f    *fifo.FIFO
	l    *slog.Logger

	o    fifo.Outputs
	n    int
	prev fifo.Outputs
	tick uint64
}

var _ fifosim.Component = (*Mon)(nil)

// Monitor returns a probe that logs the state of f. Every tick is logged at
// debug level, changes of the full or empty flags at info level. If l is nil,
// the default logger is used.
//
func Monitor(name string, f *fifo.FIFO, l *slog.Logger) *Mon {
	if l == nil {
		l = xlog.For(xlog.ComponentFIFO)
	}
	return &Mon{name: name, f: f, l: l.With("fifo", name), prev: fifo.Outputs{Empty: true}}
}

// Update implements fifosim.Component.
//
func (m *Mon) Update() {
	m.o = m.f.Outputs()
	m.n = m.f.Len()
}

// Commit implements fifosim.Component.
//
func (m *Mon) Commit() {
	m.l.Debug("tick", "tick", m.tick, "data", m.o.Data, "len", m.n, "full", m.o.Full, "empty", m.o.Empty)
	if m.o.Full != m.prev.Full {
		m.l.Info("full", "tick", m.tick, "value", m.o.Full)
	}
	if m.o.Empty != m.prev.Empty {
		m.l.Info("empty", "tick", m.tick, "value", m.o.Empty)
	}
	m.prev = m.o
	m.tick++
}
