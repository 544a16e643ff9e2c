// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwlib provides parts to mount FIFOs and friends into a
// fifosim.Circuit.
//
package hwlib

import (
	"github.com/db47h/fifosim"
	"github.com/db47h/fifosim/fifo"
)

// FIFOPart drives a FIFO in a circuit.
//
//	Inputs: in() sampled once per tick
//	Outputs: f.Outputs()
//
type FIFOPart struct {
	f    *fifo.FIFO
	in   func() fifo.Inputs
	t    fifo.Transition
	last fifo.Result
}

var _ fifosim.Component = (*FIFOPart)(nil)

// FIFO returns a part that ticks f with the inputs returned by in.
//
func FIFO(f *fifo.FIFO, in func() fifo.Inputs) *FIFOPart {
	return &FIFOPart{f: f, in: in}
}

// Update implements fifosim.Component.
//
func (p *FIFOPart) Update() { p.t = p.f.Eval(p.in()) }

// Commit implements fifosim.Component.
//
func (p *FIFOPart) Commit() { p.last = p.f.Commit(p.t) }

// Last returns the requests accepted during the last tick.
//
func (p *FIFOPart) Last() fifo.Result { return p.last }

// FIFO returns the underlying FIFO.
//
func (p *FIFOPart) FIFO() *fifo.FIFO { return p.f }
