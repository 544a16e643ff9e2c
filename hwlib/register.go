// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/db47h/fifosim"

// Reg is a clocked register.
//
//	Inputs: in
//	Outputs: out
//	Function: out(t) = in(t-1) // where t is the current clock cycle.
//
type Reg struct {
	in   func() uint64
	next uint64
	out  uint64
}

var _ fifosim.Component = (*Reg)(nil)

// Register returns a 64 bits register fed by in.
//
func Register(in func() uint64) *Reg {
	return &Reg{in: in}
}

// RegisterBit returns a 1 bit register fed by in.
//
func RegisterBit(in func() bool) *Reg {
	return &Reg{in: func() uint64 {
		if in() {
			return 1
		}
		return 0
	}}
}

// Update implements fifosim.Component.
//
func (r *Reg) Update() { r.next = r.in() }

// Commit implements fifosim.Component.
//
func (r *Reg) Commit() { r.out = r.next }

// Out returns the register output.
//
func (r *Reg) Out() uint64 { return r.out }

// Bit returns true if bit 0 of the register output is set.
//
func (r *Reg) Bit() bool { return r.out&1 != 0 }

// Reset clears the register. It must not be called while the circuit is
// ticking.
//
func (r *Reg) Reset() { r.out, r.next = 0, 0 }
