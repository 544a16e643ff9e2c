// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package fifo

import (
	"sync"

	"github.com/db47h/fifosim/internal/lap"
)

// Inputs are the FIFO input signals sampled at each tick.
//
type Inputs struct {
	Select bool   // chip select. Both ports are idle when false.
	Write  bool   // write request
	Read   bool   // read request
	Reset  bool   // overrides all other inputs
	Data   uint64 // write data, truncated to the FIFO width
}

// Outputs are the FIFO output signals.
//
type Outputs struct {
	Data  uint64 // output register
	Full  bool
	Empty bool
}

// Result reports which requests were accepted during a tick.
//
type Result struct {
	Wrote bool
	Read  bool
}

type state struct {
	wp  uint64
	rp  uint64
	out uint64
}

// A FIFO is a synchronous first-in first-out queue.
//
// Each tick, the write and read requests are evaluated against the same
// committed state, then the write pointer, read pointer and output register
// are committed together. A value read at tick t is available from Data at
// tick t+1. Writes to a full FIFO and reads from an empty FIFO are refused
// without side effects. When no read is accepted, the output register holds
// its previous value.
//
// A FIFO is safe for concurrent use. Tick, Write and Read are atomic. A
// transition from Eval is only committed if no other commit or reset happened
// in between, so concurrent Eval/Commit pairs never lose an update.
//
type FIFO struct {
	ring lap.Ring
	cfg  Config
	mask uint64

	mu    sync.RWMutex
	mem   storage
	cur   state
	seq   uint64 // bumped by every applied commit and every reset
	ticks uint64
}

// New returns a new empty FIFO.
//
func New(cfg Config) (*FIFO, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &FIFO{
		ring: lap.New(uint64(cfg.Depth)),
		cfg:  cfg,
		mask: cfg.mask(),
		mem:  make(storage, cfg.Depth),
	}, nil
}

// A Transition is the next state of a FIFO, computed by Eval.
//
type Transition struct {
	f     *FIFO
	seq   uint64
	reset bool
	next  state
	wr    slotWrite
	res   Result
}

// Result returns the requests that the transition will accept once committed.
//
func (t Transition) Result() Result { return t.res }

// Eval computes the transition for inputs in from the committed state of f.
// It does not modify f.
//
func (f *FIFO) Eval(in Inputs) Transition {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.eval(in)
}

func (f *FIFO) eval(in Inputs) Transition {
	t := Transition{f: f, seq: f.seq}
	if in.Reset {
		t.reset = true
		return t
	}

	cur := f.cur
	t.next = cur
	if !in.Select {
		return t
	}
	if in.Write && !f.ring.Full(cur.wp, cur.rp) {
		t.wr = slotWrite{f.ring.Index(cur.wp), in.Data & f.mask}
		t.next.wp = f.ring.Next(cur.wp)
		t.res.Wrote = true
	}
	if in.Read && !f.ring.Empty(cur.wp, cur.rp) {
		t.next.out = f.mem.read(f.ring.Index(cur.rp))
		t.next.rp = f.ring.Next(cur.rp)
		t.res.Read = true
	}
	return t
}

// Commit applies transition t and returns the accepted requests. If f has
// been committed to or reset since t was computed, t is discarded and nothing
// is accepted.
//
// Commit panics if t was not computed by f.Eval.
//
func (f *FIFO) Commit(t Transition) Result {
	if t.f != f {
		panic("fifo: transition from another FIFO")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.commit(t)
}

func (f *FIFO) commit(t Transition) Result {
	f.ticks++
	switch {
	case t.seq != f.seq:
		return Result{}
	case t.reset:
		f.reset()
		return Result{}
	}
	if t.res.Wrote {
		f.mem.write(t.wr.idx, t.wr.v)
	}
	f.cur = t.next
	f.seq++
	return t.res
}

// Tick runs one clock cycle with inputs in. Evaluation and commit happen
// under the same lock.
//
func (f *FIFO) Tick(in Inputs) Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.commit(f.eval(in))
}

// Write runs one clock cycle with a single write request. It returns false if
// the FIFO was full.
//
func (f *FIFO) Write(v uint64) bool {
	return f.Tick(Inputs{Select: true, Write: true, Data: v}).Wrote
}

// Read runs one clock cycle with a single read request. It returns false if
// the FIFO was empty. The value read is available from Data once Read
// returns.
//
func (f *FIFO) Read() bool {
	return f.Tick(Inputs{Select: true, Read: true}).Read
}

// Reset empties the FIFO and clears the output register. It takes effect
// immediately and cancels any transition computed before the call.
//
func (f *FIFO) Reset() {
	f.mu.Lock()
	f.reset()
	f.mu.Unlock()
}

func (f *FIFO) reset() {
	f.cur = state{}
	f.seq++
}

// Outputs returns the current state of the output signals.
//
func (f *FIFO) Outputs() Outputs {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return Outputs{
		Data:  f.cur.out,
		Full:  f.ring.Full(f.cur.wp, f.cur.rp),
		Empty: f.ring.Empty(f.cur.wp, f.cur.rp),
	}
}

// Data returns the output register.
//
func (f *FIFO) Data() uint64 { return f.Outputs().Data }

// Full returns true if the FIFO is full.
//
func (f *FIFO) Full() bool { return f.Outputs().Full }

// Empty returns true if the FIFO is empty.
//
func (f *FIFO) Empty() bool { return f.Outputs().Empty }

// Len returns the number of elements in the FIFO.
//
func (f *FIFO) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return int(f.ring.Len(f.cur.wp, f.cur.rp))
}

// Pointers returns the write and read pointers, lap bit included.
//
func (f *FIFO) Pointers() (w, r uint64) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.cur.wp, f.cur.rp
}

// Ticks returns the number of committed ticks.
//
func (f *FIFO) Ticks() uint64 {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.ticks
}

// Cap returns the FIFO depth.
//
func (f *FIFO) Cap() int { return f.cfg.Depth }

// Width returns the element width in bits.
//
func (f *FIFO) Width() int { return f.cfg.Width }

// PointerBits returns the width of the read and write pointers.
//
func (f *FIFO) PointerBits() int { return f.ring.Bits() }
