// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtest

import "github.com/db47h/fifosim/fifo"

// Model is the interface implemented by FIFO models that can be compared.
// *fifo.FIFO implements Model.
//
type Model interface {
	Tick(in fifo.Inputs) fifo.Result
	Outputs() fifo.Outputs
	Reset()
}

var _ Model = (*fifo.FIFO)(nil)

// Reference is a straightforward FIFO model that keeps its elements in a
// slice and tracks occupancy with a counter. It shares no code with package
// fifo and serves as an oracle for it.
//
type Reference struct {
	depth int
	mask  uint64
	q     []uint64
	n     int
	out   uint64
}

// NewReference returns a reference model for cfg. cfg is not validated
// beyond Depth > 0 and Width in 1..64.
//
func NewReference(cfg fifo.Config) *Reference {
	if cfg.Depth <= 0 || cfg.Width <= 0 || cfg.Width > 64 {
		panic("hwtest: bad reference configuration")
	}
	mask := ^uint64(0)
	if cfg.Width < 64 {
		mask = 1<<uint(cfg.Width) - 1
	}
	return &Reference{depth: cfg.Depth, mask: mask, q: make([]uint64, 0, cfg.Depth)}
}

// Tick implements Model.
//
func (r *Reference) Tick(in fifo.Inputs) fifo.Result {
	if in.Reset {
		r.Reset()
		return fifo.Result{}
	}
	if !in.Select {
		return fifo.Result{}
	}
	var res fifo.Result
	n := r.n
	if in.Read && n > 0 {
		res.Read = true
	}
	if in.Write && n < r.depth {
		res.Wrote = true
	}
	if res.Read {
		r.out = r.q[0]
		r.q = r.q[1:]
		r.n--
	}
	if res.Wrote {
		r.q = append(r.q, in.Data&r.mask)
		r.n++
	}
	return res
}

// Outputs implements Model.
//
func (r *Reference) Outputs() fifo.Outputs {
	return fifo.Outputs{Data: r.out, Full: r.n == r.depth, Empty: r.n == 0}
}

// Reset implements Model.
//
func (r *Reference) Reset() {
	r.q = r.q[:0]
	r.n = 0
	r.out = 0
}

// Len returns the number of elements in the model.
//
func (r *Reference) Len() int { return r.n }
