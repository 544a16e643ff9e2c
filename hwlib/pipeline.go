// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/fifosim"
	"github.com/db47h/fifosim/fifo"
	"github.com/pkg/errors"
)

// A Pipeline is a cascade of FIFOs. Elements written to the first stage are
// moved stage by stage and read from the last one, in order.
//
// Between two stages, a link reads from stage k whenever stage k is not empty
// and stage k+1 has room for the element, including an element already in
// flight. Because of the read latency, the element sits in the output
// register of stage k for one tick; a 1 bit register carries the "read
// accepted" signal to the write port of stage k+1 for the next tick.
//
type Pipeline struct {
	stages []*fifo.FIFO
	parts  []*FIFOPart
	valid  []*Reg // valid[k] is set when stage k holds an element for stage k+1
	in     func() fifo.Inputs
	read   func() bool
}

// NewPipeline returns a pipeline with one FIFO per configuration.
//
// The write port and the Select and Reset signals of the pipeline are driven
// by in; Select only gates writes. The read request of the last stage is
// driven by read. A Reset input resets all stages.
//
func NewPipeline(cfgs []fifo.Config, in func() fifo.Inputs, read func() bool) (*Pipeline, error) {
	if len(cfgs) == 0 {
		return nil, errors.New("empty pipeline")
	}
	p := &Pipeline{in: in, read: read}
	for i, cfg := range cfgs {
		f, err := fifo.New(cfg)
		if err != nil {
			return nil, errors.Wrapf(err, "stage %d", i)
		}
		p.stages = append(p.stages, f)
	}
	for k := range p.stages {
		k := k
		p.parts = append(p.parts, FIFO(p.stages[k], func() fifo.Inputs { return p.inputs(k) }))
		if k < len(p.stages)-1 {
			p.valid = append(p.valid, RegisterBit(func() bool { return !p.in().Reset && p.pull(k) }))
		}
	}
	return p, nil
}

// pull returns true if stage k must be read from during this tick.
//
func (p *Pipeline) pull(k int) bool {
	src, dst := p.stages[k], p.stages[k+1]
	if src.Empty() {
		return false
	}
	n := dst.Len()
	if p.valid[k].Bit() {
		n++
	}
	return n < dst.Cap()
}

func (p *Pipeline) inputs(k int) fifo.Inputs {
	ext := p.in()
	in := fifo.Inputs{Select: true, Reset: ext.Reset}
	if k == 0 {
		in.Write = ext.Select && ext.Write
		in.Data = ext.Data
	} else {
		in.Write = p.valid[k-1].Bit()
		in.Data = p.stages[k-1].Data()
	}
	if k == len(p.stages)-1 {
		in.Read = p.read()
	} else {
		in.Read = p.pull(k)
	}
	return in
}

// Components returns the components to mount into a circuit.
//
func (p *Pipeline) Components() []fifosim.Component {
	cs := make([]fifosim.Component, 0, len(p.parts)+len(p.valid))
	for _, c := range p.parts {
		cs = append(cs, c)
	}
	for _, r := range p.valid {
		cs = append(cs, r)
	}
	return cs
}

// Outputs returns the pipeline outputs: Data and Empty from the last stage,
// Full from the first.
//
func (p *Pipeline) Outputs() fifo.Outputs {
	o := p.stages[len(p.stages)-1].Outputs()
	o.Full = p.stages[0].Full()
	return o
}

// Accepted returns the requests accepted by the pipeline during the last
// tick: the write at the first stage and the read at the last.
//
func (p *Pipeline) Accepted() fifo.Result {
	return fifo.Result{
		Wrote: p.parts[0].Last().Wrote,
		Read:  p.parts[len(p.parts)-1].Last().Read,
	}
}

// Len returns the number of elements in the pipeline, including elements in
// flight between stages.
//
func (p *Pipeline) Len() int {
	n := 0
	for _, f := range p.stages {
		n += f.Len()
	}
	for _, r := range p.valid {
		if r.Bit() {
			n++
		}
	}
	return n
}

// Cap returns the total capacity of the pipeline.
//
func (p *Pipeline) Cap() int {
	n := 0
	for _, f := range p.stages {
		n += f.Cap()
	}
	return n
}

// Stage returns the FIFO for stage k.
//
func (p *Pipeline) Stage(k int) *fifo.FIFO { return p.stages[k] }

// Reset resets all stages and links. It must not be called while the circuit
// is ticking.
//
func (p *Pipeline) Reset() {
	for _, f := range p.stages {
		f.Reset()
	}
	for _, r := range p.valid {
		r.Reset()
	}
}
