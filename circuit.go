// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package fifosim

import (
	"runtime"
	"sync"

	"github.com/pkg/errors"
)

// A Component is a clocked element of a Circuit.
//
// Update computes the component's next state. It must only read committed
// state, its own or other components', and must not make its next state
// visible. Update may run concurrently with the Update of other components.
//
// Commit makes the state computed by Update visible. Commits are run
// sequentially once all updates for the current tick are done.
//
type Component interface {
	Update()
	Commit()
}

// Funcs adapts a pair of functions to the Component interface. Either
// function may be nil.
//
type Funcs struct {
	UpdateFn func()
	CommitFn func()
}

// Update implements Component.
//
func (f Funcs) Update() {
	if f.UpdateFn != nil {
		f.UpdateFn()
	}
}

// Commit implements Component.
//
func (f Funcs) Commit() {
	if f.CommitFn != nil {
		f.CommitFn()
	}
}

// Circuit is a runnable circuit simulation.
//
type Circuit struct {
	cs   []Component
	tick uint64

	wc []chan struct{}
	wg sync.WaitGroup
}

// NewCircuit builds a new circuit with the given components.
//
// workers is the number of goroutines used to update the components each
// tick. If less or equal to 0, the value of GOMAXPROCS will be used.
//
// Callers must make sure to call Dispose() once the circuit is no longer needed
// in order to release allocated resources.
//
func NewCircuit(workers int, cs ...Component) (*Circuit, error) {
	if len(cs) == 0 {
		return nil, errors.New("empty component list")
	}
	for i, c := range cs {
		if c == nil {
			return nil, errors.Errorf("component %d is nil", i)
		}
	}

	c := &Circuit{cs: cs}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(-1)
	}
	if workers <= 0 {
		workers = 1
	}
	for len(cs) > 0 {
		size := len(cs) / workers
		if size*workers < len(cs) {
			size++
		}
		wc := make(chan struct{}, 1)
		c.wc = append(c.wc, wc)
		go worker(c, cs[:size], wc)
		cs = cs[size:]
	}

	return c, nil
}

// Dispose releases all resources allocated for a circuit and stops
// worker goroutines. The circuit cannot be run afterwards.
//
func (c *Circuit) Dispose() {
	c.wg.Add(len(c.wc))
	for _, wc := range c.wc {
		close(wc)
	}
	c.wg.Wait()
	c.wc = nil
}

func worker(c *Circuit, cs []Component, wc <-chan struct{}) {
	for {
		_, ok := <-wc
		if !ok {
			c.wg.Done()
			return
		}
		for _, u := range cs {
			u.Update()
		}
		c.wg.Done()
	}
}

// Tick advances the simulation by one clock cycle. It panics if the circuit
// has been disposed.
//
func (c *Circuit) Tick() {
	if c.wc == nil {
		panic("fifosim: Tick on disposed circuit")
	}
	c.wg.Add(len(c.wc))
	for _, wc := range c.wc {
		wc <- struct{}{}
	}
	c.wg.Wait()

	for _, u := range c.cs {
		u.Commit()
	}
	c.tick++
}

// Run runs the simulation for n clock cycles.
//
func (c *Circuit) Run(n int) {
	for ; n > 0; n-- {
		c.Tick()
	}
}

// RunUntil runs the simulation until cond returns true or limit clock cycles
// have elapsed. cond is checked before each cycle. It returns the number of
// cycles run.
//
func (c *Circuit) RunUntil(cond func() bool, limit int) int {
	n := 0
	for ; n < limit && !cond(); n++ {
		c.Tick()
	}
	return n
}

// Ticks returns the number of clock cycles run so far.
//
func (c *Circuit) Ticks() uint64 {
	return c.tick
}

// Size returns the component count in the circuit.
//
func (c *Circuit) Size() int { return len(c.cs) }
