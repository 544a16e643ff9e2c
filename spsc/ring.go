// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package spsc implements a wait-free single-producer single-consumer ring
// buffer.
//
// The ring uses the same pointer scheme as package fifo: write and read
// pointers one bit wider than the slot index, full and empty being decided by
// pointer comparison alone. The producer owns the write pointer and the
// consumer owns the read pointer. Each side publishes its pointer only after
// the slot it guards has been written or read, so the consumer never sees a
// slot before its data and the producer never overwrites a slot still being
// read.
//
// Push and Pop never block. A Push on a full ring or a Pop on an empty ring
// returns false.
//
package spsc

import (
	"sync/atomic"

	"github.com/db47h/fifosim/internal/lap"
	"github.com/pkg/errors"
	"golang.org/x/sys/cpu"
)

// A Ring is a fixed capacity SPSC ring buffer.
// Push must only be called from a single producer goroutine and Pop from a
// single consumer goroutine.
//
type Ring[T any] struct {
	wp atomic.Uint64 // written by the producer
	_  cpu.CacheLinePad
	rp atomic.Uint64 // written by the consumer
	_  cpu.CacheLinePad

	ring lap.Ring
	buf  []T
}

// New returns a new ring of the given depth, which must be a power of two.
//
func New[T any](depth int) (*Ring[T], error) {
	if depth <= 0 || !lap.IsPow2(uint64(depth)) {
		return nil, errors.Errorf("spsc: invalid depth %d", depth)
	}
	return &Ring[T]{
		ring: lap.New(uint64(depth)),
		buf:  make([]T, depth),
	}, nil
}

// Push appends v to the ring. It returns false if the ring is full.
//
func (r *Ring[T]) Push(v T) bool {
	w := r.wp.Load()
	if r.ring.Full(w, r.rp.Load()) {
		return false
	}
	r.buf[r.ring.Index(w)] = v
	r.wp.Store(r.ring.Next(w))
	return true
}

// Pop removes and returns the oldest element. It returns false if the ring is
// empty.
//
func (r *Ring[T]) Pop() (T, bool) {
	var zero T
	rd := r.rp.Load()
	if r.ring.Empty(r.wp.Load(), rd) {
		return zero, false
	}
	i := r.ring.Index(rd)
	v := r.buf[i]
	r.buf[i] = zero
	r.rp.Store(r.ring.Next(rd))
	return v, true
}

// Len returns the number of elements in the ring. It must be called from the
// producer or the consumer goroutine; the result may be stale by the progress
// of the other side.
//
func (r *Ring[T]) Len() int {
	rd := r.rp.Load()
	return int(r.ring.Len(r.wp.Load(), rd))
}

// Cap returns the ring capacity.
//
func (r *Ring[T]) Cap() int { return len(r.buf) }

// Full returns true if the ring is full. Same restrictions as Len apply.
//
func (r *Ring[T]) Full() bool {
	rd := r.rp.Load()
	return r.ring.Full(r.wp.Load(), rd)
}

// Empty returns true if the ring is empty. Same restrictions as Len apply.
//
func (r *Ring[T]) Empty() bool {
	rd := r.rp.Load()
	return r.ring.Empty(r.wp.Load(), rd)
}
