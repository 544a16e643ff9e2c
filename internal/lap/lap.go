// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package lap implements ring buffer pointers with an extra wraparound (lap)
// bit.
//
// A Ring of depth n uses pointers of log2(n)+1 bits. The low log2(n) bits
// index a slot, the top bit toggles each time the pointer wraps past the last
// slot. Two pointers with identical bits denote an empty ring, two pointers
// whose index bits match but whose lap bits differ denote a full ring.
//
package lap

import "math/bits"

// A Ring holds the pointer geometry for a ring buffer of a given depth.
//
type Ring struct {
	depth uint64 // also the lap bit
	idx   uint64 // index mask
	ptr   uint64 // pointer mask
}

// IsPow2 returns true if n is a positive power of two.
//
func IsPow2(n uint64) bool {
	return n != 0 && n&(n-1) == 0
}

// RoundUp returns the smallest power of two greater or equal to n.
// RoundUp(0) returns 1.
//
func RoundUp(n uint64) uint64 {
	if n < 2 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}

// New returns the Ring for the given depth. It panics if depth is not a
// power of two or is larger than 1<<62.
//
func New(depth uint64) Ring {
	if !IsPow2(depth) || depth > 1<<62 {
		panic("lap: depth must be a power of two")
	}
	return Ring{
		depth: depth,
		idx:   depth - 1,
		ptr:   depth<<1 - 1,
	}
}

// Depth returns the number of slots in the ring.
//
func (r Ring) Depth() uint64 { return r.depth }

// Bits returns the pointer width in bits.
//
func (r Ring) Bits() int { return bits.TrailingZeros64(r.depth) + 1 }

// Index returns the slot addressed by pointer p.
//
func (r Ring) Index(p uint64) uint64 { return p & r.idx }

// Lap returns the lap bit of p.
//
func (r Ring) Lap(p uint64) bool { return p&r.depth != 0 }

// Next returns p+1 wrapped to the pointer width.
//
func (r Ring) Next(p uint64) uint64 { return (p + 1) & r.ptr }

// Empty returns true if the ring with write pointer w and read pointer rd is
// empty.
//
func (r Ring) Empty(w, rd uint64) bool { return w == rd }

// Full returns true if the ring with write pointer w and read pointer rd is
// full.
//
func (r Ring) Full(w, rd uint64) bool { return w == rd^r.depth }

// Len returns the number of elements between read pointer rd and write
// pointer w.
//
func (r Ring) Len(w, rd uint64) uint64 { return (w - rd) & r.ptr }
