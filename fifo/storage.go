// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package fifo

// storage is the FIFO memory. Slots are addressed with the index bits of a
// pointer only, so addressing cannot go out of bounds.
//
type storage []uint64

func (s storage) read(idx uint64) uint64 { return s[idx] }

func (s storage) write(idx uint64, v uint64) { s[idx] = v }

// slotWrite is a storage write waiting for commit.
type slotWrite struct {
	idx uint64
	v   uint64
}
