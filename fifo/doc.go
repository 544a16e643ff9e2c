// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package fifo implements a synchronous FIFO: a fixed capacity circular buffer
with a write port and a read port driven by a single clock.

Full and empty conditions are detected from the write and read pointers alone.
Both pointers carry one extra high bit that toggles every time the pointer
wraps around. Equal pointers mean empty, pointers whose slot index match but
whose extra bit differ mean full. No occupancy counter is kept.

Flow control never blocks: a write to a full FIFO or a read from an empty one
is simply not accepted, as reported by the Result of the tick. Callers
needing delivery guarantees check Full or the Result and retry on a later
tick.

	f, err := fifo.New(fifo.Config{Depth: 4, Width: 32})
	if err != nil {
		// handle err
	}
	f.Write(42)
	f.Read()
	fmt.Println(f.Data()) // 42
*/
package fifo
