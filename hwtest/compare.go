// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing FIFOs.
//
package hwtest

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/db47h/fifosim/fifo"
)

func randBool() bool {
	return rand.Int63()&(1<<62) != 0
}

func randInputs(width int) fifo.Inputs {
	return fifo.Inputs{
		Select: rand.Intn(8) != 0,
		Write:  randBool(),
		Read:   randBool(),
		Reset:  rand.Intn(64) == 0,
		Data:   rand.Uint64() >> uint(64-width),
	}
}

func errString(tick int, in fifo.Inputs, what string, ex, got interface{}) string {
	return fmt.Sprintf("\ntick %d, inputs %+v\nExpected %s = %+v\nGot %+v", tick, in, what, ex, got)
}

// Compare drives models a and b with the same inputs and fails t at the first
// tick where their results or outputs differ. width is the element width used
// to generate input data.
//
// Both models are reset first. They are then run with all inputs idle, with
// all requests set, with long write then read bursts to hit the full and empty
// conditions, and finally with iter ticks of random inputs.
//
func Compare(t testing.TB, width int, a, b Model, iter int) {
	t.Helper()

	if width <= 0 || width > 64 {
		t.Fatalf("invalid width %d", width)
	}
	a.Reset()
	b.Reset()

	tick := 0
	step := func(in fifo.Inputs) {
		t.Helper()
		ra, rb := a.Tick(in), b.Tick(in)
		if ra != rb {
			t.Fatal(errString(tick, in, "result", ra, rb))
		}
		oa, ob := a.Outputs(), b.Outputs()
		if oa != ob {
			t.Fatal(errString(tick, in, "outputs", oa, ob))
		}
		tick++
	}

	start := time.Now()

	// all idle
	step(fifo.Inputs{})
	// all requests
	step(fifo.Inputs{Select: true, Write: true, Read: true, Data: 1})

	// bursts
	for burst := 1; burst <= 256; burst <<= 1 {
		for i := 0; i < burst; i++ {
			step(fifo.Inputs{Select: true, Write: true, Data: rand.Uint64() >> uint(64-width)})
		}
		for i := 0; i < burst; i++ {
			step(fifo.Inputs{Select: true, Read: true})
		}
	}

	for i := 0; i < iter; i++ {
		step(randInputs(width))
	}

	elapsed := time.Since(start)
	t.Logf("%d ticks in %v => %.2f Hz", tick, elapsed, float64(tick)/(float64(elapsed)/float64(time.Second)))
}
