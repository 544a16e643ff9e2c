package spsc_test

import (
	"sync"
	"testing"

	"github.com/db47h/fifosim/spsc"
)

func TestNew(t *testing.T) {
	for _, d := range []int{0, -1, 3, 12} {
		if _, err := spsc.New[int](d); err == nil {
			t.Errorf("New(%d): expected error", d)
		}
	}
	r, err := spsc.New[int](8)
	if err != nil {
		t.Fatal(err)
	}
	if r.Cap() != 8 || r.Len() != 0 || !r.Empty() || r.Full() {
		t.Fatal("bad initial state")
	}
}

func TestFillDrain(t *testing.T) {
	r, err := spsc.New[uint32](4)
	if err != nil {
		t.Fatal(err)
	}
	for round := 0; round < 3; round++ {
		for _, v := range []uint32{1, 2, 4, 8} {
			if !r.Push(v) {
				t.Fatalf("round %d: push %d refused", round, v)
			}
		}
		if !r.Full() || r.Push(16) {
			t.Fatalf("round %d: expected full ring", round)
		}
		for _, v := range []uint32{1, 2, 4, 8} {
			got, ok := r.Pop()
			if !ok || got != v {
				t.Fatalf("round %d: expected %d, got %d, %v", round, v, got, ok)
			}
		}
		if !r.Empty() {
			t.Fatalf("round %d: expected empty ring", round)
		}
		if _, ok := r.Pop(); ok {
			t.Fatalf("round %d: pop from empty ring", round)
		}
	}
}

// One producer and one consumer: every value is received once, in order.
func TestConcurrent(t *testing.T) {
	const n = 200000
	r, err := spsc.New[int](16)
	if err != nil {
		t.Fatal(err)
	}
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < n; {
			if r.Push(i) {
				i++
			}
		}
	}()
	for want := 0; want < n; {
		v, ok := r.Pop()
		if !ok {
			continue
		}
		if v != want {
			t.Fatalf("expected %d, got %d", want, v)
		}
		if l := r.Len(); l < 0 || l > r.Cap() {
			t.Fatalf("Len() = %d", l)
		}
		want++
	}
	wg.Wait()
	if !r.Empty() {
		t.Fatal("ring not empty")
	}
}

func BenchmarkPushPop(b *testing.B) {
	r, err := spsc.New[int](1024)
	if err != nil {
		b.Fatal(err)
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < b.N; {
			if _, ok := r.Pop(); ok {
				i++
			}
		}
	}()
	for i := 0; i < b.N; {
		if r.Push(i) {
			i++
		}
	}
	<-done
}
