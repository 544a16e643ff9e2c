package script_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/db47h/fifosim/fifo"
	"github.com/db47h/fifosim/internal/script"
)

func TestParse(t *testing.T) {
	w := func(v uint64) fifo.Inputs { return fifo.Inputs{Select: true, Write: true, Data: v} }
	r := fifo.Inputs{Select: true, Read: true}

	td := []struct {
		src string
		out []fifo.Inputs
	}{
		{"", nil},
		{"  # nothing\n\n", nil},
		{"w 1, w 10, w 100\nr; r; r; r", []fifo.Inputs{w(1), w(10), w(100), r, r, r, r}},
		{"write 0x10 # hex\nread", []fifo.Inputs{w(16), r}},
		{"w 0b101,,w 0o17", []fifo.Inputs{w(5), w(15)}},
		{"rw 7", []fifo.Inputs{{Select: true, Write: true, Read: true, Data: 7}}},
		{"nop; reset", []fifo.Inputs{{Select: true}, {Select: true, Reset: true}}},
		{"deselect w 3, deselect r", []fifo.Inputs{{Write: true, Data: 3}, {Read: true}}},
	}
	for _, d := range td {
		out, err := script.Parse(d.src)
		if err != nil {
			t.Errorf("%q: %v", d.src, err)
			continue
		}
		if !reflect.DeepEqual(out, d.out) {
			t.Errorf("%q: expected %+v, got %+v", d.src, d.out, out)
		}
	}
}

func TestParseErrors(t *testing.T) {
	td := []struct {
		src string
		err string
	}{
		{"w", "line 1, col 2 (pos 2): missing value"},
		{"w x", "missing value"},
		{"w 12z", "invalid value \"12z\""},
		{"w 99999999999999999999", "invalid value"},
		{"r\npush 3", "line 2, col 1 (pos 3): unknown command \"push\""},
		{"r r", "expected separator"},
		{"w 1 2", "expected separator"},
		{"deselect", "expected command"},
		{"r, @", "expected command"},
	}
	for _, d := range td {
		_, err := script.Parse(d.src)
		if err == nil {
			t.Errorf("%q: expected error", d.src)
			continue
		}
		if !strings.Contains(err.Error(), d.err) {
			t.Errorf("%q: expected error containing %q, got %q", d.src, d.err, err)
		}
	}
}
