// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package script parses FIFO operation scripts.
//
// A script is a list of commands separated by commas, semicolons or new lines.
// Each command describes the inputs for one tick:
//
//	w <value>    write value
//	r            read
//	rw <value>   write value and read during the same tick
//	nop          no request
//	reset        reset the FIFO
//
// A command may be prefixed with "deselect" to issue it with the chip select
// signal low. Values are unsigned integers in decimal, hexadecimal (0x),
// octal (0o) or binary (0b). A '#' starts a comment that runs to the end of
// the line. Empty commands are ignored.
//
//	w 1, w 10, w 0x64  # three writes
//	r; r; r; r         # the fourth read is refused
//
package script

import (
	"strconv"

	"github.com/db47h/fifosim/fifo"
	"github.com/pkg/errors"
)

// Parse parses a script and returns the inputs for each tick.
//
func Parse(src string) ([]fifo.Inputs, error) {
	var out []fifo.Inputs
	l := &lexer{in: src}

	t := l.Lex()
	for {
		switch t.Type {
		case EOF:
			return out, nil
		case Sep:
			t = l.Lex()
			continue
		}
		in, next, err := parseCommand(src, l, t)
		if err != nil {
			return nil, err
		}
		out = append(out, in)
		switch next.Type {
		case EOF, Sep:
		default:
			return nil, parseError(src, next.Pos, "expected separator or end of input")
		}
		t = next
	}
}

// parseCommand parses a command starting at token t and returns the token
// following it.
//
func parseCommand(src string, l *lexer, t Token) (fifo.Inputs, Token, error) {
	in := fifo.Inputs{Select: true}
	if t.Type == Ident && t.Value == "deselect" {
		in.Select = false
		t = l.Lex()
	}
	if t.Type != Ident {
		return in, t, parseError(src, t.Pos, "expected command")
	}

	switch t.Value {
	case "w", "write":
		in.Write = true
	case "r", "read":
		in.Read = true
		return in, l.Lex(), nil
	case "rw":
		in.Write, in.Read = true, true
	case "nop":
		return in, l.Lex(), nil
	case "reset":
		in.Reset = true
		return in, l.Lex(), nil
	default:
		return in, t, parseError(src, t.Pos, "unknown command "+strconv.Quote(t.Value))
	}

	// write value
	t = l.Lex()
	if t.Type != Int {
		return in, t, parseError(src, t.Pos, "missing value")
	}
	v, err := strconv.ParseUint(t.Value, 0, 64)
	if err != nil {
		return in, t, parseError(src, t.Pos, "invalid value "+strconv.Quote(t.Value))
	}
	in.Data = v
	return in, l.Lex(), nil
}

func parseError(in string, pos int, msg string) error {
	line, col := 1, 1
	for _, r := range in[:pos] {
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return errors.Errorf("line %d, col %d (pos %d): %s", line, col, pos+1, msg)
}
