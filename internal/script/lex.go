// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package script

import (
	"unicode"
	"unicode/utf8"
)

// Token types
const (
	EOF = iota
	Raw
	Ident
	Int
	Sep
)

// Token is a lexical token.
//
type Token struct {
	Type  int
	Pos   int // byte offset in the input
	Value string
}

type lexer struct {
	in  string
	pos int
}

func (l *lexer) next() (rune, int) {
	if l.pos >= len(l.in) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(l.in[l.pos:])
}

func (l *lexer) acceptWhile(f func(rune) bool) {
	for {
		r, n := l.next()
		if n == 0 || !f(r) {
			return
		}
		l.pos += n
	}
}

func isSpace(r rune) bool { return r != '\n' && unicode.IsSpace(r) }

func isIdent(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' }

func isSep(r rune) bool { return r == ',' || r == ';' || r == '\n' }

// Lex returns the next token.
//
func (l *lexer) Lex() Token {
	for {
		l.acceptWhile(isSpace)
		if r, _ := l.next(); r != '#' {
			break
		}
		// comment, skip to end of line
		l.acceptWhile(func(r rune) bool { return r != '\n' })
	}

	start := l.pos
	r, n := l.next()
	switch {
	case n == 0:
		return Token{EOF, start, "end of input"}
	case isSep(r):
		l.pos += n
		return Token{Sep, start, string(r)}
	case '0' <= r && r <= '9':
		l.acceptWhile(isIdent) // 0x, 0b prefixes and digits
		return Token{Int, start, l.in[start:l.pos]}
	case unicode.IsLetter(r) || r == '_':
		l.acceptWhile(isIdent)
		return Token{Ident, start, l.in[start:l.pos]}
	default:
		l.pos += n
		return Token{Raw, start, string(r)}
	}
}
