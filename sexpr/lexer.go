// Package sexpr implements a small recursive-descent reader for Glenside's
// parenthesized prefix textual syntax (spec §6.3). It is ambient test/CLI
// tooling, not part of the interpreter proper: it exists so this
// repository's own tests and cmd/glenside-eval can express expr.Expr values
// as text, the same role the teacher's cmd packages play for exercising its
// core libraries from the command line.
package sexpr

import "fmt"

type tokenKind int

const (
	tokenLParen tokenKind = iota
	tokenRParen
	tokenAtom
	tokenEOF
)

type token struct {
	kind tokenKind
	text string
}

// lexer splits an s-expression into parens and whitespace-delimited atoms.
type lexer struct {
	src []rune
	pos int
}

func newLexer(src string) *lexer {
	return &lexer{src: []rune(src)}
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.src) && isSpace(l.src[l.pos]) {
		l.pos++
	}
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func (l *lexer) next() (token, error) {
	l.skipSpace()

	if l.pos >= len(l.src) {
		return token{kind: tokenEOF}, nil
	}

	r := l.src[l.pos]

	switch r {
	case '(':
		l.pos++

		return token{kind: tokenLParen}, nil
	case ')':
		l.pos++

		return token{kind: tokenRParen}, nil
	}

	start := l.pos
	for l.pos < len(l.src) && !isSpace(l.src[l.pos]) && l.src[l.pos] != '(' && l.src[l.pos] != ')' {
		l.pos++
	}

	if l.pos == start {
		return token{}, fmt.Errorf("sexpr: unexpected character %q at offset %d", r, l.pos)
	}

	return token{kind: tokenAtom, text: string(l.src[start:l.pos])}, nil
}
