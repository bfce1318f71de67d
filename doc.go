/*
Package lr1gen implements a table-driven LR(1) parser generator and driver.

Given a grammar (productions, terminals, nonterminals, a start symbol and
precomputed FIRST sets, see package grammar), the generator

  - constructs the canonical collection of LR(1) item sets, i.e. the
    viable-prefix recognizer automaton (see package automaton),
  - derives an ACTION table (shift/reduce/accept) and a GOTO table from
    that automaton (see package tables), and
  - drives a shift/reduce recognizer over a token stream using those
    tables, producing a trace of parser moves (see package driver).

The lexer is treated as an external collaborator: clients supply a token
source implementing scanner.Tokenizer, or any type satisfying the small
Token interface declared in this package.

This package itself only holds the few general-purpose types shared by
all of the above: Token, TokType and Span.

BSD License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package lr1gen

import "fmt"

// TokType is a category type for a Token. No constants are defined here;
// it is up to a grammar/lexer pair to agree on concrete values (see
// package scanner for a default text/scanner-based mapping).
type TokType int

// Token represents an input token, usually produced by a scanner and
// reflecting a terminal of a grammar.
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
	Line() int
}

// Span captures a length of input run, such as the input positions a token
// covers. The driver does not track spans for the symbols it reduces.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 { return s[0] }

// To returns the end value of a span.
func (s Span) To() uint64 { return s[1] }

// IsNull returns true for the zero span.
func (s Span) IsNull() bool { return s == Span{} }

// Extend grows s so that it also covers other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
