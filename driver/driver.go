/*
Package driver implements a table-driven shift/reduce recognizer: given
ACTION/GOTO tables and a token stream, it walks a state stack and a symbol
stack to either accept the input or report a parse error at the offending
token's source position. No semantic actions, no AST: the driver only
recognizes, it never builds a parse tree.
*/
package driver

import (
	"io"

	"github.com/npillmayer/schuko/tracing"

	"github.com/halvardk/lr1gen"
	"github.com/halvardk/lr1gen/grammar"
	"github.com/halvardk/lr1gen/tables"
)

// tracer traces with key 'lr1gen.driver'.
func tracer() tracing.Trace {
	return tracing.Select("lr1gen.driver")
}

// TerminalOf maps an input token to the grammar terminal it represents.
// The default mapping is: if the token's kind indicates an identifier-class
// or literal-class token, the terminal is the kind name; otherwise the
// terminal is the token's lexeme. See package scanner for the stock
// implementation; callers with a different lexer convention supply their
// own function to New.
type TerminalOf func(tok lr1gen.Token) *grammar.Symbol

// Driver recognizes a token stream against a fixed set of parser tables.
// A Driver is stateless between calls to Parse: all per-parse state (the
// two stacks, the token index) lives on the call stack of Parse itself —
// the stacks live only for the duration of one parse call.
type Driver struct {
	G          *grammar.Grammar
	T          *tables.Tables
	TerminalOf TerminalOf
	Trace      io.Writer // optional; nil disables tracing
}

// New creates a Driver for the given tables, using terminalOf to resolve
// input tokens to grammar terminals. trace may be nil to disable the
// per-step trace artifact.
func New(t *tables.Tables, terminalOf TerminalOf, trace io.Writer) *Driver {
	return &Driver{G: t.G, T: t, TerminalOf: terminalOf, Trace: trace}
}

// Parse runs the shift/reduce recognizer over tokens: an implicit
// end-of-input terminal is appended once after the last token. It returns
// nil on acceptance, or a *driver.ParseError naming the offending token's
// source position and the message "no action" if no ACTION entry matches
// the current (state, terminal) pair. The driver never retries and never
// attempts error recovery.
func (d *Driver) Parse(tokens []lr1gen.Token) error {
	states := []int{0}
	symbols := []*grammar.Symbol{d.G.EOF}
	i := 0
	step := 0

	for {
		s := states[len(states)-1]
		var tok lr1gen.Token
		var a *grammar.Symbol
		if i < len(tokens) {
			tok = tokens[i]
			a = d.TerminalOf(tok)
		} else {
			a = d.G.EOF
		}

		act, ok := d.T.ActionAt(s, a)
		if i < len(tokens) && a == d.G.EOF {
			// a token that resolves to the end-of-input marker before the
			// input is exhausted is unrecognized: it never matches an action
			ok = false
		}
		if !ok {
			err := parseErrorf(s, a.Name, tok)
			traceError(d.Trace, err)
			tracer().Errorf("%v", err)
			return err
		}
		step++

		switch act.Kind {
		case tables.Shift:
			states = append(states, act.Operand)
			symbols = append(symbols, a)
			traceStep(d.Trace, step, a, act, states, symbols)
			i++
		case tables.Reduce:
			p := d.G.Rule(act.Operand)
			n := len(p.RHS)
			states = states[:len(states)-n]
			symbols = symbols[:len(symbols)-n]
			s2 := states[len(states)-1]
			target, ok := d.T.GotoAt(s2, p.LHS)
			if !ok {
				err := parseErrorf(s2, p.LHS.Name, tok)
				traceError(d.Trace, err)
				return err
			}
			states = append(states, target)
			symbols = append(symbols, p.LHS)
			traceStep(d.Trace, step, a, act, states, symbols)
			tracer().Debugf("reduce by %v", p)
		case tables.Accept:
			traceStep(d.Trace, step, a, act, states, symbols)
			traceAccept(d.Trace, step)
			tracer().Infof("accept after %d steps", step)
			return nil
		}
	}
}
