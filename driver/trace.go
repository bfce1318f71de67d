package driver

import (
	"fmt"
	"io"
	"strings"

	"github.com/halvardk/lr1gen/grammar"
	"github.com/halvardk/lr1gen/tables"
)

// traceStep writes one line describing a single driver step: the symbol
// read, the action taken, and the resulting state/symbol stacks. A nil
// sink makes this a no-op, so tracing is always optional without branching
// at every call site.
func traceStep(w io.Writer, step int, read *grammar.Symbol, act tables.Action, states []int, symbols []*grammar.Symbol) {
	if w == nil {
		return
	}
	fmt.Fprintf(w, "%4d  read %-8s  %-6s  states=%s  symbols=%s\n",
		step, read.Name, act, stackString(states), symbolStackString(symbols))
}

// traceError writes a single error line: the source position of the
// offending token and the message "no action".
func traceError(w io.Writer, err *ParseError) {
	if w == nil {
		return
	}
	fmt.Fprintf(w, "error at line %d: no action (state %d, terminal %q)\n",
		lineOf(err.Token), err.State, err.Terminal)
}

// traceAccept writes the success line and total step count.
func traceAccept(w io.Writer, steps int) {
	if w == nil {
		return
	}
	fmt.Fprintf(w, "accept after %d steps\n", steps)
}

func lineOf(tok interface{ Line() int }) int {
	if tok == nil {
		return -1
	}
	return tok.Line()
}

func stackString(states []int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, s := range states {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", s)
	}
	b.WriteByte(']')
	return b.String()
}

func symbolStackString(symbols []*grammar.Symbol) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, s := range symbols {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s.Name)
	}
	b.WriteByte(']')
	return b.String()
}
