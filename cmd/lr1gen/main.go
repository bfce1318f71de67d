/*
Lr1gen builds an LR(1) automaton and parser tables for a demonstration
expression grammar, tokenizes a source file, and drives a parse over it,
printing colorized timings for each phase.

Usage:

	lr1gen [flags] SOURCE

The flags are:

	-t, --trace FILE
		Write the per-step parse trace to FILE instead of stdout.

	-l, --level LEVEL
		Tracing verbosity: one of "debug", "info", "warn", "error". Defaults
		to "info".

	-r, --replay
		After a successful parse, replay the trace one step at a time,
		advancing on Enter (requires a terminal on stdin).

	-x, --lexmachine
		Tokenize with the lexmachine-backed scanner (scanner/lexmach)
		instead of the default text/scanner tokenizer.

Exit codes: 0 on accept, 1 on parse error, 2 on configuration or grammar
conflict error.
*/
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/pflag"

	"github.com/halvardk/lr1gen"
	"github.com/halvardk/lr1gen/automaton"
	"github.com/halvardk/lr1gen/driver"
	"github.com/halvardk/lr1gen/grammar"
	"github.com/halvardk/lr1gen/scanner"
	"github.com/halvardk/lr1gen/scanner/lexmach"
	"github.com/halvardk/lr1gen/tables"
)

const (
	// ExitAccept indicates the input was accepted.
	ExitAccept = 0
	// ExitParseError indicates the driver halted with "no action".
	ExitParseError = 1
	// ExitConfigError indicates a malformed grammar or an LR(1) conflict.
	ExitConfigError = 2
)

var (
	returnCode = ExitAccept
	traceFile  = pflag.StringP("trace", "t", "", "write the parse trace to this file instead of stdout")
	traceLevel = pflag.StringP("level", "l", "info", "tracing verbosity: debug, info, warn, error")
	replay     = pflag.BoolP("replay", "r", false, "replay the parse trace one step at a time")
	useLexmach = pflag.BoolP("lexmachine", "x", false, "tokenize with the lexmachine-backed scanner instead of the default tokenizer")
)

func main() {
	defer func() { os.Exit(returnCode) }()

	pflag.Parse()
	gtrace.SyntaxTracer = gologadapter.New()
	gtrace.SyntaxTracer.SetTraceLevel(levelFor(*traceLevel))

	if pflag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: lr1gen [flags] SOURCE")
		returnCode = ExitConfigError
		return
	}
	sourcePath := pflag.Arg(0)

	g, err := demoGrammar()
	if err != nil {
		pterm.Error.Printf("grammar configuration error: %v\n", err)
		returnCode = ExitConfigError
		return
	}

	t0 := time.Now()
	a, err := automaton.Build(g)
	if err != nil {
		pterm.Error.Printf("automaton construction failed: %v\n", err)
		returnCode = ExitConfigError
		return
	}
	tbl, err := tables.Build(a)
	if err != nil {
		pterm.Error.Printf("grammar is not LR(1): %v\n", err)
		returnCode = ExitConfigError
		return
	}
	pterm.Success.Printf("built %d states, %d ACTION rows in %s\n", len(a.States), len(tbl.Action), time.Since(t0))

	src, err := os.Open(sourcePath)
	if err != nil {
		pterm.Error.Printf("cannot open source file: %v\n", err)
		returnCode = ExitConfigError
		return
	}
	defer src.Close()

	var tokens []lr1gen.Token
	var terminalOf driver.TerminalOf
	if *useLexmach {
		tokens, terminalOf, err = tokenizeWithLexmachine(g, src)
		if err != nil {
			pterm.Error.Printf("lexmachine tokenizer configuration error: %v\n", err)
			returnCode = ExitConfigError
			return
		}
	} else {
		tokens = scanner.Drain(scanner.GoTokenizer(sourcePath, src, scanner.SkipComments(true)))
		terminalOf = scanner.DefaultTerminalOf(g)
	}

	var traceBuf strings.Builder
	d := driver.New(tbl, terminalOf, &traceBuf)

	t1 := time.Now()
	parseErr := d.Parse(tokens)
	elapsed := time.Since(t1)

	if err := emitTrace(traceBuf.String()); err != nil {
		pterm.Error.Printf("cannot write trace: %v\n", err)
	}

	if parseErr != nil {
		pterm.Error.Printf("parse failed after %s: %v\n", elapsed, parseErr)
		returnCode = ExitParseError
		return
	}
	pterm.Success.Printf("accepted %q in %s\n", sourcePath, elapsed)

	if *replay {
		replayTrace(traceBuf.String())
	}
}

// demoGrammar builds the classical expression grammar E -> E + T | T;
// T -> T * F | F; F -> ( E ) | Ident. The CLI always parses with this
// grammar; it reads no grammar file. A caller embedding this module instead builds its own grammar
// with grammar.NewBuilder and calls automaton.Build/tables.Build directly;
// the CLI is peripheral, not core.
func demoGrammar() (*grammar.Grammar, error) {
	b := grammar.NewBuilder("expr")
	b.LHS("E").N("E").T("+", 1).N("T").End()
	b.LHS("E").N("T").End()
	b.LHS("T").N("T").T("*", 2).N("F").End()
	b.LHS("T").N("F").End()
	b.LHS("F").T("(", 3).N("E").T(")", 4).End()
	b.LHS("F").T("Ident", 5).End()
	return b.Grammar()
}

// tokenizeWithLexmachine builds a lexmach.Adapter for the demo grammar's
// lexical structure (single-character operators, parens, and a Go-style
// identifier class) and drains src through it, returning a driver.TerminalOf
// resolved by the adapter's own rule registrations rather than by kind or
// lexeme guessing.
func tokenizeWithLexmachine(g *grammar.Grammar, src io.Reader) ([]lr1gen.Token, driver.TerminalOf, error) {
	buf, err := io.ReadAll(src)
	if err != nil {
		return nil, nil, err
	}
	var initErr error
	init := func(a *lexmach.Adapter) {
		a.Lexer.Add([]byte("( |\t|\n)+"), lexmach.Skip)
		initErr = a.AddRule("Ident", "[A-Za-z_][A-Za-z0-9_]*")
	}
	adapter, err := lexmach.NewAdapter(g, init, []string{"+", "*", "(", ")"}, nil)
	if err != nil {
		return nil, nil, err
	}
	if initErr != nil {
		return nil, nil, initErr
	}
	sc, err := adapter.Scanner(string(buf))
	if err != nil {
		return nil, nil, err
	}
	var tokens []lr1gen.Token
	for {
		tok := sc.NextToken()
		if tok.TokType() == scanner.EOF {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens, adapter.TerminalOf(), nil
}

func emitTrace(trace string) error {
	if *traceFile == "" {
		fmt.Print(trace)
		return nil
	}
	f, err := os.Create(*traceFile)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	if _, err := w.WriteString(trace); err != nil {
		return err
	}
	return w.Flush()
}

func replayTrace(trace string) {
	rl, err := readline.New("-- press Enter to step, Ctrl-D to skip to end -- ")
	if err != nil {
		pterm.Warning.Printf("replay unavailable: %v\n", err)
		return
	}
	defer rl.Close()
	for _, line := range strings.Split(strings.TrimRight(trace, "\n"), "\n") {
		pterm.Info.Println(line)
		if _, err := rl.Readline(); err != nil {
			return
		}
	}
}

func levelFor(name string) tracing.TraceLevel {
	switch strings.ToLower(name) {
	case "debug":
		return tracing.LevelDebug
	case "warn":
		return tracing.LevelError
	case "error":
		return tracing.LevelError
	default:
		return tracing.LevelInfo
	}
}
