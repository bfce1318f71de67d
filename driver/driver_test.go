package driver

import (
	"io"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/halvardk/lr1gen"
	"github.com/halvardk/lr1gen/automaton"
	"github.com/halvardk/lr1gen/grammar"
	"github.com/halvardk/lr1gen/tables"
)

func traceOn(t *testing.T) func() {
	gtrace.SyntaxTracer = gotestingadapter.New()
	gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelDebug)
	return gotestingadapter.RedirectTracing(t)
}

// testToken is a minimal lr1gen.Token for driver tests: the terminal is
// always the lexeme itself, matching the default mapping for
// non-identifier, non-literal tokens.
type testToken struct {
	lexeme string
	line   int
}

func (tt testToken) TokType() lr1gen.TokType { return 0 }
func (tt testToken) Lexeme() string          { return tt.lexeme }
func (tt testToken) Value() interface{}      { return nil }
func (tt testToken) Span() lr1gen.Span       { return lr1gen.Span{} }
func (tt testToken) Line() int               { return tt.line }

func tokensOf(lexemes ...string) []lr1gen.Token {
	out := make([]lr1gen.Token, len(lexemes))
	for i, l := range lexemes {
		out[i] = testToken{lexeme: l, line: 1}
	}
	return out
}

func buildDriver(t *testing.T, g *grammar.Grammar, trace io.Writer) *Driver {
	a, err := automaton.Build(g)
	if err != nil {
		t.Fatalf("unexpected error building automaton: %v", err)
	}
	tbl, err := tables.Build(a)
	if err != nil {
		t.Fatalf("unexpected error building tables: %v", err)
	}
	terminalOf := func(tok lr1gen.Token) *grammar.Symbol {
		for _, term := range g.Terminals {
			if term.Name == tok.Lexeme() {
				return term
			}
		}
		return g.EOF
	}
	return New(tbl, terminalOf, trace)
}

// G1: S -> a. Input [a]. Expect accept.
func TestParseG1(t *testing.T) {
	teardown := traceOn(t)
	defer teardown()
	b := grammar.NewBuilder("G1")
	b.LHS("S").T("a", 1).End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d := buildDriver(t, g, nil)
	if err := d.Parse(tokensOf("a")); err != nil {
		t.Fatalf("expected accept, got error: %v", err)
	}
}

// G2: S -> ( S ) | epsilon. Input "( ( ) )". Expect accept.
func TestParseG2(t *testing.T) {
	teardown := traceOn(t)
	defer teardown()
	b := grammar.NewBuilder("G2")
	b.LHS("S").T("(", 1).N("S").T(")", 2).End()
	b.LHS("S").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var trace strings.Builder
	d := buildDriver(t, g, &trace)
	if err := d.Parse(tokensOf("(", "(", ")", ")")); err != nil {
		t.Fatalf("expected accept, got error: %v", err)
	}
	if got := strings.Count(trace.String(), "r1") + strings.Count(trace.String(), "r2"); got != 3 {
		t.Fatalf("expected 3 reduce steps (one S->epsilon, two S->(S)), got %d:\n%s", got, trace.String())
	}
}

// G4: E -> E + T | T; T -> T * F | F; F -> ( E ) | id. Input "id + id * id".
func g4(t *testing.T) *grammar.Grammar {
	b := grammar.NewBuilder("G4")
	b.LHS("E").N("E").T("+", 1).N("T").End()
	b.LHS("E").N("T").End()
	b.LHS("T").N("T").T("*", 2).N("F").End()
	b.LHS("T").N("F").End()
	b.LHS("F").T("(", 3).N("E").T(")", 4).End()
	b.LHS("F").T("id", 5).End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return g
}

func TestParseG4Accepts(t *testing.T) {
	teardown := traceOn(t)
	defer teardown()
	g := g4(t)
	var trace strings.Builder
	d := buildDriver(t, g, &trace)
	if err := d.Parse(tokensOf("id", "+", "id", "*", "id")); err != nil {
		t.Fatalf("expected accept, got error: %v", err)
	}
	if !strings.Contains(trace.String(), "accept after") {
		t.Fatalf("expected trace to record acceptance, got:\n%s", trace.String())
	}
}

// G5: G4 with input "id +" is a parse error at the trailing '#'.
func TestParseG5ReportsNoAction(t *testing.T) {
	teardown := traceOn(t)
	defer teardown()
	g := g4(t)
	d := buildDriver(t, g, nil)
	err := d.Parse(tokensOf("id", "+"))
	if err == nil {
		t.Fatal("expected a parse error, got accept")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected a *ParseError, got %T: %v", err, err)
	}
	if pe.Terminal != "#" {
		t.Fatalf("expected the error to be reported on '#', got %q", pe.Terminal)
	}
}
