package lexmach

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/halvardk/lr1gen/grammar"
)

func traceOn(t *testing.T) func() {
	gtrace.SyntaxTracer = gotestingadapter.New()
	gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelDebug)
	return gotestingadapter.RedirectTracing(t)
}

func ifThenGrammar(t *testing.T) *grammar.Grammar {
	b := grammar.NewBuilder("if-then")
	b.LHS("S").T("if", 1).T("+", 2).T("then", 3).End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return g
}

func identGrammar(t *testing.T) *grammar.Grammar {
	b := grammar.NewBuilder("ident-if")
	b.LHS("S").T("if", 1).T("Ident", 2).End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return g
}

// TestAddRuleCustomPattern exercises AddRule directly, registering a
// hand-written regex (rather than a literal or keyword spelling) against a
// grammar terminal, the way an identifier or numeric-literal class would be.
func TestAddRuleCustomPattern(t *testing.T) {
	teardown := traceOn(t)
	defer teardown()

	g := identGrammar(t)
	init := func(a *Adapter) {
		a.Lexer.Add([]byte("( |\t|\n)+"), Skip)
		if err := a.AddRule("Ident", "[A-Za-z_][A-Za-z0-9_]*"); err != nil {
			t.Fatalf("unexpected error adding custom rule: %v", err)
		}
	}
	a, err := NewAdapter(g, init, []string{}, []string{"if"})
	if err != nil {
		t.Fatalf("unexpected error building adapter: %v", err)
	}
	sc, err := a.Scanner("if foo")
	if err != nil {
		t.Fatalf("unexpected error creating scanner: %v", err)
	}
	terminalOf := a.TerminalOf()

	first := sc.NextToken()
	if sym := terminalOf(first); sym.Name != "if" {
		t.Fatalf("expected 'if' to resolve to terminal 'if', got %q", sym.Name)
	}
	second := sc.NextToken()
	if second.Lexeme() != "foo" {
		t.Fatalf("expected lexeme 'foo', got %q", second.Lexeme())
	}
	if sym := terminalOf(second); sym.Name != "Ident" {
		t.Fatalf("expected 'foo' to resolve to terminal 'Ident', got %q", sym.Name)
	}
}

func TestAdapterScansLiteralsAndKeywords(t *testing.T) {
	teardown := traceOn(t)
	defer teardown()

	g := ifThenGrammar(t)
	init := func(a *Adapter) {
		a.Lexer.Add([]byte("( |\t|\n)+"), Skip)
	}
	a, err := NewAdapter(g, init, []string{"+"}, []string{"if", "then"})
	if err != nil {
		t.Fatalf("unexpected error building adapter: %v", err)
	}
	sc, err := a.Scanner("if + then")
	if err != nil {
		t.Fatalf("unexpected error creating scanner: %v", err)
	}

	var lexemes []string
	for {
		tok := sc.NextToken()
		if tok.Lexeme() == "" {
			break
		}
		lexemes = append(lexemes, tok.Lexeme())
	}
	if len(lexemes) != 3 {
		t.Fatalf("expected 3 tokens, got %d: %v", len(lexemes), lexemes)
	}
	if lexemes[0] != "if" || lexemes[1] != "+" || lexemes[2] != "then" {
		t.Fatalf("unexpected lexeme sequence: %v", lexemes)
	}
}

func TestAdapterRejectsUnknownTerminal(t *testing.T) {
	teardown := traceOn(t)
	defer teardown()

	g := ifThenGrammar(t)
	if _, err := NewAdapter(g, nil, []string{"?"}, nil); err == nil {
		t.Fatal("expected an error registering a literal with no matching terminal")
	}
}

func TestTerminalOfResolvesByRegisteredTerminal(t *testing.T) {
	teardown := traceOn(t)
	defer teardown()

	g := ifThenGrammar(t)
	init := func(a *Adapter) {
		a.Lexer.Add([]byte("( |\t|\n)+"), Skip)
	}
	a, err := NewAdapter(g, init, []string{"+"}, []string{"if", "then"})
	if err != nil {
		t.Fatalf("unexpected error building adapter: %v", err)
	}
	sc, err := a.Scanner("if +")
	if err != nil {
		t.Fatalf("unexpected error creating scanner: %v", err)
	}
	terminalOf := a.TerminalOf()

	first := sc.NextToken()
	if sym := terminalOf(first); sym.Name != "if" {
		t.Fatalf("expected 'if' to resolve to terminal 'if', got %q", sym.Name)
	}
	second := sc.NextToken()
	if sym := terminalOf(second); sym.Name != "+" {
		t.Fatalf("expected '+' to resolve to terminal '+', got %q", sym.Name)
	}
}
