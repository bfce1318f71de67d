package scanner

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/halvardk/lr1gen"
	"github.com/halvardk/lr1gen/grammar"
)

func traceOn(t *testing.T) func() {
	gtrace.SyntaxTracer = gotestingadapter.New()
	gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelDebug)
	return gotestingadapter.RedirectTracing(t)
}

func TestDefaultTokenizerScansIdentsAndOperators(t *testing.T) {
	teardown := traceOn(t)
	defer teardown()
	tok := GoTokenizer("test", strings.NewReader("foo + 42"))
	toks := Drain(tok)
	if len(toks) != 3 {
		t.Fatalf("expected 3 tokens, got %d: %v", len(toks), toks)
	}
	if toks[0].TokType() != Ident || toks[0].Lexeme() != "foo" {
		t.Fatalf("expected Ident 'foo', got %v %q", toks[0].TokType(), toks[0].Lexeme())
	}
	if toks[1].Lexeme() != "+" {
		t.Fatalf("expected lexeme '+', got %q", toks[1].Lexeme())
	}
	if toks[2].TokType() != Int || toks[2].Lexeme() != "42" {
		t.Fatalf("expected Int '42', got %v %q", toks[2].TokType(), toks[2].Lexeme())
	}
}

func TestDefaultTerminalOfMapsByKindOrLexeme(t *testing.T) {
	b := grammar.NewBuilder("G")
	b.LHS("S").T("Ident", 1).T("+", 2).T("Int", 3).End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	terminalOf := DefaultTerminalOf(g)

	ident := MakeDefaultToken(Ident, "foo", lr1gen.Span{}, 1)
	if sym := terminalOf(ident); sym.Name != "Ident" {
		t.Fatalf("expected identifier token to map by kind to 'Ident', got %q", sym.Name)
	}
	plus := MakeDefaultToken(0, "+", lr1gen.Span{}, 1)
	if sym := terminalOf(plus); sym.Name != "+" {
		t.Fatalf("expected operator token to map by lexeme to '+', got %q", sym.Name)
	}
}
