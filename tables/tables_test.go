package tables

import (
	"bytes"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/halvardk/lr1gen/automaton"
	"github.com/halvardk/lr1gen/grammar"
)

func traceOn(t *testing.T) func() {
	gtrace.SyntaxTracer = gotestingadapter.New()
	gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelDebug)
	return gotestingadapter.RedirectTracing(t)
}

// expr: E -> E + T | T ; T -> T * F | F ; F -> ( E ) | id
func exprGrammar(t *testing.T) *grammar.Grammar {
	b := grammar.NewBuilder("expr")
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

func TestBuildAndRoundTripTables(t *testing.T) {
	teardown := traceOn(t)
	defer teardown()
	g := exprGrammar(t)
	a, err := automaton.Build(g)
	if err != nil {
		t.Fatalf("unexpected error building automaton: %v", err)
	}
	tbl, err := Build(a)
	if err != nil {
		t.Fatalf("unexpected error building tables: %v", err)
	}
	if len(tbl.Action) == 0 {
		t.Fatal("expected a non-empty ACTION table")
	}

	var actionBuf, gotoBuf bytes.Buffer
	if err := tbl.WriteActionTable(&actionBuf); err != nil {
		t.Fatalf("unexpected error writing ActionTable: %v", err)
	}
	if err := tbl.WriteGotoTable(&gotoBuf); err != nil {
		t.Fatalf("unexpected error writing GotoTable: %v", err)
	}
	action, err := ReadActionTable(&actionBuf, g)
	if err != nil {
		t.Fatalf("unexpected error reading ActionTable: %v", err)
	}
	got, err := ReadGotoTable(&gotoBuf, g)
	if err != nil {
		t.Fatalf("unexpected error reading GotoTable: %v", err)
	}
	roundTripped := FromPersisted(g, action, got)
	for state, row := range tbl.Action {
		for sym, act := range row {
			rt, ok := roundTripped.ActionAt(state, sym)
			if !ok {
				t.Fatalf("round-tripped table missing ACTION[%d, %s]", state, sym.Name)
			}
			if !rt.Equal(act) {
				t.Fatalf("round-tripped ACTION[%d, %s] = %s, want %s", state, sym.Name, rt, act)
			}
		}
	}
	for state, row := range tbl.Goto {
		for symID, target := range row {
			rtRow, ok := roundTripped.Goto[state]
			if !ok {
				t.Fatalf("round-tripped table missing GOTO row for state %d", state)
			}
			if rtRow[symID] != target {
				t.Fatalf("round-tripped GOTO[%d, %d] = %d, want %d", state, symID, rtRow[symID], target)
			}
		}
	}
}

// TestDanglingElseConflict covers the classical dangling-else ambiguity:
// S -> if E then S | if E then S else S | x ; E -> x. The grammar is not
// LR(1): a shift/reduce conflict must be reported on 'else'.
func TestDanglingElseConflict(t *testing.T) {
	teardown := traceOn(t)
	defer teardown()
	b := grammar.NewBuilder("dangling-else")
	b.LHS("S").T("if", 1).N("E").T("then", 2).N("S").End()
	b.LHS("S").T("if", 1).N("E").T("then", 2).N("S").T("else", 3).N("S").End()
	b.LHS("S").T("x", 4).End()
	b.LHS("E").T("x", 4).End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a, err := automaton.Build(g)
	if err != nil {
		t.Fatalf("unexpected error building automaton: %v", err)
	}
	_, err = Build(a)
	if err == nil {
		t.Fatal("expected a conflict error for the dangling-else grammar")
	}
	conflict, ok := err.(*ConflictError)
	if !ok {
		t.Fatalf("expected a *ConflictError, got %T: %v", err, err)
	}
	if conflict.Terminal != "else" {
		t.Fatalf("expected the conflict to be reported on 'else', got %q", conflict.Terminal)
	}
}
