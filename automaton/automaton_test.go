package automaton

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/halvardk/lr1gen/grammar"
	"github.com/halvardk/lr1gen/itemset"
)

func traceOn(t *testing.T) func() {
	gtrace.SyntaxTracer = gotestingadapter.New()
	gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelDebug)
	return gotestingadapter.RedirectTracing(t)
}

// G1: S -> a
func g1(t *testing.T) *grammar.Grammar {
	b := grammar.NewBuilder("G1")
	b.LHS("S").T("a", 1).End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return g
}

func TestBuildAutomatonG1(t *testing.T) {
	teardown := traceOn(t)
	defer teardown()
	g := g1(t)
	a, err := Build(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(a.States) != 3 {
		t.Fatalf("expected 3 states for G1 (initial, post-shift, accept), got %d", len(a.States))
	}
	target, ok := a.Goto(0, g.Terminals[symIndex(g, "a")])
	if !ok {
		t.Fatal("expected a shift transition on 'a' from state 0")
	}
	if !a.States[target].Items.Contains(itemset.New(g.Rule(0), 1, g.EOF)) {
		t.Fatal("expected state reached after shifting 'a' to hold the reducible item [S -> a·, #]")
	}
}

// G3 (classical LR(1) test): S -> C C; C -> c C | d
func g3(t *testing.T) *grammar.Grammar {
	b := grammar.NewBuilder("G3")
	b.LHS("S").N("C").N("C").End()
	b.LHS("C").T("c", 1).N("C").End()
	b.LHS("C").T("d", 2).End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return g
}

func TestG3HasDistinctCContexts(t *testing.T) {
	teardown := traceOn(t)
	defer teardown()
	g := g3(t)
	a, err := Build(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Shifting 'd' while parsing the left C (from state 0, lookaheads c and
	// d) and while parsing the right C (after the first C, lookahead #)
	// reaches [C -> d·, c/d] and [C -> d·, #] respectively. Canonical LR(1)
	// must keep these two contexts as distinct states.
	cSym := symbolNamed(g, "C", false)
	dSym := symbolNamed(g, "d", true)
	afterLeftC, ok := a.Goto(0, cSym)
	if !ok {
		t.Fatal("expected a GOTO on C from state 0")
	}
	leftD, ok := a.Goto(0, dSym)
	if !ok {
		t.Fatal("expected a shift on d from state 0")
	}
	rightD, ok := a.Goto(afterLeftC, dSym)
	if !ok {
		t.Fatal("expected a shift on d from the state after the left C")
	}
	if leftD == rightD {
		t.Fatal("left and right C contexts must be distinct states")
	}
}

func TestClosureIdempotence(t *testing.T) {
	teardown := traceOn(t)
	defer teardown()
	g := g3(t)
	a, err := Build(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, st := range a.States {
		once := closure(g, st.Items)
		twice := closure(g, once)
		if !once.Equals(twice) {
			t.Fatalf("closure is not idempotent for state %d", st.ID)
		}
	}
}

func TestStateUniqueness(t *testing.T) {
	teardown := traceOn(t)
	defer teardown()
	g := g3(t)
	a, err := Build(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range a.States {
		for j := range a.States {
			if i == j {
				continue
			}
			if a.States[i].Items.Equals(a.States[j].Items) {
				t.Fatalf("states %d and %d are equal as item sets", i, j)
			}
		}
	}
}

func symbolNamed(g *grammar.Grammar, name string, terminal bool) *grammar.Symbol {
	list := g.Nonterminals
	if terminal {
		list = g.Terminals
	}
	for _, s := range list {
		if s.Name == name {
			return s
		}
	}
	return nil
}

func symIndex(g *grammar.Grammar, name string) int {
	for i, s := range g.Terminals {
		if s.Name == name {
			return i
		}
	}
	return -1
}
