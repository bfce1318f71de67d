package tables

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/halvardk/lr1gen/automaton"
	"github.com/halvardk/lr1gen/grammar"
)

// tracer traces with key 'lr1gen.tables'.
func tracer() tracing.Trace {
	return tracing.Select("lr1gen.tables")
}

// Tables holds the ACTION and GOTO tables for a grammar's automaton:
// ACTION is keyed by (state, terminal), GOTO by (state, nonterminal), each
// giving O(1) lookup per parse step.
type Tables struct {
	G      *grammar.Grammar
	Action map[int]map[*grammar.Symbol]Action
	Goto   map[int]map[int]int // state -> symbol id -> target state, nonterminals only
}

// ActionAt returns the ACTION table entry for (state, terminal), or the zero
// Action and false if no entry exists.
func (t *Tables) ActionAt(state int, terminal *grammar.Symbol) (Action, bool) {
	row, ok := t.Action[state]
	if !ok {
		return Action{}, false
	}
	a, ok := row[terminal]
	return a, ok
}

// GotoAt returns the GOTO table entry for (state, nonterminal), or (0, false)
// if no entry exists.
func (t *Tables) GotoAt(state int, nonterminal *grammar.Symbol) (int, bool) {
	row, ok := t.Goto[state]
	if !ok {
		return 0, false
	}
	target, ok := row[nonterminal.ID()]
	return target, ok
}

// Build translates an automaton into its ACTION and GOTO tables: shift
// entries come from terminal transitions of the automaton, reduce entries
// from reducible items (keyed by the item's own LR(1) lookahead, never a
// FOLLOW set), and accept from the distinguished [S' -> S·, #] item. A
// grammar that is not LR(1) is reported as a *ConflictError naming the
// state, the terminal, and the two competing actions; the builder never
// silently prefers shift over reduce.
func Build(a *automaton.Automaton) (*Tables, error) {
	g := a.G
	t := &Tables{
		G:      g,
		Action: make(map[int]map[*grammar.Symbol]Action),
		Goto:   make(map[int]map[int]int),
	}
	for _, st := range a.States {
		for _, term := range g.Terminals {
			target, ok := a.Goto(st.ID, term)
			if !ok {
				continue
			}
			if err := t.set(st.ID, term, Action{Kind: Shift, Operand: target}); err != nil {
				return nil, err
			}
		}
		for _, nt := range g.Nonterminals {
			target, ok := a.Goto(st.ID, nt)
			if !ok {
				continue
			}
			t.setGoto(st.ID, nt, target)
		}
		for _, it := range st.Items.Values() {
			if !it.IsReduce() {
				continue
			}
			if it.IsAccept() {
				if err := t.set(st.ID, g.EOF, Action{Kind: Accept}); err != nil {
					return nil, err
				}
				continue
			}
			act := Action{Kind: Reduce, Operand: it.Prod.Serial}
			if err := t.set(st.ID, it.Lookahead, act); err != nil {
				return nil, err
			}
		}
	}
	tracer().Infof("built tables: %d ACTION rows, %d GOTO rows", len(t.Action), len(t.Goto))
	return t, nil
}

func (t *Tables) set(state int, terminal *grammar.Symbol, act Action) error {
	row, ok := t.Action[state]
	if !ok {
		row = make(map[*grammar.Symbol]Action)
		t.Action[state] = row
	}
	if existing, ok := row[terminal]; ok {
		if existing.Equal(act) {
			return nil
		}
		return conflictErrorf(state, terminal.Name, existing, act)
	}
	row[terminal] = act
	return nil
}

func (t *Tables) setGoto(state int, nt *grammar.Symbol, target int) {
	row, ok := t.Goto[state]
	if !ok {
		row = make(map[int]int)
		t.Goto[state] = row
	}
	row[nt.ID()] = target
}

// Dump renders both tables as a human-readable grid, in the style of the
// original tool's table dumps.
func (t *Tables) Dump() string {
	var b strings.Builder
	for _, s := range t.stateIDs() {
		fmt.Fprintf(&b, "state %d:\n", s)
		for _, term := range t.G.Terminals {
			if act, ok := t.ActionAt(s, term); ok {
				fmt.Fprintf(&b, "  ACTION[%s] = %s\n", term.Name, act)
			}
		}
		for _, nt := range t.G.Nonterminals {
			if target, ok := t.GotoAt(s, nt); ok {
				fmt.Fprintf(&b, "  GOTO[%s] = %d\n", nt.Name, target)
			}
		}
	}
	return b.String()
}
