/*
Package automaton enumerates the canonical collection of LR(1) item sets
for a grammar: the viable-prefix recognizer automaton.

Construction starts from CLOSURE({[S' -> ·S, #]}) and repeatedly applies
GOTO for every state and every grammar symbol until no new state is
discovered, draining a treeset-backed worklist ordered by state ID. State
identity is decided by set equality over items, never by insertion order;
the Hash on itemset.Set is used purely to bucket candidates cheaply before
the authoritative Equals check.
*/
package automaton

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/schuko/tracing"

	"github.com/halvardk/lr1gen/grammar"
	"github.com/halvardk/lr1gen/itemset"
)

// tracer traces with key 'lr1gen.automaton'.
func tracer() tracing.Trace {
	return tracing.Select("lr1gen.automaton")
}

// State is a single state of the automaton: a closed LR(1) item set,
// identified by its position in the enumeration order.
type State struct {
	ID      int
	Items   *itemset.Set
	Accept  bool // true iff [S' -> S·, #] ∈ Items
}

func (s *State) String() string {
	return fmt.Sprintf("state %d [%d items]", s.ID, s.Items.Size())
}

// stateIDComparator orders worklist states by serial ID, so the worklist
// drains in discovery order regardless of insertion order.
func stateIDComparator(a, b interface{}) int {
	return utils.IntComparator(a.(*State).ID, b.(*State).ID)
}

// edge is a labeled transition between two states of the automaton.
type edge struct {
	from, to int
	label    *grammar.Symbol
}

// Automaton is the ordered sequence of states plus the transition function
// δ(state, symbol) implicit in GOTO.
type Automaton struct {
	G           *grammar.Grammar
	States      []*State
	transitions map[int]map[*grammar.Symbol]int // state ID -> symbol -> target state ID
	edges       *arraylist.List
}

// Goto returns the target state ID of δ(stateID, x), or (0, false) if the
// transition is undefined.
func (a *Automaton) Goto(stateID int, x *grammar.Symbol) (int, bool) {
	row, ok := a.transitions[stateID]
	if !ok {
		return 0, false
	}
	target, ok := row[x]
	return target, ok
}

// Build constructs the canonical collection of LR(1) item sets for g:
// CLOSURE and GOTO are applied to a worklist of states until fixpoint. A
// malformed grammar (undefined FIRST set, a symbol that isn't classified as
// terminal or nonterminal) is reported as a *grammar.ConfigError before any
// state is built.
func Build(g *grammar.Grammar) (*Automaton, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	a := &Automaton{
		G:           g,
		transitions: make(map[int]map[*grammar.Symbol]int),
		edges:       arraylist.New(),
	}
	buckets := make(map[string][]*State)
	addState := func(items *itemset.Set) (*State, bool) {
		h := items.Hash()
		for _, cand := range buckets[h] {
			if cand.Items.Equals(items) {
				return cand, false
			}
		}
		st := &State{ID: len(a.States), Items: items, Accept: containsAccept(items)}
		a.States = append(a.States, st)
		buckets[h] = append(buckets[h], st)
		tracer().Debugf("new state %d: %s", st.ID, st.Items)
		return st, true
	}

	start := closure(g, itemset.NewSet(itemset.Start(g)))
	s0, _ := addState(start)
	worklist := treeset.NewWith(stateIDComparator)
	worklist.Add(s0)
	for !worklist.Empty() {
		st := worklist.Values()[0].(*State)
		worklist.Remove(st)
		g.EachSymbol(func(x *grammar.Symbol) {
			pre := gotoSet(st.Items, x)
			if pre.Empty() {
				return
			}
			target := closure(g, pre)
			tgt, isNew := addState(target)
			if a.transitions[st.ID] == nil {
				a.transitions[st.ID] = make(map[*grammar.Symbol]int)
			}
			a.transitions[st.ID][x] = tgt.ID
			a.edges.Add(edge{from: st.ID, to: tgt.ID, label: x})
			if isNew {
				worklist.Add(tgt)
			}
		})
	}
	tracer().Infof("built automaton with %d states", len(a.States))
	return a, nil
}

func containsAccept(items *itemset.Set) bool {
	for _, it := range items.Values() {
		if it.IsAccept() {
			return true
		}
	}
	return false
}

// Dump returns a human-readable listing of every state's items, mirroring
// the original tool's viewStates debug helper.
func (a *Automaton) Dump() string {
	var b strings.Builder
	for _, st := range a.States {
		fmt.Fprintf(&b, "--- state %03d %s---\n", st.ID, acceptMarker(st))
		for _, it := range st.Items.SortedValues() {
			fmt.Fprintf(&b, "  %s\n", it)
		}
	}
	return b.String()
}

func acceptMarker(st *State) string {
	if st.Accept {
		return "(accept) "
	}
	return ""
}
