package automaton

import (
	"github.com/halvardk/lr1gen/grammar"
	"github.com/halvardk/lr1gen/itemset"
)

// FirstOfSequence computes FIRST(βa) for a CLOSURE lookahead computation:
// it scans seq left to right, accumulating FIRST(symbol) minus ε, and
// stops as soon as a symbol whose FIRST lacks ε is consumed.
// If every symbol of seq is nullable, the inherited lookahead is added too.
// inherited may be a terminal or the reserved EOF symbol; it is never
// itself scanned for ε.
func FirstOfSequence(g *grammar.Grammar, seq []*grammar.Symbol, inherited *grammar.Symbol) map[*grammar.Symbol]bool {
	result := make(map[*grammar.Symbol]bool)
	for _, sym := range seq {
		if sym.IsTerminal() {
			result[sym] = true
			return result
		}
		first := g.First(sym)
		for t := range first {
			if t != g.Epsilon {
				result[t] = true
			}
		}
		if !first[g.Epsilon] {
			return result
		}
	}
	result[inherited] = true
	return result
}

// closure computes CLOSURE(I): the least J ⊇ I such that for every item
// [A -> α·Bβ, a] ∈ J with B a nonterminal, and every production B -> γ, and
// every terminal b ∈ FIRST(βa), the item [B -> ·γ, b] is in J. Fixpoint
// iteration guarantees termination and deduplication (set.Add is a no-op
// for an already-present item), satisfying the idempotence invariant
// CLOSURE(CLOSURE(I)) == CLOSURE(I).
func closure(g *grammar.Grammar, i *itemset.Set) *itemset.Set {
	c := i.Copy()
	queue := c.Values()
	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]
		b := it.PeekSymbol()
		if b == nil || b.IsTerminal() {
			continue
		}
		lookaheads := FirstOfSequence(g, it.Suffix(), it.Lookahead)
		for _, prod := range g.NonTermProductions(b) {
			for la := range lookaheads {
				newItem := itemset.New(prod, 0, la)
				if c.Add(newItem) {
					queue = append(queue, newItem)
				}
			}
		}
	}
	return c
}

// gotoSet advances the dot over X for every item of i that has X
// immediately after its dot, without closing the result. If the
// pre-closure set is empty, GOTO is empty.
func gotoSet(i *itemset.Set, x *grammar.Symbol) *itemset.Set {
	out := itemset.NewSet()
	for _, it := range i.Values() {
		if it.PeekSymbol() == x {
			out.Add(it.Advance())
		}
	}
	return out
}
