// Package itemset implements LR(1) items and item sets (states of the
// viable-prefix automaton): an item is (production, dot position,
// lookahead), with symbols and productions interned by the owning
// grammar.Grammar so that equality and hashing are O(1) pointer/int
// comparisons rather than structural comparisons over a dotted
// right-hand-side slice.
package itemset

import (
	"fmt"
	"strings"

	"github.com/halvardk/lr1gen/grammar"
)

// Item is an LR(1) item: a production with a dot position and a single
// terminal lookahead. Two items are equal iff all three fields are equal;
// Item is a plain comparable struct, so Go's built-in == and map-keying
// already implement that equality.
type Item struct {
	Prod      *grammar.Production
	Dot       int
	Lookahead *grammar.Symbol
}

// New constructs an item with the dot at the given position.
func New(p *grammar.Production, dot int, la *grammar.Symbol) Item {
	return Item{Prod: p, Dot: dot, Lookahead: la}
}

// Start builds the initial item [S' -> ·S, #] for the augmented production
// of a grammar.
func Start(g *grammar.Grammar) Item {
	return New(g.Augmented, 0, g.EOF)
}

// PeekSymbol returns the symbol immediately after the dot, or nil if the
// dot is at the end of the right-hand side (a reducible item).
func (it Item) PeekSymbol() *grammar.Symbol {
	if it.Dot >= len(it.Prod.RHS) {
		return nil
	}
	return it.Prod.RHS[it.Dot]
}

// IsReduce reports whether the dot has reached the end of the right-hand
// side.
func (it Item) IsReduce() bool {
	return it.Dot >= len(it.Prod.RHS)
}

// IsAccept reports whether it is the distinguished accepting item
// [S' -> S·, #].
func (it Item) IsAccept() bool {
	return it.Prod.IsAugmented() && it.IsReduce()
}

// Advance returns the item with the dot moved one position to the right.
// The caller must ensure PeekSymbol() != nil.
func (it Item) Advance() Item {
	return Item{Prod: it.Prod, Dot: it.Dot + 1, Lookahead: it.Lookahead}
}

// Prefix returns the portion of the right-hand side already before the
// dot (the "handle" once this item becomes reducible).
func (it Item) Prefix() []*grammar.Symbol {
	return it.Prod.RHS[:it.Dot]
}

// Suffix returns the portion of the right-hand side still after the dot,
// excluding the symbol the dot currently sits in front of (used by CLOSURE
// to compute FIRST(βa), see package automaton).
func (it Item) Suffix() []*grammar.Symbol {
	if it.Dot+1 >= len(it.Prod.RHS) {
		return nil
	}
	return it.Prod.RHS[it.Dot+1:]
}

func (it Item) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s ->", it.Prod.LHS.Name)
	for i, sym := range it.Prod.RHS {
		if i == it.Dot {
			b.WriteString(" ·")
		} else {
			b.WriteString(" ")
		}
		b.WriteString(sym.Name)
	}
	if it.Dot == len(it.Prod.RHS) {
		b.WriteString(" ·")
	}
	fmt.Fprintf(&b, ", %s", it.Lookahead.Name)
	return b.String()
}
