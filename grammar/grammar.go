package grammar

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lr1gen.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("lr1gen.grammar")
}

// Grammar is the generator's input: a start symbol, terminals,
// nonterminals, an ordered list of productions with stable 0-based serials,
// and a precomputed FIRST set for every nonterminal. It is read-only once
// returned from a Builder.
type Grammar struct {
	Name         string
	Start        *Symbol // the user's start symbol
	AugStart     *Symbol // the synthesized S'
	EOF          *Symbol // the reserved '#' end-of-input terminal
	Epsilon      *Symbol // the reserved '$' nullability marker (FIRST sets only)
	Terminals    []*Symbol
	Nonterminals []*Symbol
	Productions  []*Production // 0-based, user productions only
	Augmented    *Production   // S' -> Start, Serial == AugmentedSerial

	first map[*Symbol]map[*Symbol]bool // nonterminal -> FIRST(nonterminal)
}

// Rule looks up a production by its stable serial. AugmentedSerial returns
// the synthesized S' -> Start production.
func (g *Grammar) Rule(serial int) *Production {
	if serial == AugmentedSerial {
		return g.Augmented
	}
	if serial < 0 || serial >= len(g.Productions) {
		return nil
	}
	return g.Productions[serial]
}

// First returns the precomputed FIRST set of a nonterminal, a set of
// terminals optionally including g.Epsilon to mean "ε ∈ FIRST(N)".
func (g *Grammar) First(n *Symbol) map[*Symbol]bool {
	return g.first[n]
}

// NonTermProductions returns every production with the given nonterminal on
// its left-hand side, in declaration order. Used by CLOSURE.
func (g *Grammar) NonTermProductions(n *Symbol) []*Production {
	var out []*Production
	for _, p := range g.Productions {
		if p.LHS == n {
			out = append(out, p)
		}
	}
	return out
}

// EachSymbol calls fn for every terminal and nonterminal, in a stable order
// (terminals first, each group ordered by interning serial).
func (g *Grammar) EachSymbol(fn func(*Symbol)) {
	for _, t := range g.Terminals {
		fn(t)
	}
	for _, n := range g.Nonterminals {
		fn(n)
	}
}

// IsTerminal reports whether sym is a terminal symbol (including EOF and the
// ε marker). It checks the symbol's kind only, not membership in
// g.Terminals.
func (g *Grammar) IsTerminal(sym *Symbol) bool {
	return sym != nil && sym.Kind == Terminal
}

// Validate checks the grammar's structural invariants and returns a
// *ConfigError describing the first violation found, or nil. Builder.Grammar
// already calls this before returning; it is exported so that callers who
// assemble a Grammar value directly (bypassing Builder) can still get the
// same configuration-error reporting contract.
func (g *Grammar) Validate() error {
	return g.validate()
}

func (g *Grammar) validate() error {
	known := make(map[*Symbol]bool, len(g.Terminals)+len(g.Nonterminals)+2)
	for _, t := range g.Terminals {
		known[t] = true
	}
	for _, n := range g.Nonterminals {
		known[n] = true
	}
	known[g.EOF] = true
	if g.Start == nil {
		return configErrorf("no start symbol declared")
	}
	if !known[g.Start] {
		return configErrorf("start symbol %q is not a declared nonterminal", g.Start.Name)
	}
	for _, p := range g.Productions {
		if !known[p.LHS] {
			return configErrorf("production %v: left-hand side %q is undeclared", p, p.LHS.Name)
		}
		for _, sym := range p.RHS {
			if !known[sym] {
				return configErrorf("production %v: symbol %q is neither terminal nor nonterminal", p, sym.Name)
			}
		}
	}
	for _, n := range g.Nonterminals {
		if _, ok := g.first[n]; !ok {
			return configErrorf("missing FIRST set for nonterminal %q", n.Name)
		}
	}
	return nil
}

// computeFirstSets runs the standard fixpoint algorithm for FIRST sets over
// every nonterminal, storing ε as g.Epsilon inside a nonterminal's set when
// that nonterminal is nullable.
func (g *Grammar) computeFirstSets() {
	g.first = make(map[*Symbol]map[*Symbol]bool, len(g.Nonterminals))
	for _, n := range g.Nonterminals {
		g.first[n] = make(map[*Symbol]bool)
	}
	changed := true
	for changed {
		changed = false
		for _, p := range g.Productions {
			set := g.first[p.LHS]
			if len(p.RHS) == 0 {
				if !set[g.Epsilon] {
					set[g.Epsilon] = true
					changed = true
				}
				continue
			}
			nullableAll := true
			for _, sym := range p.RHS {
				if sym.IsTerminal() {
					if !set[sym] {
						set[sym] = true
						changed = true
					}
					nullableAll = false
					break
				}
				other := g.first[sym]
				for t := range other {
					if t == g.Epsilon {
						continue
					}
					if !set[t] {
						set[t] = true
						changed = true
					}
				}
				if !other[g.Epsilon] {
					nullableAll = false
					break
				}
			}
			if nullableAll {
				if !set[g.Epsilon] {
					set[g.Epsilon] = true
					changed = true
				}
			}
		}
	}
	tracer().Debugf("computed FIRST sets for %d nonterminals", len(g.first))
}

// Dump returns a human-readable listing of the grammar's productions and
// FIRST sets, in the style of the original tool's viewTable/viewStates
// debug helpers.
func (g *Grammar) Dump() string {
	var b strings.Builder
	fmt.Fprintf(&b, "grammar %q\n", g.Name)
	fmt.Fprintf(&b, "  0': %v\n", g.Augmented)
	for _, p := range g.Productions {
		fmt.Fprintf(&b, "  %d: %v\n", p.Serial, p)
	}
	names := make([]string, 0, len(g.Nonterminals))
	byName := make(map[string]*Symbol, len(g.Nonterminals))
	for _, n := range g.Nonterminals {
		names = append(names, n.Name)
		byName[n.Name] = n
	}
	sort.Strings(names)
	for _, name := range names {
		n := byName[name]
		first := make([]string, 0, len(g.first[n]))
		for t := range g.first[n] {
			first = append(first, t.Name)
		}
		sort.Strings(first)
		fmt.Fprintf(&b, "  FIRST(%s) = %v\n", name, first)
	}
	return b.String()
}
