package grammar

import "sort"

// Builder is a fluent grammar builder. Clients add rules, consisting of
// nonterminal and terminal symbols; grammars may contain ε-productions.
//
// Example:
//
//	b := grammar.NewBuilder("G")
//	b.LHS("S").N("A").T("a", 1).EOF()  // S  ->  A a #
//	b.LHS("A").N("B").N("D").End()     // A  ->  B D
//	b.LHS("B").T("b", 2).End()         // B  ->  b
//	b.LHS("B").Epsilon()               // B  ->
//	g, err := b.Grammar()
type Builder struct {
	name        string
	symtab      map[string]*Symbol // interning table, keyed by kind+name
	nextID      int
	start       *Symbol
	productions []*Production
	err         error
}

// NewBuilder creates an empty grammar builder named nm.
func NewBuilder(nm string) *Builder {
	b := &Builder{
		name:   nm,
		symtab: make(map[string]*Symbol),
	}
	return b
}

func (b *Builder) intern(kind SymbolKind, name string, tokType int) *Symbol {
	key := kind.String() + ":" + name
	if s, ok := b.symtab[key]; ok {
		return s
	}
	s := &Symbol{Name: name, Kind: kind, id: b.nextID, TokType: tokType}
	b.nextID++
	b.symtab[key] = s
	return s
}

// RuleBuilder accumulates the right-hand side of a single production.
type RuleBuilder struct {
	b   *Builder
	lhs *Symbol
	rhs []*Symbol
}

// LHS starts a new production with the given nonterminal on the left. The
// first call to LHS implicitly declares the grammar's start symbol, unless
// SetStart was called beforehand.
func (b *Builder) LHS(name string) *RuleBuilder {
	lhs := b.intern(Nonterminal, name, 0)
	if b.start == nil {
		b.start = lhs
	}
	return &RuleBuilder{b: b, lhs: lhs}
}

// SetStart overrides the grammar's start symbol explicitly.
func (b *Builder) SetStart(name string) *Builder {
	b.start = b.intern(Nonterminal, name, 0)
	return b
}

// N appends a nonterminal reference to the right-hand side under
// construction.
func (r *RuleBuilder) N(name string) *RuleBuilder {
	r.rhs = append(r.rhs, r.b.intern(Nonterminal, name, 0))
	return r
}

// T appends a terminal reference, carrying the lexer's token-type value for
// this lexeme, to the right-hand side under construction.
func (r *RuleBuilder) T(lexeme string, tokType int) *RuleBuilder {
	r.rhs = append(r.rhs, r.b.intern(Terminal, lexeme, tokType))
	return r
}

// End finalizes the rule as-is and registers it with the builder.
func (r *RuleBuilder) End() {
	r.b.addProduction(r.lhs, r.rhs)
}

// Epsilon finalizes the rule as an ε-production (an empty right-hand
// side), discarding anything accumulated via N/T so far.
func (r *RuleBuilder) Epsilon() {
	r.b.addProduction(r.lhs, nil)
}

// EOF appends the reserved end-of-input terminal to the right-hand side and
// finalizes the rule. Used for a grammar's top rule, e.g. `S -> Expr #`.
func (r *RuleBuilder) EOF() {
	r.rhs = append(r.rhs, r.b.intern(Terminal, EOFSymbolName, 0))
	r.End()
}

func (b *Builder) addProduction(lhs *Symbol, rhs []*Symbol) {
	if b.err != nil {
		return
	}
	serial := len(b.productions)
	b.productions = append(b.productions, newProduction(lhs, rhs, serial))
}

// Grammar finalizes the builder: it synthesizes the augmented start
// production, computes FIRST sets, validates the grammar's structural
// invariants, and returns the resulting immutable Grammar.
func (b *Builder) Grammar() (*Grammar, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.start == nil {
		return nil, configErrorf("grammar %q has no productions", b.name)
	}
	eof := b.intern(Terminal, EOFSymbolName, 0)
	epsilon := b.intern(Terminal, EpsilonSymbolName, 0)
	augStart := b.intern(Nonterminal, b.start.Name+AugmentedSuffix, 0)

	var terminals, nonterminals []*Symbol
	for _, s := range b.symtab {
		if s == epsilon {
			continue // never a real grammar symbol, only a FIRST-set marker
		}
		if s == augStart {
			continue // not enumerated as an ordinary nonterminal
		}
		if s.IsTerminal() {
			terminals = append(terminals, s)
		} else {
			nonterminals = append(nonterminals, s)
		}
	}
	sortSymbols(terminals)
	sortSymbols(nonterminals)

	g := &Grammar{
		Name:         b.name,
		Start:        b.start,
		AugStart:     augStart,
		EOF:          eof,
		Epsilon:      epsilon,
		Terminals:    terminals,
		Nonterminals: nonterminals,
		Productions:  b.productions,
		Augmented:    newProduction(augStart, []*Symbol{b.start}, AugmentedSerial),
	}
	g.computeFirstSets()
	if err := g.validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func sortSymbols(syms []*Symbol) {
	sort.Slice(syms, func(i, j int) bool { return syms[i].id < syms[j].id })
}
