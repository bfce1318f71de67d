package grammar

import (
	"fmt"
	"strings"
)

// Production is a context-free rule LHS → RHS, identified by a stable
// 0-based Serial. Serial is used directly as the reduce-operand recorded in
// ACTION table entries (see package tables), after shifting it to a 1-based
// persisted form for backwards compatibility with the text table format.
//
// AugmentedSerial marks the single synthesized production S' → S added by
// the grammar builder; it is never a valid reduce target (it yields Accept
// instead) and is therefore kept out of Grammar.Productions.
const AugmentedSerial = -1

type Production struct {
	LHS    *Symbol
	RHS    []*Symbol
	Serial int
}

// newProduction constructs a production, normalizing an explicit ε-marker
// right-hand side (a production written as `A -> $`) to the empty slice, so
// that `A -> $` and `A -> ` are indistinguishable from here on.
func newProduction(lhs *Symbol, rhs []*Symbol, serial int) *Production {
	return &Production{LHS: lhs, RHS: normalizeRHS(rhs), Serial: serial}
}

func normalizeRHS(rhs []*Symbol) []*Symbol {
	if len(rhs) == 1 && rhs[0] != nil && rhs[0].Name == EpsilonSymbolName {
		// an explicit epsilon marker is the sole RHS symbol: this is an
		// ε-production, indistinguishable from an empty RHS from here on.
		return nil
	}
	return rhs
}

func (p *Production) String() string {
	if len(p.RHS) == 0 {
		return fmt.Sprintf("%s -> %s", p.LHS, EpsilonSymbolName)
	}
	parts := make([]string, len(p.RHS))
	for i, s := range p.RHS {
		parts[i] = s.Name
	}
	return fmt.Sprintf("%s -> %s", p.LHS, strings.Join(parts, " "))
}

// IsAugmented reports whether p is the synthesized S' -> S production.
func (p *Production) IsAugmented() bool { return p.Serial == AugmentedSerial }
