package grammar

import "fmt"

// SymbolKind distinguishes terminal from nonterminal grammar symbols.
type SymbolKind int8

const (
	// Terminal symbols are produced by the lexer and never appear on the
	// left-hand side of a production.
	Terminal SymbolKind = iota
	// Nonterminal symbols are defined by one or more productions.
	Nonterminal
)

func (k SymbolKind) String() string {
	if k == Terminal {
		return "terminal"
	}
	return "nonterminal"
}

// Symbol is a tagged value, either a terminal or a nonterminal. Symbols are
// interned per Grammar: two Symbol values with the same name and kind are
// always the same *Symbol pointer, so that equality, hashing and map-keying
// reduce to pointer comparison instead of string comparison.
type Symbol struct {
	Name string
	Kind SymbolKind
	id   int // serial id, assigned at interning time; used for stable ordering

	// TokType is the lexer-level token category this terminal corresponds
	// to. It is meaningless for nonterminals.
	TokType int
}

// IsTerminal reports whether s is a terminal symbol.
func (s *Symbol) IsTerminal() bool { return s.Kind == Terminal }

// ID returns the symbol's interning serial, used only to produce a stable
// iteration order over a grammar's symbols.
func (s *Symbol) ID() int { return s.id }

func (s *Symbol) String() string {
	if s == nil {
		return "<nil>"
	}
	return s.Name
}

func (s *Symbol) GoString() string {
	return fmt.Sprintf("%s(%s)", s.Name, s.Kind)
}

// EOFSymbolName is the reserved end-of-input terminal, spelled '#' per the
// grammar's data model. It is the only symbol the driver ever appends
// implicitly to an input stream.
const EOFSymbolName = "#"

// EpsilonSymbolName is the reserved marker used inside FIRST sets to signal
// "ε ∈ FIRST". It may also appear, by itself, as the right-hand side of a
// production to spell out an ε-production explicitly; such productions are
// normalized to an empty right-hand side at construction time (see
// normalizeRHS), so EpsilonSymbolName never leaks into an Item or a table.
const EpsilonSymbolName = "$"

// AugmentedSuffix is appended to a grammar's start symbol name to form the
// fresh augmented start symbol S'.
const AugmentedSuffix = "'"
