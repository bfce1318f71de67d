package scanner

import (
	"github.com/halvardk/lr1gen"
	"github.com/halvardk/lr1gen/grammar"
)

// kindNames gives the terminal name used for a token's kind when kind,
// rather than lexeme, identifies the grammar terminal: if the kind
// indicates an identifier-class or literal-class token, the terminal is
// the kind name.
var kindNames = map[lr1gen.TokType]string{
	Ident:     "Ident",
	Int:       "Int",
	Float:     "Float",
	Char:      "Char",
	String:    "String",
	RawString: "String", // collapsed with String; UnifyStrings makes this the common case
}

// DefaultTerminalOf returns the default token-to-terminal mapping:
// identifier- and literal-class tokens resolve by kind name, every other
// token resolves by its lexeme. Symbols are looked up in g so
// the returned function always yields one of g's own interned terminals
// (or g.EOF for an unrecognized token, which the driver then reports as a
// parse error rather than panicking on a nil symbol).
func DefaultTerminalOf(g *grammar.Grammar) func(lr1gen.Token) *grammar.Symbol {
	byName := make(map[string]*grammar.Symbol, len(g.Terminals))
	for _, t := range g.Terminals {
		byName[t.Name] = t
	}
	return func(tok lr1gen.Token) *grammar.Symbol {
		name, byKind := kindNames[tok.TokType()]
		if !byKind {
			name = tok.Lexeme()
		}
		if sym, ok := byName[name]; ok {
			return sym
		}
		return g.EOF
	}
}
