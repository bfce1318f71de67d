/*
Package lexmach adapts github.com/timtadh/lexmachine, a maximal-munch
regex-driven lexer generator, to the scanner.Tokenizer contract. Use this
instead of the text/scanner-backed default tokenizer when a grammar's
lexical structure needs more than Go-like tokens — keyword sets,
multi-character operators, custom literal forms.

Unlike a caller-supplied token-id table, every literal and keyword rule is
resolved against the target grammar's own terminals at construction time:
the lexmachine rule for "if" is tagged with that terminal's interned
symbol, so a scanned token can be mapped back to its grammar terminal
exactly, without the kind/lexeme guessing scanner.DefaultTerminalOf needs
for a general-purpose tokenizer.
*/
package lexmach

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/halvardk/lr1gen"
	"github.com/halvardk/lr1gen/grammar"
	"github.com/halvardk/lr1gen/scanner"
)

// tracer traces with key 'lr1gen.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("lr1gen.scanner")
}

// Adapter wraps a compiled lexmachine.Lexer, along with the grammar
// terminal each of its rules was registered for.
type Adapter struct {
	Lexer   *lexmachine.Lexer
	g       *grammar.Grammar
	bySerial map[int]*grammar.Symbol // lexmachine rule id -> grammar terminal
}

// NewAdapter builds and compiles a lexmachine DFA for g: every name in
// literals or keywords must already be a declared terminal of g, and is
// registered as a lexmachine rule tagged with that terminal's own interned
// serial — so NextToken and TerminalOf never need a separately maintained
// id table. init runs first, against the partially built Adapter, so a
// caller can register whitespace-skipping and other custom patterns
// (identifiers, numeric literals) via AddRule or a.Lexer.Add, before literals and
// keywords are added; literal patterns are escaped with regexp.QuoteMeta
// rather than built up character by character.
func NewAdapter(g *grammar.Grammar, init func(*Adapter), literals []string, keywords []string) (*Adapter, error) {
	a := &Adapter{Lexer: lexmachine.NewLexer(), g: g, bySerial: make(map[int]*grammar.Symbol)}
	if init != nil {
		init(a)
	}
	for _, lit := range literals {
		if err := a.AddRule(lit, regexp.QuoteMeta(lit)); err != nil {
			return nil, err
		}
	}
	for _, kw := range keywords {
		if err := a.AddRule(kw, strings.ToLower(kw)); err != nil {
			return nil, err
		}
	}
	if init != nil {
		init(a)
	}
	if err := a.Lexer.Compile(); err != nil {
		tracer().Errorf("error compiling lexmachine DFA: %v", err)
		return nil, err
	}
	return a, nil
}

// AddRule registers a lexmachine rule matching pattern, tagged with the
// grammar terminal named terminalName. Unlike the literal/keyword rules
// NewAdapter itself registers, pattern is taken as a raw lexmachine regex
// rather than escaped, so callers can register classes of lexemes (an
// identifier or numeric-literal pattern) against a single terminal.
func (a *Adapter) AddRule(terminalName, pattern string) error {
	sym := terminalNamed(a.g, terminalName)
	if sym == nil {
		return fmt.Errorf("lexmach: grammar %q has no terminal %q", a.g.Name, terminalName)
	}
	a.bySerial[sym.ID()] = sym
	a.Lexer.Add([]byte(pattern), MakeToken(sym.ID()))
	return nil
}

func terminalNamed(g *grammar.Grammar, name string) *grammar.Symbol {
	for _, t := range g.Terminals {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// Scanner creates a Tokenizer over input.
func (a *Adapter) Scanner(input string) (*Scanner, error) {
	s, err := a.Lexer.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	return &Scanner{scanner: s, bySerial: a.bySerial, Error: logError}, nil
}

// TerminalOf returns a driver.TerminalOf that resolves a token produced by
// this adapter directly to the grammar terminal its lexmachine rule was
// registered for — an exact lookup, unlike scanner.DefaultTerminalOf's
// kind/lexeme heuristic, since every rule here already names one terminal.
func (a *Adapter) TerminalOf() func(lr1gen.Token) *grammar.Symbol {
	return func(tok lr1gen.Token) *grammar.Symbol {
		if tok.TokType() == scanner.EOF {
			return a.g.EOF
		}
		if sym, ok := a.bySerial[int(tok.TokType())]; ok {
			return sym
		}
		return a.g.EOF
	}
}

// Scanner is a scanner.Tokenizer backed by a compiled lexmachine DFA.
type Scanner struct {
	scanner  *lexmachine.Scanner
	bySerial map[int]*grammar.Symbol
	Error    func(error)
}

var _ scanner.Tokenizer = (*Scanner)(nil)

// SetErrorHandler installs h as the scanner's error callback; nil restores
// the default trace-only handler.
func (s *Scanner) SetErrorHandler(h func(error)) {
	if h == nil {
		s.Error = logError
		return
	}
	s.Error = h
}

// NextToken is part of the scanner.Tokenizer interface. Unconsumed-input
// errors are reported to the error handler and skipped past, matching the
// recovery lexmachine's own examples perform.
func (s *Scanner) NextToken() lr1gen.Token {
	tok, err, eof := s.scanner.Next()
	for err != nil {
		s.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			s.scanner.TC = ui.FailTC
		}
		tok, err, eof = s.scanner.Next()
	}
	if eof {
		return scanner.MakeDefaultToken(scanner.EOF, "", lr1gen.Span{}, 0)
	}
	t := tok.(*lexmachine.Token)
	return scanner.MakeDefaultToken(
		lr1gen.TokType(t.Type),
		string(t.Lexeme),
		lr1gen.Span{uint64(t.StartColumn), uint64(t.EndColumn)},
		t.StartLine,
	)
}

func logError(e error) {
	tracer().Errorf("scanner error: %s", e.Error())
}

// Skip is a pre-defined lexmachine action that discards the matched text
// (for whitespace and comments).
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined lexmachine action wrapping a match into a
// lexmachine.Token carrying the grammar terminal's own interned serial as
// its type id.
func MakeToken(serial int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(serial, string(m.Bytes), m), nil
	}
}
