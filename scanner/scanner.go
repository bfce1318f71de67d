/*
Package scanner defines the lexer-side collaborator contract for this
module's driver: an ordered, finite sequence of tokens, each carrying a
lexeme, a kind, and a source position. A default implementation wraps the
standard library's text/scanner; a lexmachine-backed alternative lives in
the lexmach subpackage.
*/
package scanner

import (
	"io"
	"text/scanner"

	"github.com/npillmayer/schuko/tracing"

	"github.com/halvardk/lr1gen"
)

// tracer traces with key 'lr1gen.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("lr1gen.scanner")
}

// Token type constants, replicated from text/scanner for callers that do
// not want to import it directly.
const (
	EOF       = lr1gen.TokType(scanner.EOF)
	Ident     = lr1gen.TokType(scanner.Ident)
	Int       = lr1gen.TokType(scanner.Int)
	Float     = lr1gen.TokType(scanner.Float)
	Char      = lr1gen.TokType(scanner.Char)
	String    = lr1gen.TokType(scanner.String)
	RawString = lr1gen.TokType(scanner.RawString)
	Comment   = lr1gen.TokType(scanner.Comment)
)

// Tokenizer produces one token at a time from some input source.
type Tokenizer interface {
	NextToken() lr1gen.Token
	SetErrorHandler(func(error))
}

// DefaultToken is a plain lr1gen.Token implementation returned by
// DefaultTokenizer and the lexmach adapter.
type DefaultToken struct {
	kind   lr1gen.TokType
	lexeme string
	val    interface{}
	span   lr1gen.Span
	line   int
}

var _ lr1gen.Token = DefaultToken{}

// MakeDefaultToken constructs a DefaultToken with no attached value.
func MakeDefaultToken(kind lr1gen.TokType, lexeme string, span lr1gen.Span, line int) DefaultToken {
	return DefaultToken{kind: kind, lexeme: lexeme, span: span, line: line}
}

func (t DefaultToken) TokType() lr1gen.TokType { return t.kind }
func (t DefaultToken) Lexeme() string          { return t.lexeme }
func (t DefaultToken) Value() interface{}      { return t.val }
func (t DefaultToken) Span() lr1gen.Span       { return t.span }
func (t DefaultToken) Line() int               { return t.line }

// DefaultTokenizer is a Tokenizer backed by text/scanner.Scanner, configured
// to accept Go-like tokens (identifiers, numbers, strings, comments).
type DefaultTokenizer struct {
	scanner.Scanner
	Error        func(error)
	unifyStrings bool
}

var _ Tokenizer = (*DefaultTokenizer)(nil)

// Option configures a DefaultTokenizer at construction time.
type Option func(*DefaultTokenizer)

// SkipComments configures the scanner to not emit Comment tokens.
func SkipComments(skip bool) Option {
	return func(t *DefaultTokenizer) {
		if skip {
			t.Mode |= scanner.SkipComments
		}
	}
}

// UnifyStrings treats raw strings and single characters as String tokens,
// collapsing three text/scanner kinds into one grammar terminal.
func UnifyStrings(unify bool) Option {
	return func(t *DefaultTokenizer) { t.unifyStrings = unify }
}

// GoTokenizer creates a DefaultTokenizer over input, identified by sourceID
// for error messages.
func GoTokenizer(sourceID string, input io.Reader, opts ...Option) *DefaultTokenizer {
	t := &DefaultTokenizer{Error: logError}
	t.Init(input)
	t.Filename = sourceID
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetErrorHandler installs h as the scanner's error callback; a nil h
// restores the default (trace-only) handler.
func (t *DefaultTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken scans and returns the next token, or an EOF-kind token once the
// input is exhausted.
func (t *DefaultTokenizer) NextToken() lr1gen.Token {
	kind := t.Scan()
	if t.unifyStrings && (kind == scanner.RawString || kind == scanner.Char) {
		kind = scanner.String
	}
	if kind == scanner.EOF {
		tracer().Debugf("tokenizer reached end of input")
	}
	return DefaultToken{
		kind:   lr1gen.TokType(kind),
		lexeme: t.TokenText(),
		span:   lr1gen.Span{uint64(t.Position.Offset), uint64(t.Pos().Offset)},
		line:   t.Position.Line,
	}
}

func logError(e error) {
	tracer().Errorf("scanner error: %s", e.Error())
}

// Drain consumes tok until an EOF-kind token is produced, returning every
// token scanned except that final one. Convenience for callers (e.g. the
// CLI, or tests) that want a complete token slice up front, matching the
// "sequence of tokens" input shape for driver.Parse.
func Drain(tok Tokenizer) []lr1gen.Token {
	var out []lr1gen.Token
	for {
		t := tok.NextToken()
		if t.TokType() == EOF {
			return out
		}
		out = append(out, t)
	}
}
