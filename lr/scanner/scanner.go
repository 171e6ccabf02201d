/*
Package scanner defines an interface for scanners reading grammar specifications,
together with a default token type.

A lexmachine based implementation lives in sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package scanner

import (
	"fmt"
	"text/scanner"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'grammar.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("grammar.scanner")
}

// EOF is identical to text/scanner.EOF.
const EOF = scanner.EOF

// TokType is a category type for a Token. It is up to scanner clients to define
// values; EOF is the only pre-defined one.
type TokType int

// Token represents an input token.
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
	Pos() Position
}

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() Token
	SetErrorHandler(func(error))
}

// --- Spans and positions ---------------------------------------------------

// Span denotes a start byte offset and the offset just behind the end of a token.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// Position is a line/column position within the input, both counting from 1.
type Position struct {
	Line, Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used by the lexmachine scanner.
type DefaultToken struct {
	kind   TokType
	lexeme string
	Val    interface{}
	span   Span
	pos    Position
}

var _ Token = DefaultToken{}

// MakeDefaultToken creates a token.
func MakeDefaultToken(typ TokType, lexeme string, span Span, pos Position) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
		pos:    pos,
	}
}

// TokType is part of the Token interface.
func (t DefaultToken) TokType() TokType {
	return t.kind
}

// Value is part of the Token interface.
func (t DefaultToken) Value() interface{} {
	return t.Val
}

// Lexeme is part of the Token interface.
func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

// Span is part of the Token interface.
func (t DefaultToken) Span() Span {
	return t.span
}

// Pos is part of the Token interface.
func (t DefaultToken) Pos() Position {
	return t.pos
}

func (t DefaultToken) String() string {
	if t.kind == EOF {
		return "<EOF>"
	}
	return fmt.Sprintf("%q@%s", t.lexeme, t.pos)
}

// LogError is the default error reporting function for scanners.
func LogError(e error) {
	tracer().Errorf("scanner error: %v", e)
}
