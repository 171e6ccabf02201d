package lexmach

import (
	"strings"

	"github.com/SungMinCho/Grammar/lr/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'grammar.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("grammar.scanner")
}

// Adapter holds a compiled lexmachine DFA. It is safe to create any number of
// scanners from one adapter.
type Adapter struct {
	Lexer *lexmachine.Lexer
}

// Tokens configures an adapter: fixed punctuation (":", "->", …), keywords
// ("%start", …) and the token type for every punctuation or keyword string.
type Tokens struct {
	Literals []string
	Keywords []string
	Types    map[string]int
}

// NewAdapter compiles a DFA from the patterns added by init plus the literals
// and keywords of toks. Literals and keywords are matched verbatim.
func NewAdapter(init func(*lexmachine.Lexer), toks Tokens) (*Adapter, error) {
	lexer := lexmachine.NewLexer()
	init(lexer)
	for _, lit := range append(append([]string(nil), toks.Literals...), toks.Keywords...) {
		lexer.Add(verbatim(lit), MakeToken(lit, toks.Types[lit]))
	}
	if err := lexer.Compile(); err != nil {
		tracer().Errorf("cannot compile lexer DFA: %v", err)
		return nil, err
	}
	return &Adapter{Lexer: lexer}, nil
}

// verbatim builds a pattern matching s literally. Letters and digits stand for
// themselves, every other byte is escaped.
func verbatim(s string) []byte {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		alnum := c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
		if !alnum && c < 0x80 {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return []byte(b.String())
}

// Scanner creates a scanner for input.
func (a *Adapter) Scanner(input string) (*Scanner, error) {
	s, err := a.Lexer.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	return &Scanner{lms: s, onError: scanner.LogError}, nil
}

// Scanner tokenizes a single input with a lexmachine DFA.
type Scanner struct {
	lms     *lexmachine.Scanner
	onError func(error)
}

var _ scanner.Tokenizer = (*Scanner)(nil)

// SetErrorHandler replaces the default error handler, which logs errors.
func (s *Scanner) SetErrorHandler(h func(error)) {
	if h == nil {
		h = scanner.LogError
	}
	s.onError = h
}

// NextToken returns the next token, or a token of type scanner.EOF at the end
// of the input. Input which no pattern matches is reported to the error handler
// and skipped.
func (s *Scanner) NextToken() scanner.Token {
	for {
		tok, err, eof := s.lms.Next()
		if eof {
			return scanner.MakeDefaultToken(scanner.EOF, "", scanner.Span{}, scanner.Position{})
		}
		if err != nil {
			s.onError(err)
			s.skip(err)
			continue
		}
		t := tok.(*lexmachine.Token)
		tracer().Debugf("token %d %q at %d:%d", t.Type, t.Lexeme, t.StartLine, t.StartColumn)
		return scanner.MakeDefaultToken(
			scanner.TokType(t.Type),
			string(t.Lexeme),
			scanner.Span{uint64(t.TC), uint64(t.TC + len(t.Lexeme))},
			scanner.Position{Line: t.StartLine, Column: t.StartColumn},
		)
	}
}

// skip moves past unmatched input, by at least one byte.
func (s *Scanner) skip(err error) {
	ui, ok := err.(*machines.UnconsumedInput)
	if !ok {
		return
	}
	if ui.FailTC > s.lms.TC {
		s.lms.TC = ui.FailTC
	} else {
		s.lms.TC++
	}
}

// ---------------------------------------------------------------------------

// Skip is an action which drops the match, e.g. for white space and comments.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken returns an action which emits a token of type id for the match.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
