package grammarfile

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	grammar "github.com/SungMinCho/Grammar"
	"github.com/SungMinCho/Grammar/lr/scanner"
	"github.com/SungMinCho/Grammar/lr/scanner/lexmach"
	"github.com/timtadh/lexmachine"
)

// ErrSyntax is returned for malformed grammar files. Errors returned by Parse wrap it
// and carry the input position.
var ErrSyntax = errors.New("grammar syntax error")

// ErrUnquotable is returned by Format for terminals which contain both kinds of
// quotes and therefore cannot be written in the grammar file format.
var ErrUnquotable = errors.New("terminal name cannot be quoted")

// Token types of the grammar file format.
const (
	tokID int = iota + 1
	tokString
	tokStart
	tokEmpty
	tokColon
	tokArrow
	tokBar
	tokSemi
)

var tokens = lexmach.Tokens{
	Literals: []string{":", "->", "|", ";"},
	Keywords: []string{"%start", "%empty", "ε"},
	Types: map[string]int{
		"%start": tokStart,
		"%empty": tokEmpty,
		"ε":      tokEmpty,
		":":      tokColon,
		"->":     tokArrow,
		"|":      tokBar,
		";":      tokSemi,
	},
}

var lmAdapter struct {
	once sync.Once
	lm   *lexmach.Adapter
	err  error
}

// adapter compiles the lexer DFA once.
func adapter() (*lexmach.Adapter, error) {
	lmAdapter.once.Do(func() {
		init := func(lexer *lexmachine.Lexer) {
			lexer.Add([]byte(`#[^\n]*`), lexmach.Skip)
			lexer.Add([]byte(`'[^']*'`), lexmach.MakeToken("STRING", tokString))
			lexer.Add([]byte(`"[^"]*"`), lexmach.MakeToken("STRING", tokString))
			lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_|')*`), lexmach.MakeToken("ID", tokID))
			lexer.Add([]byte(`( |\t|\n|\r)+`), lexmach.Skip)
		}
		lmAdapter.lm, lmAdapter.err = lexmach.NewAdapter(init, tokens)
	})
	return lmAdapter.lm, lmAdapter.err
}

// Parse reads a grammar from r. name becomes the name of the grammar.
func Parse(name string, r io.Reader) (*grammar.Grammar, error) {
	input, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read grammar %s: %w", name, err)
	}
	return ParseString(name, string(input))
}

// ParseString reads a grammar from a string.
func ParseString(name string, input string) (*grammar.Grammar, error) {
	lm, err := adapter()
	if err != nil {
		return nil, err
	}
	sc, err := lm.Scanner(input)
	if err != nil {
		return nil, err
	}
	rd := &reader{sc: sc}
	sc.SetErrorHandler(func(e error) {
		rd.scanErrors = append(rd.scanErrors, e)
	})
	if err := rd.readRules(); err != nil {
		return nil, err
	}
	if len(rd.scanErrors) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, rd.scanErrors[0])
	}
	g, err := rd.grammar(name)
	if err != nil {
		return nil, err
	}
	g.Dump()
	return g, nil
}

type rawSymbol struct {
	name   string
	quoted bool
}

type rawRule struct {
	head string
	body []rawSymbol
}

type reader struct {
	sc         scanner.Tokenizer
	tok        scanner.Token
	rules      []rawRule
	start      string
	scanErrors []error
}

func (rd *reader) next() {
	rd.tok = rd.sc.NextToken()
}

func (rd *reader) is(typ int) bool {
	return rd.tok.TokType() == scanner.TokType(typ)
}

func (rd *reader) syntaxError(expected string) error {
	found := "end of input"
	if rd.tok.TokType() != scanner.EOF {
		found = fmt.Sprintf("%q", rd.tok.Lexeme())
		return fmt.Errorf("%w at %s: expected %s, found %s", ErrSyntax, rd.tok.Pos(), expected, found)
	}
	return fmt.Errorf("%w: expected %s, found %s", ErrSyntax, expected, found)
}

// rules := { directive | rule }
// directive := "%start" ID ";"
// rule := ID (":" | "->") alternative { "|" alternative } ";"
// alternative := { ID | STRING | ε }
func (rd *reader) readRules() error {
	rd.next()
	for rd.tok.TokType() != scanner.EOF {
		if rd.is(tokStart) {
			rd.next()
			if !rd.is(tokID) {
				return rd.syntaxError("start symbol")
			}
			rd.start = rd.tok.Lexeme()
			rd.next()
			if !rd.is(tokSemi) {
				return rd.syntaxError("';'")
			}
			rd.next()
			continue
		}
		if !rd.is(tokID) {
			return rd.syntaxError("rule head")
		}
		head := rd.tok.Lexeme()
		rd.next()
		if !rd.is(tokColon) && !rd.is(tokArrow) {
			return rd.syntaxError("':' or '->'")
		}
		rd.next()
		if err := rd.readAlternatives(head); err != nil {
			return err
		}
	}
	return nil
}

func (rd *reader) readAlternatives(head string) error {
	rule := rawRule{head: head}
	for {
		switch {
		case rd.is(tokID):
			rule.body = append(rule.body, rawSymbol{name: rd.tok.Lexeme()})
		case rd.is(tokString):
			lexeme := rd.tok.Lexeme()
			rule.body = append(rule.body, rawSymbol{name: lexeme[1 : len(lexeme)-1], quoted: true})
		case rd.is(tokEmpty):
			// ε contributes nothing to the body
		case rd.is(tokBar):
			rd.rules = append(rd.rules, rule)
			rule = rawRule{head: head}
		case rd.is(tokSemi):
			rd.rules = append(rd.rules, rule)
			rd.next()
			return nil
		default:
			return rd.syntaxError("symbol, '|' or ';'")
		}
		rd.next()
	}
}

// grammar decides on variables and terminals and assembles the productions.
func (rd *reader) grammar(name string) (*grammar.Grammar, error) {
	if len(rd.rules) == 0 {
		return nil, fmt.Errorf("grammar %s: %w", name, grammar.ErrEmptyGrammar)
	}
	heads := make(map[string]bool, len(rd.rules))
	for _, r := range rd.rules {
		heads[r.head] = true
	}
	g := &grammar.Grammar{
		Name:  name,
		Start: grammar.N(rd.rules[0].head),
	}
	if rd.start != "" {
		g.Start = grammar.N(rd.start)
	}
	for _, r := range rd.rules {
		body := make(grammar.SymbolString, 0, len(r.body))
		for _, sym := range r.body {
			if !sym.quoted && heads[sym.name] {
				body = append(body, grammar.N(sym.name))
			} else {
				body = append(body, grammar.T(sym.name))
			}
		}
		g.Productions = append(g.Productions, grammar.Production{Head: grammar.N(r.head), Body: body})
	}
	tracer().Infof("read grammar %s with %d rules", name, len(g.Productions))
	return g, nil
}

// Format writes a grammar in the format understood by Parse. Rules for the same head
// are grouped into alternatives, in order of first appearance of the head.
// Terminals containing both ' and " are rejected with ErrUnquotable; nothing is
// written in this case.
func Format(w io.Writer, g *grammar.Grammar) error {
	var b strings.Builder
	if len(g.Productions) > 0 && g.Productions[0].Head != g.Start {
		fmt.Fprintf(&b, "%%start %s ;\n", g.Start.Name)
	}
	heads := make(map[string]bool)
	for _, p := range g.Productions {
		heads[p.Head.Name] = true
	}
	done := make(map[grammar.Symbol]bool)
	for _, p := range g.Productions {
		if done[p.Head] {
			continue
		}
		done[p.Head] = true
		b.WriteString(p.Head.Name)
		b.WriteString(" :")
		for k, alt := range g.Rules(p.Head) {
			if k > 0 {
				b.WriteString("\n  |")
			}
			if alt.IsEpsilon() {
				b.WriteString(" ε")
			}
			for _, A := range alt.Body {
				sym, err := formatSymbol(A, heads)
				if err != nil {
					return fmt.Errorf("grammar %s, rule %s: %w", g.Name, alt, err)
				}
				b.WriteByte(' ')
				b.WriteString(sym)
			}
		}
		b.WriteString("\n  ;\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Terminals are quoted unless they are plain identifiers which are never a head.
func formatSymbol(A grammar.Symbol, heads map[string]bool) (string, error) {
	if A.IsVariable() || isIdentifier(A.Name) && !heads[A.Name] {
		return A.Name, nil
	}
	switch {
	case !strings.Contains(A.Name, "'"):
		return "'" + A.Name + "'", nil
	case !strings.Contains(A.Name, `"`):
		return `"` + A.Name + `"`, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnquotable, A.Name)
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '\''):
		default:
			return false
		}
	}
	return true
}
