package grammar

import (
	"errors"
	"fmt"
)

// ErrEmptyGrammar is returned when a grammar without any rule is requested.
var ErrEmptyGrammar = errors.New("grammar has no rules")

// GrammarBuilder is a builder type for grammars. Create one with
// NewGrammarBuilder and add rules with LHS(...).
//
//     b := NewGrammarBuilder("G")
//     b.LHS("S").N("A").T("a").End()   // S -> A a
//     b.LHS("A").Epsilon()             // A ->
//
type GrammarBuilder struct {
	g     *Grammar
	start string
	err   error
}

// NewGrammarBuilder gets a new grammar builder, given the name of the grammar to build.
func NewGrammarBuilder(name string) *GrammarBuilder {
	return &GrammarBuilder{g: &Grammar{Name: name}}
}

// StartWith sets the start symbol of the grammar. Without it, the head of the
// first rule is the start symbol.
func (gb *GrammarBuilder) StartWith(name string) *GrammarBuilder {
	gb.start = name
	return gb
}

// LHS starts a rule given the left hand side symbol (variable).
func (gb *GrammarBuilder) LHS(name string) *RuleBuilder {
	if name == "" && gb.err == nil {
		gb.err = fmt.Errorf("rule %d: left hand side must not be empty", len(gb.g.Productions))
	}
	return &RuleBuilder{gb: gb, head: N(name)}
}

// Grammar returns the grammar built so far.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if gb.err != nil {
		return nil, gb.err
	}
	if len(gb.g.Productions) == 0 {
		return nil, ErrEmptyGrammar
	}
	g := &Grammar{
		Name:        gb.g.Name,
		Start:       gb.g.Productions[0].Head,
		Productions: append([]Production(nil), gb.g.Productions...),
	}
	if gb.start != "" {
		g.Start = N(gb.start)
	}
	g.Dump()
	return g, nil
}

// RuleBuilder collects the right hand side of a single rule.
// Terminate a rule with End() or Epsilon().
type RuleBuilder struct {
	gb   *GrammarBuilder
	head Symbol
	body SymbolString
}

// N appends a variable to the right hand side.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.body = append(rb.body, N(name))
	return rb
}

// T appends a terminal to the right hand side.
func (rb *RuleBuilder) T(name string) *RuleBuilder {
	rb.body = append(rb.body, T(name))
	return rb
}

// End terminates the rule and adds it to the grammar.
func (rb *RuleBuilder) End() Production {
	p := Production{Head: rb.head, Body: rb.body}
	rb.gb.g.Productions = append(rb.gb.g.Productions, p)
	return p
}

// Epsilon terminates a rule with an empty right hand side.
func (rb *RuleBuilder) Epsilon() Production {
	rb.body = nil
	return rb.End()
}
