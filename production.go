package grammar

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
)

// Production is a rewrite rule  Head -> Body.
// Head should be a variable; this is not checked (see Validate).
type Production struct {
	Head Symbol
	Body SymbolString
}

// Rule creates a production.
func Rule(head Symbol, body ...Symbol) Production {
	return Production{Head: head, Body: SymbolString(body)}
}

// Equals is true if p and other have the same head and the same body.
func (p Production) Equals(other Production) bool {
	return p.Head == other.Head && p.Body.Equals(other.Body)
}

// IsEpsilon is true for productions with an empty body.
func (p Production) IsEpsilon() bool {
	return len(p.Body) == 0
}

func (p Production) String() string {
	return fmt.Sprintf("%s -> %s", p.Head, p.Body)
}

// --- Grammar ---------------------------------------------------------------

// Grammar is a named, ordered list of productions together with a start symbol.
// The order of productions is significant for deterministic output only.
type Grammar struct {
	Name        string
	Start       Symbol
	Productions []Production
}

// Rules returns all productions with head A, in declaration order.
func (g *Grammar) Rules(A Symbol) []Production {
	return RulesFor(A, g.Productions)
}

// Symbols returns the set of all symbols of g.
func (g *Grammar) Symbols() *SymbolSet {
	return GrammarSymbols(g.Productions)
}

// Dump is a debugging helper.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar %s, start = %s -------", g.Name, g.Start)
	for i, p := range g.Productions {
		tracer().Debugf("%3d: %s", i, p)
	}
	tracer().Debugf("----------------------------------")
}

// RulesFor returns all productions of prods with head A, in declaration order.
func RulesFor(A Symbol, prods []Production) []Production {
	var R []Production
	for _, p := range prods {
		if p.Head == A {
			R = append(R, p)
		}
	}
	return R
}

// --- Symbol sets -----------------------------------------------------------

// SymbolSet is a set of grammar symbols. Iteration order is deterministic:
// terminals come first, then variables, each group ordered by name.
type SymbolSet struct {
	set *treeset.Set
}

// NewSymbolSet creates a set of symbols.
func NewSymbolSet(syms ...Symbol) *SymbolSet {
	S := &SymbolSet{set: treeset.NewWith(compareSymbols)}
	for _, A := range syms {
		S.set.Add(A)
	}
	return S
}

// GrammarSymbols collects every symbol occurring as a head or within a body of
// any production in prods.
func GrammarSymbols(prods []Production) *SymbolSet {
	S := NewSymbolSet()
	for _, p := range prods {
		S.Add(p.Head)
		for _, A := range p.Body {
			S.Add(A)
		}
	}
	return S
}

// Add inserts A into the set.
func (S *SymbolSet) Add(A Symbol) {
	S.set.Add(A)
}

// Contains is true if A is a member of S.
func (S *SymbolSet) Contains(A Symbol) bool {
	return S.set.Contains(A)
}

// ContainsName is true if any symbol of S, terminal or variable, is named name.
func (S *SymbolSet) ContainsName(name string) bool {
	return S.Contains(T(name)) || S.Contains(N(name))
}

// Size returns the number of symbols in S.
func (S *SymbolSet) Size() int {
	return S.set.Size()
}

// Values returns the symbols of S in iteration order.
func (S *SymbolSet) Values() []Symbol {
	syms := make([]Symbol, 0, S.set.Size())
	it := S.set.Iterator()
	for it.Next() {
		syms = append(syms, it.Value().(Symbol))
	}
	return syms
}

// Each calls f for every symbol, in iteration order.
func (S *SymbolSet) Each(f func(A Symbol)) {
	it := S.set.Iterator()
	for it.Next() {
		f(it.Value().(Symbol))
	}
}
