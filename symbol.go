package grammar

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Kind tags a symbol as either a terminal or a variable (non-terminal).
type Kind int8

// Symbol kinds.
const (
	Terminal Kind = iota
	Variable
)

func (k Kind) String() string {
	if k == Variable {
		return "Variable"
	}
	return "Terminal"
}

// Symbol is an atomic element of a grammar's vocabulary. Symbols are comparable
// values: two symbols are equal iff they share name and kind.
type Symbol struct {
	Name string
	Kind Kind
}

// T creates a terminal symbol.
func T(name string) Symbol {
	return Symbol{Name: name, Kind: Terminal}
}

// N creates a variable (non-terminal) symbol.
func N(name string) Symbol {
	return Symbol{Name: name, Kind: Variable}
}

// IsTerminal is true for terminal symbols.
func (A Symbol) IsTerminal() bool {
	return A.Kind == Terminal
}

// IsVariable is true for non-terminal symbols.
func (A Symbol) IsVariable() bool {
	return A.Kind == Variable
}

func (A Symbol) String() string {
	return A.Name
}

// compareSymbols orders terminals before variables, then by name.
func compareSymbols(a, b interface{}) int {
	A, B := a.(Symbol), b.(Symbol)
	if A.Kind != B.Kind {
		return int(A.Kind) - int(B.Kind)
	}
	return strings.Compare(A.Name, B.Name)
}

// --- Symbol strings --------------------------------------------------------

// SymbolString is an ordered sequence of symbols, possibly empty. It is used for
// right hand sides of productions and for sentential forms.
type SymbolString []Symbol

// Syms is a shortcut to create a symbol string.
func Syms(syms ...Symbol) SymbolString {
	return SymbolString(syms)
}

// Len returns the number of symbols in s.
func (s SymbolString) Len() int {
	return len(s)
}

// Equals compares two symbol strings element-wise.
func (s SymbolString) Equals(other SymbolString) bool {
	return slices.Equal(s, other)
}

// Less orders symbol strings by length only.
func (s SymbolString) Less(other SymbolString) bool {
	return len(s) < len(other)
}

// AllTerminal is true if every symbol of s is a terminal. It is true for the
// empty string.
func (s SymbolString) AllTerminal() bool {
	return slices.IndexFunc(s, Symbol.IsVariable) < 0
}

// VariableCount returns the number of non-terminals in s.
func (s SymbolString) VariableCount() int {
	cnt := 0
	for _, A := range s {
		if A.IsVariable() {
			cnt++
		}
	}
	return cnt
}

// TerminalCount returns the number of terminals in s.
func (s SymbolString) TerminalCount() int {
	return len(s) - s.VariableCount()
}

// LeftmostVariable returns the position of the first non-terminal in s, or -1.
func (s SymbolString) LeftmostVariable() int {
	return slices.IndexFunc(s, Symbol.IsVariable)
}

// ReplaceLeftmostVariable substitutes the body of p for the leftmost variable of s,
// provided that variable is p's head. s is left untouched; the result is a fresh
// string. If the leftmost variable does not match p.Head, false is returned.
func (s SymbolString) ReplaceLeftmostVariable(p Production) (SymbolString, bool) {
	i := s.LeftmostVariable()
	if i < 0 || s[i] != p.Head {
		return nil, false
	}
	r := make(SymbolString, 0, len(s)-1+len(p.Body))
	r = append(r, s[:i]...)
	r = append(r, p.Body...)
	r = append(r, s[i+1:]...)
	return r, true
}

func (s SymbolString) String() string {
	if len(s) == 0 {
		return "ε"
	}
	var b strings.Builder
	for i, A := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(A.Name)
	}
	return b.String()
}
