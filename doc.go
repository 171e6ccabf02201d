/*
Package grammar implements the data model for context-free grammars: symbols,
strings of symbols and productions. It is the foundation for package lr, which
constructs the canonical collection of LR(0) item sets (the CFSM) for a grammar.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of variables (non-terminals) and terminals.
Grammars may contain epsilon-productions.

Example:

    b := grammar.NewGrammarBuilder("G")
    b.LHS("E").N("T").End()                 // E  ->  T
    b.LHS("E").N("T").T("+").N("E").End()   // E  ->  T + E
    b.LHS("T").T("int").End()               // T  ->  int
    b.LHS("T").Epsilon()                    // T  ->
    g, err := b.Grammar()

The first rule's left hand side is taken as the start symbol. The resulting
grammar dumps to the tracer as

    0: E -> T
    1: E -> T + E
    2: T -> int
    3: T -> ε

Symbols

A symbol carries an explicit kind tag. A terminal "x" and a variable "x" are
different symbols. Symbols, symbol strings and productions are values; all
operations on them return fresh values and never modify their receivers.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'grammar.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("grammar.grammar")
}
