/*
Package lr constructs the canonical collection of LR(0) item sets for a
context-free grammar. The result is the characteristic finite state machine
(CFSM) of the grammar: states are sets of dotted productions (items), edges are
labeled with grammar symbols.

The CFSM is the classical intermediate artifact for building LR(0), SLR and
LALR parser tables. This package stops at the automaton; it does not compute
lookaheads or parse tables.

Items

An item is a production with a dot marking how much of its right hand side has
been recognized:

    E -> T . + E

Items are values. Advancing the dot returns a new item.

Closure and Goto

Closure(S) adds, for every item with a variable X right after the dot, the
items X -> . β for all rules of X, until nothing new turns up. Goto(S, X)
advances the dot over X in all items of S which allow for it, and returns the
closure of the result. An empty goto set means "no transition".

Building the CFSM

    b := grammar.NewGrammarBuilder("G")
    b.LHS("E").N("T").End()
    b.LHS("E").N("T").T("+").N("E").End()
    b.LHS("T").T("int").End()
    g, _ := b.Grammar()
    cfsm, err := lr.BuildCFSM(g.Start, g.Productions)

The builder augments the grammar with a fresh start rule E' -> E. State 0 is the
closure of the augmented start item; further states are discovered breadth
first and numbered in discovery order. Two goto sets containing the same items
always map to the same state, no matter in which order the items were found.

A CFSM may be exported to Graphviz's Dot-format for inspection.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package lr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'grammar.lr'.
func tracer() tracing.Trace {
	return tracing.Select("grammar.lr")
}
