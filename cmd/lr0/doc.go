/*
Command lr0 constructs the canonical collection of LR(0) item sets for a
grammar and lets users explore it.

    lr0 states expr.grammar          # list the CFSM states and transitions
    lr0 dot expr.grammar > expr.dot  # export the CFSM for Graphviz
    lr0 enum --max 7 expr.grammar    # list derivable strings
    lr0 repl expr.grammar            # interactive exploration

Grammar files are read with package grammarfile. A file name of "-" denotes
standard input.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'grammar.lr'.
func tracer() tracing.Trace {
	return tracing.Select("grammar.lr")
}
