/*
Package grammarfile reads context-free grammars from a small text format.

A grammar file is a list of rules. Alternatives are separated by '|', rules
end with ';'. Either ':' or '->' separates a rule's head from its alternatives.

    # expressions
    E : T
      | T '+' E
      ;
    T -> int ;
    A : ε | a ;     # ε or an empty alternative denote an empty body

Identifiers which appear as the head of some rule are variables, all other
identifiers are terminals. Quoted names ('+' or "+") are always terminals.
The head of the first rule is the start symbol, unless a directive

    %start A ;

names a different one. Identifiers may contain primes (E').

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package grammarfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'grammar.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("grammar.grammar")
}
