package lr

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ToGraphViz exports a CFSM to the Graphviz Dot format. Every state becomes a
// record node listing its items; every transition becomes an edge labeled with
// its symbol. Accepting states are filled light gray.
func (c *CFSM) ToGraphViz(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(`digraph {
graph [splines=true, fontname=Helvetica, fontsize=10];
node [shape=Mrecord, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	for _, s := range c.states {
		fmt.Fprintf(bw, "s%03d [fillcolor=%s label=\"{%03d | %s}\"]\n",
			s.ID, nodecolor(s), s.ID, forGraphviz(s.Items))
	}
	for _, e := range c.Edges() {
		fmt.Fprintf(bw, "s%03d -> s%03d [label=\"%s\"]\n", e.From, e.To, quoteEscaper.Replace(e.Label.Name))
	}
	bw.WriteString("}\n")
	return bw.Flush()
}

func nodecolor(state *CFSMState) string {
	if state.Accept {
		return "lightgray"
	}
	return "white"
}

// forGraphviz lists items left aligned, one per line.
func forGraphviz(iset *ItemSet) string {
	var b strings.Builder
	for _, i := range iset.Items() {
		b.WriteString(escapeDot(i.String()))
		b.WriteString(`\l`)
	}
	return b.String()
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// record labels need escaping of field separators, too
var dotEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`{`, `\{`,
	`}`, `\}`,
	`|`, `\|`,
	`<`, `\<`,
	`>`, `\>`,
)

func escapeDot(s string) string {
	return dotEscaper.Replace(s)
}
