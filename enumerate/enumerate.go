/*
Package enumerate lists the terminal strings derivable from a grammar's start
symbol, short strings first.

The enumerator keeps a priority queue of sentential forms, ordered by length
(forms of equal length in order of discovery). The shortest form is taken from
the queue; if it consists of terminals only, it is yielded, otherwise its
leftmost variable is replaced by every right hand side of that variable and
the results go back into the queue. Every form is expanded at most once, so
every string is yielded at most once.

Epsilon-productions are compiled away before enumeration starts: rules are
rewritten to derive the same non-empty strings without empty right hand
sides, and the empty string is yielded first if the start symbol is nullable.
Forms therefore never shrink, and strings appear in order of non-decreasing
length.

As most grammars derive infinitely many strings, clients should either stop
pulling strings or bound the enumeration:

    e := enumerate.New(g.Start, g.Productions, enumerate.MaxLength(6))
    for s, ok := e.Next(); ok; s, ok = e.Next() {
        fmt.Println(s)
    }

Enumeration is independent of the LR machinery in package lr.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package enumerate

import (
	"strings"

	grammar "github.com/SungMinCho/Grammar"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'grammar.enum'.
func tracer() tracing.Trace {
	return tracing.Select("grammar.enum")
}

// Option configures an enumerator.
type Option func(e *Enumerator)

// MaxLength drops sentential forms which cannot derive a string of at most n
// terminals, i.e. forms whose terminals plus the shortest yields of their
// variables exceed n. There are finitely many such forms, and none is expanded
// twice, so with a length bound enumeration always terminates.
func MaxLength(n int) Option {
	return func(e *Enumerator) {
		e.maxlen = n
	}
}

// Limit stops the enumeration after n strings.
func Limit(n int) Option {
	return func(e *Enumerator) {
		e.limit = n
	}
}

// Enumerator produces derivable terminal strings lazily.
type Enumerator struct {
	prods    []grammar.Production // epsilon-free rules
	minYield map[grammar.Symbol]int
	queue    *binaryheap.Heap
	seen     *hashset.Set // keys of forms ever queued
	serial   uint64
	maxlen   int // 0 = unbounded
	limit    int // 0 = unlimited
	yielded  int
}

type form struct {
	syms   grammar.SymbolString
	serial uint64 // tie breaker for forms of equal length
}

func formComparator(a, b interface{}) int {
	f1, f2 := a.(form), b.(form)
	switch {
	case f1.syms.Less(f2.syms):
		return -1
	case f2.syms.Less(f1.syms):
		return 1
	case f1.serial < f2.serial:
		return -1
	case f1.serial > f2.serial:
		return 1
	}
	return 0
}

// New creates an enumerator for strings derivable from start.
func New(start grammar.Symbol, prods []grammar.Production, opts ...Option) *Enumerator {
	rules, nullable := epsilonFree(prods)
	e := &Enumerator{
		prods:    rules,
		minYield: shortestYields(rules),
		queue:    binaryheap.NewWith(formComparator),
		seen:     hashset.New(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if nullable[start] {
		e.push(grammar.SymbolString{})
	}
	e.push(grammar.Syms(start))
	return e
}

// push queues a form, unless it has been queued before or cannot derive a
// string within the length bound.
func (e *Enumerator) push(s grammar.SymbolString) {
	bound, productive := e.shortest(s)
	if !productive || e.maxlen > 0 && bound > e.maxlen {
		return
	}
	k := formKey(s)
	if e.seen.Contains(k) {
		return
	}
	e.seen.Add(k)
	e.queue.Push(form{syms: s, serial: e.serial})
	e.serial++
}

// shortest returns the length of the shortest terminal string derivable from s.
// It returns false if s contains a variable which derives no terminal string.
func (e *Enumerator) shortest(s grammar.SymbolString) (int, bool) {
	n := 0
	for _, A := range s {
		if A.IsTerminal() {
			n++
			continue
		}
		y, ok := e.minYield[A]
		if !ok {
			return 0, false
		}
		n += y
	}
	return n, true
}

// Next returns the next derivable terminal string. Strings are produced in order
// of non-decreasing length. If the enumeration is exhausted, the second return
// value is false.
func (e *Enumerator) Next() (grammar.SymbolString, bool) {
	if e.limit > 0 && e.yielded >= e.limit {
		return nil, false
	}
	for {
		x, ok := e.queue.Pop()
		if !ok {
			return nil, false
		}
		f := x.(form)
		if f.syms.AllTerminal() {
			e.yielded++
			return f.syms, true
		}
		A := f.syms[f.syms.LeftmostVariable()]
		for _, p := range grammar.RulesFor(A, e.prods) {
			if s, ok := f.syms.ReplaceLeftmostVariable(p); ok {
				tracer().Debugf("%s  ⇒  %s", f.syms, s)
				e.push(s)
			}
		}
	}
}

func formKey(s grammar.SymbolString) string {
	var b strings.Builder
	for _, A := range s {
		if A.IsTerminal() {
			b.WriteString("t:")
		} else {
			b.WriteString("n:")
		}
		b.WriteString(A.Name)
		b.WriteByte(0)
	}
	return b.String()
}

// --- Grammar preparation ---------------------------------------------------

// nullables computes the variables which derive the empty string.
func nullables(prods []grammar.Production) map[grammar.Symbol]bool {
	nullable := make(map[grammar.Symbol]bool)
	for changed := true; changed; {
		changed = false
		for _, p := range prods {
			if nullable[p.Head] {
				continue
			}
			all := true
			for _, A := range p.Body {
				if !nullable[A] {
					all = false
					break
				}
			}
			if all {
				nullable[p.Head] = true
				changed = true
			}
		}
	}
	return nullable
}

// epsilonFree rewrites prods into rules without empty right hand sides which
// derive the same non-empty strings: every rule is replaced by all variants
// omitting some of its nullable symbols. Variants A -> A are dropped.
func epsilonFree(prods []grammar.Production) ([]grammar.Production, map[grammar.Symbol]bool) {
	nullable := nullables(prods)
	var rules []grammar.Production
	keys := hashset.New()
	for _, p := range prods {
		bodies := []grammar.SymbolString{{}}
		for _, A := range p.Body {
			var next []grammar.SymbolString
			for _, b := range bodies {
				with := append(append(grammar.SymbolString{}, b...), A)
				next = append(next, with)
				if nullable[A] {
					next = append(next, b)
				}
			}
			bodies = next
		}
		for _, b := range bodies {
			if len(b) == 0 || len(b) == 1 && b[0] == p.Head {
				continue
			}
			k := formKey(grammar.Syms(p.Head)) + "->" + formKey(b)
			if keys.Contains(k) {
				continue
			}
			keys.Add(k)
			rules = append(rules, grammar.Production{Head: p.Head, Body: b})
		}
	}
	tracer().Debugf("%d epsilon-free rules, nullable variables: %v", len(rules), nullable)
	return rules, nullable
}

// shortestYields computes for every variable the length of its shortest
// derivable terminal string. Variables deriving no terminal string are absent.
func shortestYields(prods []grammar.Production) map[grammar.Symbol]int {
	yield := make(map[grammar.Symbol]int)
	for changed := true; changed; {
		changed = false
		for _, p := range prods {
			n, ok := 0, true
			for _, A := range p.Body {
				if A.IsTerminal() {
					n++
				} else if y, found := yield[A]; found {
					n += y
				} else {
					ok = false
					break
				}
			}
			if y, found := yield[p.Head]; ok && (!found || n < y) {
				yield[p.Head] = n
				changed = true
			}
		}
	}
	return yield
}
