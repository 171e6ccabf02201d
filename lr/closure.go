package lr

import (
	grammar "github.com/SungMinCho/Grammar"
)

// === Closure and Goto-Set Operations =======================================

// Refer to "Crafting A Compiler" by Charles N. Fisher & Richard J. LeBlanc, Jr.
// Section 6.2.1 LR(0) Parsing

// Closure computes the smallest superset of S which is closed under closure steps
// (see Item.ClosureStep). S is not modified.
//
// Every round collects the items derived from the current set, keeps those which
// are not yet members, then adds them all at once. The set is complete when a
// round finds nothing new.
func Closure(S *ItemSet, prods []grammar.Production) *ItemSet {
	C, rounds := closure(S, prods)
	tracer().Debugf("closure complete after %d round(s), %d items", rounds, C.Size())
	return C
}

// closure does not trace and may be called from worker goroutines.
func closure(S *ItemSet, prods []grammar.Production) (*ItemSet, int) {
	C := NewItemSet()
	if S != nil {
		C = S.Copy()
	}
	for round := 1; ; round++ {
		derived := NewItemSet()
		for _, item := range C.Items() {
			seq := item.ClosureStep(prods)
			for i, ok := seq.Next(); ok; i, ok = seq.Next() {
				derived.Add(i)
			}
		}
		fresh := derived.Difference(C)
		if fresh.Empty() {
			return C, round
		}
		C.Union(fresh)
	}
}

// gotoKernel advances the dot over X in every item of S which has X right after the dot.
func gotoKernel(S *ItemSet, X grammar.Symbol) *ItemSet {
	K := NewItemSet()
	for _, i := range S.Items() {
		if i.NextIs(X) {
			K.Add(i.Advance())
		}
	}
	return K
}

// Goto computes the successor item set of S for symbol X. If no item of S has X
// right after the dot, the result is empty, meaning there is no transition on X.
func Goto(S *ItemSet, X grammar.Symbol, prods []grammar.Production) *ItemSet {
	G := gotoSet(S, X, prods)
	if !G.Empty() {
		tracer().Debugf("goto(%s) --%s--> %s", S, X, G)
	}
	return G
}

// gotoSet is Goto without tracing, safe for concurrent use on a shared S.
func gotoSet(S *ItemSet, X grammar.Symbol, prods []grammar.Production) *ItemSet {
	K := gotoKernel(S, X)
	if K.Empty() {
		return K
	}
	G, _ := closure(K, prods)
	return G
}
