package lr

import (
	"fmt"
	"strings"

	grammar "github.com/SungMinCho/Grammar"
)

// Item is an LR(0) item, i.e. a production with a dot position within its right
// hand side. 0 ≤ Dot ≤ len(Body).
type Item struct {
	Head grammar.Symbol
	Body grammar.SymbolString
	Dot  int
}

// StartItem returns the item for p with the dot in front of the right hand side.
func StartItem(p grammar.Production) Item {
	return Item{Head: p.Head, Body: p.Body, Dot: 0}
}

// Production returns the production underlying i.
func (i Item) Production() grammar.Production {
	return grammar.Production{Head: i.Head, Body: i.Body}
}

// Complete is true if the dot is behind the right hand side, i.e. for reduction items.
// Items of epsilon-productions are complete from the start.
func (i Item) Complete() bool {
	return i.Dot >= len(i.Body)
}

// PeekSymbol returns the symbol immediately after the dot, if any.
func (i Item) PeekSymbol() (grammar.Symbol, bool) {
	if i.Complete() {
		return grammar.Symbol{}, false
	}
	return i.Body[i.Dot], true
}

// NextIs is true if X is immediately after the dot.
func (i Item) NextIs(X grammar.Symbol) bool {
	A, ok := i.PeekSymbol()
	return ok && A == X
}

// Advance returns a new item with the dot moved one position to the right.
// Advancing a complete item is a programming error.
func (i Item) Advance() Item {
	if i.Complete() {
		panic(fmt.Sprintf("cannot advance complete item %s", i))
	}
	return Item{Head: i.Head, Body: i.Body, Dot: i.Dot + 1}
}

// Equals is true if i and other share head, body and dot position.
func (i Item) Equals(other Item) bool {
	return i.Dot == other.Dot && i.Head == other.Head && i.Body.Equals(other.Body)
}

// String renders an item as "E -> T . + E".
func (i Item) String() string {
	var b strings.Builder
	b.WriteString(i.Head.Name)
	b.WriteString(" ->")
	for k, A := range i.Body {
		if k == i.Dot {
			b.WriteString(" .")
		}
		b.WriteByte(' ')
		b.WriteString(A.Name)
	}
	if i.Complete() {
		b.WriteString(" .")
	}
	return b.String()
}

// --- Closure steps ---------------------------------------------------------

// ItemSeq is a lazy sequence of items.
//
//     seq := item.ClosureStep(prods)
//     for i, ok := seq.Next(); ok; i, ok = seq.Next() {
//         …
//     }
//
type ItemSeq struct {
	gen func() (Item, bool)
}

// Next returns the next item of the sequence. If the sequence is exhausted,
// the second return value is false.
func (seq *ItemSeq) Next() (Item, bool) {
	if seq == nil || seq.gen == nil {
		return Item{}, false
	}
	i, ok := seq.gen()
	if !ok {
		seq.gen = nil
	}
	return i, ok
}

// Items drains the sequence.
func (seq *ItemSeq) Items() []Item {
	var items []Item
	for i, ok := seq.Next(); ok; i, ok = seq.Next() {
		items = append(items, i)
	}
	return items
}

// ClosureStep produces the items derived from i by a single closure step: if a
// variable X is right after the dot, one item X -> . β for every rule X -> β of prods,
// in declaration order. Otherwise the sequence is empty.
func (i Item) ClosureStep(prods []grammar.Production) *ItemSeq {
	X, ok := i.PeekSymbol()
	if !ok || X.IsTerminal() {
		return &ItemSeq{}
	}
	k := 0
	return &ItemSeq{gen: func() (Item, bool) {
		for k < len(prods) {
			p := prods[k]
			k++
			if p.Head == X {
				return StartItem(p), true
			}
		}
		return Item{}, false
	}}
}
