package lr

import (
	"bytes"
	"sort"

	grammar "github.com/SungMinCho/Grammar"
	"github.com/SungMinCho/Grammar/lr/iteratable"
	"github.com/cnf/structhash"
)

// ItemSet is a set of LR(0) items. Membership is decided by structural
// equality of items. Iteration follows insertion order.
type ItemSet struct {
	set *iteratable.Set
}

// NewItemSet creates an item set from a list of items. Duplicates are dropped.
func NewItemSet(items ...Item) *ItemSet {
	S := &ItemSet{set: iteratable.NewSet(itemKey, itemEquals)}
	for _, i := range items {
		S.set.Add(i)
	}
	return S
}

func asItem(x interface{}) Item {
	return x.(Item)
}

func itemEquals(a, b interface{}) bool {
	return asItem(a).Equals(asItem(b))
}

// itemKey buckets items by a digest of their content. Symbol kinds are part of
// the digest, as terminal x and variable x are different symbols.
func itemKey(x interface{}) string {
	return itemDigest(asItem(x))
}

type itemHashable struct {
	Head string
	Body []string
	Dot  int
}

func symbolKey(name string, isTerminal bool) string {
	if isTerminal {
		return "t:" + name
	}
	return "n:" + name
}

func itemDigest(i Item) string {
	h := itemHashable{
		Head: symbolKey(i.Head.Name, i.Head.IsTerminal()),
		Body: make([]string, len(i.Body)),
		Dot:  i.Dot,
	}
	for k, A := range i.Body {
		h.Body[k] = symbolKey(A.Name, A.IsTerminal())
	}
	digest, err := structhash.Hash(h, 1)
	if err != nil { // cannot happen for plain strings and ints
		tracer().Errorf("cannot hash item %s: %v", i, err)
		return i.String()
	}
	return digest
}

// Add inserts an item. It returns false if an equal item has already been present.
func (S *ItemSet) Add(i Item) bool {
	return S.set.Add(i)
}

// Contains is true if S contains an item equal to i.
func (S *ItemSet) Contains(i Item) bool {
	return S.set.Contains(i)
}

// Size returns the number of items in S.
func (S *ItemSet) Size() int {
	return S.set.Size()
}

// Empty is true for an item set without items.
func (S *ItemSet) Empty() bool {
	return S == nil || S.set.Empty()
}

// Items returns the items of S in insertion order.
func (S *ItemSet) Items() []Item {
	vals := S.set.Values()
	items := make([]Item, len(vals))
	for k, x := range vals {
		items[k] = asItem(x)
	}
	return items
}

// Copy returns a copy of S.
func (S *ItemSet) Copy() *ItemSet {
	return &ItemSet{set: S.set.Copy()}
}

// Union adds all items of other to S. Union modifies S.
func (S *ItemSet) Union(other *ItemSet) *ItemSet {
	S.set.Union(other.set)
	return S
}

// Difference returns a new set with the items of S which are not in other.
func (S *ItemSet) Difference(other *ItemSet) *ItemSet {
	if other == nil {
		return S.Copy()
	}
	return &ItemSet{set: S.set.Difference(other.set)}
}

// Equals is true if S and other contain the same items, in whatever order.
func (S *ItemSet) Equals(other *ItemSet) bool {
	if S == nil || other == nil {
		return S.Empty() && other.Empty()
	}
	return S.set.Equals(other.set)
}

// Hash returns a canonical digest of S. Equal sets have equal hashes, independent
// of insertion order. Hash equality alone does not imply set equality.
func (S *ItemSet) Hash() string {
	digests := make([]string, 0, S.Size())
	for _, i := range S.Items() {
		digests = append(digests, itemDigest(i))
	}
	sort.Strings(digests)
	h, err := structhash.Hash(struct{ Items []string }{digests}, 1)
	if err != nil {
		tracer().Errorf("cannot hash item set: %v", err)
		return S.String()
	}
	return h
}

// Kernel returns the kernel items of S: items with the dot not at the start, or
// items of rules for start symbol start.
func (S *ItemSet) Kernel(start grammar.Symbol) []Item {
	var kernel []Item
	for _, i := range S.Items() {
		if i.Dot > 0 || i.Head == start {
			kernel = append(kernel, i)
		}
	}
	return kernel
}

func (S *ItemSet) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	for k, i := range S.Items() {
		if k == 0 {
			b.WriteString(" ")
		} else {
			b.WriteString(", ")
		}
		b.WriteString(i.String())
	}
	b.WriteString(" }")
	return b.String()
}

// Dump is a debugging helper.
func (S *ItemSet) Dump() {
	for k, i := range S.Items() {
		tracer().Debugf("[%2d] %s", k+1, i)
	}
}
