package iteratable

import (
	"bytes"
	"fmt"
)

// KeyFunc computes a bucket key for an element.
type KeyFunc func(interface{}) string

// EqualsFunc decides if two elements are equal.
type EqualsFunc func(a, b interface{}) bool

// Set is an insertion-ordered set with structural membership.
type Set struct {
	elems  []interface{}
	index  map[string][]int // key -> positions in elems
	key    KeyFunc
	equals EqualsFunc
}

// NewSet creates an empty set, given a key function and an equality predicate.
func NewSet(key KeyFunc, equals EqualsFunc) *Set {
	return &Set{
		index:  make(map[string][]int),
		key:    key,
		equals: equals,
	}
}

// Size returns the number of elements in S.
func (S *Set) Size() int {
	return len(S.elems)
}

// Empty is true for a set without elements.
func (S *Set) Empty() bool {
	return len(S.elems) == 0
}

// Contains is true if S contains an element equal to x.
func (S *Set) Contains(x interface{}) bool {
	_, found := S.find(S.key(x), x)
	return found
}

func (S *Set) find(k string, x interface{}) (int, bool) {
	for _, inx := range S.index[k] {
		if S.equals(S.elems[inx], x) {
			return inx, true
		}
	}
	return -1, false
}

// Add inserts x if no equal element is present. It returns true if x has been added.
func (S *Set) Add(x interface{}) bool {
	k := S.key(x)
	if _, found := S.find(k, x); found {
		return false
	}
	S.index[k] = append(S.index[k], len(S.elems))
	S.elems = append(S.elems, x)
	return true
}

// Values returns the elements of S in insertion order.
// The slice is a copy and may be modified by the caller.
func (S *Set) Values() []interface{} {
	return append([]interface{}(nil), S.elems...)
}

// Copy returns a shallow copy of S.
func (S *Set) Copy() *Set {
	C := NewSet(S.key, S.equals)
	for _, x := range S.elems {
		C.Add(x)
	}
	return C
}

// Union adds all elements of other to S. This operation is destructive.
func (S *Set) Union(other *Set) *Set {
	if other != nil {
		for _, x := range other.elems {
			S.Add(x)
		}
	}
	return S
}

// Difference returns a new set with all elements of S which are not contained in other.
func (S *Set) Difference(other *Set) *Set {
	D := NewSet(S.key, S.equals)
	for _, x := range S.elems {
		if other == nil || !other.Contains(x) {
			D.Add(x)
		}
	}
	return D
}

// Equals is true if S and other contain equal elements, regardless of insertion order.
func (S *Set) Equals(other *Set) bool {
	if other == nil || S.Size() != other.Size() {
		return false
	}
	for _, x := range S.elems {
		if !other.Contains(x) {
			return false
		}
	}
	return true
}

func (S *Set) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	for i, x := range S.elems {
		if i == 0 {
			b.WriteString(" ")
		} else {
			b.WriteString(", ")
		}
		b.WriteString(fmt.Sprintf("%v", x))
	}
	b.WriteString(" }")
	return b.String()
}
