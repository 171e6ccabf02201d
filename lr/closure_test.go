package lr

import (
	"testing"

	grammar "github.com/SungMinCho/Grammar"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestClosure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grammar.lr")
	defer teardown()
	//
	rules := append([]grammar.Production{grammar.Rule(grammar.N("E'"), tE)}, exprRules()...)
	S := NewItemSet(StartItem(rules[0]))
	C := Closure(S, rules)
	expected := "{ E' -> . E, E -> . T, E -> . T + E, T -> . int }"
	if C.String() != expected {
		t.Errorf("Expected closure %s, have %s", expected, C)
	}
	if S.Size() != 1 {
		t.Errorf("Expected closure to leave its argument untouched")
	}
	if !Closure(C, rules).Equals(C) {
		t.Errorf("Expected closure to be idempotent")
	}
	for _, i := range S.Items() {
		if !C.Contains(i) {
			t.Errorf("Expected closure to contain %v", i)
		}
	}
}

func TestClosureOfEmptySet(t *testing.T) {
	if C := Closure(NewItemSet(), exprRules()); !C.Empty() {
		t.Errorf("Expected closure of empty set to be empty, is %v", C)
	}
	if C := Closure(nil, exprRules()); !C.Empty() {
		t.Errorf("Expected closure of nil set to be empty, is %v", C)
	}
}

func TestClosureLeftRecursion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grammar.lr")
	defer teardown()
	//
	L, x := grammar.N("L"), grammar.T("x")
	rules := []grammar.Production{
		grammar.Rule(L, L, grammar.T(","), x),
		grammar.Rule(L, x),
	}
	C := Closure(NewItemSet(StartItem(rules[0])), rules)
	if C.Size() != 2 {
		t.Errorf("Expected 2 items in closure, have %v", C)
	}
}

func TestGoto(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grammar.lr")
	defer teardown()
	//
	rules := append([]grammar.Production{grammar.Rule(grammar.N("E'"), tE)}, exprRules()...)
	S0 := Closure(NewItemSet(StartItem(rules[0])), rules)
	G := Goto(S0, tT, rules)
	if G.String() != "{ E -> T ., E -> T . + E }" {
		t.Errorf("Unexpected goto set %v", G)
	}
	G = Goto(G, tPlus, rules)
	expected := "{ E -> T + . E, E -> . T, E -> . T + E, T -> . int }"
	if G.String() != expected {
		t.Errorf("Expected goto set %s, have %s", expected, G)
	}
	if G := Goto(S0, tPlus, rules); !G.Empty() {
		t.Errorf("Expected no transition on +, have %v", G)
	}
	if G := Goto(S0, grammar.T("none"), rules); !G.Empty() {
		t.Errorf("Expected no transition on unknown symbol, have %v", G)
	}
}
