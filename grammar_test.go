package grammar

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSymbolEquality(t *testing.T) {
	if T("x") == N("x") {
		t.Errorf("Expected terminal x and variable x to differ")
	}
	if T("x") != T("x") {
		t.Errorf("Expected terminal x to equal terminal x")
	}
}

func TestSymbolStringEquality(t *testing.T) {
	s1 := Syms(N("T"), T("+"), N("E"))
	s2 := Syms(N("T"), T("+"), N("E"))
	if !s1.Equals(s2) {
		t.Errorf("Expected %v to equal %v", s1, s2)
	}
	if s1.Equals(s2[:2]) || s2[:2].Equals(s1) {
		t.Errorf("Expected strings of different length to differ")
	}
	if !Syms().Equals(nil) {
		t.Errorf("Expected empty strings to be equal")
	}
	if !s1[:1].Less(s1) || s1.Less(s2) {
		t.Errorf("Expected strings to be ordered by length")
	}
}

func TestSymbolStringProperties(t *testing.T) {
	s := Syms(T("int"), N("E"), T("*"), N("T"))
	if s.AllTerminal() {
		t.Errorf("Expected %v to not be all-terminal", s)
	}
	if n := s.VariableCount(); n != 2 {
		t.Errorf("Expected variable count of %v to be 2, is %d", s, n)
	}
	if !Syms().AllTerminal() || !Syms(T("a")).AllTerminal() {
		t.Errorf("Expected terminal strings to be all-terminal")
	}
	if s.String() != "int E * T" || Syms().String() != "ε" {
		t.Errorf("Unexpected string representation %q", s.String())
	}
}

func TestReplaceLeftmostVariable(t *testing.T) {
	s := Syms(T("a"), N("A"), N("B"))
	r, ok := s.ReplaceLeftmostVariable(Rule(N("A"), T("b"), T("c")))
	if !ok || !r.Equals(Syms(T("a"), T("b"), T("c"), N("B"))) {
		t.Errorf("Expected a b c B, got %v", r)
	}
	if !s.Equals(Syms(T("a"), N("A"), N("B"))) {
		t.Errorf("Expected receiver to be unchanged, is %v", s)
	}
	if _, ok := s.ReplaceLeftmostVariable(Rule(N("B"), T("b"))); ok {
		t.Errorf("Expected B not to be replaceable, as A is leftmost")
	}
	r, _ = s.ReplaceLeftmostVariable(Rule(N("A")))
	if !r.Equals(Syms(T("a"), N("B"))) {
		t.Errorf("Expected epsilon replacement to yield a B, got %v", r)
	}
}

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grammar.grammar")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("E").N("T").End()
	b.LHS("E").N("T").T("+").N("E").End()
	b.LHS("T").T("int").End()
	b.LHS("T").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if g.Start != N("E") {
		t.Errorf("Expected start symbol to be E, is %v", g.Start)
	}
	if len(g.Productions) != 4 {
		t.Fatalf("Expected 4 productions, have %d", len(g.Productions))
	}
	if !g.Productions[3].IsEpsilon() {
		t.Errorf("Expected rule 3 to be an epsilon rule, is %v", g.Productions[3])
	}
	if R := g.Rules(N("E")); len(R) != 2 || !R[1].Equals(Rule(N("E"), N("T"), T("+"), N("E"))) {
		t.Errorf("Expected E-rules in declaration order, got %v", R)
	}
	if _, err := NewGrammarBuilder("empty").Grammar(); err != ErrEmptyGrammar {
		t.Errorf("Expected empty grammar to be rejected, got %v", err)
	}
}

func TestGrammarSymbols(t *testing.T) {
	prods := []Production{
		Rule(N("E"), N("T")),
		Rule(N("E"), N("T"), T("+"), N("E")),
		Rule(N("T"), T("int")),
	}
	S := GrammarSymbols(prods)
	if S.Size() != 4 {
		t.Errorf("Expected 4 grammar symbols, have %d: %v", S.Size(), S.Values())
	}
	expected := []Symbol{T("+"), T("int"), N("E"), N("T")}
	for i, A := range S.Values() {
		if A != expected[i] {
			t.Errorf("Expected symbol #%d to be %v, is %v", i, expected[i], A)
		}
	}
	if !S.ContainsName("int") || S.ContainsName("F") {
		t.Errorf("ContainsName does not work")
	}
}

func TestValidate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grammar.grammar")
	defer teardown()
	//
	g := &Grammar{
		Name:  "bad",
		Start: N("S"),
		Productions: []Production{
			Rule(N("S"), N("A"), N("X")),
			Rule(T("a"), T("b")),
			Rule(N("A"), T("a")),
		},
	}
	issues := Validate(g)
	if len(issues) != 2 {
		t.Errorf("Expected 2 issues, have %d: %v", len(issues), issues)
	}
}
